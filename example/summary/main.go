// Command summary parses a GENO/POS file pair the way a downstream LD
// engine would receive them and prints what was loaded.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/montanaflynn/stats"

	ngsld "github.com/rafalcode/ngsLD"
)

func main() {
	genoPath := flag.String("geno", "", "GENO file (text or binary, optionally compressed)")
	posPath := flag.String("pos", "", "POS file (optionally compressed)")
	nInd := flag.Int("n-ind", 0, "number of individuals")
	nSites := flag.Int("n-sites", 0, "number of sites")
	isBinary := flag.Bool("binary", false, "GENO file is binary (3 doubles per individual per site)")
	probs := flag.Bool("probs", false, "GENO file holds genotype likelihoods/posteriors rather than hard calls")
	logScale := flag.Bool("log-scale", false, "input probabilities are already in log space")
	flag.Parse()

	if *genoPath == "" || *posPath == "" || *nInd <= 0 || *nSites <= 0 {
		flag.PrintDefaults()
		log.Fatalln("need -geno, -pos, -n-ind and -n-sites")
	}

	format := ngsld.GenoFormat{Binary: *isBinary, Probs: *probs, LogScale: *logScale}
	geno, err := ngsld.ReadGeno(*genoPath, format, *nInd, *nSites)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("GENO: %d individuals x %d sites (%s)", geno.NInd, geno.NSites, format)

	dist, err := ngsld.ReadPos(*posPath, *nSites)
	if err != nil {
		log.Fatalln(err)
	}

	finite := make([]float64, 0, *nSites)
	contigStarts := 0
	for s := 1; s <= *nSites; s++ {
		if math.IsInf(dist[s], 1) {
			contigStarts++
			continue
		}
		finite = append(finite, dist[s])
	}
	log.Printf("POS: %d sites, %d chromosome starts", *nSites, contigStarts)

	if len(finite) > 0 {
		mean, _ := stats.Mean(finite)
		median, _ := stats.Median(finite)
		widest, _ := stats.Max(finite)
		log.Printf("adjacent-site distance: mean %.1f, median %.1f, max %.0f", mean, median, widest)
	}

	// Spot-check the first populated triplet.
	fmt.Printf("individual 0, site 1 posterior: %.4f %.4f %.4f\n",
		math.Exp(geno.At(0, 1, ngsld.HomRef)),
		math.Exp(geno.At(0, 1, ngsld.Het)),
		math.Exp(geno.At(0, 1, ngsld.HomAlt)))
}
