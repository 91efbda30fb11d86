package ngsld

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// ReadPos reads a POS file of nSites whitespace-delimited lines (column 1 =
// chromosome label, column 2 = 1-based coordinate, further columns ignored)
// and returns each site's distance from its predecessor. The first site
// overall and the first site of every chromosome get +Inf, since no
// physical distance exists across a contig boundary. Coordinates must be
// strictly increasing within a chromosome; a finite distance below 1 fails
// with ErrFormat.
//
// A line with fewer than two fields, or whose second field does not parse
// as a nonzero number, is taken for a header and skipped. A coordinate of
// literally 0 is therefore swallowed as a header too; POS coordinates are
// 1-based, so nothing of value is lost.
func ReadPos(path string, nSites int) (SiteDistances, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return readPos(r, nSites)
}

func readPos(r *FileReader, nSites int) (SiteDistances, error) {
	dist := make(SiteDistances, nSites+1)
	inf := math.Inf(1)
	for i := range dist {
		dist[i] = inf
	}

	// Chromosome cursor; advanced one site at a time, discarded on return.
	var curChr string
	var prevPos float64

	for s := 1; s <= nSites; s++ {
		line, err := r.NextLine()
		if err == io.EOF {
			return nil, fmt.Errorf("%s: site %d: %w", r.Path, s, ErrTruncated)
		}
		if err != nil {
			return nil, err
		}

		fields := splitFields(line)
		if len(fields) == 0 {
			s--
			continue
		}

		var coord float64
		if len(fields) >= 2 {
			coord, _ = strconv.ParseFloat(fields[1], 64)
		}
		if len(fields) < 2 || coord == 0 {
			logHeaderSkip(line, s)
			s--
			continue
		}

		switch {
		case curChr == "":
			// First chromosome seen; dist[s] keeps the +Inf pre-fill.
			curChr = fields[0]
		case curChr == fields[0]:
			dist[s] = coord - prevPos
			if dist[s] < 1 {
				return nil, fmt.Errorf("%s: site %d: %w: invalid distance %g between adjacent sites",
					r.Path, s, ErrFormat, dist[s])
			}
		default:
			// Contig boundary; dist[s] keeps the +Inf pre-fill.
			curChr = fields[0]
		}
		prevPos = coord
	}

	if err := r.ExpectEOF(); err != nil {
		return nil, err
	}

	return dist, nil
}
