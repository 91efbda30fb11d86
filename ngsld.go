// Package ngsld reads the genotype and position input files used for
// pairwise linkage-disequilibrium analysis and converts them into a single
// uniform in-memory representation: one normalized log-posterior triplet per
// individual per site, plus the genomic distance between each site and its
// predecessor. Genotype input may be text or binary, compressed or plain,
// and may hold hard calls, likelihoods, or posterior probabilities in
// linear or log space; whatever the input convention, the tensor handed to
// the downstream engine is always log-scale and normalized.
package ngsld

import "math"

// NGeno is the number of diploid genotype classes at a biallelic site.
const NGeno = 3

// Genotype class indices within a site triplet.
const (
	HomRef = iota
	Het
	HomAlt
)

// GenoTensor holds one log-probability triplet per individual per site.
// Individuals occupy [0, NInd) and sites [1, NSites]; site 0 is a sentinel
// row, pre-filled with -Inf and never written. Once returned by ReadGeno
// the tensor is never written again, so it may be shared with any number of
// reader goroutines without locking.
type GenoTensor struct {
	NInd   int
	NSites int
	data   []float64
}

// NewGenoTensor allocates a tensor with every value at -Inf, the log of a
// zero probability.
func NewGenoTensor(nInd, nSites int) *GenoTensor {
	t := &GenoTensor{
		NInd:   nInd,
		NSites: nSites,
		data:   make([]float64, nInd*(nSites+1)*NGeno),
	}
	negInf := math.Inf(-1)
	for i := range t.data {
		t.data[i] = negInf
	}
	return t
}

// Site returns the mutable triplet for one individual at one site.
func (t *GenoTensor) Site(ind, site int) []float64 {
	off := (ind*(t.NSites+1) + site) * NGeno
	return t.data[off : off+NGeno : off+NGeno]
}

// At returns the log-probability of one genotype class.
func (t *GenoTensor) At(ind, site, class int) float64 {
	return t.data[(ind*(t.NSites+1)+site)*NGeno+class]
}

// SiteDistances maps each site in [1, len-1] to its genomic distance from
// the previous site on the same chromosome. Index 0 is unused. +Inf marks
// the first site overall and the first site on each new chromosome, where
// no physical distance exists. Finite distances are always >= 1.
type SiteDistances []float64
