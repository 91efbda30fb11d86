package ngsld

import "strings"

// GenoFormat declares how a GENO file is encoded. The zero value describes
// a text file of hard genotype calls in linear scale.
type GenoFormat struct {
	// Binary marks a file of consecutive 3-double little-endian records,
	// one per individual per site, with no text framing.
	Binary bool

	// Probs marks genotype likelihoods or posterior probabilities (three
	// values per individual) rather than single hard calls.
	Probs bool

	// LogScale marks probabilities already in natural-log space. Only
	// consulted on input; ReadGeno always returns log-scale values.
	LogScale bool
}

func (f GenoFormat) String() string {
	parts := make([]string, 0, 3)
	if f.Binary {
		parts = append(parts, "binary")
	} else {
		parts = append(parts, "text")
	}
	if f.Probs {
		parts = append(parts, "probabilities")
	} else {
		parts = append(parts, "calls")
	}
	if f.LogScale {
		parts = append(parts, "log-scale")
	}

	return strings.Join(parts, ", ")
}

// valuesPerInd is the number of payload fields each individual contributes
// to one site.
func (f GenoFormat) valuesPerInd() int {
	if f.Probs {
		return NGeno
	}
	return 1
}
