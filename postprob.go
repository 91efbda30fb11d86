package ngsld

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// PostProb rescales a triplet of log-likelihoods, in place, into normalized
// log-posterior probabilities: the log-prior (nil means uniform) is added
// to each class and the log-sum-exp of the result is subtracted, so the
// exponentiated triplet sums to 1. floats.LogSumExp shifts by the maximum
// exponent before summing, so the rescale stays finite even for very
// negative likelihoods. Feeding an already normalized log triplet back
// through with a nil prior leaves it unchanged.
//
// Any NaN among the outputs fails with ErrNaN: the file content does not
// match the declared format.
func PostProb(gl, prior []float64) error {
	if prior != nil {
		for i := range gl {
			gl[i] += prior[i]
		}
	}

	norm := floats.LogSumExp(gl)
	for i := range gl {
		gl[i] -= norm
		if math.IsNaN(gl[i]) {
			return fmt.Errorf("%w", ErrNaN)
		}
	}

	return nil
}
