package ngsld

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func sumExp(gl []float64) float64 {
	var sum float64
	for _, v := range gl {
		sum += math.Exp(v)
	}
	return sum
}

func TestPostProbSumsToOne(t *testing.T) {
	gl := []float64{math.Log(0.2), math.Log(1.4), math.Log(0.4)}

	if err := PostProb(gl, nil); err != nil {
		t.Fatal(err)
	}

	if s := sumExp(gl); !scalar.EqualWithinAbs(s, 1, tol) {
		t.Errorf("exponentiated triplet sums to %g, expected 1", s)
	}
	for g, v := range gl {
		if v > 0 {
			t.Errorf("class %d: log-probability %g is above 0", g, v)
		}
	}
}

func TestPostProbIdempotent(t *testing.T) {
	gl := []float64{math.Log(0.1), math.Log(0.7), math.Log(0.2)}
	if err := PostProb(gl, nil); err != nil {
		t.Fatal(err)
	}

	again := append([]float64(nil), gl...)
	if err := PostProb(again, nil); err != nil {
		t.Fatal(err)
	}

	for g := range gl {
		if !scalar.EqualWithinAbs(gl[g], again[g], tol) {
			t.Errorf("class %d: %g changed to %g on renormalization", g, gl[g], again[g])
		}
	}
}

func TestPostProbVeryNegative(t *testing.T) {
	// A naive exp-then-sum underflows to 0/0 here; the max-shifted
	// log-sum-exp must not.
	gl := []float64{-1200, -1201, -1203}

	if err := PostProb(gl, nil); err != nil {
		t.Fatal(err)
	}

	if s := sumExp(gl); !scalar.EqualWithinAbs(s, 1, tol) {
		t.Errorf("exponentiated triplet sums to %g, expected 1", s)
	}
}

func TestPostProbPrior(t *testing.T) {
	// Uniform likelihoods folded with a prior must return the prior.
	prior := []float64{math.Log(0.25), math.Log(0.5), math.Log(0.25)}
	gl := []float64{math.Log(1. / 3), math.Log(1. / 3), math.Log(1. / 3)}

	if err := PostProb(gl, prior); err != nil {
		t.Fatal(err)
	}

	for g := range gl {
		if !scalar.EqualWithinAbs(gl[g], prior[g], tol) {
			t.Errorf("class %d: posterior %g, expected prior %g", g, gl[g], prior[g])
		}
	}
}

func TestPostProbDirac(t *testing.T) {
	negInf := math.Inf(-1)
	gl := []float64{negInf, 0, negInf}

	if err := PostProb(gl, nil); err != nil {
		t.Fatal(err)
	}

	if gl[Het] != 0 {
		t.Errorf("called class moved to %g, expected 0", gl[Het])
	}
	if !math.IsInf(gl[HomRef], -1) || !math.IsInf(gl[HomAlt], -1) {
		t.Errorf("uncalled classes %g, %g, expected -Inf", gl[HomRef], gl[HomAlt])
	}
}

func TestPostProbNaN(t *testing.T) {
	negInf := math.Inf(-1)
	gl := []float64{negInf, negInf, negInf}

	err := PostProb(gl, nil)
	if !errors.Is(err, ErrNaN) {
		t.Errorf("got %v, expected ErrNaN", err)
	}
}
