package ngsld

import (
	"reflect"
	"testing"
)

func TestSplitFields(t *testing.T) {
	got := splitFields("chr1 \t 100\tA  C")
	want := []string{"chr1", "100", "A", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, expected %v", got, want)
	}

	if got := splitFields(""); len(got) != 0 {
		t.Errorf("blank line yielded %v, expected no fields", got)
	}
}

func TestNumericFields(t *testing.T) {
	got := numericFields([]string{"chr1_100", "A", "C", "0.1", "-2", "1e-3"})
	want := []float64{0.1, -2, 1e-3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, expected %v", got, want)
	}

	if got := numericFields([]string{"marker", "allele1", "allele2"}); len(got) != 0 {
		t.Errorf("header row yielded %v, expected no numeric fields", got)
	}
}
