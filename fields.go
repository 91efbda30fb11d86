package ngsld

import (
	"strconv"
	"strings"
)

func isFieldSep(r rune) bool { return r == ' ' || r == '\t' }

// splitFields splits a line on runs of spaces and tabs. A blank line yields
// zero fields; callers treat that as "skip, do not consume a site slot".
func splitFields(line string) []string {
	return strings.FieldsFunc(line, isFieldSep)
}

// numericFields keeps only the fields that fully parse as numbers. GENO
// data lines keep their trailing payload this way even when leading
// annotation columns (marker names, alleles) are present, while a header
// line yields no numeric fields at all, which is how callers recognize it.
func numericFields(fields []string) []float64 {
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			vals = append(vals, v)
		}
	}
	return vals
}
