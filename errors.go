package ngsld

import "errors"

// Every parse failure is fatal: the caller gets one of these sentinels
// (wrapped with file and site context) and no partial tensor or distance
// vector. There is no local recovery.
var (
	// ErrTruncated reports fewer lines or bytes than the declared site and
	// individual counts require.
	ErrTruncated = errors.New("truncated input")

	// ErrFormat reports a structurally bad line: too few fields, or
	// non-monotonic coordinates within a chromosome.
	ErrFormat = errors.New("malformed input")

	// ErrInvalidGenotype reports a hard-call code outside {-1,0,1,2}.
	ErrInvalidGenotype = errors.New("genotypes must be coded as {-1,0,1,2}")

	// ErrNaN reports a NaN surviving normalization, which means the file
	// content does not match the declared format.
	ErrNaN = errors.New("NaN after normalization; is the file format what was declared?")

	// ErrTrailingData reports unconsumed data after the declared number of
	// sites, which usually means the site count argument is wrong.
	ErrTrailingData = errors.New("input not at EOF after the declared number of sites")

	// ErrLineTooLong reports a text line exceeding the internal read
	// buffer.
	ErrLineTooLong = errors.New("line exceeds the input buffer")
)
