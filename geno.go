package ngsld

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math"
)

// ReadGeno reads a GENO file holding nSites sites for nInd individuals in
// the encoding declared by f and returns the genotype tensor, with every
// populated triplet normalized to log-posterior probabilities. The result
// is always log-scale, whatever the input convention. After the last site
// the stream must be exactly at EOF; trailing data fails with
// ErrTrailingData, which guards against a wrong site count.
func ReadGeno(path string, f GenoFormat, nInd, nSites int) (*GenoTensor, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return readGeno(r, f, nInd, nSites)
}

func readGeno(r *FileReader, f GenoFormat, nInd, nSites int) (*GenoTensor, error) {
	t := NewGenoTensor(nInd, nSites)

	for s := 1; s <= nSites; s++ {
		if f.Binary {
			if err := readBinarySite(r, f, t, s); err != nil {
				return nil, err
			}
			continue
		}

		skip, err := readTextSite(r, f, t, s)
		if err != nil {
			return nil, err
		}
		if skip {
			// Blank or header line; retry the same site index.
			s--
		}
	}

	if err := r.ExpectEOF(); err != nil {
		return nil, err
	}

	return t, nil
}

// readBinarySite reads nInd consecutive records of 3 little-endian doubles
// straight into the site's triplets.
func readBinarySite(r *FileReader, f GenoFormat, t *GenoTensor, s int) error {
	var rec [NGeno * 8]byte

	for i := 0; i < t.NInd; i++ {
		if err := r.ReadFull(rec[:]); err != nil {
			return fmt.Errorf("site %d, individual %d: %w", s, i, err)
		}

		gl := t.Site(i, s)
		for g := 0; g < NGeno; g++ {
			gl[g] = math.Float64frombits(binary.LittleEndian.Uint64(rec[g*8:]))
		}
		if !f.LogScale {
			for g := range gl {
				gl[g] = math.Log(gl[g])
			}
		}

		if err := PostProb(gl, nil); err != nil {
			return fmt.Errorf("%s: site %d, individual %d: %w", r.Path, s, i, err)
		}
	}

	return nil
}

// readTextSite consumes one line and fills site s. It reports skip=true for
// blank and header lines, which do not use up a site slot.
func readTextSite(r *FileReader, f GenoFormat, t *GenoTensor, s int) (skip bool, err error) {
	line, err := r.NextLine()
	if err == io.EOF {
		return false, fmt.Errorf("%s: site %d: %w", r.Path, s, ErrTruncated)
	}
	if err != nil {
		return false, err
	}

	fields := splitFields(line)
	if len(fields) == 0 {
		return true, nil
	}

	vals := numericFields(fields)
	if len(vals) == 0 {
		logHeaderSkip(line, s)
		return true, nil
	}

	want := t.NInd * f.valuesPerInd()
	if len(vals) < want {
		return false, fmt.Errorf("%s: site %d: %w: %d numeric fields, expected at least %d",
			r.Path, s, ErrFormat, len(vals), want)
	}
	// Use the last "want" columns; leading annotation columns are ignored.
	vals = vals[len(vals)-want:]

	for i := 0; i < t.NInd; i++ {
		gl := t.Site(i, s)

		if f.Probs {
			for g := 0; g < NGeno; g++ {
				v := vals[i*NGeno+g]
				if !f.LogScale {
					v = math.Log(v)
				}
				gl[g] = v
			}
		} else {
			switch g := int(vals[i]); {
			case g < 0:
				// Missing call: uninformative over the three classes.
				gl[HomRef] = math.Log(1.0 / NGeno)
				gl[Het] = gl[HomRef]
				gl[HomAlt] = gl[HomRef]
			case g > 2:
				return false, fmt.Errorf("%s: site %d, individual %d: %w", r.Path, s, i, ErrInvalidGenotype)
			default:
				// Dirac on the called class; the other two keep the
				// -Inf pre-fill.
				gl[g] = 0
			}
		}

		if err := PostProb(gl, nil); err != nil {
			return false, fmt.Errorf("%s: site %d, individual %d: %w", r.Path, s, i, err)
		}
	}

	return false, nil
}

func logHeaderSkip(line string, s int) {
	log.Println("> Header found! Skipping line...")
	if s != 1 {
		log.Printf("warning: header found but not on first line; is this an error?\n%s", line)
	}
}
