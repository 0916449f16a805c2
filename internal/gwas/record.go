// Package gwas provides GWAS summary statistics parsing and record types.
package gwas

import (
	"errors"
	"fmt"
)

// Sentinel errors for input validation failures.
var (
	// ErrEmptySeries is returned when a transform receives no p-values.
	ErrEmptySeries = errors.New("empty p-value series")
	// ErrInvalidPValue is returned when a p-value falls outside (0, 1].
	// A p-value of exactly 0 has no -log10 and is rejected rather than clamped.
	ErrInvalidPValue = errors.New("p-value outside (0, 1]")
)

// Record is a single row of GWAS summary statistics.
type Record struct {
	Chrom string  // chromosome label as it appears in the input (e.g. "1", "X")
	SNP   string  // variant identifier (e.g. rs ID)
	P     float64 // association p-value, must be in (0, 1]
}

// Validate checks that the record's p-value is usable for -log10 transforms.
func (r *Record) Validate() error {
	if r.P <= 0 || r.P > 1 {
		return fmt.Errorf("%w: %s has p=%g", ErrInvalidPValue, r.SNP, r.P)
	}
	return nil
}

// ChromOrder returns a sort key that places numeric chromosome labels in
// numeric order (1, 2, ..., 10, 11) ahead of non-numeric labels (X, Y, MT),
// which sort lexicographically after them. A plain lexicographic sort would
// interleave "10" between "1" and "2".
func ChromOrder(chrom string) (num int, isNumeric bool) {
	if chrom == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(chrom); i++ {
		c := chrom[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// CompareChrom orders two chromosome labels: numeric labels numerically
// first, then non-numeric labels lexicographically. Returns a negative
// value, zero, or a positive value in the manner of strings.Compare.
func CompareChrom(a, b string) int {
	an, aNum := ChromOrder(a)
	bn, bNum := ChromOrder(b)
	switch {
	case aNum && bNum:
		return an - bn
	case aNum:
		return -1
	case bNum:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
