// Package errstats summarizes elementwise deviation of a
// reduced-precision result vector from a full-precision reference.
package errstats

import (
	"errors"
	"math"
)

// ErrLength is returned when the vectors have different lengths.
var ErrLength = errors.New("errstats: length mismatch")

// Stats holds deviation metrics of one comparison. Relative metrics
// skip elements whose reference value is zero.
type Stats struct {
	N       int
	MaxAbs  float64
	MaxRel  float64
	MeanRel float64
	RMS     float64
}

// Compare computes deviation statistics of got against ref.
func Compare(ref, got []float64) (Stats, error) {
	var s Stats
	if len(ref) != len(got) {
		return s, ErrLength
	}
	var sumRel, sumSq float64
	var nRel int
	for i := range ref {
		d := math.Abs(got[i] - ref[i])
		if d > s.MaxAbs {
			s.MaxAbs = d
		}
		sumSq += d * d
		if ref[i] == 0 {
			continue
		}
		rel := d / math.Abs(ref[i])
		if rel > s.MaxRel {
			s.MaxRel = rel
		}
		sumRel += rel
		nRel++
	}
	s.N = len(ref)
	if nRel > 0 {
		s.MeanRel = sumRel / float64(nRel)
	}
	if s.N > 0 {
		s.RMS = math.Sqrt(sumSq / float64(s.N))
	}
	return s, nil
}
