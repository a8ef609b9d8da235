// Package algo contains small numeric kernels generic over
// scalar.Number: the polynomial-evaluation and FFT drivers used to
// study reduced-precision error growth against native floats.
package algo

import "github.com/avdva/hubfloat/scalar"

// Horner evaluates a polynomial at the point x. Coefficients are
// ordered from the highest degree down; an empty slice evaluates to
// zero.
func Horner[T scalar.Number[T]](coeffs []T, x T) T {
	var acc T
	for _, c := range coeffs {
		acc = acc.Mul(x).Add(c)
	}
	return acc
}

// Dot returns the inner product of a and b.
// Both slices must have the same length.
func Dot[T scalar.Number[T]](a, b []T) T {
	if len(a) != len(b) {
		panic("algo: length mismatch")
	}
	var acc T
	for i := range a {
		acc = acc.Add(a[i].Mul(b[i]))
	}
	return acc
}
