// Copyright 2025 Aleksandr Demakin. All rights reserved.

// Package floatbits provides well-defined access to the IEEE-754
// binary64 field layout via math.Float64bits round trips.
package floatbits

import "math"

// Field layout of a float64 bit pattern.
const (
	SignShift = 63
	ExpShift  = 52
	ExpMask   = 0x7FF
	FracMask  = 1<<ExpShift - 1
)

// Split breaks a bit pattern into its sign, exponent and fraction fields.
func Split(bits uint64) (sign, exp, frac uint64) {
	return bits >> SignShift, bits >> ExpShift & ExpMask, bits & FracMask
}

// Assemble packs sign, exponent and fraction fields into a bit pattern.
// Every field is masked to its width first.
func Assemble(sign, exp, frac uint64) uint64 {
	return (sign&1)<<SignShift | (exp&ExpMask)<<ExpShift | frac&FracMask
}

// ExpField returns the raw 11-bit exponent field of f.
func ExpField(f float64) uint64 {
	return math.Float64bits(f) >> ExpShift & ExpMask
}

// SignField returns 1 if f's sign bit is set, 0 otherwise.
// Unlike math.Signbit it is usable directly in bit assembly.
func SignField(f float64) uint64 {
	return math.Float64bits(f) >> SignShift
}
