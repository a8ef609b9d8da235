// Copyright 2025 Aleksandr Demakin. All rights reserved.

// Package hubfloat implements a reduced-precision binary floating-point
// number (the "hub" format) stored inside a native float64.
// A valid value is either a special (signed zero, exact ±1, a signed
// infinity) or a finite normal float64 whose low shift-1 fraction bits
// are zero and whose bit right above them, the hub bit, is one. The hub
// bit plays the role of an implicit extra significand bit below the
// mantBits explicit mantissa, so re-rounding an arithmetic result onto
// the grid is a plain truncation.
//
// The format has no live NaN: not-a-number inputs collapse to an
// infinity carrying the NaN's sign bit. This is a deliberate divergence
// from IEEE-754, useful for numerical error studies where a NaN would
// only poison the statistics.
package hubfloat

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	// shift is the number of low-order float64 fraction bits forced or
	// cleared by quantization.
	shift = 52 - mantBits
	// hubBit is the fraction bit forced to 1 in every on-grid value.
	hubBit = 1 << (shift - 1)

	customBias = 1 << (expBits - 1)
	biasDiff   = 1023 - customBias

	customMaxExp = 1<<expBits - 1

	totalBits = 1 + expBits + mantBits

	expMask  = 1<<expBits - 1
	fracMask = 1<<mantBits - 1

	gridMask = 1<<shift - 1

	smallestNormal32 = 0x1p-126

	// maxBits is the largest finite grid value: the top exponent field
	// with every compact significand bit (hub bit included) set.
	maxBits = (customMaxExp+biasDiff)<<52 | (1<<(mantBits+1)-1)<<(shift-1)
	// lowestBits decodes the smallest positive compact pattern.
	lowestBits = biasDiff<<52 | 1<<shift | hubBit
)

var (
	// Zero is a positive zero.
	Zero = Float(0)
	// One is the exact unity value, reserved in the compact encoding.
	One = Float(1)
	// Max is the largest finite representable value.
	Max = Float(math.Float64frombits(maxBits))
	// Min is the most negative finite representable value.
	Min = Float(math.Float64frombits(1<<63 | maxBits))
	// SmallestPositive is the smallest positive representable value.
	SmallestPositive = Float(math.Float64frombits(lowestBits))

	maxVal    = math.Float64frombits(maxBits)
	lowestVal = math.Float64frombits(lowestBits)
)

// Float is a reduced-precision floating-point number on the hub grid.
// The zero value is ready to use. Values are immutable: every operation
// returns a new Float, and the compound forms of the original format are
// plain reassignment, `a = a.Add(b)`.
//
// Native comparison operators work: Float is an ordered float64 type,
// and distinct ordinary values never share a bit pattern.
type Float float64

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) Float {
	if sign >= 0 {
		return Float(math.Inf(1))
	}
	return Float(math.Inf(-1))
}

// FromFloat64 constructs a Float from a float64.
// A value already on the grid is stored exactly. Anything else is
// rounded to the nearest float32 (reusing the hardware round-to-nearest-
// even at the target mantissa width), re-expanded, and given the hub bit
// at that reduced precision. Magnitudes beyond Max saturate to a signed
// infinity, nonzero magnitudes below SmallestPositive flush to a signed
// zero, and NaN collapses to an infinity taking its sign bit.
func FromFloat64(d float64) Float {
	if sp, ok := handleSpecials(d); ok {
		return Float(sp)
	}
	if onGrid(math.Float64bits(d)) {
		return Float(d)
	}
	return Float(clamp(floatToHub(float64(float32(d)))))
}

// FromFloat32 constructs a Float from a float32. Normal values convert
// to float64 exactly and then receive the hub bit.
func FromFloat32(f float32) Float {
	d := float64(f)
	if sp, ok := handleSpecials(d); ok {
		return Float(sp)
	}
	return Float(clamp(floatToHub(d)))
}

// FromInt constructs a Float from an integer.
func FromInt(i int64) Float {
	return FromFloat64(float64(i))
}

// Float64 returns the underlying native double.
func (f Float) Float64() float64 {
	return float64(f)
}

// IsInf reports whether f is an infinity of either sign.
func (f Float) IsInf() bool {
	return math.IsInf(float64(f), 0)
}

// Signbit reports whether f is negative or a negative zero.
func (f Float) Signbit() bool {
	return math.Signbit(float64(f))
}

// Add returns f+other re-rounded onto the grid.
func (f Float) Add(other Float) Float {
	return Float(quantize(float64(f) + float64(other)))
}

// Sub returns f-other re-rounded onto the grid.
func (f Float) Sub(other Float) Float {
	return Float(quantize(float64(f) - float64(other)))
}

// Mul returns f*other re-rounded onto the grid.
func (f Float) Mul(other Float) Float {
	return Float(quantize(float64(f) * float64(other)))
}

// Div returns f/other re-rounded onto the grid.
// Division by zero yields a signed infinity, as in native floats.
func (f Float) Div(other Float) Float {
	return Float(quantize(float64(f) / float64(other)))
}

// Sqrt returns the square root of f re-rounded onto the grid.
// For negative f the native NaN collapses to an infinity.
func (f Float) Sqrt() Float {
	return Float(quantize(math.Sqrt(float64(f))))
}

// FromFloat64s quantizes a whole slice.
func FromFloat64s(ds []float64) []Float {
	fs := make([]Float, len(ds))
	for i, d := range ds {
		fs[i] = FromFloat64(d)
	}
	return fs
}

// Float64s converts a slice of Floats back to native doubles.
func Float64s(fs []Float) []float64 {
	ds := make([]float64, len(fs))
	for i, f := range fs {
		ds[i] = float64(f)
	}
	return ds
}

// quantize snaps an arbitrary float64 onto the hub grid. Every
// arithmetic result funnels through here: operations compute in native
// double precision, and this truncation is the format's only explicit
// rounding step.
func quantize(d float64) float64 {
	if sp, ok := handleSpecials(d); ok {
		return sp
	}
	bits := math.Float64bits(d)
	bits &^= hubBit - 1
	bits |= hubBit
	return clamp(math.Float64frombits(bits))
}

// handleSpecials implements the shared special-value policy: zeros,
// infinities and exact ±1 pass through, NaN collapses to an infinity
// with the NaN's sign bit, and nonzero magnitudes below the
// representable range flush to a signed zero.
func handleSpecials(d float64) (float64, bool) {
	if d == 0 || d == 1 || d == -1 || math.IsInf(d, 0) {
		return d, true
	}
	if math.IsNaN(d) {
		return math.Copysign(math.Inf(1), d), true
	}
	if math.Abs(d) < lowestVal {
		return math.Copysign(0, d), true
	}
	return 0, false
}

// floatToHub injects the hub bit into a double obtained from an exact
// float32 expansion: the low shift bits are already zero, so a single OR
// lands the value on the grid. Values that did not round to a normal
// float32 are returned as is, the grid has no subnormal region.
func floatToHub(d float64) float64 {
	f := float32(d)
	if f == 0 || math32.IsInf(f, 0) || math32.Abs(f) < smallestNormal32 {
		return d
	}
	return math.Float64frombits(math.Float64bits(d) | hubBit)
}

// clamp saturates magnitudes beyond the grid maximum to a signed
// infinity. The snap in quantize can land a near-boundary result one
// grid step above Max, so clamping runs after it.
func clamp(d float64) float64 {
	if math.Abs(d) > maxVal {
		return math.Copysign(math.Inf(1), d)
	}
	return d
}

// onGrid reports whether the low shift fraction bits match the hub
// pattern exactly: the hub bit set and nothing below it.
func onGrid(bits uint64) bool {
	return bits&gridMask == hubBit
}
