// Copyright 2025 Aleksandr Demakin. All rights reserved.

// Package scalar defines the numeric contract shared by the generic
// kernels in this module, together with thin adapters that let the
// native float types satisfy it.
package scalar

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Number is a scalar with method-based arithmetic. The zero value of an
// implementation must be its additive identity. hubfloat.Float, F32 and
// F64 all satisfy Number of themselves, so a kernel written against the
// interface runs on native and reduced-precision scalars alike.
type Number[T any] interface {
	comparable
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Float64() float64
}

// Conv builds a T from a native double. Kernels that need numeric
// constants (matrix fills, FFT twiddles) take one explicitly, since an
// interface cannot express a constructor.
type Conv[T any] func(float64) T

// Of converts a double into any builtin-float-backed scalar. It is the
// Conv for F32 and F64; a reduced-precision type supplies its own
// quantizing constructor instead.
func Of[T constraints.Float](d float64) T {
	return T(d)
}

// F64 adapts float64 to Number.
type F64 float64

func (a F64) Add(b F64) F64 { return a + b }
func (a F64) Sub(b F64) F64 { return a - b }
func (a F64) Mul(b F64) F64 { return a * b }
func (a F64) Div(b F64) F64 { return a / b }

// Sqrt returns the square root of a.
func (a F64) Sqrt() F64 { return F64(math.Sqrt(float64(a))) }

// Float64 returns the value as a native double.
func (a F64) Float64() float64 { return float64(a) }

// F32 adapts float32 to Number. Arithmetic rounds to single precision
// at every step, which makes it the natural baseline to compare the hub
// format against.
type F32 float32

func (a F32) Add(b F32) F32 { return a + b }
func (a F32) Sub(b F32) F32 { return a - b }
func (a F32) Mul(b F32) F32 { return a * b }
func (a F32) Div(b F32) F32 { return a / b }

// Sqrt returns the square root of a, computed in single precision.
func (a F32) Sqrt() F32 { return F32(math32.Sqrt(float32(a))) }

// Float64 returns the value as a native double.
func (a F32) Float64() float64 { return float64(a) }
