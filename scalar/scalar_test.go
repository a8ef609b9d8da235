// Copyright 2025 Aleksandr Demakin. All rights reserved.

package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/hubfloat"
)

func assertNumber[T Number[T]](T) {}

// the kernels rely on these three implementations
func TestNumberImplementations(t *testing.T) {
	assertNumber(F64(0))
	assertNumber(F32(0))
	assertNumber(hubfloat.Float(0))
}

func TestF64(t *testing.T) {
	a := assert.New(t)
	x, y := F64(6), F64(4)
	a.Equal(F64(10), x.Add(y))
	a.Equal(F64(2), x.Sub(y))
	a.Equal(F64(24), x.Mul(y))
	a.Equal(F64(1.5), x.Div(y))
	a.Equal(F64(3), F64(9).Sqrt())
	a.Equal(6.0, x.Float64())
}

func TestF32(t *testing.T) {
	a := assert.New(t)
	x, y := F32(6), F32(4)
	a.Equal(F32(10), x.Add(y))
	a.Equal(F32(2), x.Sub(y))
	a.Equal(F32(24), x.Mul(y))
	a.Equal(F32(1.5), x.Div(y))
	a.Equal(F32(3), F32(9).Sqrt())
	a.Equal(6.0, x.Float64())
	// single-precision rounding is visible through the adapter
	a.NotEqual(0.1, F32(0.1).Float64())
}

func TestOf(t *testing.T) {
	a := assert.New(t)
	a.Equal(F64(1.5), Of[F64](1.5))
	a.Equal(F32(1.5), Of[F32](1.5))
	a.Equal(F32(float32(0.1)), Of[F32](0.1))
}
