package algo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/hubfloat"
	"github.com/avdva/hubfloat/scalar"
)

var hubConv = func(d float64) hubfloat.Float { return hubfloat.FromFloat64(d) }

func TestNewFFT(t *testing.T) {
	a := assert.New(t)
	for _, n := range []int{0, -1, 3, 6, 12} {
		_, err := NewFFT(n, scalar.Of[scalar.F64])
		a.Error(err, "n=%d", n)
	}
	p, err := NewFFT(8, scalar.Of[scalar.F64])
	a.NoError(err)
	a.Equal(8, p.Size())
}

func TestTransformLength(t *testing.T) {
	a := assert.New(t)
	p, err := NewFFT(4, scalar.Of[scalar.F64])
	require.NoError(t, err)
	a.Error(p.Transform(make([]scalar.F64, 3), make([]scalar.F64, 4)))
	a.Error(p.Transform(make([]scalar.F64, 4), make([]scalar.F64, 2)))
}

// The transform of a unit impulse is flat: all ones. Every butterfly
// touches only exact grid points, so this holds bit-exactly for the
// reduced-precision scalar too.
func TestTransformImpulse(t *testing.T) {
	a := assert.New(t)

	p, err := NewFFT(4, scalar.Of[scalar.F64])
	require.NoError(t, err)
	re := []scalar.F64{1, 0, 0, 0}
	im := make([]scalar.F64, 4)
	a.NoError(p.Transform(re, im))
	a.Equal([]scalar.F64{1, 1, 1, 1}, re)
	a.Equal(make([]scalar.F64, 4), im)

	hp, err := NewFFT(4, hubConv)
	require.NoError(t, err)
	hre := []hubfloat.Float{hubfloat.One, hubfloat.Zero, hubfloat.Zero, hubfloat.Zero}
	him := make([]hubfloat.Float, 4)
	a.NoError(hp.Transform(hre, him))
	for i := 0; i < 4; i++ {
		a.Equal(1.0, hre[i].Float64(), "i=%d", i)
		a.Equal(0.0, him[i].Float64(), "i=%d", i)
	}
}

func TestTransformHubVsFloat64(t *testing.T) {
	a := assert.New(t)
	const n = 8
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2*math.Pi*float64(i)/n) + 0.5*math.Cos(4*math.Pi*float64(i)/n)
	}

	re := make([]scalar.F64, n)
	im := make([]scalar.F64, n)
	for i, v := range signal {
		re[i] = scalar.F64(v)
	}
	p, err := NewFFT(n, scalar.Of[scalar.F64])
	require.NoError(t, err)
	require.NoError(t, p.Transform(re, im))

	hre := hubfloat.FromFloat64s(signal)
	him := make([]hubfloat.Float, n)
	hp, err := NewFFT(n, hubConv)
	require.NoError(t, err)
	require.NoError(t, hp.Transform(hre, him))

	for i := 0; i < n; i++ {
		a.InDelta(re[i].Float64(), hre[i].Float64(), 1e-4, "re[%d]", i)
		a.InDelta(im[i].Float64(), him[i].Float64(), 1e-4, "im[%d]", i)
	}
}
