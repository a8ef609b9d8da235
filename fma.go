// Copyright 2025 Aleksandr Demakin. All rights reserved.

package hubfloat

import (
	"math"

	"github.com/avdva/hubfloat/internal/floatbits"
)

// FMA computes a*b+c with a single hardware fused multiply-add and one
// final rounding onto the grid.
//
// Computing in float64 and then truncating is a double rounding: it can
// disagree with a native reduced-precision FMA when the float64 result
// lands exactly on a grid boundary. For the 8/23 configuration a
// correction pass detects that case and compensates. It is a
// best-effort approximation of single-rounding semantics, not a proven
// replacement.
func FMA(a, b, c Float) Float {
	r := math.FMA(float64(a), float64(b), float64(c))
	if expBits == 8 && mantBits == 23 {
		r = fixDoubleRounding(float64(a), float64(b), float64(c), r)
	}
	return Float(quantize(r))
}

// fixDoubleRounding nudges r one float64 ulp toward zero when the exact
// sum provably sits below the boundary r landed on. The hazard needs
// two ingredients: r has no fraction bits below the hub position, and
// the addend exponents differ, so low bits of the smaller operand were
// shifted out of the 53-bit window before the grid truncation could see
// them.
func fixDoubleRounding(a, b, c, r float64) float64 {
	if r == 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return r
	}
	bits := math.Float64bits(r)
	if bits&(hubBit-1) != 0 {
		return r // not on a boundary, the truncation is exact
	}
	pe := floatbits.ExpField(a * b)
	ce := floatbits.ExpField(c)
	small, diff := c, int(pe)-int(ce)
	if diff < 0 {
		small, diff = a*b, -diff
	}
	if diff == 0 || diff > 52 {
		return r
	}
	lost := math.Float64bits(small) & (1<<uint(diff) - 1)
	if lost == 0 {
		return r
	}
	if math.Signbit(small) != math.Signbit(r) {
		// the discarded tail pulls the exact sum toward zero
		return math.Float64frombits(bits - 1)
	}
	return r
}
