// Copyright 2025 Aleksandr Demakin. All rights reserved.

package hubfloat

import (
	"fmt"
	"math"

	"github.com/avdva/hubfloat/internal/floatbits"
)

// BitFields is an on-demand decomposition of a Float into the raw
// float64 fields and the derived compact-format fields.
// Zero, ±1 and infinity report their reserved compact patterns
// literally instead of deriving them arithmetically.
type BitFields struct {
	Sign              uint8
	CustomExp         uint32 // compact exponent field
	Fraction          uint64 // raw float64 fraction field
	CustomFrac        uint32 // compact fraction, hub bit excluded
	CustomFracWithHub uint32 // compact fraction with the hub bit as its LSB
}

// FromBits decodes a packed compact encoding: the sign bit at position
// expBits+mantBits, an expBits-wide exponent field below it and a
// mantBits-wide fraction field at the bottom. The three reserved
// patterns decode ahead of the general path, so zero, ±1 and ±Inf come
// back exact. Everything else rebases the exponent into float64 space
// and rebuilds the native mantissa with the hub bit set.
func FromBits(u uint32) Float {
	sign := uint64(u) >> (totalBits - 1) & 1
	e := uint64(u) >> mantBits & expMask
	frac := uint64(u) & fracMask
	switch {
	case e == 0 && frac == 0:
		return Float(math.Float64frombits(sign << 63))
	case e == customBias && frac == 0:
		return Float(math.Float64frombits(sign<<63 | 1023<<52))
	case e == expMask && frac == fracMask:
		return Float(math.Float64frombits(sign<<63 | 0x7FF<<52))
	}
	return Float(math.Float64frombits(floatbits.Assemble(sign, e+biasDiff, frac<<shift|hubBit)))
}

// Bits returns the packed compact encoding of f.
// Note that Max shares the reserved infinity pattern: the compact
// format cannot tell them apart, see FromBits.
func (f Float) Bits() uint32 {
	return f.BitFields().pack()
}

// BitFields extracts the bit-field decomposition of f.
func (f Float) BitFields() BitFields {
	bits := math.Float64bits(float64(f))
	bf := BitFields{Sign: uint8(bits >> 63)}
	switch {
	case f == 0:
		return bf
	case f == 1 || f == -1:
		bf.CustomExp = customBias
		return bf
	case f.IsInf() || math.IsNaN(float64(f)):
		bf.CustomExp = expMask
		bf.CustomFrac = fracMask
		bf.CustomFracWithHub = 1<<(mantBits+1) - 1
		return bf
	}
	_, e, frac := floatbits.Split(bits)
	bf.CustomExp = uint32(e - biasDiff)
	bf.Fraction = frac
	bf.CustomFrac = uint32(frac >> shift & fracMask)
	bf.CustomFracWithHub = uint32(frac >> (shift - 1) & (1<<(mantBits+1) - 1))
	return bf
}

func (bf BitFields) pack() uint32 {
	return uint32(bf.Sign)<<(totalBits-1) | bf.CustomExp<<mantBits | bf.CustomFrac
}

// BinaryString renders f as sign|exponent|fraction, the fraction shown
// with the hub bit, e.g. 0|10000001|000000000000000000000001 for
// FromFloat64(2).
func (f Float) BinaryString() string {
	bf := f.BitFields()
	return fmt.Sprintf("%d|%0*b|%0*b", bf.Sign, expBits, bf.CustomExp, mantBits+1, bf.CustomFracWithHub)
}

// HexString packs f into 1+expBits+mantBits bits and renders them as
// zero-padded uppercase hex, e.g. 0x40800000 for FromFloat64(2).
func (f Float) HexString() string {
	return fmt.Sprintf("0x%0*X", (totalBits+3)/4, f.Bits())
}
