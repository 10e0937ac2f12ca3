// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

import (
	"math"
	"math/bits"
)

// floatInfo is the per-type capability set: mantissa bit width,
// exponent bias, exponent range and denormal-aware smallest positive
// value, looked up once per Float type parameter rather than
// hard-coded per algorithm.
type floatInfo struct {
	// MantissaBits is M: 23 for binary32, 52 for binary64 (excludes
	// the implicit leading bit).
	MantissaBits uint
	// ExponentBits is the width of the biased exponent field.
	ExponentBits uint
	// Bias is B, the exponent bias (127 for binary32, 1023 for binary64).
	Bias int
	// MinNormalExp is the smallest unbiased exponent of a normal value.
	MinNormalExp int
	// MaxExp is the largest unbiased exponent of a finite value.
	MaxExp int
	// MinSubnormalExp is the unbiased exponent such that the smallest
	// positive subnormal equals 2^MinSubnormalExp.
	MinSubnormalExp int
}

var float32Info = floatInfo{
	MantissaBits:    23,
	ExponentBits:    8,
	Bias:            127,
	MinNormalExp:    -126,
	MaxExp:          127,
	MinSubnormalExp: -126 - 23,
}

var float64Info = floatInfo{
	MantissaBits:    52,
	ExponentBits:    11,
	Bias:            1023,
	MinNormalExp:    -1022,
	MaxExp:          1023,
	MinSubnormalExp: -1022 - 52,
}

// infoFor returns the floatInfo for the concrete type instantiating F.
// A zero value of F is enough to discriminate float32 from float64
// without reflection, since the switch is on the interface-satisfying
// type itself via a type switch over `any(z)`.
func infoFor[F Float]() floatInfo {
	var z F
	switch any(z).(type) {
	case float32:
		return float32Info
	default:
		return float64Info
	}
}

// exactlyRepresentable reports whether the unsigned integer v can be
// represented in F without rounding: either it fits directly in the
// mantissa plus its implicit leading bit, or its low zero bits are
// numerous enough that the significant bits alone fit.
func exactlyRepresentable[F Float](v uint64) bool {
	if v == 0 {
		return true
	}
	info := infoFor[F]()
	bitLen := 64 - bits.LeadingZeros64(v)
	if bitLen <= int(info.MantissaBits)+1 {
		return true
	}
	trailing := bits.TrailingZeros64(v)
	return bitLen-trailing <= int(info.MantissaBits)+1
}

// maxSignificantDigits returns the fast-path digit-count bound for
// radix r: the largest count of base-r digits guaranteed to fit
// exactly in the type's mantissa. For binary64 at radix 10 this is 15;
// for binary32 at radix 10 this is 7.
func maxSignificantDigits[F Float](radix uint8) int {
	r := uint64(radix)
	n := 0
	acc := uint64(1)
	for {
		next := acc * r
		if acc != 0 && next/r != acc {
			break // would overflow
		}
		if next == 0 || !exactlyRepresentable[F](next-1) {
			break
		}
		acc = next
		n++
	}
	return n
}

// maxExactRadixPower returns the largest n such that radix^n is exact
// in F: the "safe interval" requires both the significand and r^|e| to
// be exactly representable. Unlike maxSignificantDigits, which bounds
// radix^n - 1 (the largest n-digit significand), this bounds radix^n
// itself, since it is used to validate the scaling power rather than
// the significand.
func maxExactRadixPower[F Float](radix uint8) int {
	r := uint64(radix)
	n := 0
	acc := uint64(1)
	for {
		next := acc * r
		if acc != 0 && next/r != acc {
			break
		}
		if !exactlyRepresentable[F](next) {
			break
		}
		acc = next
		n++
	}
	return n
}

// asUint64 converts a Float value's bit pattern to a uint64,
// zero-extending for float32.
func asUint64[F Float](f F) uint64 {
	switch v := any(f).(type) {
	case float32:
		return uint64(math.Float32bits(v))
	default:
		return math.Float64bits(any(f).(float64))
	}
}

// decompose extracts a finite, non-zero, non-negative F's raw mantissa
// (including the implicit leading bit for normals) and binary exponent
// such that value == f * 2^e exactly. It is the inverse of encodeFloat
// and is used by the formatter (shortest.go/grisu.go/radixformat.go),
// which needs the exact binary value rather than a rounded conversion.
func decompose[F Float](value F) (f uint64, e int) {
	info := infoFor[F]()
	raw := asUint64(value)
	expField := (raw >> info.MantissaBits) & (1<<info.ExponentBits - 1)
	mantField := raw & (1<<info.MantissaBits - 1)
	if expField == 0 {
		return mantField, info.MinSubnormalExp
	}
	return mantField | (1 << info.MantissaBits), int(expField) - info.Bias - int(info.MantissaBits)
}

// fromBits reconstructs an F from a binary64-width bit pattern
// (callers pass a binary32 pattern zero-extended for the float32 case).
func fromBits[F Float](bits uint64) F {
	var z F
	switch any(z).(type) {
	case float32:
		return F(math.Float32frombits(uint32(bits)))
	default:
		return F(math.Float64frombits(bits))
	}
}
