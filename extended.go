// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

import "math/bits"

// extendedFloat is an 80-bit-equivalent extended-precision float: a
// pair (m, e) representing m * 2^e. m is never zero except to denote
// the value zero itself; a normalized extendedFloat has its top bit
// set.
type extendedFloat struct {
	m uint64
	e int32
}

// normalize left-shifts m until its top bit is set, decrementing e to
// compensate (a zero mantissa cannot be normalized and is returned
// unchanged).
func (f extendedFloat) normalize() extendedFloat {
	if f.m == 0 {
		return f
	}
	shift := bits.LeadingZeros64(f.m)
	return extendedFloat{m: f.m << uint(shift), e: f.e - int32(shift)}
}

// mul multiplies two normalized extendedFloats, returning a normalized
// result. It uses the full 128-bit product and rounds the discarded
// low 64 bits up if their top bit is set, introducing at most 1 ulp of
// the 64-bit mantissa.
func (a extendedFloat) mul(b extendedFloat) extendedFloat {
	hi, lo := bits.Mul64(a.m, b.m)
	// Round the 128-bit product to the nearest 64-bit mantissa.
	if lo&(1<<63) != 0 {
		var carry uint64
		hi, carry = bits.Add64(hi, 1, 0)
		_ = carry
	}
	return extendedFloat{m: hi, e: a.e + b.e + 64}.normalize()
}

// shiftRight splits f into the value shifted right by n bits (0 <= n
// <= 64) and the n low bits that shift discarded, exactly, rather than
// collapsing them into a single sticky bit: a caller that needs to
// measure how close the discarded remainder sits to a rounding
// boundary (moderatePath's round/sticky step) needs the bits
// themselves, not just whether any of them were set. It does not
// renormalize, and e is adjusted on the shifted half only.
func (f extendedFloat) shiftRight(n uint) (shifted extendedFloat, discarded uint64) {
	if n == 0 {
		return f, 0
	}
	if n >= 64 {
		return extendedFloat{m: 0, e: f.e + int32(n)}, f.m
	}
	mask := uint64(1)<<n - 1
	return extendedFloat{m: f.m >> n, e: f.e + int32(n)}, f.m & mask
}
