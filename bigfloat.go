// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

// bigFloatLimbCap bounds the number of 64-bit limbs a bigFloat may
// grow to, a deliberate cap on otherwise-unbounded allocation: inputs
// of any reasonable length stay far below it, and inputs engineered to
// exceed it (e.g. "10^10^6") are treated as beyond the cap rather than
// allocating without bound.
const bigFloatLimbCap = 1200

// bigFloat is an arbitrary-precision non-negative integer: a
// little-endian sequence of 64-bit limbs together with an independent
// binary exponent, such that the represented value is limbs (as an
// unsigned integer) times 2^exp. It exists only to break ties the
// moderate path cannot resolve (C3).
type bigFloat struct {
	limbs []limb
	exp   int
}

// bigFloatFromDigits builds the exact integer value of a digit run
// (most-significant digit first) at the given radix.
func bigFloatFromDigits(digits []uint8, radix uint8) (*bigFloat, error) {
	z := []limb{0}
	r := limb(radix)
	for _, d := range digits {
		carry := mulAddVWW(z, z, r, limb(d))
		if carry != 0 {
			z = append(z, carry)
			if len(z) > bigFloatLimbCap {
				return nil, ErrArenaExhausted
			}
		}
	}
	return &bigFloat{limbs: normLen(z), exp: 0}, nil
}

// bigFloatFromUint64 builds a bigFloat directly from a native integer,
// scaled by 2^exp.
func bigFloatFromUint64(v uint64, exp int) *bigFloat {
	if v == 0 {
		return &bigFloat{limbs: nil, exp: exp}
	}
	return &bigFloat{limbs: []limb{v}, exp: exp}
}

// isZero reports whether the represented value is zero.
func (b *bigFloat) isZero() bool {
	return len(b.limbs) == 0
}

// clone returns an independent copy.
func (b *bigFloat) clone() *bigFloat {
	limbs := make([]limb, len(b.limbs))
	copy(limbs, b.limbs)
	return &bigFloat{limbs: limbs, exp: b.exp}
}

// mulSmall multiplies the magnitude by a single-limb factor in place,
// growing the limb slice as needed.
func (b *bigFloat) mulSmall(factor limb) error {
	if b.isZero() || factor == 0 {
		b.limbs = nil
		return nil
	}
	z := make([]limb, len(b.limbs))
	carry := mulAddVWW(z, b.limbs, factor, 0)
	if carry != 0 {
		z = append(z, carry)
	}
	if len(z) > bigFloatLimbCap {
		return ErrArenaExhausted
	}
	b.limbs = normLen(z)
	return nil
}

// mulPowRadix multiplies the magnitude by radix^n (n >= 0) exactly,
// processing the exponent in chunks of the largest power of radix that
// fits in one limb (up to 19 digits), so the number of mulSmall calls
// is proportional to n divided by that chunk length rather than n.
func (b *bigFloat) mulPowRadix(radix uint8, n int) error {
	if n < 0 {
		panic("lexfloat: mulPowRadix requires n >= 0")
	}
	if b.isZero() || n == 0 {
		return nil
	}
	r := limb(radix)
	// Largest power of r that still fits in a single limb without
	// overflow, batched to cut down on per-digit multiply calls.
	chunk, chunkLen := r, 1
	for chunkLen < 19 {
		next := chunk * r
		if next/r != chunk { // would overflow a uint64
			break
		}
		chunk = next
		chunkLen++
	}
	for n > 0 {
		step := chunkLen
		factor := chunk
		if step > n {
			step = n
			factor = 1
			for i := 0; i < step; i++ {
				factor *= r
			}
		}
		if err := b.mulSmall(factor); err != nil {
			return err
		}
		n -= step
	}
	return nil
}

// shiftLeftBits shifts the magnitude left by n bits exactly (adjusting
// exp would also work, but callers that need the bits physically
// shifted — e.g. to align two bigFloats to a common exponent before
// comparing — use this instead).
func (b *bigFloat) shiftLeftBits(n int) {
	if b.isZero() || n == 0 {
		return
	}
	limbShift := n / 64
	bitShift := uint(n % 64)
	z := make([]limb, len(b.limbs)+limbShift+1)
	if bitShift == 0 {
		copy(z[limbShift:], b.limbs)
	} else {
		carry := shlVU(z[limbShift:limbShift+len(b.limbs)], b.limbs, bitShift)
		z[limbShift+len(b.limbs)] = carry
	}
	b.limbs = normLen(z)
}

// align grows a copy of the smaller-exponent operand so both represent
// their value at the same exponent, for add/sub/compare.
func align(a, b *bigFloat) (*bigFloat, *bigFloat) {
	aa, bb := a.clone(), b.clone()
	if aa.exp < bb.exp {
		bb.shiftLeftBits(bb.exp - aa.exp)
		bb.exp = aa.exp
	} else if bb.exp < aa.exp {
		aa.shiftLeftBits(aa.exp - bb.exp)
		aa.exp = bb.exp
	}
	return aa, bb
}

// addBigFloat returns a+b as a new bigFloat. Used only by
// formatDragon4's margin bookkeeping, which serves radix 10 (through
// dragonboxFormat and grisuFormat's fallback) and every radix that is
// not a power of two.
func addBigFloat(a, b *bigFloat) *bigFloat {
	aa, bb := align(a, b)
	n := len(aa.limbs)
	if len(bb.limbs) > n {
		n = len(bb.limbs)
	}
	xa := make([]limb, n)
	copy(xa, aa.limbs)
	xb := make([]limb, n)
	copy(xb, bb.limbs)
	z := make([]limb, n+1)
	z[n] = addVV(z[:n], xa, xb)
	return &bigFloat{limbs: normLen(z), exp: aa.exp}
}

// subBigFloat returns a-b as a new bigFloat. The caller must ensure
// a >= b; this is only used where that is true by construction.
func subBigFloat(a, b *bigFloat) *bigFloat {
	aa, bb := align(a, b)
	n := len(aa.limbs)
	xa := make([]limb, n)
	copy(xa, aa.limbs)
	xb := make([]limb, n)
	copy(xb, bb.limbs)
	z := make([]limb, n)
	subVV(z, xa, xb)
	return &bigFloat{limbs: normLen(z), exp: aa.exp}
}

// cmpBigFloat compares a and b as exact values, accounting for
// differing binary exponents by conceptually shifting the
// smaller-exponent operand's bits up to match, without mutating
// either receiver.
func cmpBigFloat(a, b *bigFloat) int {
	if a.isZero() && b.isZero() {
		return 0
	}
	if a.isZero() {
		return -1
	}
	if b.isZero() {
		return 1
	}

	aa, bb := a.clone(), b.clone()
	if aa.exp < bb.exp {
		bb.shiftLeftBits(bb.exp - aa.exp)
		bb.exp = aa.exp
	} else if bb.exp < aa.exp {
		aa.shiftLeftBits(aa.exp - bb.exp)
		aa.exp = bb.exp
	}

	if len(aa.limbs) != len(bb.limbs) {
		if len(aa.limbs) < len(bb.limbs) {
			return -1
		}
		return 1
	}
	return cmpVV(aa.limbs, bb.limbs)
}
