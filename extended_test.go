// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

import "testing"

// TestExtendedFloatNormalize checks that normalize sets the top bit
// and compensates the exponent.
func TestExtendedFloatNormalize(t *testing.T) {
	f := extendedFloat{m: 1, e: 0}.normalize()
	if f.m>>63 != 1 {
		t.Errorf("normalize did not set the top bit: m=%#x", f.m)
	}
	if f.e != -63 {
		t.Errorf("normalize exponent = %d, want -63", f.e)
	}
}

// TestExtendedFloatMulIdentity multiplies a normalized value with an
// even mantissa (so the multiply's internal rounding step is a no-op)
// by a normalized 1.0 and checks the mantissa is unchanged.
func TestExtendedFloatMulIdentity(t *testing.T) {
	one := extendedFloat{m: 1 << 63, e: -63} // exactly 1.0
	f := extendedFloat{m: 0x9000000000000000, e: 5}
	got := f.mul(one)
	if got.m != f.m || got.e != f.e {
		t.Errorf("mul by 1.0 = {%#x %d}, want {%#x %d}", got.m, got.e, f.m, f.e)
	}
}

// TestExtendedFloatMulKnownProduct checks 2.0 * 3.0 == 6.0 exactly.
func TestExtendedFloatMulKnownProduct(t *testing.T) {
	two := extendedFloat{m: 1 << 63, e: -62}             // 2.0
	three := extendedFloat{m: 0xC000000000000000, e: -62} // 3.0
	got := two.mul(three)
	want := extendedFloat{m: 0xC000000000000000, e: -61} // 6.0 normalized
	if got.m != want.m || got.e != want.e {
		t.Errorf("2.0*3.0 = {%#x %d}, want {%#x %d}", got.m, got.e, want.m, want.e)
	}
}

// TestExtendedFloatShiftRightSplitsDiscardedBits checks that the
// shifted value and the discarded low bits are reported separately and
// exactly, rather than collapsed into a sticky bit.
func TestExtendedFloatShiftRightSplitsDiscardedBits(t *testing.T) {
	f := extendedFloat{m: 0b1011, e: 0}
	shifted, discarded := f.shiftRight(2)
	if shifted.m != 0b10 {
		t.Errorf("shiftRight(2) of 0b1011 shifted = %#b, want 0b10", shifted.m)
	}
	if discarded != 0b11 {
		t.Errorf("shiftRight(2) of 0b1011 discarded = %#b, want 0b11", discarded)
	}
	if shifted.e != 2 {
		t.Errorf("shiftRight(2) exponent = %d, want 2", shifted.e)
	}

	f2 := extendedFloat{m: 0b1000, e: 0}
	shifted2, discarded2 := f2.shiftRight(2)
	if shifted2.m != 0b10 || discarded2 != 0 {
		t.Errorf("shiftRight(2) of 0b1000 = (%#b, %#b), want (0b10, 0)", shifted2.m, discarded2)
	}
}

// TestExtendedFloatShiftRightFullWidth checks the n>=64 edge: the
// entire mantissa is discarded and the shifted half is zero.
func TestExtendedFloatShiftRightFullWidth(t *testing.T) {
	f := extendedFloat{m: 0xFFFFFFFFFFFFFFFF, e: 3}
	shifted, discarded := f.shiftRight(64)
	if shifted.m != 0 {
		t.Errorf("shiftRight(64) shifted = %#x, want 0", shifted.m)
	}
	if discarded != 0xFFFFFFFFFFFFFFFF {
		t.Errorf("shiftRight(64) discarded = %#x, want all bits set", discarded)
	}
	if shifted.e != 67 {
		t.Errorf("shiftRight(64) exponent = %d, want 67", shifted.e)
	}
}
