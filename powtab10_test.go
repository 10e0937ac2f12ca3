// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

import "testing"

// TestGrisuPowersOfTenNormalized checks that every cached entry has
// its top mantissa bit set, as the table's own doc comment requires.
func TestGrisuPowersOfTenNormalized(t *testing.T) {
	for i, p := range grisuPowersOfTen {
		if p.m>>63 != 1 {
			t.Errorf("grisuPowersOfTen[%d] (10^%d) is not normalized: m=%#x", i, grisuPowersOfTenMinDecExp+i*grisuPowersOfTenStep, p.m)
		}
	}
}

// TestLookupPowerOfTenResidual checks that the residual lands the
// requested exponent exactly on an entry plus a small power.
func TestLookupPowerOfTenResidual(t *testing.T) {
	for _, want := range []int{-348, -345, 0, 3, 340, 347} {
		_, residual := lookupPowerOfTen(want)
		if residual < 0 || residual > 7 {
			t.Errorf("lookupPowerOfTen(%d) residual = %d, want in [0,7]", want, residual)
		}
	}
}

// TestExtendedPowerOfTenAgreesWithFloat64 spot-checks a handful of
// small exponents against math-free decimal expectations.
func TestExtendedPowerOfTenAgreesWithFloat64(t *testing.T) {
	cases := []struct {
		exp  int
		want float64
	}{
		{0, 1},
		{1, 10},
		{4, 10000},
		{-4, 0.0001},
	}
	for _, c := range cases {
		got := extendedPowerOfTen(c.exp)
		f := float64(got.m) * pow2Float(int(got.e))
		diff := f - c.want
		if diff < 0 {
			diff = -diff
		}
		if diff > c.want*1e-15 {
			t.Errorf("extendedPowerOfTen(%d) ~= %v, want %v", c.exp, f, c.want)
		}
	}
}
