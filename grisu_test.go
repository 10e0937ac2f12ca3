// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

import "testing"

// TestGrisuFastKnownValue checks a plain value against hand-known
// decimal digits.
func TestGrisuFastKnownValue(t *testing.T) {
	f, e := decompose[float64](1.5)
	digits, sciExp, ok := grisuFast[float64](f, e)
	if !ok {
		t.Fatalf("grisuFast(1.5) not ok")
	}
	if sciExp != 0 {
		t.Errorf("grisuFast(1.5) sciExp = %d, want 0", sciExp)
	}
	if len(digits) == 0 || digits[0] != 1 {
		t.Errorf("grisuFast(1.5) leading digit = %v, want starting with 1", digits)
	}
}

// TestReparseMatches checks both the matching and non-matching cases.
func TestReparseMatches(t *testing.T) {
	if !reparseMatches[float64]([]byte{1, 2, 3}, 2, 123) {
		t.Errorf("reparseMatches([1,2,3], sciExp=2, 123) = false, want true")
	}
	if reparseMatches[float64]([]byte{1, 2, 4}, 2, 123) {
		t.Errorf("reparseMatches([1,2,4], sciExp=2, 123) = true, want false")
	}
	if reparseMatches[float64](nil, 0, 123) {
		t.Errorf("reparseMatches(nil digits) = true, want false")
	}
}

// TestRoundDigitsToNoCarry checks plain truncate-and-round with no
// carry out of the leading digit.
func TestRoundDigitsToNoCarry(t *testing.T) {
	out, bump := roundDigitsTo([]byte{1, 2, 3, 6}, 3)
	if bump != 0 {
		t.Errorf("roundDigitsTo([1,2,3,6], 3) bump = %d, want 0", bump)
	}
	want := []byte{1, 2, 4}
	if !equalBytes(out, want) {
		t.Errorf("roundDigitsTo([1,2,3,6], 3) = %v, want %v", out, want)
	}
}

// TestRoundDigitsToCarriesOut checks the "999" -> "100" carry-out case,
// which must report expBump=1.
func TestRoundDigitsToCarriesOut(t *testing.T) {
	out, bump := roundDigitsTo([]byte{9, 9, 9, 6}, 3)
	if bump != 1 {
		t.Errorf("roundDigitsTo([9,9,9,6], 3) bump = %d, want 1", bump)
	}
	want := []byte{1, 0, 0}
	if !equalBytes(out, want) {
		t.Errorf("roundDigitsTo([9,9,9,6], 3) = %v, want %v", out, want)
	}
}

// TestRoundDigitsToTieToEven checks the exact round-half case breaks
// toward the even last retained digit when nothing beyond the tie digit
// is non-zero.
func TestRoundDigitsToTieToEven(t *testing.T) {
	out, bump := roundDigitsTo([]byte{1, 2, 5}, 2)
	if bump != 0 || !equalBytes(out, []byte{1, 2}) {
		t.Errorf("roundDigitsTo([1,2,5], 2) = (%v, %d), want ([1 2], 0) since 2 is even", out, bump)
	}
	out, bump = roundDigitsTo([]byte{1, 3, 5}, 2)
	if bump != 0 || !equalBytes(out, []byte{1, 4}) {
		t.Errorf("roundDigitsTo([1,3,5], 2) = (%v, %d), want ([1 4], 0) since 3 rounds up to the even 4", out, bump)
	}
}

// TestShortenDigitsFindsShorterPrefix checks that an over-long but
// round-trippable digit run shortens to the value's actual shortest
// representation.
func TestShortenDigitsFindsShorterPrefix(t *testing.T) {
	value := float64(1.5)
	full := []byte{1, 5, 0, 0, 0, 0}
	shortened, exp := shortenDigits[float64](full, 0, value)
	if len(shortened) != 2 || !equalBytes(shortened, []byte{1, 5}) || exp != 0 {
		t.Errorf("shortenDigits(%v over-long) = (%v, %d), want ([1 5], 0)", full, shortened, exp)
	}
}

// TestGrisuFormatRoundTrips checks grisuFormat's output reparses to the
// original value across a spread of magnitudes, including values near
// the grisuFast window's own boundaries.
func TestGrisuFormatRoundTrips(t *testing.T) {
	values := []float64{1, 1.5, 100, 0.001, 123456789.125, 1e-300, 1e300, 5e-324, 1.7976931348623157e+308}
	for _, v := range values {
		f, e := decompose[float64](v)
		out := make([]byte, DecimalBufferSize)
		n, sciExp := grisuFormat[float64](f, e, v, out)
		digits := append([]uint8(nil), out[:n]...)
		exponent := sciExp - (n - 1)
		r := Parse[float64](digits, nil, exponent, false, NewOptions())
		if r.Value != v {
			t.Errorf("grisuFormat round trip for %v: got %v (digits %v, sciExp %d)", v, r.Value, digits, sciExp)
		}
	}
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
