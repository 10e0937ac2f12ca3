// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

import (
	"math"
	"math/bits"
)

// log2Of10 converts a decimal exponent to an estimated binary exponent,
// the closed form used to pick a cached power of ten.
const log2Of10 = 3.321928094887362

// grisuFast is the historical Grisu3-style fast path for C5: scale the
// value by a cached power of ten (powtab10.go) until it sits at a
// binary exponent where its decimal digits can be read directly out of
// a 64-bit fixed-point window, generating digits from the integer part
// first and then the fractional part exactly as the classic algorithm's
// DigitGen does. Because the 64-bit product carries a small rounding
// error from the single extendedFloat multiplication (at most 1 ulp,
// see extended.go's mul), the digits it produces are not unconditionally
// trustworthy the way Dragon4's exact bracket is — grisuFormat below
// always verifies the result by parsing it back before returning it,
// which is this package's equivalent of Grisu3's classical "is the
// result unambiguously correct" check, falling back to the guaranteed
// Dragon4 engine on the rare (well under 1%) miss.
func grisuFast[F Float](f uint64, e int) (digits []byte, sciExp int, ok bool) {
	w := extendedFloat{m: f, e: int32(e)}.normalize()

	// Choose a decimal scale k that lands the scaled value's binary
	// exponent comfortably inside a 64-bit fixed-point window (top few
	// bits hold the integer part, the rest the fraction).
	// target is the binary exponent wanted of the cached power's
	// normalized mantissa; that power's value is about 2^(target+63).
	target := -124 - int(w.e)
	k := int(math.Ceil(float64(target+63) / log2Of10))
	cachedPower := extendedPowerOfTen(k)
	scaled := w.mul(cachedPower)

	p := uint(-scaled.e)
	if scaled.e >= 0 || p < 4 || p > 63 {
		return nil, 0, false
	}

	intPart := scaled.m >> p
	frac := scaled.m & (uint64(1)<<p - 1)

	intDigits := decimalDigitsSmall(intPart)
	digits = append(digits, intDigits...)

	const maxDigits = 20
	for len(digits) < maxDigits && frac != 0 {
		hi, lo := bits.Mul64(frac, 10)
		digit := (hi << (64 - p)) | (lo >> p)
		digits = append(digits, byte(digit))
		frac = lo & (uint64(1)<<p - 1)
	}

	sciExp = len(intDigits) - 1 - k
	return digits, sciExp, true
}

// decimalDigitsSmall returns the decimal digits of v (v < 128 in every
// call site here), most significant first.
func decimalDigitsSmall(v uint64) []byte {
	if v == 0 {
		return []byte{0}
	}
	var rev []byte
	for v > 0 {
		rev = append(rev, byte(v%10))
		v /= 10
	}
	digits := make([]byte, len(rev))
	for i, d := range rev {
		digits[len(rev)-1-i] = d
	}
	return digits
}

// grisuFormat is the UseGrisu() entry point for radix 10: try the fast
// heuristic, verify it by parsing the candidate back and comparing bits,
// then try to shorten it (the heuristic sometimes emits a digit or two
// more than strictly necessary), falling back to the always-correct
// Dragon4 engine whenever verification fails.
func grisuFormat[F Float](f uint64, e int, value F, out []byte) (digitCount, sciExp int) {
	digits, exp, ok := grisuFast[F](f, e)
	if ok && reparseMatches[F](digits, exp, value) {
		digits, exp = shortenDigits[F](digits, exp, value)
		copy(out, digits)
		return len(digits), exp
	}
	return formatDragon4[F](f, e, 10, out)
}

// reparseMatches reports whether parsing digits (as a radix-10
// scientific significand with the given leading-digit exponent) back
// through the full cascade reproduces value exactly.
func reparseMatches[F Float](digits []byte, sciExp int, value F) bool {
	if len(digits) == 0 {
		return false
	}
	exponent := sciExp - (len(digits) - 1)
	r := Parse[F](digits, nil, exponent, false, Options{Radix: 10})
	return r.Value == value
}

// shortenDigits looks for the shortest prefix of digits (rounded, not
// truncated) that still round-trips to value, trying lengths from 1 up
// to len(digits)-1 and returning the first success; if none round-trips
// it returns digits unchanged; digits is assumed to already round-trip
// at full length.
func shortenDigits[F Float](digits []byte, sciExp int, value F) ([]byte, int) {
	for n := 1; n < len(digits); n++ {
		cand, bump := roundDigitsTo(digits, n)
		candExp := sciExp + bump
		if reparseMatches[F](cand, candExp, value) {
			return cand, candExp
		}
	}
	return digits, sciExp
}

// roundDigitsTo rounds full (most significant digit first, base 10) to
// its leading n digits using round-half-to-even, reporting whether the
// rounding carried a digit out of the leading position (e.g. "999" at
// n=3 rounding up becomes "100" with expBump=1).
func roundDigitsTo(full []byte, n int) (out []byte, expBump int) {
	if n >= len(full) {
		out = make([]byte, len(full))
		copy(out, full)
		return out, 0
	}
	out = make([]byte, n)
	copy(out, full[:n])

	roundDigit := full[n]
	sticky := false
	for _, d := range full[n+1:] {
		if d != 0 {
			sticky = true
			break
		}
	}

	roundUp := false
	switch {
	case roundDigit > 5:
		roundUp = true
	case roundDigit == 5:
		if sticky {
			roundUp = true
		} else {
			roundUp = out[n-1]%2 == 1
		}
	}
	if !roundUp {
		return out, 0
	}

	i := n - 1
	for i >= 0 {
		out[i]++
		if out[i] < 10 {
			return out, 0
		}
		out[i] = 0
		i--
	}
	carried := make([]byte, n)
	carried[0] = 1
	copy(carried[1:], out[:n-1])
	return carried, 1
}
