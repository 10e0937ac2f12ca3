// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

// slowPath implements C3: the moderate path could not trust its
// rounding decision, so the exact value of the digit stream is
// compared, with arbitrary-precision integer arithmetic, against the
// single boundary that decision turned on. No division is ever
// performed: whichever side of the comparison would otherwise need the
// radix raised to a negative power is left alone, and the other side
// is scaled up by the same positive power instead, which preserves the
// comparison's result.
//
// br carries the moderate path's "round-down" candidate mantissa and
// its binary exponent; moderateEpsilonUlps is always far smaller than
// one down-candidate's distance to its neighbor (the shift discarded
// to reach it is at least 11 bits for binary64 and 40 for binary32),
// so that candidate is never itself in question — only the bit
// immediately below it is.
func slowPath[F Float](ds DigitStream, rounding RoundingKind, br moderateOutcome[F]) (F, error) {
	allDigits := make([]uint8, 0, ds.digitCount())
	allDigits = append(allDigits, ds.Integer...)
	allDigits = append(allDigits, ds.Fraction...)

	digitsInt, err := bigFloatFromDigits(allDigits, ds.Radix)
	if err != nil {
		return 0, err
	}

	fracScale := ds.Exponent - ds.fractionLen()
	resExp := br.unbiasedExp - 63 + br.shift

	// The boundary compared against depends on what the moderate path
	// could not resolve: the nearest-rounding modes need the midpoint
	// between the down-candidate and its successor, while
	// TowardPositive only needs to know whether the value is exactly
	// the down-candidate or strictly above it.
	var boundary *bigFloat
	if rounding == TowardPositive {
		boundary = bigFloatFromUint64(br.candMantissa, resExp)
	} else {
		boundary = bigFloatFromUint64(2*br.candMantissa+1, resExp-1)
	}

	var cmp int
	if fracScale >= 0 {
		v := digitsInt
		if err := v.mulPowRadix(ds.Radix, fracScale); err != nil {
			return 0, err
		}
		cmp = cmpBigFloat(v, boundary)
	} else {
		if err := boundary.mulPowRadix(ds.Radix, -fracScale); err != nil {
			return 0, err
		}
		cmp = cmpBigFloat(digitsInt, boundary)
	}

	if cmp == 0 && ds.Truncated {
		// A digit existed beyond what the tokenizer retained; since it
		// cannot have been all zeros and all zeros would not have set
		// Truncated, the true value is strictly above the boundary.
		cmp = 1
	}

	var roundUp bool
	switch rounding {
	case TowardZero, TowardNegative:
		roundUp = false
	case TowardPositive:
		roundUp = cmp > 0
	case NearestTiesAwayFromZero:
		roundUp = cmp >= 0
	default: // NearestTiesEven
		if cmp == 0 {
			roundUp = br.candMantissa&1 == 1
		} else {
			roundUp = cmp > 0
		}
	}

	bits := br.candMantissa
	if roundUp {
		bits++
	}
	return encodeFloat[F](bits, resExp), nil
}
