// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

import "math/bits"

// moderateEpsilonUlps bounds the accumulated error of the moderate
// path's extended-precision pipeline, in ulps of the 64-bit mantissa: a
// full pipeline of at most 2 multiplications yields at most 4 ulps of
// headroom. A rounding decision whose margin from the relevant
// boundary is within this many units is not trusted and is escalated
// to the slow path (C3).
const moderateEpsilonUlps = 4

// moderateOutcome is the result of attempting the moderate path. When
// ambiguous is set, candMantissa/unbiasedExp/shift describe the
// "round-down" candidate and the bit position of the rounding decision,
// which is all the slow path needs to build the exact bracket to
// compare the input against (it does not reuse any of the moderate
// path's approximate arithmetic beyond this bracket).
type moderateOutcome[F Float] struct {
	value        F
	ambiguous    bool
	overflow     bool
	underflow    bool
	candMantissa uint64
	unbiasedExp  int
	shift        int
}

// moderatePath implements C2: builds a 64-bit extended-precision
// significand from the digit stream, multiplies it by a cached (or
// computed) extended-precision power of the radix, and rounds into F's
// mantissa width under the given rounding kind, applied to the
// magnitude: the sign of the value itself is handled entirely by the
// caller, and TowardNegative rounds the magnitude down like TowardZero.
func moderatePath[F Float](ds DigitStream, rounding RoundingKind) moderateOutcome[F] {
	info := infoFor[F]()

	m, digitsUsed, usedTruncated := ds.mantissa64()
	if m == 0 {
		return moderateOutcome[F]{value: 0}
	}
	truncated := usedTruncated || ds.Truncated

	dropped := ds.digitCount() - digitsUsed
	scaleExp := (ds.Exponent - ds.fractionLen()) + dropped

	if ds.Radix == 10 {
		// Outside the cached table's range the magnitude (m < 10^20) is
		// already far past F's largest finite value or far below half its
		// smallest subnormal, so the table is never consulted.
		if scaleExp > grisuPowersOfTenMaxDecExp+7 {
			return moderateOutcome[F]{overflow: true}
		}
		if scaleExp < grisuPowersOfTenMinDecExp {
			return moderateOutcome[F]{underflow: true}
		}
	}

	sig := extendedFloat{m: m, e: 0}.normalize()
	power := extendedPowerOfRadix(ds.Radix, scaleExp)
	product := sig.mul(power)

	// product.m has its leading bit at position 63, i.e. the value is
	// 1.xxx * 2^(product.e+63) in the usual binary sense.
	unbiasedExp := int(product.e) + 63

	if unbiasedExp > info.MaxExp {
		return moderateOutcome[F]{overflow: true}
	}

	shift := 63 - int(info.MantissaBits)
	if unbiasedExp < info.MinNormalExp {
		shift += info.MinNormalExp - unbiasedExp
	}

	if shift > 64 {
		// Strictly below half the smallest subnormal: underflow to
		// zero, independent of rounding kind (TowardPositive included;
		// parse.go returns +0 flagged FlagUnderflow).
		return moderateOutcome[F]{underflow: true}
	}

	shifted, frac := product.shiftRight(uint(shift))
	mantissaOut := shifted.m

	base := moderateOutcome[F]{candMantissa: mantissaOut, unbiasedExp: unbiasedExp, shift: shift}

	epsilon := uint64(moderateEpsilonUlps)
	nearZero := frac <= epsilon

	var roundUp, ambiguous bool
	switch rounding {
	case TowardZero, TowardNegative:
		// Truncating toward the down-candidate is correct whether the
		// discarded remainder is exactly zero or merely small: either
		// way mantissaOut itself does not change.
		roundUp = false
	case TowardPositive:
		roundUp = truncated || frac > 0
		if !truncated && nearZero {
			ambiguous = true
		}
	default: // NearestTiesEven, NearestTiesAwayFromZero
		if shift == 0 {
			roundUp = false
			break
		}
		half := uint64(1) << uint(shift-1)
		var dist uint64
		if frac >= half {
			dist = frac - half
		} else {
			dist = half - frac
		}
		if dist <= epsilon {
			ambiguous = true
		} else {
			roundUp = frac > half
		}
	}

	if ambiguous {
		base.ambiguous = true
		return base
	}

	bits := mantissaOut
	if roundUp {
		bits++
	}

	resExp := unbiasedExp - 63 + shift
	base.value = encodeFloat[F](bits, resExp)
	return base
}

// encodeFloat builds the nearest F to the exact value bits*2^resExp,
// where bits is a non-negative integer of arbitrary bit length (not
// pre-normalized to any particular width). Every caller in this
// package already guarantees bits*2^resExp needs no further rounding —
// moderatePath, slowPath, pow2Path and parseCascade's lossy fallback
// only reach here after the rounding decision itself has been made —
// so this is pure
// re-encoding, including the carry a round-up can produce (mantissaOut
// growing past its expected width promotes the exponent exactly as a
// renormalization would).
func encodeFloat[F Float](bitsVal uint64, resExp int) F {
	if bitsVal == 0 {
		return 0
	}
	info := infoFor[F]()
	bitLen := 64 - bits.LeadingZeros64(bitsVal)
	e := resExp + bitLen - 1

	if e > info.MaxExp {
		return fromBits[F](infBits[F]())
	}

	if e >= info.MinNormalExp {
		shiftAmt := int(info.MantissaBits) - (bitLen - 1)
		var full uint64
		if shiftAmt >= 0 {
			full = bitsVal << uint(shiftAmt)
		} else {
			full = bitsVal >> uint(-shiftAmt)
		}
		mantField := full &^ (1 << uint(info.MantissaBits))
		biased := uint64(e + info.Bias)
		return fromBits[F](biased<<uint(info.MantissaBits) | mantField)
	}

	// Subnormal: express bitsVal*2^resExp as field*2^MinSubnormalExp.
	fieldShift := resExp - info.MinSubnormalExp
	var field uint64
	if fieldShift >= 0 {
		field = bitsVal << uint(fieldShift)
	} else {
		field = bitsVal >> uint(-fieldShift)
	}
	if field>>uint(info.MantissaBits) != 0 {
		// Rounding carried out of the subnormal range into the
		// smallest normal value.
		mantField := field &^ (1 << uint(info.MantissaBits))
		return fromBits[F](uint64(1)<<uint(info.MantissaBits) | mantField)
	}
	return fromBits[F](field)
}

// infBits returns the bit pattern of +Inf for F.
func infBits[F Float]() uint64 {
	info := infoFor[F]()
	expField := uint64(1)<<info.ExponentBits - 1
	return expField << uint(info.MantissaBits)
}
