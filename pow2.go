// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

import "math/bits"

// radixLog2 returns log2(radix) when radix is a power of two in [2,36],
// and 0 otherwise.
func radixLog2(radix uint8) uint {
	if radix < 2 || radix&(radix-1) != 0 {
		return 0
	}
	return uint(bits.TrailingZeros8(radix))
}

// pow2Path implements C4: for a power-of-two radix, every digit
// contributes an exact, non-overlapping run of bits to the significand,
// so the whole conversion reduces to bit concatenation followed by a
// single round/sticky step, with no power-of-radix multiplication and
// therefore no possibility of ambiguity. It always produces a result;
// there is no slow-path fallback for this radix family. Unlike the
// moderate path, frac and sticky here are exact rather than
// approximate, so rounding applies directly with no epsilon headroom.
func pow2Path[F Float](ds DigitStream, rounding RoundingKind) F {
	log2r := radixLog2(ds.Radix)
	info := infoFor[F]()

	total := ds.digitCount()
	if total == 0 {
		return 0
	}

	// Find the first non-zero digit; everything before it contributes
	// nothing to the magnitude.
	lead := 0
	for lead < total && ds.digitAt(lead) == 0 {
		lead++
	}
	if lead == total {
		return 0
	}

	// Binary exponent of the most significant bit of the leading digit.
	leadBitLen := bits.Len8(ds.digitAt(lead))
	// scientificExponent is in units of whole digits; convert to bits.
	topBitExp := (ds.scientificExponent()-lead)*int(log2r) + leadBitLen - 1

	if topBitExp > info.MaxExp {
		return fromBits[F](infBits[F]())
	}

	// Build a 64-bit window of bits starting at the leading digit,
	// tracking whether any bit beyond the window was set (sticky).
	var window uint64
	windowBits := 0
	sticky := false
	for i := lead; i < total; i++ {
		dig := uint64(ds.digitAt(i))
		bitsThis := int(log2r)
		if i == lead {
			// The leading digit may have fewer significant bits than a
			// full digit slot (e.g. radix 8, leading digit 1); only its
			// real bits belong in the window, or the alignment of every
			// later digit would be off by the difference.
			bitsThis = leadBitLen
		}
		if windowBits+bitsThis <= 64 {
			window = window<<uint(bitsThis) | (dig & (1<<uint(bitsThis) - 1))
			windowBits += bitsThis
		} else {
			if dig != 0 {
				sticky = true
			}
		}
	}
	if ds.Truncated {
		sticky = true
	}
	// Normalize the window so its top bit sits at position 63.
	if windowBits < 64 {
		window <<= uint(64 - windowBits)
	}

	shift := 63 - int(info.MantissaBits)
	unbiasedExp := topBitExp
	if unbiasedExp < info.MinNormalExp {
		shift += info.MinNormalExp - unbiasedExp
	}
	if shift > 64 {
		return 0
	}

	var mantissaOut, frac uint64
	if shift == 64 {
		frac = window
	} else if shift == 0 {
		mantissaOut = window
	} else {
		mantissaOut = window >> uint(shift)
		frac = window & (1<<uint(shift) - 1)
	}

	roundUp := false
	if shift > 0 {
		half := uint64(1) << uint(shift-1)
		switch rounding {
		case TowardZero, TowardNegative:
			roundUp = false
		case TowardPositive:
			roundUp = frac > 0 || sticky
		case NearestTiesAwayFromZero:
			roundUp = frac >= half
		default: // NearestTiesEven
			if frac > half {
				roundUp = true
			} else if frac == half {
				if sticky {
					roundUp = true
				} else {
					roundUp = mantissaOut&1 == 1
				}
			}
		}
	}

	bits64 := mantissaOut
	if roundUp {
		bits64++
	}

	resExp := topBitExp - 63 + shift
	return encodeFloat[F](bits64, resExp)
}
