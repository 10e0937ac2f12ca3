// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

// DigitStream is the pre-tokenized input contract described in spec
// section 3: an ordered run of integer digits, an ordered run of
// fraction digits, and a signed scientific exponent, at a given radix.
// Digits are already validated to [0, Radix) by the tokenization
// collaborator; leading integer zeros and trailing fraction zeros are
// already trimmed except where they affect the effective exponent.
type DigitStream struct {
	// Integer holds the digits before the radix point, most
	// significant first.
	Integer []uint8
	// Fraction holds the digits after the radix point, most
	// significant first.
	Fraction []uint8
	// Exponent is the signed scientific exponent applied to the
	// combined (Integer, Fraction) significand.
	Exponent int
	// Radix is the numeric base, in [2, 36].
	Radix uint8
	// Truncated is set when more digits existed than were retained;
	// it is used by the slow path to resolve exact midpoint comparisons
	// in favor of rounding up.
	Truncated bool
}

// digitCount returns the total number of significant digits in the
// stream.
func (d DigitStream) digitCount() int {
	return len(d.Integer) + len(d.Fraction)
}

// scientificExponent returns the exponent of the leading significant
// digit if the stream were written as d[0].d[1:] * radix^e, i.e. the
// normalized scientific exponent, accounting for leading integer
// zeros already being trimmed by the tokenizer.
func (d DigitStream) scientificExponent() int {
	return d.Exponent + len(d.Integer) - 1
}

// digitAt returns the i-th digit of the combined integer+fraction run
// (0-indexed, most significant first), or 0 past the end.
func (d DigitStream) digitAt(i int) uint8 {
	if i < len(d.Integer) {
		return d.Integer[i]
	}
	j := i - len(d.Integer)
	if j < len(d.Fraction) {
		return d.Fraction[j]
	}
	return 0
}

// nativeMantissa parses the combined digit run into an exact uint64,
// along with the count of digits folded in. It is only called by the
// fast path, which has already checked the digit count fits.
func (d DigitStream) nativeMantissa() (mantissa uint64, count int) {
	radix := uint64(d.Radix)
	for _, dig := range d.Integer {
		mantissa = mantissa*radix + uint64(dig)
		count++
	}
	for _, dig := range d.Fraction {
		mantissa = mantissa*radix + uint64(dig)
		count++
	}
	return mantissa, count
}

// fractionLen returns the number of digits after the radix point.
func (d DigitStream) fractionLen() int {
	return len(d.Fraction)
}

// mantissa64 folds as many leading digits as fit into a uint64 without
// overflow, reporting how many it used and whether any remaining digit
// (used or not) was non-zero. Unlike nativeMantissa, which assumes the
// whole stream fits, this is the moderate and slow paths' entry point
// for arbitrarily long digit runs.
func (d DigitStream) mantissa64() (mantissa uint64, digitsUsed int, truncated bool) {
	radix := uint64(d.Radix)
	total := d.digitCount()
	const maxU64 = ^uint64(0)
	for i := 0; i < total; i++ {
		dig := uint64(d.digitAt(i))
		if mantissa > (maxU64-dig)/radix {
			if dig != 0 {
				truncated = true
			}
			for j := i + 1; j < total; j++ {
				if d.digitAt(j) != 0 {
					truncated = true
					break
				}
			}
			return mantissa, i, truncated
		}
		mantissa = mantissa*radix + dig
		digitsUsed = i + 1
	}
	return mantissa, digitsUsed, false
}
