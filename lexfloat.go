// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

// Float is the set of IEEE-754 binary types the core supports. A wider
// core could extend this to a binary128 type without touching the
// algorithms in fastpath.go/moderate.go/slow.go/pow2.go, which are all
// generic over Float.
type Float interface {
	~float32 | ~float64
}

// Parse converts a pre-tokenized digit stream into the nearest
// representable value of F.
//
// integerDigits and fractionDigits hold digit values already validated
// to [0, opts.Radix); exponent is the signed scientific exponent
// applied to the combined significand. Parse never returns an error:
// overflow yields +Inf, underflow yields +0, and ambiguous lossy
// parses are reported through the returned Result's Flags field
// rather than as an error.
func Parse[F Float](integerDigits, fractionDigits []uint8, exponent int, truncated bool, opts Options) Result[F] {
	ds := DigitStream{
		Integer:   integerDigits,
		Fraction:  fractionDigits,
		Exponent:  exponent,
		Radix:     opts.radixOrDefault(),
		Truncated: truncated,
	}
	return parseCascade[F](ds, opts)
}

// ParsePartial behaves like Parse but additionally reports how many of
// the combined integer+fraction digits were consumed in forming the
// result. The count never exceeds len(integerDigits)+len(fractionDigits);
// it is meant for collaborators that tokenize from a single shared
// digit buffer rather than two pre-sliced ones.
func ParsePartial[F Float](integerDigits, fractionDigits []uint8, exponent int, truncated bool, opts Options) (Result[F], int) {
	r := Parse[F](integerDigits, fractionDigits, exponent, truncated, opts)
	return r, len(integerDigits) + len(fractionDigits)
}

// Format converts a finite, positive, non-zero value of F into the
// shortest digit string that parses back to the same bits. It returns
// the digit count written to out and the base-opts.Radix decimal
// exponent such that digits * radix^exponent reproduces value under
// round-trip.
//
// Format panics if value is not finite, is zero, or is negative — the
// collaborator is responsible for sign and special-value handling
// before calling into the core.
func Format[F Float](value F, opts Options, out []byte) (digitCount int, exponent int) {
	if !(value > 0) || value-value != 0 {
		panic("lexfloat: Format requires a finite, positive, non-zero value")
	}
	return formatShortest[F](value, opts, out)
}
