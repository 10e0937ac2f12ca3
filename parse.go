// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

// parseCascade implements the parsing dispatcher: route power-of-two
// radixes to C4 directly, then try C1, then C2, falling back to C3
// only when C2 reports its rounding decision is not trustworthy. All
// four components operate purely on magnitude; sign is the caller's
// responsibility (see Format's doc comment for the same contract on
// the formatting side).
func parseCascade[F Float](ds DigitStream, opts Options) Result[F] {
	if ds.digitCount() == 0 {
		return Result[F]{Value: 0}
	}

	if radixLog2(ds.Radix) != 0 {
		return Result[F]{Value: pow2Path[F](ds, opts.Rounding)}
	}

	if v, ok := fastPath[F](ds, opts.Rounding); ok {
		return Result[F]{Value: v}
	}

	mod := moderatePath[F](ds, opts.Rounding)
	switch {
	case mod.overflow:
		return Result[F]{Value: fromBits[F](infBits[F]()), Flags: FlagOverflow}
	case mod.underflow:
		return Result[F]{Value: 0, Flags: FlagUnderflow}
	case !mod.ambiguous:
		return Result[F]{Value: mod.value}
	}

	if opts.Lossy {
		// A lossy caller accepts the moderate path's round-down
		// candidate rather than paying for the slow path; the ambiguity
		// is reported so the caller can tell.
		guess := encodeFloat[F](mod.candMantissa, mod.unbiasedExp-63+mod.shift)
		return Result[F]{Value: guess, Flags: FlagAmbiguous}
	}

	v, err := slowPath[F](ds, opts.Rounding, mod)
	if err != nil {
		// The digit run was too long even for the bounded
		// arbitrary-precision arena; Parse never fails outright, so
		// fall back to the moderate path's guess, flagged as ambiguous.
		guess := encodeFloat[F](mod.candMantissa, mod.unbiasedExp-63+mod.shift)
		return Result[F]{Value: guess, Flags: FlagAmbiguous}
	}
	return Result[F]{Value: v}
}
