// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

import "math/bits"

// formatPow2 implements the power-of-two half of C5's radix fallback:
// for a power-of-two output radix, every output digit is an exact,
// non-overlapping group of bits of the value's significand, so the
// shortest representation is simply the value's own bits regrouped,
// with no rounding and no ambiguity — the mirror image of pow2Path on
// the parsing side.
func formatPow2[F Float](f uint64, e int, radix uint8, out []byte) (digitCount, sciExp int) {
	log2r := int(radixLog2(radix))
	bitLen := bits.Len64(f)

	// Binary exponent of f's top bit, converted to a count of whole
	// output digits below it (may be negative).
	topBitExp := e + bitLen - 1
	sciExp = floorDiv(topBitExp, log2r)

	// Align f so its bits fall on digit boundaries counted from
	// sciExp*log2r: left-pad with (topBitExp - sciExp*log2r) bits of
	// headroom in the leading digit, then slice off log2r bits at a
	// time down to the largest multiple of log2r not above e.
	lowExp := floorDiv(e, log2r) * log2r
	highExp := sciExp*log2r + log2r // exclusive upper bound, a multiple of log2r strictly above topBitExp
	totalBits := highExp - lowExp
	window := f << uint(e-lowExp)

	// sciExp's definition guarantees f's own top bit falls within the
	// leading digit's bit range, so the leading digit is never zero;
	// trailing zero digits are dropped so the output stays shortest.
	n := totalBits / log2r
	for i := 0; i < n; i++ {
		shift := totalBits - (i+1)*log2r
		digit := byte(window>>uint(shift)) & byte(1<<uint(log2r)-1)
		out[i] = digit
	}
	for n > 1 && out[n-1] == 0 {
		n--
	}
	return n, sciExp
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// formatDragon4 implements the free-format digit generation algorithm
// of Steele & White ("How to Print Floating-Point Numbers Accurately"),
// generalized to an arbitrary output radix via big-integer arithmetic.
// It is exact and unconditional: unlike the fast heuristic in grisu.go,
// it never needs a fallback, because the R/S/mPlus/mMinus bracket it
// maintains throughout digit generation is always the value's exact
// distance to its representable neighbors, with no rounding error
// anywhere in the pipeline. This is the engine behind dragonbox.go's
// guaranteed path and the only formatter for any output radix other
// than 10 or a power of two.
func formatDragon4[F Float](f uint64, e int, radix uint8, out []byte) (digitCount, sciExp int) {
	info := infoFor[F]()
	isBoundaryMantissa := f == uint64(1)<<info.MantissaBits
	asymmetric := isBoundaryMantissa && e+int(info.MantissaBits) > info.MinNormalExp

	var r, s, mPlus, mMinus *bigFloat
	B := limb(radix)

	if e >= 0 {
		be := bigFloatFromUint64(1, e)
		if !asymmetric {
			r = bigFloatFromUint64(f, 0)
			r.shiftLeftBits(e + 1)
			s = bigFloatFromUint64(2, 0)
			mPlus = be.clone()
			mMinus = be.clone()
		} else {
			r = bigFloatFromUint64(f, 0)
			r.shiftLeftBits(e + 2)
			s = bigFloatFromUint64(4, 0)
			mPlus = be.clone()
			mustMulSmall(mPlus, 2)
			mMinus = be.clone()
		}
	} else {
		if !asymmetric {
			r = bigFloatFromUint64(f*2, 0)
			s = bigFloatFromUint64(1, 0)
			s.shiftLeftBits(-e + 1)
			mPlus = bigFloatFromUint64(1, 0)
			mMinus = bigFloatFromUint64(1, 0)
		} else {
			r = bigFloatFromUint64(f*4, 0)
			s = bigFloatFromUint64(1, 0)
			s.shiftLeftBits(-e + 2)
			mPlus = bigFloatFromUint64(2, 0)
			mMinus = bigFloatFromUint64(1, 0)
		}
	}

	// Fixup: scale (R, S) by powers of the output radix until
	// R/S lands in [1/radix, 1), tracking the scientific exponent k
	// of the leading digit as we go. The two loops below are the
	// textbook "too big, grow S" / "too small, grow R" passes; for any
	// given input only one of them actually iterates.
	k := 0
	for i := 0; i < 2000; i++ {
		if cmpBigFloat(addBigFloat(r, mPlus), s) <= 0 {
			break
		}
		mustMulSmall(s, B)
		k++
	}
	for i := 0; i < 2000; i++ {
		scaled := addBigFloat(r, mPlus)
		mustMulSmall(scaled, B)
		if cmpBigFloat(scaled, s) > 0 {
			break
		}
		mustMulSmall(r, B)
		mustMulSmall(mPlus, B)
		mustMulSmall(mMinus, B)
		k--
	}

	var digits []byte
	for {
		mustMulSmall(r, B)
		mustMulSmall(mPlus, B)
		mustMulSmall(mMinus, B)

		var d byte
		for d = byte(B - 1); d > 0; d-- {
			trial := s.clone()
			mustMulSmall(trial, limb(d))
			if cmpBigFloat(trial, r) <= 0 {
				break
			}
		}
		trial := s.clone()
		mustMulSmall(trial, limb(d))
		r = subBigFloat(r, trial)

		low := cmpBigFloat(r, mMinus) < 0
		high := cmpBigFloat(addBigFloat(r, mPlus), s) > 0

		if !low && !high {
			digits = append(digits, d)
			continue
		}
		if low && !high {
			digits = append(digits, d)
		} else if high && !low {
			digits = append(digits, d+1)
		} else {
			twice := r.clone()
			mustMulSmall(twice, 2)
			if cmpBigFloat(twice, s) >= 0 {
				digits = append(digits, d+1)
			} else {
				digits = append(digits, d)
			}
		}
		break
	}

	lenBefore := len(digits)
	i := len(digits) - 1
	for i >= 0 {
		if digits[i] != byte(B) {
			break
		}
		digits[i] = 0
		if i == 0 {
			digits = append([]byte{1}, digits...)
		} else {
			digits[i-1]++
		}
		i--
	}

	copy(out, digits)
	sciExp = (k - 1) + (len(digits) - lenBefore)
	return len(digits), sciExp
}

// mustMulSmall multiplies in place, panicking on arena exhaustion.
// Dragon4's digit count for any finite float is bounded by a few tens
// of digits even at radix 2 (it terminates as soon as the generated
// prefix uniquely identifies the value among its neighbors), so the
// bigFloatLimbCap arena is never actually at risk here; the panic
// exists to surface a logic error rather than silently truncate.
func mustMulSmall(b *bigFloat, factor limb) {
	if err := b.mulSmall(factor); err != nil {
		panic(err)
	}
}
