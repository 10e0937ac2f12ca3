// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

// formatShortest is the top-level C5 dispatcher Format calls: route a
// power-of-two radix to the exact closed form, radix 10 to whichever of
// Dragonbox/Grisu3 Options selects, and every other radix to the
// generic Dragon4 engine.
func formatShortest[F Float](value F, opts Options, out []byte) (digitCount, exponent int) {
	f, e := decompose(value)
	radix := opts.radixOrDefault()

	if radixLog2(radix) != 0 {
		return formatPow2[F](f, e, radix, out)
	}
	if radix == 10 {
		if opts.Dragonbox {
			return dragonboxFormat[F](f, e, out)
		}
		return grisuFormat[F](f, e, value, out)
	}
	return formatDragon4[F](f, e, radix, out)
}
