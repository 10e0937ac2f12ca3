// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

// Buffer sizing constants for collaborators that own the output buffer
// passed to Format. These are upper bounds covering sign, exponent
// marker, and worst-case digit count across all supported radices;
// they hold for both binary32 and binary64.
const (
	// DecimalBufferSize is large enough for Format's shortest-round-trip
	// decimal output (radix 10) of any finite, non-zero value of either
	// supported float type.
	DecimalBufferSize = 64

	// RadixBufferSize is large enough for Format's output at any radix
	// in [2, 36], including radix 2's worst case (a binary64 normal
	// value needs up to 53 significant bits, i.e. 53 base-2 digits,
	// plus headroom).
	RadixBufferSize = 256

	// MaxDecimalDigits is an upper bound on the digit count
	// formatDragon4 or grisuFormat produces at radix 10 for a finite,
	// non-zero value of either supported float type. binary64's shortest
	// round-trip decimal never exceeds 17 significant digits; the
	// margin here covers grisuFast's un-shortened candidate before
	// shortenDigits runs.
	MaxDecimalDigits = 21

	// MaxRadixDigits is an upper bound on the digit count formatPow2 or
	// formatDragon4 produces at any non-decimal radix in [2, 36] for a
	// finite, non-zero value of either supported float type. The
	// binding case is radix 2 applied to a binary64 normal value with
	// all 53 significant bits in use (53 digits).
	MaxRadixDigits = 128
)
