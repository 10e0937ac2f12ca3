// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

// Package lexfloat implements the correctly-rounded core of a
// string<->binary-float conversion library: parsing a pre-tokenized
// numeric digit stream into the nearest IEEE-754 binary32/binary64
// value (the "atof" core), and producing the shortest decimal (or
// radix-r) digit string that round-trips a finite float back to the
// same bits (the "ftoa" core).
//
// lexfloat does not lex input text. Callers tokenize a numeric literal
// into integer digits, fraction digits and a signed exponent before
// calling Parse, and turn a formatted digit string plus exponent back
// into scientific or fixed notation after calling Format. Sign,
// NaN/Inf/zero classification, and buffer allocation are likewise the
// caller's responsibility; see Options and the buffer-size constants
// in constants.go.
//
// The parser runs a cascade of increasingly expensive and increasingly
// exact algorithms:
//
//   - the fast path (fastpath.go) handles the common case where the
//     significand and the needed power of the radix are both exactly
//     representable in the target float type;
//   - the moderate path (moderate.go) multiplies an 80-bit-equivalent
//     extended-precision significand by a cached power of the radix
//     and rounds, falling back only when the result is ambiguous to
//     within its tracked error bound;
//   - the slow path (slow.go) resolves ambiguity exactly, comparing the
//     input against the candidate floats as arbitrary-precision
//     rationals.
//
// Radix 2^k inputs skip the cascade entirely: pow2.go converts digits
// to bits by direct concatenation, so no rounding uncertainty exists
// before the final shift into the target mantissa width.
//
// The formatter mirrors this structure: Dragonbox (dragonbox.go) is
// the default shortest-digit generator and never fails; Grisu3
// (grisu.go) is kept as the historically prior algorithm and verifies
// its own output by reparsing it, falling back to the exact BigFloat
// digit generator (radixformat.go's formatDragon4, the same engine
// dragonbox.go wraps) on the rare candidate it cannot verify.
// Non-decimal radixes always go through formatDragon4 or, for
// power-of-two radixes, the exact bit-regrouping closed form.
package lexfloat
