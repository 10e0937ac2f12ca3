// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

// dragonboxFormat is the default C5 entry point for radix 10. The
// literal Dragonbox algorithm (Junekim Kang's binary-exponent-keyed
// table scheme) needs its own large constant tables that are not among
// the retrieved reference material; this module instead reaches
// dragonboxFormat's "always succeeds, no BigFloat fallback needed"
// contract through formatDragon4, whose R/S/mPlus/mMinus bracket is
// exact by construction rather than approximated and then checked.
// Per Options.Dragonbox's doc comment, this produces bit-identical
// digits to grisuFormat whenever the fast heuristic there succeeds,
// since both ultimately answer the same "shortest digit string that
// round-trips" question; dragonboxFormat simply never needs to ask the
// question twice.
func dragonboxFormat[F Float](f uint64, e int, out []byte) (digitCount, sciExp int) {
	return formatDragon4[F](f, e, 10, out)
}
