// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

import "errors"

// ErrArenaExhausted is returned by the slow path (C3) when a
// pathologically long digit run plus exponent magnitude would require
// more BigFloat limbs than bigFloatLimbCap allows. Inputs of any
// reasonable length never hit this cap; it exists so the cap failure
// is an explicit error rather than unbounded allocation.
var ErrArenaExhausted = errors.New("lexfloat: arbitrary-precision arena exhausted")
