// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package lexfloat

import "testing"

// TestNewOptionsDefaults checks the documented default configuration.
func TestNewOptionsDefaults(t *testing.T) {
	o := NewOptions()
	if o.Radix != 10 {
		t.Errorf("NewOptions().Radix = %d, want 10", o.Radix)
	}
	if o.Rounding != NearestTiesEven {
		t.Errorf("NewOptions().Rounding = %v, want NearestTiesEven", o.Rounding)
	}
	if o.Lossy {
		t.Errorf("NewOptions().Lossy = true, want false")
	}
	if !o.Dragonbox {
		t.Errorf("NewOptions().Dragonbox = false, want true")
	}
}

// TestRadixOrDefault checks the zero-value fallback.
func TestRadixOrDefault(t *testing.T) {
	var o Options
	if got := o.radixOrDefault(); got != 10 {
		t.Errorf("zero Options.radixOrDefault() = %d, want 10", got)
	}
	o.Radix = 16
	if got := o.radixOrDefault(); got != 16 {
		t.Errorf("Options{Radix:16}.radixOrDefault() = %d, want 16", got)
	}
}

// TestOptionsBuilder checks the chained builder produces the expected
// configuration, including UseGrisu's override of the default
// formatter selection.
func TestOptionsBuilder(t *testing.T) {
	o := NewOptionsBuilder().
		Radix(16).
		Rounding(TowardZero).
		Lossy(true).
		UseGrisu().
		Build()
	if o.Radix != 16 || o.Rounding != TowardZero || !o.Lossy || o.Dragonbox {
		t.Errorf("OptionsBuilder produced %+v, want {Radix:16 Rounding:TowardZero Lossy:true Dragonbox:false}", o)
	}
}
