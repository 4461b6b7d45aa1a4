// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBlend(t *testing.T) {
	pal := impressionPalette.Blend(0.5)
	if len(pal) != 8 || impressionPalette.Len() != 8 {
		t.Fatalf("got %d colours, want 8", len(pal))
	}
	for i, want := range []color.RGBA{
		{28, 24, 28, 255},
		{255, 255, 255, 255},
		{29, 173, 35, 255},
		{30, 29, 174, 255},
		{205, 36, 37, 255},
		{231, 222, 35, 255},
		{216, 123, 36, 255},
		{255, 255, 255, 255},
	} {
		if pal[i] != want {
			t.Errorf("entry %d = %v, want %v", i, pal[i], want)
		}
	}
}

func TestBlendClamps(t *testing.T) {
	if diff := cmp.Diff(spectraPalette.Blend(0), spectraPalette.Blend(-3)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(spectraPalette.Blend(1), spectraPalette.Blend(7)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := spectraPalette.Blend(1)[1]; got != (color.RGBA{161, 164, 165, 255}) {
		t.Errorf("saturated white = %v", got)
	}
}

func TestBlend24(t *testing.T) {
	for _, tc := range []struct {
		c    Color
		want []uint32
	}{
		{Black, []uint32{0xFFFFFF, 0x000000, 0x000000}},
		{Red, []uint32{0xFFFFFF, 0x000000, 0xFF0000}},
		{Yellow, []uint32{0xFFFFFF, 0x000000, 0xFFFF00}},
	} {
		if diff := cmp.Diff(tc.want, hatPalette(tc.c).Blend24(0.5)); diff != "" {
			t.Errorf("%v (-want +got):\n%s", tc.c, diff)
		}
	}
}

func TestCheckSaturation(t *testing.T) {
	for _, s := range []float64{0, 0.5, 1} {
		if err := checkSaturation(s); err != nil {
			t.Errorf("checkSaturation(%v) = %v", s, err)
		}
	}
	for _, s := range []float64{-0.01, 1.01} {
		if err := checkSaturation(s); err == nil {
			t.Errorf("checkSaturation(%v) succeeded", s)
		}
	}
}
