// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"fmt"
	"image/color"
)

// Palette holds the two reference palettes of a panel, in native index
// order.
//
// Desaturated are the pure hues the panel is driven with, Saturated are the
// hues the ink actually shows. Both must have the same length.
type Palette struct {
	Desaturated []color.RGBA
	Saturated   []color.RGBA
	// Clean appends a white "clean" entry after the blended colours, as
	// found on the 7 colour panels.
	Clean bool
}

// Len returns the number of entries Blend returns.
func (p *Palette) Len() int {
	if p.Clean {
		return len(p.Desaturated) + 1
	}
	return len(p.Desaturated)
}

// Blend returns saturated*s + desaturated*(1-s) for each entry, each channel
// truncated toward zero. s is clamped to [0, 1].
func (p *Palette) Blend(saturation float64) color.Palette {
	s := clampSaturation(saturation)
	out := make(color.Palette, 0, p.Len())
	for i := range p.Desaturated {
		out = append(out, blend(p.Saturated[i], p.Desaturated[i], s))
	}
	if p.Clean {
		out = append(out, color.RGBA{255, 255, 255, 255})
	}
	return out
}

// Blend24 is Blend with each colour packed as 0xRRGGBB.
func (p *Palette) Blend24(saturation float64) []uint32 {
	pal := p.Blend(saturation)
	out := make([]uint32, len(pal))
	for i, c := range pal {
		rgba := c.(color.RGBA)
		out[i] = uint32(rgba.R)<<16 | uint32(rgba.G)<<8 | uint32(rgba.B)
	}
	return out
}

func blend(sat, desat color.RGBA, s float64) color.RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*s + float64(b)*(1.0-s))
	}
	return color.RGBA{mix(sat.R, desat.R), mix(sat.G, desat.G), mix(sat.B, desat.B), 255}
}

func clampSaturation(s float64) float64 {
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}

func checkSaturation(s float64) error {
	if s < 0 || s > 1 {
		return fmt.Errorf("inky: saturation level %v needs to be between 0 and 1", s)
	}
	return nil
}

var (
	// For more: https://github.com/pimoroni/inky/issues/115#issuecomment-887453065
	impressionPalette = Palette{
		Desaturated: []color.RGBA{
			{0, 0, 0, 255},       // Black
			{255, 255, 255, 255}, // White
			{0, 255, 0, 255},     // Green
			{0, 0, 255, 255},     // Blue
			{255, 0, 0, 255},     // Red
			{255, 255, 0, 255},   // Yellow
			{255, 140, 0, 255},   // Orange
		},
		Saturated: []color.RGBA{
			{57, 48, 57, 255},
			{255, 255, 255, 255},
			{58, 91, 70, 255},
			{61, 59, 94, 255},
			{156, 72, 75, 255},
			{208, 190, 71, 255},
			{177, 106, 73, 255},
		},
		Clean: true,
	}

	ac073Palette = Palette{
		Desaturated: impressionPalette.Desaturated,
		Saturated: []color.RGBA{
			{0, 0, 0, 255},
			{217, 242, 255, 255},
			{3, 124, 76, 255},
			{27, 46, 198, 255},
			{245, 80, 34, 255},
			{255, 255, 68, 255},
			{239, 121, 44, 255},
		},
		Clean: true,
	}

	// Sequential order; native indices come from spectraRemap.
	spectraPalette = Palette{
		Desaturated: []color.RGBA{
			{0, 0, 0, 255},       // Black
			{255, 255, 255, 255}, // White
			{255, 255, 0, 255},   // Yellow
			{255, 0, 0, 255},     // Red
			{0, 0, 255, 255},     // Blue
			{0, 255, 0, 255},     // Green
		},
		Saturated: []color.RGBA{
			{0, 0, 0, 255},
			{161, 164, 165, 255},
			{208, 190, 71, 255},
			{156, 72, 75, 255},
			{61, 59, 94, 255},
			{58, 91, 70, 255},
		},
	}

	ryPalette = Palette{
		Desaturated: []color.RGBA{
			{0, 0, 0, 255},       // Black
			{255, 255, 255, 255}, // White
			{255, 255, 0, 255},   // Yellow
			{255, 0, 0, 255},     // Red
		},
		Saturated: []color.RGBA{
			{13, 13, 13, 255},
			{71, 71, 71, 255},
			{81, 62, 10, 255},
			{42, 13, 10, 255},
		},
	}
)

// hatPalette returns the white, black, accent palette of a two or three
// colour panel. Black panels use black as their accent.
func hatPalette(c Color) *Palette {
	accent := color.RGBA{0, 0, 0, 255}
	switch c {
	case Red:
		accent = color.RGBA{255, 0, 0, 255}
	case Yellow:
		accent = color.RGBA{255, 255, 0, 255}
	}
	pal := []color.RGBA{{255, 255, 255, 255}, {0, 0, 0, 255}, accent}
	return &Palette{Desaturated: pal, Saturated: pal}
}
