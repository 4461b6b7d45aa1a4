// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"image"
	"image/color"
	"image/draw"
)

// native maps a palette position to the controller's colour index.
func (p *Profile) native(i uint8) uint8 {
	if p.remap != nil && int(i) < len(p.remap) {
		return p.remap[i]
	}
	return i
}

// sequential is the inverse of native.
func (p *Profile) sequential(v uint8) uint8 {
	for i, n := range p.remap {
		if n == v {
			return uint8(i)
		}
	}
	return v
}

// Quantize maps img to palette positions, row by row. When dither is set
// Floyd-Steinberg error diffusion is used, otherwise each pixel takes the
// nearest colour.
func Quantize(img image.Image, pal color.Palette, dither bool) []uint8 {
	b := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), pal)
	var drawer draw.Drawer = draw.Src
	if dither {
		drawer = draw.FloydSteinberg
	}
	drawer.Draw(dst, dst.Bounds(), img, b.Min)
	return dst.Pix
}

// indices returns the native colour indices of img, row by row.
func (d *Dev) indices(img image.Image, saturation float64) []uint8 {
	b := img.Bounds()
	var pix []uint8
	if pm, ok := img.(*image.Paletted); ok {
		if !d.profile.requantize || len(pm.Palette) == 0 {
			// Already native indices.
			pix = make([]uint8, 0, b.Dx()*b.Dy())
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					pix = append(pix, d.passthrough(pm.ColorIndexAt(x, y)))
				}
			}
			return pix
		}
		// Taken as the pure colours in some order. An image with exactly as
		// many colours as the panel is mapped without dithering.
		pure := make(color.Palette, len(d.palette.Desaturated))
		for i, c := range d.palette.Desaturated {
			pure[i] = c
		}
		pix = Quantize(img, pure, len(pm.Palette) != len(pure))
	} else {
		pix = Quantize(img, d.blendAt(saturation), true)
	}
	for i, v := range pix {
		pix[i] = d.profile.native(v)
	}
	return pix
}

func (d *Dev) passthrough(i uint8) uint8 {
	if r := d.profile.remap; r != nil && int(i) < len(r) {
		return r[i]
	}
	return i & d.profile.mask
}

// blendAt returns the palette at saturation, from the cache when it matches
// the current level.
func (d *Dev) blendAt(saturation float64) color.Palette {
	if saturation == d.saturation {
		return d.blend()
	}
	return d.palette.Blend(saturation)
}
