// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"image"
)

// Geometry describes one supported resolution of a controller.
type Geometry struct {
	// Logical size, as seen by callers.
	Width  int
	Height int
	// Physical size, as the controller RAM expects it after rotation.
	Cols int
	Rows int
	// Rotation applied before transmission, in degrees. Positive values turn
	// counter-clockwise.
	Rotation int
	// Position of the logical canvas inside the frame buffer, for panels
	// whose RAM is larger than the visible area.
	OffsetX int
	OffsetY int
	// ResSelect is the controller specific resolution select code.
	ResSelect uint8
}

// Bounds returns the logical canvas.
func (g *Geometry) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// bufferSize returns the frame buffer size before rotation.
func (g *Geometry) bufferSize() (int, int) {
	if quarterTurns(g.Rotation)%2 == 0 {
		return g.Cols, g.Rows
	}
	return g.Rows, g.Cols
}

func quarterTurns(rotation int) int {
	return ((rotation/90)%4 + 4) % 4
}

// FrameBuffer is a grid of native colour indices, one byte per pixel,
// stored row by row.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrameBuffer returns a buffer filled with index 0.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{Width: w, Height: h, Pix: make([]uint8, w*h)}
}

// At returns the index at column x, row y.
func (f *FrameBuffer) At(x, y int) uint8 {
	return f.Pix[y*f.Width+x]
}

// Set stores v at column x, row y. Coordinates are not checked.
func (f *FrameBuffer) Set(x, y int, v uint8) {
	f.Pix[y*f.Width+x] = v
}

// Fill sets every pixel to v.
func (f *FrameBuffer) Fill(v uint8) {
	for i := range f.Pix {
		f.Pix[i] = v
	}
}

// Clone returns a deep copy.
func (f *FrameBuffer) Clone() *FrameBuffer {
	c := &FrameBuffer{Width: f.Width, Height: f.Height, Pix: make([]uint8, len(f.Pix))}
	copy(c.Pix, f.Pix)
	return c
}

// FlipH returns a copy with columns reversed.
func (f *FrameBuffer) FlipH() *FrameBuffer {
	out := NewFrameBuffer(f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			out.Set(f.Width-1-x, y, f.At(x, y))
		}
	}
	return out
}

// FlipV returns a copy with rows reversed.
func (f *FrameBuffer) FlipV() *FrameBuffer {
	out := NewFrameBuffer(f.Width, f.Height)
	for y := 0; y < f.Height; y++ {
		copy(out.Pix[(f.Height-1-y)*f.Width:(f.Height-y)*f.Width], f.Pix[y*f.Width:(y+1)*f.Width])
	}
	return out
}

// Rotate returns a copy turned by rotation degrees, counter-clockwise for
// positive values. rotation must be a multiple of 90.
func (f *FrameBuffer) Rotate(rotation int) *FrameBuffer {
	switch quarterTurns(rotation) {
	case 1:
		out := NewFrameBuffer(f.Height, f.Width)
		for y := 0; y < out.Height; y++ {
			for x := 0; x < out.Width; x++ {
				out.Set(x, y, f.At(f.Width-1-y, x))
			}
		}
		return out
	case 2:
		out := NewFrameBuffer(f.Width, f.Height)
		for i, v := range f.Pix {
			out.Pix[len(f.Pix)-1-i] = v
		}
		return out
	case 3:
		out := NewFrameBuffer(f.Height, f.Width)
		for y := 0; y < out.Height; y++ {
			for x := 0; x < out.Width; x++ {
				out.Set(x, y, f.At(y, f.Height-1-x))
			}
		}
		return out
	}
	return f.Clone()
}

// WireOrder applies the horizontal flip, then the vertical flip, then the
// rotation. The receiver is not modified.
func (f *FrameBuffer) WireOrder(hFlip, vFlip bool, rotation int) *FrameBuffer {
	region := f
	if hFlip {
		region = region.FlipH()
	}
	if vFlip {
		region = region.FlipV()
	}
	if rotation%360 != 0 {
		return region.Rotate(rotation)
	}
	if region == f {
		return f.Clone()
	}
	return region
}
