// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"
	"periph.io/x/conn/v3/display"
)

var _ Display = &Simulator{}

// Simulator stands in for a panel when there is no hardware. It keeps the
// same frame buffer as a Dev and renders it to an off-screen canvas on Show.
type Simulator struct {
	*Dev

	canvas  *image.RGBA
	preview display.Drawer
	shows   int
}

// NewSimulator returns a Simulator for the panel described by o.
//
// When preview is not nil, every Show is also drawn to it, e.g. a
// screen.Dev printing to the terminal.
func NewSimulator(o *Opts, preview display.Drawer) (*Simulator, error) {
	d, err := newDev(o)
	if err != nil {
		return nil, err
	}
	return &Simulator{
		Dev:     d,
		canvas:  image.NewRGBA(d.Bounds()),
		preview: preview,
	}, nil
}

func (s *Simulator) String() string {
	return "Simulated " + s.Dev.String()
}

// Halt implements conn.Resource.
func (s *Simulator) Halt() error {
	if s.preview != nil {
		return s.preview.Halt()
	}
	return nil
}

// Setup is a no-op.
func (s *Simulator) Setup() error {
	return nil
}

// Show renders the frame buffer to the canvas, and to the preview if any.
func (s *Simulator) Show(busyWait bool) error {
	b := s.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s.canvas.Set(x, y, s.At(x, y))
		}
	}
	s.shows++
	if s.preview != nil {
		if err := s.preview.Draw(s.preview.Bounds(), s.canvas, image.Point{}); err != nil {
			return fmt.Errorf("inky: preview failed: %w", err)
		}
	}
	return nil
}

// Render is Show(true).
func (s *Simulator) Render() error {
	return s.Show(true)
}

// Draw implements display.Drawer.
func (s *Simulator) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if r != s.Bounds() {
		return fmt.Errorf("partial updates are not supported")
	}
	if src.Bounds() != s.Bounds() {
		return fmt.Errorf("image must be the same size as bounds: %v", s.Bounds())
	}
	if err := s.SetImage(src, s.Saturation()); err != nil {
		return err
	}
	return s.Render()
}

// DrawAll redraws the whole display.
func (s *Simulator) DrawAll(src image.Image) error {
	return s.Draw(s.Bounds(), src, image.Point{})
}

// SetPreview replaces the drawer every Show is copied to. nil disables the
// preview.
func (s *Simulator) SetPreview(preview display.Drawer) {
	s.preview = preview
}

// Canvas returns a copy of what the panel showed on the last Show.
func (s *Simulator) Canvas() *image.RGBA {
	out := image.NewRGBA(s.canvas.Bounds())
	draw.Draw(out, out.Bounds(), s.canvas, image.Point{}, draw.Src)
	return out
}

// Shows returns the number of Show calls so far.
func (s *Simulator) Shows() int {
	return s.shows
}

// WritePNG encodes the canvas as PNG.
func (s *Simulator) WritePNG(w io.Writer) error {
	return imaging.Encode(w, s.canvas, imaging.PNG)
}

// SavePNG writes the canvas to a PNG file.
func (s *Simulator) SavePNG(path string) error {
	return imaging.Save(s.canvas, path)
}
