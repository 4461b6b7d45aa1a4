// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"periph.io/x/conn/v3/display"
)

// preview records the frames it is sent.
type preview struct {
	frames []image.Image
	halted bool
	err    error
}

func (p *preview) String() string {
	return "preview"
}

func (p *preview) Halt() error {
	p.halted = true
	return nil
}

func (p *preview) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *preview) Bounds() image.Rectangle {
	return image.Rect(0, 0, 600, 448)
}

func (p *preview) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	p.frames = append(p.frames, src)
	return p.err
}

var _ display.Drawer = &preview{}

func TestSimulatorShow(t *testing.T) {
	p := &preview{}
	s, err := NewSimulator(&Opts{Model: IMPRESSION57, ModelColor: Multi}, p)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Setup(); err != nil {
		t.Fatal(err)
	}
	s.SetPixel(0, 0, uint8(RedImpression))
	if err := s.Show(false); err != nil {
		t.Fatal(err)
	}
	c := s.Canvas()
	if got, want := c.RGBAAt(0, 0), (color.RGBA{205, 36, 37, 255}); got != want {
		t.Errorf("canvas at 0,0 = %v, want %v", got, want)
	}
	if got, want := c.RGBAAt(1, 0), (color.RGBA{28, 24, 28, 255}); got != want {
		t.Errorf("canvas at 1,0 = %v, want %v", got, want)
	}
	if s.Shows() != 1 || len(p.frames) != 1 {
		t.Errorf("shown %d times, previewed %d times", s.Shows(), len(p.frames))
	}
	// Canvas is a copy.
	c.SetRGBA(0, 0, color.RGBA{})
	if s.Canvas().RGBAAt(0, 0).R != 205 {
		t.Error("Canvas() aliases the simulator")
	}
	if err := s.Halt(); err != nil || !p.halted {
		t.Errorf("Halt() = %v, preview halted: %t", err, p.halted)
	}
}

func TestSimulatorDraw(t *testing.T) {
	s, err := NewSimulator(&Opts{Model: PHAT, ModelColor: Red}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.String(), "Simulated Inky PHAT (Red, Legacy) 212x104"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	img := uniform(s.Bounds(), color.RGBA{255, 0, 0, 255})
	if err := s.DrawAll(img); err != nil {
		t.Fatal(err)
	}
	if s.Pixel(100, 50) != uint8(RedHAT) {
		t.Errorf("red stored as %d", s.Pixel(100, 50))
	}
	if s.Shows() != 1 {
		t.Errorf("shown %d times", s.Shows())
	}
	if err := s.Draw(image.Rect(0, 0, 10, 10), img, image.Point{}); err == nil {
		t.Error("partial Draw() succeeded")
	}

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatal(err)
	}
	out, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if out.Bounds() != s.Bounds() {
		t.Errorf("png is %v", out.Bounds())
	}
	r, g, b, _ := out.At(5, 5).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("png pixel = %d, %d, %d", r>>8, g>>8, b>>8)
	}
}

func TestSimulatorPreviewError(t *testing.T) {
	p := &preview{err: errors.New("closed")}
	s, err := NewSimulator(&Opts{Model: IMPRESSION57, ModelColor: Multi}, p)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Render(); err == nil {
		t.Error("Render() hid the preview error")
	}
	s.SetPreview(nil)
	if err := s.Render(); err != nil {
		t.Error(err)
	}
}
