// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen implements a display.Drawer that outputs to terminal
// (stdout) using ANSI color codes.
//
// Useful to preview a frame while the e-paper panel takes its time to
// refresh, or when there is no panel at all.
package screen

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	// Size of the canvas being emulated.
	X int
	Y int
	// Columns is the terminal width used for the preview. Defaults to 80.
	Columns int
	Palette *ansi256.Palette
	// W receives the escape sequences. Defaults to a colour capable stdout.
	W io.Writer

	_ struct{}
}

// Dev is a terminal emulator for a 2D display.
type Dev struct {
	w       io.Writer
	bounds  image.Rectangle
	columns int
	palette ansi256.Palette

	img *image.NRGBA
	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	cols := opts.Columns
	if cols <= 0 {
		cols = 80
	}
	d := &Dev{
		w:       w,
		bounds:  image.Rect(0, 0, opts.X, opts.Y),
		columns: cols,
		palette: *p,
		img:     image.NewNRGBA(image.Rect(0, 0, opts.X, opts.Y)),
	}
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen(%dx%d)", d.bounds.Dx(), d.bounds.Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal colours so it is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.bounds
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(d.img, r.Intersect(d.bounds), src, sp, draw.Src)
	_, err := d.refresh()
	return err
}

// Size returns the number of character cells a refresh prints.
func (d *Dev) Size() (int, int) {
	w, h := d.bounds.Dx(), d.bounds.Dy()
	if w == 0 || h == 0 {
		return 0, 0
	}
	cols := d.columns
	if cols > w {
		cols = w
	}
	// Character cells are about twice as high as wide.
	rows := (h*cols/w + 1) / 2
	if rows == 0 {
		rows = 1
	}
	return cols, rows
}

func (d *Dev) refresh() (int, error) {
	cols, rows := d.Size()
	if cols == 0 {
		return 0, nil
	}
	small := imaging.Resize(d.img, cols, rows, imaging.Box)
	d.buf.Reset()
	for y := 0; y < rows; y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for x := 0; x < cols; x++ {
			_, _ = io.WriteString(&d.buf, d.palette.Block(small.NRGBAAt(x, y)))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	n, err := d.buf.WriteTo(d.w)
	return int(n), err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
