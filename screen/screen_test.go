// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/maruel/ansi256"
)

func TestSize(t *testing.T) {
	for _, tc := range []struct {
		o          Opts
		cols, rows int
	}{
		{Opts{X: 600, Y: 448, Columns: 100}, 100, 37},
		{Opts{X: 10, Y: 4}, 10, 2},
		{Opts{X: 1600, Y: 1200}, 80, 30},
		{Opts{X: 400, Y: 1}, 80, 1},
		{Opts{}, 0, 0},
	} {
		d := New(&Opts{X: tc.o.X, Y: tc.o.Y, Columns: tc.o.Columns, W: &bytes.Buffer{}})
		if c, r := d.Size(); c != tc.cols || r != tc.rows {
			t.Errorf("%v: Size() = %d, %d, want %d, %d", d, c, r, tc.cols, tc.rows)
		}
	}
}

func TestDraw(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{X: 20, Y: 8, Columns: 10, W: &buf})
	if d.String() != "Screen(20x8)" {
		t.Errorf("String() = %q", d)
	}
	img := image.NewNRGBA(d.Bounds())
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.NRGBA{255, 0, 0, 255}}, image.Point{}, draw.Src)
	if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	block := ansi256.Default.Block(color.NRGBA{255, 0, 0, 255})
	want := "\r\033[0m" + strings.Repeat(block, 10) + "\033[0m"
	for i, l := range lines {
		if l != want {
			t.Errorf("line %d = %q, want %q", i, l, want)
		}
	}

	buf.Reset()
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "\033[0m\n" {
		t.Errorf("Halt() wrote %q", buf.String())
	}
}

func TestDrawEmpty(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{W: &buf})
	if err := d.Draw(d.Bounds(), image.NewNRGBA(image.Rect(0, 0, 4, 4)), image.Point{}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %q", buf.String())
	}
}
