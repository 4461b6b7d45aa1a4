// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// grid returns a 3x2 buffer holding 1 to 6, row by row.
func grid() *FrameBuffer {
	return &FrameBuffer{Width: 3, Height: 2, Pix: []uint8{1, 2, 3, 4, 5, 6}}
}

func TestRotate(t *testing.T) {
	for _, tc := range []struct {
		rotation int
		want     *FrameBuffer
	}{
		{0, grid()},
		{360, grid()},
		{90, &FrameBuffer{Width: 2, Height: 3, Pix: []uint8{3, 6, 2, 5, 1, 4}}},
		{-270, &FrameBuffer{Width: 2, Height: 3, Pix: []uint8{3, 6, 2, 5, 1, 4}}},
		{-90, &FrameBuffer{Width: 2, Height: 3, Pix: []uint8{4, 1, 5, 2, 6, 3}}},
		{270, &FrameBuffer{Width: 2, Height: 3, Pix: []uint8{4, 1, 5, 2, 6, 3}}},
		{180, &FrameBuffer{Width: 3, Height: 2, Pix: []uint8{6, 5, 4, 3, 2, 1}}},
	} {
		if diff := cmp.Diff(tc.want, grid().Rotate(tc.rotation)); diff != "" {
			t.Errorf("Rotate(%d) (-want +got):\n%s", tc.rotation, diff)
		}
	}
}

func TestRotateInverse(t *testing.T) {
	for _, r := range []int{90, 180, 270} {
		if diff := cmp.Diff(grid(), grid().Rotate(r).Rotate(-r)); diff != "" {
			t.Errorf("Rotate(%d) is not undone by Rotate(%d):\n%s", r, -r, diff)
		}
	}
}

func TestFlip(t *testing.T) {
	want := &FrameBuffer{Width: 3, Height: 2, Pix: []uint8{3, 2, 1, 6, 5, 4}}
	if diff := cmp.Diff(want, grid().FlipH()); diff != "" {
		t.Errorf("FlipH() (-want +got):\n%s", diff)
	}
	want = &FrameBuffer{Width: 3, Height: 2, Pix: []uint8{4, 5, 6, 1, 2, 3}}
	if diff := cmp.Diff(want, grid().FlipV()); diff != "" {
		t.Errorf("FlipV() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(grid(), grid().FlipH().FlipH()); diff != "" {
		t.Errorf("FlipH() twice:\n%s", diff)
	}
	if diff := cmp.Diff(grid(), grid().FlipV().FlipV()); diff != "" {
		t.Errorf("FlipV() twice:\n%s", diff)
	}
}

func TestWireOrder(t *testing.T) {
	f := grid()
	got := f.WireOrder(true, true, 90)
	// Both flips are a half turn.
	want := &FrameBuffer{Width: 2, Height: 3, Pix: []uint8{4, 1, 5, 2, 6, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("WireOrder() (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(grid(), f); diff != "" {
		t.Errorf("receiver modified:\n%s", diff)
	}
	c := f.WireOrder(false, false, 0)
	c.Fill(9)
	if f.At(0, 0) != 1 {
		t.Error("WireOrder() without changes aliases the receiver")
	}
}

func TestBufferSize(t *testing.T) {
	for _, tc := range []struct {
		p    *Profile
		w, h int
	}{
		{Legacy, 212, 104},
		{SSD1608, 250, 136},
		{SSD1683, 400, 300},
		{UC8159, 600, 448},
		{EL133UF1, 1600, 1200},
	} {
		g := tc.p.Geometries[0]
		w, h := g.bufferSize()
		if w != tc.w || h != tc.h {
			t.Errorf("%s: buffer %dx%d, want %dx%d", tc.p, w, h, tc.w, tc.h)
		}
		r := NewFrameBuffer(w, h).Rotate(g.Rotation)
		if r.Width != g.Cols || r.Height != g.Rows {
			t.Errorf("%s: rotated to %dx%d, want %dx%d", tc.p, r.Width, r.Height, g.Cols, g.Rows)
		}
	}
}

func TestProfileGeometry(t *testing.T) {
	g, err := UC8159.Geometry(640, 400)
	if err != nil {
		t.Fatal(err)
	}
	if g.ResSelect != 0b10 {
		t.Errorf("ResSelect = %#b", g.ResSelect)
	}
	g, err = UC8159.Geometry(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width != 600 || g.Height != 448 {
		t.Errorf("default is %dx%d", g.Width, g.Height)
	}
	if _, err := UC8159.Geometry(800, 480); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Geometry(800, 480) = %v", err)
	}
	if _, _, err := ProfileFor(Model(99)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("ProfileFor(99) = %v", err)
	}
}
