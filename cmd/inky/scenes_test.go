// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"image"
	"image/color"
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/GermanBionicSystems/inky/inky"
)

func simulator(t *testing.T, m inky.Model, c inky.Color) *inky.Simulator {
	t.Helper()
	s, err := inky.NewSimulator(&inky.Opts{Model: m, ModelColor: c}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func testFonts(t *testing.T) *fonts {
	t.Helper()
	f, err := loadFonts("")
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// count returns how many pixels of the canvas are exactly c.
func count(img *image.RGBA, c color.Color) int {
	want := color.RGBAModel.Convert(c).(color.RGBA)
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestInks(t *testing.T) {
	s := simulator(t, inky.WHAT, inky.Red)
	in := inksOf(s)
	if in.paper != (color.RGBA{255, 255, 255, 255}) || in.ink != (color.RGBA{0, 0, 0, 255}) || in.accent != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("got paper %v, ink %v, accent %v", in.paper, in.ink, in.accent)
	}
	in = inksOf(simulator(t, inky.WHAT, inky.Black))
	if in.accent != in.ink {
		t.Errorf("black panel accent = %v", in.accent)
	}
}

func TestCleanFrames(t *testing.T) {
	for _, tc := range []struct {
		m    inky.Model
		c    inky.Color
		want int
	}{
		// White, black and the accent, then white.
		{inky.PHAT, inky.Red, 4},
		{inky.PHAT, inky.Black, 3},
		// Clean is white.
		{inky.IMPRESSION57, inky.Multi, 8},
		{inky.SPECTRA73, inky.Multi, 7},
	} {
		s := simulator(t, tc.m, tc.c)
		frames := cleanFrames(s.Bounds(), inksOf(s))
		if len(frames) != tc.want {
			t.Errorf("%v %v: %d frames, want %d", tc.m, tc.c, len(frames), tc.want)
		}
		if err := s.Draw(s.Bounds(), frames[len(frames)-1], image.Point{}); err != nil {
			t.Fatal(err)
		}
		if n := count(s.Canvas(), inksOf(s).paper); n != s.Width()*s.Height() {
			t.Errorf("%v %v: last frame is not blank", tc.m, tc.c)
		}
	}
}

func TestStripes(t *testing.T) {
	s := simulator(t, inky.SPECTRA73, inky.Multi)
	in := inksOf(s)
	if err := s.Draw(s.Bounds(), stripes(s.Bounds(), in), image.Point{}); err != nil {
		t.Fatal(err)
	}
	c := s.Canvas()
	band := s.Width() / len(in.pal)
	for i, want := range in.pal {
		x := i*band + band/2
		if got := c.RGBAAt(x, s.Height()/2); got != want {
			t.Errorf("band %d = %v, want %v", i, got, want)
		}
	}
}

func TestBadge(t *testing.T) {
	s := simulator(t, inky.WHAT, inky.Red)
	in := inksOf(s)
	img := badge(s.Bounds(), in, testFonts(t), "Gopher")
	if img.Bounds() != s.Bounds() {
		t.Fatalf("badge is %v", img.Bounds())
	}
	if err := s.Draw(s.Bounds(), img, image.Point{}); err != nil {
		t.Fatal(err)
	}
	c := s.Canvas()
	if got := c.RGBAAt(2, 2); got != in.accent {
		t.Errorf("banner = %v", got)
	}
	if n := count(c, in.paper); n < s.Width()*s.Height()/3 {
		t.Errorf("only %d pixels of background", n)
	}
	if count(c, in.ink) == 0 {
		t.Error("name not drawn")
	}
}

func TestFitSize(t *testing.T) {
	f := testFonts(t)
	small := fitSize(f.bold, "a much longer name than fits", 100, 50)
	big := fitSize(f.bold, "Al", 100, 50)
	if big != 50 {
		t.Errorf("short text shrunk to %v", big)
	}
	if small >= big {
		t.Errorf("long text not shrunk: %v", small)
	}
}

func TestClockFrame(t *testing.T) {
	s := simulator(t, inky.PHAT2, inky.Yellow)
	in := inksOf(s)
	at := time.Date(2024, 3, 9, 13, 37, 0, 0, time.UTC)
	img := clockFrame(s.Bounds(), in, testFonts(t), at)
	if err := s.Draw(s.Bounds(), img, image.Point{}); err != nil {
		t.Fatal(err)
	}
	c := s.Canvas()
	if count(c, in.ink) == 0 || count(c, in.accent) == 0 {
		t.Error("time or date not drawn")
	}
}

func TestRunClock(t *testing.T) {
	s := simulator(t, inky.WHAT2, inky.Black)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	now := func() time.Time { return time.Date(2024, 3, 9, 13, 37, 0, 0, time.UTC) }
	if err := runClock(ctx, s, inksOf(s), testFonts(t), "*/5 * * * *", now); err != nil {
		t.Fatal(err)
	}
	if s.Shows() != 1 {
		t.Errorf("shown %d times, want 1", s.Shows())
	}
	if err := runClock(ctx, s, inksOf(s), testFonts(t), "often", now); err == nil {
		t.Error("invalid schedule accepted")
	}
}

func TestFitImage(t *testing.T) {
	b := image.Rect(0, 0, 40, 20)
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for i := range src.Pix {
		src.Pix[i] = 0x80
	}
	img := fitImage(src, b, false)
	if img.Bounds() != b {
		t.Errorf("fit to %v", img.Bounds())
	}
	g, ok := fitImage(src, b, true).(*image.Gray)
	if !ok {
		t.Fatal("halftone is not grey")
	}
	for _, v := range g.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("halftone has level %d", v)
		}
	}
}

func TestLookupPins(t *testing.T) {
	pins := map[string]gpio.PinIO{}
	for _, n := range []string{"22", "27", "17", "8", "7"} {
		pins[n] = &gpiotest.Pin{N: n}
	}
	byName := func(name string) gpio.PinIO {
		return pins[name]
	}
	cfg := DefaultConfig()
	hw, err := lookupPins(cfg, byName)
	if err != nil {
		t.Fatal(err)
	}
	if hw.DC != pins["22"] || hw.Reset != pins["27"] || hw.Busy != pins["17"] || hw.CS0 != nil {
		t.Errorf("got %+v", hw)
	}
	cfg.CS0, cfg.CS1 = "8", "7"
	if hw, err = lookupPins(cfg, byName); err != nil {
		t.Fatal(err)
	}
	if hw.CS0 != pins["8"] || hw.CS1 != pins["7"] {
		t.Errorf("got %+v", hw)
	}
	cfg.Busy = "4"
	if _, err := lookupPins(cfg, byName); err == nil {
		t.Error("unknown pin accepted")
	}
}
