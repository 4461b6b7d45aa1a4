// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	"github.com/MaxHalford/halfgone"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/robfig/cron/v3"
	"golang.org/x/image/font"

	"github.com/GermanBionicSystems/inky/inky"
)

// inks are the colours a scene draws with, taken from the panel palette so
// that they are shown without dithering.
type inks struct {
	pal    color.Palette
	paper  color.Color
	ink    color.Color
	accent color.Color
}

func inksOf(d inky.Display) *inks {
	pal, _ := d.ColorModel().(color.Palette)
	if len(pal) == 0 {
		pal = color.Palette{color.White, color.Black}
	}
	return &inks{
		pal:    pal,
		paper:  pal.Convert(color.White),
		ink:    pal.Convert(color.Black),
		accent: pal.Convert(color.RGBA{255, 0, 0, 255}),
	}
}

func solid(b image.Rectangle, c color.Color) *image.RGBA {
	img := image.NewRGBA(b)
	draw.Draw(img, b, image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// cleanFrames returns one solid frame per distinct colour of the palette,
// then a blank one. Cycling through them clears ghosting.
func cleanFrames(b image.Rectangle, in *inks) []image.Image {
	var out []image.Image
	seen := map[color.RGBA]bool{}
	for _, c := range in.pal {
		k := color.RGBAModel.Convert(c).(color.RGBA)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, solid(b, c))
	}
	return append(out, solid(b, in.paper))
}

// stripes returns one vertical band per palette entry.
func stripes(b image.Rectangle, in *inks) image.Image {
	w, h := b.Dx(), b.Dy()
	dc := gg.NewContext(w, h)
	n := len(in.pal)
	for i, c := range in.pal {
		x0 := i * w / n
		x1 := (i + 1) * w / n
		dc.SetColor(c)
		dc.DrawRectangle(float64(x0), 0, float64(x1-x0), float64(h))
		dc.Fill()
	}
	return dc.Image()
}

// fitSize returns the largest size, up to maxH, at which s is at most maxW
// wide.
func fitSize(f *truetype.Font, s string, maxW, maxH float64) float64 {
	size := maxH
	for size > 6 {
		if float64(font.MeasureString(face(f, size), s).Ceil()) <= maxW {
			break
		}
		size *= 0.9
	}
	return size
}

// badge draws a "Hello my name is" sticker.
func badge(b image.Rectangle, in *inks, f *fonts, name string) image.Image {
	w, h := float64(b.Dx()), float64(b.Dy())
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.SetColor(in.paper)
	dc.Clear()

	top := h * 0.38
	dc.SetColor(in.accent)
	dc.DrawRectangle(0, 0, w, top)
	dc.Fill()

	dc.SetColor(in.paper)
	dc.SetFontFace(face(f.bold, fitSize(f.bold, "Hello", w*0.8, top*0.5)))
	dc.DrawStringAnchored("Hello", w/2, top*0.35, 0.5, 0.5)
	dc.SetFontFace(face(f.regular, fitSize(f.regular, "my name is", w*0.8, top*0.22)))
	dc.DrawStringAnchored("my name is", w/2, top*0.78, 0.5, 0.5)

	dc.SetColor(in.ink)
	dc.SetFontFace(face(f.bold, fitSize(f.bold, name, w*0.9, (h-top)*0.6)))
	dc.DrawStringAnchored(name, w/2, top+(h-top)/2, 0.5, 0.5)
	return dc.Image()
}

// clockFrame draws the time of t, and its date underneath.
func clockFrame(b image.Rectangle, in *inks, f *fonts, t time.Time) image.Image {
	w, h := float64(b.Dx()), float64(b.Dy())
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.SetColor(in.paper)
	dc.Clear()

	hm := t.Format("15:04")
	dc.SetColor(in.ink)
	dc.SetFontFace(face(f.bold, fitSize(f.bold, hm, w*0.8, h*0.5)))
	dc.DrawStringAnchored(hm, w/2, h*0.4, 0.5, 0.5)

	date := t.Format("Monday 2 January 2006")
	dc.SetColor(in.accent)
	dc.SetFontFace(face(f.regular, fitSize(f.regular, date, w*0.9, h*0.14)))
	dc.DrawStringAnchored(date, w/2, h*0.8, 0.5, 0.5)
	return dc.Image()
}

// fitImage crops img to fill b. With halftone, the result is reduced to
// black and white by error diffusion.
func fitImage(img image.Image, b image.Rectangle, halftone bool) image.Image {
	fit := imaging.Fill(img, b.Dx(), b.Dy(), imaging.Center, imaging.Lanczos)
	if !halftone {
		return fit
	}
	gray := image.NewGray(fit.Bounds())
	draw.Draw(gray, gray.Bounds(), fit, image.Point{}, draw.Src)
	return halfgone.FloydSteinbergDitherer{}.Apply(gray)
}

// runClock redraws the clock on schedule until ctx is done.
func runClock(ctx context.Context, d inky.Display, in *inks, f *fonts, schedule string, now func() time.Time) error {
	show := func() {
		if err := d.Draw(d.Bounds(), clockFrame(d.Bounds(), in, f, now()), image.Point{}); err != nil {
			log.Printf("clock: %v", err)
		}
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(schedule, show); err != nil {
		return err
	}
	show()
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
