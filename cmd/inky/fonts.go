// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fonts holds the TrueType fonts the scenes draw with.
type fonts struct {
	regular *truetype.Font
	bold    *truetype.Font
}

// loadFonts parses the Go fonts, or the TrueType file at path for both
// weights when path is set.
func loadFonts(path string) (*fonts, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		f, err := truetype.Parse(b)
		if err != nil {
			return nil, err
		}
		return &fonts{regular: f, bold: f}, nil
	}
	r, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	b, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}
	return &fonts{regular: r, bold: b}, nil
}

// face returns a face of f at size points, for a 72 DPI canvas.
func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull})
}
