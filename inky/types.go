// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

//go:generate go install golang.org/x/tools/cmd/stringer@latest
//go:generate stringer -type=Model,Color,ImpressionColor -output types_string.go

import (
	"fmt"
)

// Model lists the supported e-ink display models.
type Model int

// Supported Model.
const (
	PHAT Model = iota
	WHAT
	PHAT2
	IMPRESSION4
	IMPRESSION57
	IMPRESSION73
	WHAT2
	WHAT4
	SPECTRA73
	SPECTRA133
)

// Set sets the Model to a value represented by the string s. Set implements the flag.Value interface.
func (m *Model) Set(s string) error {
	switch s {
	case "PHAT":
		*m = PHAT
	case "PHAT2":
		*m = PHAT2
	case "WHAT":
		*m = WHAT
	case "WHAT2":
		*m = WHAT2
	case "WHAT4":
		*m = WHAT4
	case "IMPRESSION4":
		*m = IMPRESSION4
	case "IMPRESSION57":
		*m = IMPRESSION57
	case "IMPRESSION73":
		*m = IMPRESSION73
	case "SPECTRA73":
		*m = SPECTRA73
	case "SPECTRA133":
		*m = SPECTRA133
	default:
		return fmt.Errorf("unknown model %q: expected PHAT, PHAT2, WHAT, WHAT2, WHAT4, IMPRESSION4, IMPRESSION57, IMPRESSION73, SPECTRA73 or SPECTRA133", s)
	}
	return nil
}

// Color is the colour variant of a panel, as printed on the board.
type Color int

// Valid Color.
const (
	Black Color = iota
	Red
	Yellow
	Multi
	RedYellow
)

// Set sets the Color to a value represented by the string s. Set implements the flag.Value interface.
func (c *Color) Set(s string) error {
	switch s {
	case "black":
		*c = Black
	case "red":
		*c = Red
	case "yellow":
		*c = Yellow
	case "multi", "7colour":
		*c = Multi
	case "red/yellow":
		*c = RedYellow
	default:
		return fmt.Errorf("unknown color %q: expected either black, red, yellow, multi or red/yellow", s)
	}
	return nil
}

// HATColor is a native colour index of the black/white/accent pHAT and wHAT
// panels. The accent is either red or yellow depending on the panel.
type HATColor uint8

const (
	WhiteHAT HATColor = 0
	BlackHAT HATColor = 1
	RedHAT   HATColor = 2
	// YellowHAT shares the accent slot with RedHAT.
	YellowHAT HATColor = 2
)

// ImpressionColor is used to define colors used by Inky Impression models.
type ImpressionColor uint8

const (
	BlackImpression ImpressionColor = iota
	WhiteImpression
	GreenImpression
	BlueImpression
	RedImpression
	YellowImpression
	OrangeImpression
	CleanImpression
)

// Set sets the ImpressionColor to a value represented by the string s. Set implements the flag.Value interface.
func (c *ImpressionColor) Set(s string) error {
	switch s {
	case "black":
		*c = BlackImpression
	case "white":
		*c = WhiteImpression
	case "green":
		*c = GreenImpression
	case "blue":
		*c = BlueImpression
	case "red":
		*c = RedImpression
	case "yellow":
		*c = YellowImpression
	case "orange":
		*c = OrangeImpression
	case "clean":
		*c = CleanImpression
	default:
		return fmt.Errorf("unknown color %q: expected either black, white. green, blue, red, yellow, orange or clean", s)
	}
	return nil
}

// SpectraColor is a native colour index of the Spectra 6 panels.
//
// Index 4 is not wired on these controllers.
type SpectraColor uint8

const (
	BlackSpectra  SpectraColor = 0
	WhiteSpectra  SpectraColor = 1
	YellowSpectra SpectraColor = 2
	RedSpectra    SpectraColor = 3
	BlueSpectra   SpectraColor = 5
	GreenSpectra  SpectraColor = 6
)

// RYColor is a native colour index of the four colour red/yellow wHAT.
type RYColor uint8

const (
	BlackRY RYColor = iota
	WhiteRY
	YellowRY
	RedRY
)
