// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"
)

var _ Display = &Dev{}

// ErrNoConfig is returned by Resolve when neither the EEPROM nor the
// fallback selection describe a usable display.
var ErrNoConfig = errors.New("inky: no usable configuration")

// Display is what callers draw on, a panel or a Simulator.
type Display interface {
	display.Drawer
	Setup() error
	SetPixel(x, y int, v uint8)
	SetBorder(v uint8)
	SetImage(img image.Image, saturation float64) error
	SetSaturation(level float64) error
	Show(busyWait bool) error
	Render() error
}

// Hardware is the set of lines a panel is wired to.
type Hardware struct {
	Port  spi.Port
	DC    gpio.PinOut
	Reset gpio.PinOut
	Busy  gpio.PinIn
	// Optional software chip selects.
	CS0 gpio.PinOut
	CS1 gpio.PinOut
	// Mirror the image, for panels mounted upside down.
	HFlip bool
	VFlip bool
}

// Fallback is the manual selection used when the EEPROM is missing or
// describes a display there is no driver for.
type Fallback struct {
	// Type is one of TypeNames. Empty disables the fallback.
	Type  string
	Color Color
	// Simulate selects a Simulator instead of the hardware.
	Simulate bool
	// Preview receives the frames of a Simulator. Optional.
	Preview display.Drawer

	// Requested resolution. When not zero it must match the detected display.
	Width  int
	Height int
}

// types maps the display type names accepted on the command line to models.
var types = map[string]Model{
	"phat":          PHAT,
	"what":          WHAT,
	"phatssd1608":   PHAT2,
	"whatssd1683":   WHAT2,
	"whatry":        WHAT4,
	"impressions":   IMPRESSION57,
	"7colour":       IMPRESSION57,
	"impressions73": IMPRESSION73,
	"spectra73":     SPECTRA73,
	"spectra133":    SPECTRA133,
}

// TypeNames returns the display types Fallback accepts, sorted.
func TypeNames() []string {
	out := make([]string, 0, len(types))
	for k := range types {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// OptsForType returns the options for a display type name and colour.
//
// The colour is ignored by models sold in a single colour.
func OptsForType(name string, c Color) (*Opts, error) {
	m, ok := types[name]
	if !ok {
		return nil, fmt.Errorf("%w: display type %q", ErrUnsupported, name)
	}
	p, size, err := ProfileFor(m)
	if err != nil {
		return nil, err
	}
	if len(p.Colors) == 1 {
		c = p.Colors[0]
	}
	return &Opts{Width: size.X, Height: size.Y, Model: m, ModelColor: c}, nil
}

// Resolve reads the EEPROM on bus and returns the matching display.
//
// When the EEPROM is absent or its variant is unknown, fb is used instead.
// The returned errors tell apart a missing EEPROM (ErrNotPresent), an
// unknown display (ErrUnsupported) and missing hardware (ErrNoHardware); all
// but the last also match ErrNoConfig.
func Resolve(bus i2c.Bus, hw *Hardware, fb *Fallback) (Display, error) {
	o, err := resolveOpts(bus, fb)
	if err != nil {
		return nil, err
	}
	if fb != nil && (fb.Width != 0 || fb.Height != 0) && (fb.Width != o.Width || fb.Height != o.Height) {
		return nil, fmt.Errorf("%w: requested %dx%d but the display is %dx%d", ErrUnsupported, fb.Width, fb.Height, o.Width, o.Height)
	}
	if fb != nil && fb.Simulate {
		return NewSimulator(o, fb.Preview)
	}
	if hw == nil {
		return nil, ErrNoHardware
	}
	o.CS0 = hw.CS0
	o.CS1 = hw.CS1
	o.HFlip = hw.HFlip
	o.VFlip = hw.VFlip
	return New(hw.Port, hw.DC, hw.Reset, hw.Busy, o)
}

func resolveOpts(bus i2c.Bus, fb *Fallback) (*Opts, error) {
	id, err := ReadIdentity(bus)
	if err == nil {
		o, err := OptsFromIdentity(id)
		if err == nil {
			return o, nil
		}
		if fb == nil || fb.Type == "" {
			return nil, fmt.Errorf("%w: can't find a driver for this display: %w", ErrNoConfig, err)
		}
	} else if fb == nil || fb.Type == "" {
		return nil, fmt.Errorf("%w: you must select the display type manually: %w", ErrNoConfig, err)
	}
	o, err := OptsForType(fb.Type, fb.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoConfig, err)
	}
	return o, nil
}
