// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// busyMode is how a controller reports that it is working.
type busyMode int

const (
	// Line goes high when done; waited on with a rising edge.
	busyRisingEdge busyMode = iota
	// Line is high while working; waited on with a falling edge.
	busyFallingEdge
	// Line is high while working; polled.
	busyPollHigh
	// Line is low while working; polled. A line already high is taken as
	// not connected.
	busyPollLow
)

func (b busyMode) pin() (gpio.Pull, gpio.Edge) {
	switch b {
	case busyRisingEdge:
		return gpio.PullDown, gpio.RisingEdge
	case busyFallingEdge:
		return gpio.Float, gpio.FallingEdge
	case busyPollLow:
		return gpio.PullUp, gpio.NoEdge
	}
	return gpio.Float, gpio.NoEdge
}

// Profile describes one controller chip: its geometry table, palette, wire
// format and register sequences. The driver state machine is shared by all
// profiles.
type Profile struct {
	// Name of the controller chip.
	Name string
	// Geometries lists the supported resolutions, the first one being the
	// default.
	Geometries []Geometry
	// Colors lists the panel colours the controller is sold with.
	Colors []Color
	// SPI clock.
	Freq physic.Frequency
	// ChipSelects is the number of software chip select lines required.
	ChipSelects int

	// mask limits the bits kept by SetPixel.
	mask uint8
	// maxIndex is the highest index SetBorder accepts.
	maxIndex uint8
	// filter makes SetPixel ignore masked values above maxIndex instead of
	// storing them.
	filter bool
	// defaultBorder is the border index right after construction.
	defaultBorder uint8

	palette func(c Color) *Palette
	// remap maps the sequential quantizer output to native indices.
	remap []uint8
	// requantize forces indexed images through the pure colour palette.
	requantize bool
	// wireMap is applied to native indices right before packing.
	wireMap []uint8
	pack    func(fb *FrameBuffer) [][]byte

	busy         busyMode
	pollInterval time.Duration
	// commandDelay is slept after selecting the chip, before each opcode.
	commandDelay time.Duration

	reset   func(ctrl controller)
	init    func(s *settings) []command
	refresh func(s *settings, planes [][]byte, wait bool) []command
}

func (p *Profile) String() string {
	return p.Name
}

// Geometry returns the geometry for the w×h resolution. Zero selects the
// default resolution.
func (p *Profile) Geometry(w, h int) (Geometry, error) {
	if w == 0 && h == 0 {
		return p.Geometries[0], nil
	}
	for _, g := range p.Geometries {
		if g.Width == w && g.Height == h {
			return g, nil
		}
	}
	return Geometry{}, fmt.Errorf("%w: resolution %dx%d not supported by %s", ErrUnsupported, w, h, p.Name)
}

// supports reports whether c is a colour this controller is sold with.
func (p *Profile) supports(c Color) bool {
	for _, pc := range p.Colors {
		if pc == c {
			return true
		}
	}
	return false
}

// models maps each model to its controller and native resolution.
var models = map[Model]struct {
	profile *Profile
	size    image.Point
}{
	PHAT:         {Legacy, image.Pt(212, 104)},
	WHAT:         {Legacy, image.Pt(400, 300)},
	PHAT2:        {SSD1608, image.Pt(250, 122)},
	WHAT2:        {SSD1683, image.Pt(400, 300)},
	WHAT4:        {JD79668, image.Pt(400, 300)},
	IMPRESSION4:  {UC8159, image.Pt(640, 400)},
	IMPRESSION57: {UC8159, image.Pt(600, 448)},
	IMPRESSION73: {AC073TC1A, image.Pt(800, 480)},
	SPECTRA73:    {E673, image.Pt(800, 480)},
	SPECTRA133:   {EL133UF1, image.Pt(1600, 1200)},
}

// ProfileFor returns the controller of a model and its native resolution.
func ProfileFor(m Model) (*Profile, image.Point, error) {
	e, ok := models[m]
	if !ok {
		return nil, image.Point{}, fmt.Errorf("%w: model %v", ErrUnsupported, m)
	}
	return e.profile, e.size, nil
}
