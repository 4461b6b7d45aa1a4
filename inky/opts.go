// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
)

// ErrUnsupported is returned for a model, colour, resolution or EEPROM
// variant this package has no driver for.
var ErrUnsupported = errors.New("inky: unsupported configuration")

// Opts is the options to specify which device is being controlled and its
// default settings.
type Opts struct {
	// Boards's width and height. Leave zero to use the model's native
	// resolution.
	Width  int
	Height int

	// Model being used.
	Model Model
	// Model color.
	ModelColor Color

	// Board information.
	PCBVariant     uint
	DisplayVariant uint

	// Mirror the frame buffer before it is sent to the panel.
	HFlip bool
	VFlip bool

	// Chip selects driven in software. When nil the SPI port's own chip
	// select is used. SPECTRA133 needs both.
	CS0 gpio.PinOut
	CS1 gpio.PinOut
}

// variant is what a display variant code from the EEPROM stands for.
type variant struct {
	model  Model
	color  Color
	width  int
	height int
}

var variants = map[uint8]variant{
	1:  {PHAT, Red, 212, 104},
	2:  {WHAT, Yellow, 400, 300},
	3:  {WHAT, Black, 400, 300},
	4:  {PHAT, Black, 212, 104},
	5:  {PHAT, Yellow, 212, 104},
	6:  {WHAT, Red, 400, 300},
	7:  {WHAT, Red, 400, 300},
	8:  {WHAT, Red, 400, 300},
	10: {PHAT2, Black, 250, 122},
	11: {PHAT2, Red, 250, 122},
	12: {PHAT2, Yellow, 250, 122},
	14: {IMPRESSION57, Multi, 600, 448},
	15: {IMPRESSION4, Multi, 640, 400},
	16: {IMPRESSION4, Multi, 640, 400},
	17: {WHAT2, Black, 400, 300},
	18: {WHAT2, Red, 400, 300},
	19: {WHAT2, Yellow, 400, 300},
	20: {IMPRESSION73, Multi, 800, 480},
	21: {SPECTRA133, Multi, 1600, 1200},
	// 22 and 23 follow the newest boards shipped, not a published table.
	22: {SPECTRA73, Multi, 800, 480},
	23: {WHAT4, RedYellow, 400, 300},
}

// OptsFromIdentity maps a decoded EEPROM record to the options of the
// matching driver.
//
// The display variant alone decides the model, colour and resolution.
func OptsFromIdentity(id *Identity) (*Opts, error) {
	v, ok := variants[id.DisplayVariant]
	if !ok {
		return nil, fmt.Errorf("%w: display variant %d (%s)", ErrUnsupported, id.DisplayVariant, id.VariantName())
	}
	return &Opts{
		Width:          v.width,
		Height:         v.height,
		Model:          v.model,
		ModelColor:     v.color,
		PCBVariant:     uint(id.PCBVariant),
		DisplayVariant: uint(id.DisplayVariant),
	}, nil
}

// DetectOpts tries to read the device opts from EEPROM.
func DetectOpts(bus i2c.Bus) (*Opts, error) {
	id, err := ReadIdentity(bus)
	if err != nil {
		return nil, fmt.Errorf("failed to detect Inky board: %w", err)
	}
	return OptsFromIdentity(id)
}
