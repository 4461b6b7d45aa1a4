// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

const (
	JD79668PSR   = 0x00
	JD79668PWR   = 0x01
	JD79668POF   = 0x02
	JD79668POFS  = 0x03
	JD79668PON   = 0x04
	JD79668BTSTP = 0x06
	JD79668DSLP  = 0x07
	JD79668DTM   = 0x10
	JD79668DRF   = 0x12
	JD79668CDI   = 0x50
	JD79668TCON  = 0x60
	JD79668TRES  = 0x61
	JD79668PWS   = 0xE3
)

// jd79668Timeout is the busy budget of every phase.
const jd79668Timeout = 40 * time.Second

// JD79668 drives the four colour (black, white, yellow, red) wHAT.
var JD79668 = &Profile{
	Name: "JD79668",
	Geometries: []Geometry{
		{Width: 400, Height: 300, Cols: 400, Rows: 300, ResSelect: 0b01},
	},
	Colors:        []Color{RedYellow},
	Freq:          1 * physic.MegaHertz,
	mask:          0x03,
	maxIndex:      uint8(RedRY),
	filter:        true,
	defaultBorder: uint8(WhiteRY),
	palette:       func(Color) *Palette { return &ryPalette },
	requantize:    true,
	pack:          packSingle2bpp,
	busy:          busyPollLow,
	pollInterval:  100 * time.Millisecond,
	commandDelay:  300 * time.Millisecond,
	reset: func(ctrl controller) {
		ctrl.resetOut(gpio.Low)
		ctrl.sleep(30 * time.Millisecond)
		ctrl.resetOut(gpio.High)
		ctrl.sleep(30 * time.Millisecond)
	},
	init:    jd79668Init,
	refresh: jd79668Refresh,
}

func jd79668Init(s *settings) []command {
	return []command{
		{op: 0x4D, data: []byte{0x78}},
		{op: JD79668PSR, data: []byte{0x0F, 0x29}},
		{op: JD79668BTSTP, data: []byte{0x0D, 0x12, 0x24, 0x25, 0x12, 0x29, 0x10}},
		{op: 0x30, data: []byte{0x08}},
		{op: JD79668CDI, data: []byte{0x37}},
		{op: JD79668TRES, data: []byte{0x01, 0x90, 0x01, 0x2C}},
		{op: 0xAE, data: []byte{0xCF}},
		{op: 0xB0, data: []byte{0x13}},
		{op: 0xBD, data: []byte{0x07}},
		{op: 0xBE, data: []byte{0xFE}},
		{op: 0xE9, data: []byte{0x01}},
	}
}

func jd79668Refresh(s *settings, planes [][]byte, wait bool) []command {
	return []command{
		{op: JD79668DTM, data: planes[0]},
		{op: JD79668PON, wait: jd79668Timeout, phase: "power on"},
		{op: JD79668DRF, data: []byte{0x00}, wait: jd79668Timeout, phase: "refresh"},
		{op: JD79668POF, data: []byte{0x00}, wait: jd79668Timeout, phase: "power off"},
		{op: JD79668DSLP, data: []byte{0xA5}, wait: jd79668Timeout, phase: "deep sleep"},
	}
}
