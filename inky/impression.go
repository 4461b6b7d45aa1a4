// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

const (
	UC8159PSR   = 0x00
	UC8159PWR   = 0x01
	UC8159POF   = 0x02
	UC8159PFS   = 0x03
	UC8159PON   = 0x04
	UC8159BTST  = 0x06
	UC8159DSLP  = 0x07
	UC8159DTM1  = 0x10
	UC8159DSP   = 0x11
	UC8159DRF   = 0x12
	UC8159IPC   = 0x13
	UC8159PLL   = 0x30
	UC8159TSC   = 0x40
	UC8159TSE   = 0x41
	UC8159TSW   = 0x42
	UC8159TSR   = 0x43
	UC8159CDI   = 0x50
	UC8159LPD   = 0x51
	UC8159TCON  = 0x60
	UC8159TRES  = 0x61
	UC8159DAM   = 0x65
	UC8159REV   = 0x70
	UC8159FLG   = 0x71
	UC8159AMV   = 0x80
	UC8159VV    = 0x81
	UC8159VDCS  = 0x82
	UC8159PWS   = 0xE3
	UC8159TSSET = 0xE5
)

const (
	AC073TC1PSR   = 0x00
	AC073TC1PWR   = 0x01
	AC073TC1POF   = 0x02
	AC073TC1POFS  = 0x03
	AC073TC1PON   = 0x04
	AC073TC1BTST1 = 0x05
	AC073TC1BTST2 = 0x06
	AC073TC1DSLP  = 0x07
	AC073TC1BTST3 = 0x08
	AC073TC1DTM   = 0x10
	AC073TC1DRF   = 0x12
	AC073TC1IPC   = 0x13
	AC073TC1PLL   = 0x30
	AC073TC1TSE   = 0x41
	AC073TC1CDI   = 0x50
	AC073TC1TCON  = 0x60
	AC073TC1TRES  = 0x61
	AC073TC1VDCS  = 0x82
	AC073TC1TVDCS = 0x84
	AC073TC1AGID  = 0x86
	AC073TC1CMDH  = 0xAA
	AC073TC1CCSET = 0xE0
	AC073TC1PWS   = 0xE3
	AC073TC1TSSET = 0xE6
)

// UC8159 drives the 7 colour Inky Impression 4" and 5.7".
var UC8159 = &Profile{
	Name: "UC8159",
	Geometries: []Geometry{
		{Width: 600, Height: 448, Cols: 600, Rows: 448, ResSelect: 0b11},
		{Width: 640, Height: 400, Cols: 640, Rows: 400, ResSelect: 0b10},
	},
	Colors:        []Color{Multi},
	Freq:          3000 * physic.KiloHertz,
	mask:          0x07,
	maxIndex:      uint8(CleanImpression),
	defaultBorder: uint8(WhiteImpression),
	palette:       func(Color) *Palette { return &impressionPalette },
	pack:          packSingleNibbles,
	busy:          busyRisingEdge,
	reset: func(ctrl controller) {
		pulseReset(ctrl, 100*time.Millisecond, 100*time.Millisecond, time.Second)
	},
	init:    uc8159Init,
	refresh: uc8159Refresh,
}

func uc8159Init(s *settings) []command {
	g := s.geometry
	return []command{
		// Resolution Setting
		// 10bit horizontal followed by a 10bit vertical resolution
		{op: UC8159TRES, data: []byte{byte(g.Width >> 8), byte(g.Width), byte(g.Height >> 8), byte(g.Height)}},
		// Panel Setting
		// 0b11000000 = Resolution select, 0b00 = 640x480, our panel is 0b11 = 600x448
		// 0b00100000 = LUT selection, 0 = ext flash, 1 = registers, we use ext flash
		// 0b00010000 = Ignore
		// 0b00001000 = Gate scan direction, 0 = down, 1 = up (default)
		// 0b00000100 = Source shift direction, 0 = left, 1 = right (default)
		// 0b00000010 = DC-DC converter, 0 = off, 1 = on
		// 0b00000001 = Soft reset, 0 = Reset, 1 = Normal (Default)
		{op: UC8159PSR, data: []byte{
			g.ResSelect<<6 | 0b101111,
			0x08, // display_colours == UC81597C
		}},
		// Power Settings
		{op: UC8159PWR, data: []byte{
			(0x06 << 3) | // ??? - not documented in UC8159 datasheet
				(0x01 << 2) | // SOURCE_INTERNAL_DC_DC
				(0x01 << 1) | // GATE_INTERNAL_DC_DC
				(0x01), // LV_SOURCE_INTERNAL_DC_DC
			0x00, // VGx_20V
			0x23, // UC81597C
			0x23, // UC81597C
		}},
		// Set the PLL clock frequency to 50Hz
		// 0b11000000 = Ignore
		// 0b00111000 = M
		// 0b00000111 = N
		// PLL = 2MHz * (M / N)
		{op: UC8159PLL, data: []byte{0x3C}},
		{op: UC8159TSE, data: []byte{0x00}},
		// VCOM and Data Interval setting
		// 0b11100000 = Vborder control (0b001 = LUTB voltage)
		// 0b00010000 = Data polarity
		// 0b00001111 = Vcom and data interval (0b0111 = 10, default)
		{op: UC8159CDI, data: []byte{(s.border&0x07)<<5 | 0x17}},
		// Gate/Source non-overlap period
		// 0b11110000 = Source to Gate (0b0010 = 12nS, default)
		// 0b00001111 = Gate to Source
		{op: UC8159TCON, data: []byte{0x22}},
		// Disable external flash
		{op: UC8159DAM, data: []byte{0x00}},
		// UC81597C
		{op: UC8159PWS, data: []byte{0xAA}},
		// Power off sequence
		// 0b00110000 = power off sequence of VDH and VDL, 0b00 = 1 frame (default)
		{op: UC8159PFS, data: []byte{0x00}},
	}
}

func uc8159Refresh(s *settings, planes [][]byte, wait bool) []command {
	return []command{
		{op: UC8159DTM1, data: planes[0]},
		{op: UC8159PON, wait: 200 * time.Millisecond, phase: "power on"},
		{op: UC8159DRF, wait: 32 * time.Second, phase: "refresh"},
		{op: UC8159POF, wait: 200 * time.Millisecond, phase: "power off"},
	}
}

// AC073TC1A drives the 7 colour Inky Impression 7.3".
var AC073TC1A = &Profile{
	Name: "AC073TC1A",
	Geometries: []Geometry{
		{Width: 800, Height: 480, Cols: 800, Rows: 480, ResSelect: 0b11},
	},
	Colors:        []Color{Multi},
	Freq:          5 * physic.MegaHertz,
	mask:          0x07,
	maxIndex:      uint8(CleanImpression),
	defaultBorder: uint8(WhiteImpression),
	palette:       func(Color) *Palette { return &ac073Palette },
	// The panel shows clean as a muddy grey, so it is sent as white.
	wireMap: []uint8{0, 1, 2, 3, 4, 5, 6, 1},
	pack:    packSingleNibbles,
	busy:    busyRisingEdge,
	reset: func(ctrl controller) {
		ctrl.resetOut(gpio.Low)
		ctrl.sleep(100 * time.Millisecond)
		ctrl.resetOut(gpio.High)
		ctrl.sleep(100 * time.Millisecond)
		ctrl.resetOut(gpio.Low)
		ctrl.sleep(100 * time.Millisecond)
		ctrl.resetOut(gpio.High)
		ctrl.waitUntilIdle("reset", time.Second)
	},
	init:    ac073tc1aInit,
	refresh: ac073tc1aRefresh,
}

func ac073tc1aInit(s *settings) []command {
	return []command{
		{op: AC073TC1CMDH, data: []byte{0x49, 0x55, 0x20, 0x08, 0x09, 0x18}},
		{op: AC073TC1PWR, data: []byte{0x3F, 0x00, 0x32, 0x2A, 0x0E, 0x2A}},
		{op: AC073TC1PSR, data: []byte{0x5F, 0x69}},
		{op: AC073TC1POFS, data: []byte{0x00, 0x54, 0x00, 0x44}},
		{op: AC073TC1BTST1, data: []byte{0x40, 0x1F, 0x1F, 0x2C}},
		{op: AC073TC1BTST2, data: []byte{0x6F, 0x1F, 0x16, 0x25}},
		{op: AC073TC1BTST3, data: []byte{0x6F, 0x1F, 0x1F, 0x22}},
		{op: AC073TC1IPC, data: []byte{0x00, 0x04}},
		{op: AC073TC1PLL, data: []byte{0x02}},
		{op: AC073TC1TSE, data: []byte{0x00}},
		{op: AC073TC1CDI, data: []byte{0x3F}},
		{op: AC073TC1TCON, data: []byte{0x02, 0x00}},
		{op: AC073TC1TRES, data: []byte{0x03, 0x20, 0x01, 0xE0}},
		{op: AC073TC1VDCS, data: []byte{0x1E}},
		{op: AC073TC1TVDCS, data: []byte{0x00}},
		{op: AC073TC1AGID, data: []byte{0x00}},
		{op: AC073TC1PWS, data: []byte{0x2F}},
		{op: AC073TC1CCSET, data: []byte{0x00}},
		{op: AC073TC1TSSET, data: []byte{0x00}},
	}
}

func ac073tc1aRefresh(s *settings, planes [][]byte, wait bool) []command {
	return []command{
		{op: AC073TC1DTM, data: planes[0]},
		{op: AC073TC1PON, wait: 400 * time.Millisecond, phase: "power on"},
		{op: AC073TC1DRF, data: []byte{0x00}, wait: 45 * time.Second, phase: "refresh"},
		{op: AC073TC1POF, data: []byte{0x00}, wait: 400 * time.Millisecond, phase: "power off"},
	}
}
