// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

const (
	EL673PSR   = 0x00
	EL673PWR   = 0x01
	EL673POF   = 0x02
	EL673POFS  = 0x03
	EL673PON   = 0x04
	EL673BTST1 = 0x05
	EL673BTST2 = 0x06
	EL673DSLP  = 0x07
	EL673BTST3 = 0x08
	EL673DTM1  = 0x10
	EL673DSP   = 0x11
	EL673DRF   = 0x12
	EL673PLL   = 0x30
	EL673CDI   = 0x50
	EL673TCON  = 0x60
	EL673TRES  = 0x61
	EL673REV   = 0x70
	EL673VDCS  = 0x82
	EL673CMDH  = 0xAA
	EL673PWS   = 0xE3
)

const (
	EL133UF1PSR           = 0x00
	EL133UF1PWR           = 0x01
	EL133UF1POF           = 0x02
	EL133UF1PON           = 0x04
	EL133UF1BTSTN         = 0x05
	EL133UF1BTSTP         = 0x06
	EL133UF1DTM           = 0x10
	EL133UF1DRF           = 0x12
	EL133UF1PLL           = 0x30
	EL133UF1CDI           = 0x50
	EL133UF1TCON          = 0x60
	EL133UF1TRES          = 0x61
	EL133UF1ANTM          = 0x74
	EL133UF1AGID          = 0x86
	EL133UF1BuckBoostVDDN = 0xB0
	EL133UF1TFTVCOMPower  = 0xB1
	EL133UF1EnBuf         = 0xB6
	EL133UF1BoostVDDPEn   = 0xB7
	EL133UF1CCSET         = 0xE0
	EL133UF1PWS           = 0xE3
	EL133UF1CMD66         = 0xF0
)

// spectraRemap skips index 4, which is not wired on Spectra 6 controllers.
var spectraRemap = []uint8{
	uint8(BlackSpectra),
	uint8(WhiteSpectra),
	uint8(YellowSpectra),
	uint8(RedSpectra),
	uint8(BlueSpectra),
	uint8(GreenSpectra),
}

func spectraReset(ctrl controller) {
	pulseReset(ctrl, 30*time.Millisecond, 30*time.Millisecond, 300*time.Millisecond)
}

// E673 drives the Spectra 6 Inky Impression 7.3" (EL673 panel).
var E673 = &Profile{
	Name: "E673",
	Geometries: []Geometry{
		{Width: 800, Height: 480, Cols: 800, Rows: 480, ResSelect: 0b01},
	},
	Colors:        []Color{Multi},
	Freq:          1 * physic.MegaHertz,
	mask:          0x07,
	maxIndex:      uint8(GreenSpectra),
	defaultBorder: uint8(WhiteSpectra),
	palette:       func(Color) *Palette { return &spectraPalette },
	remap:         spectraRemap,
	pack:          packSingleNibbles,
	busy:          busyPollLow,
	pollInterval:  100 * time.Millisecond,
	commandDelay:  300 * time.Millisecond,
	reset:         spectraReset,
	init:          e673Init,
	refresh:       e673Refresh,
}

func e673Init(s *settings) []command {
	return []command{
		{op: EL673CMDH, data: []byte{0x49, 0x55, 0x20, 0x08, 0x09, 0x18}},
		{op: EL673PWR, data: []byte{0x3F}},
		{op: EL673PSR, data: []byte{0x5F, 0x69}},
		{op: EL673BTST1, data: []byte{0x40, 0x1F, 0x1F, 0x2C}},
		{op: EL673BTST3, data: []byte{0x6F, 0x1F, 0x1F, 0x22}},
		{op: EL673BTST2, data: []byte{0x6F, 0x1F, 0x17, 0x17}},
		{op: EL673POFS, data: []byte{0x00, 0x54, 0x00, 0x44}},
		{op: EL673TCON, data: []byte{0x02, 0x00}},
		{op: EL673PLL, data: []byte{0x08}},
		{op: EL673CDI, data: []byte{0x3F}},
		{op: EL673TRES, data: []byte{0x03, 0x20, 0x01, 0xE0}},
		{op: EL673PWS, data: []byte{0x2F}},
		{op: EL673VDCS, data: []byte{0x01}},
	}
}

func e673Refresh(s *settings, planes [][]byte, wait bool) []command {
	return []command{
		{op: EL673DTM1, data: planes[0]},
		{op: EL673PON, wait: 300 * time.Millisecond, phase: "power on"},
		// Second setting of the booster, after power on.
		{op: EL673BTST2, data: []byte{0x6F, 0x1F, 0x17, 0x49}},
		{op: EL673DRF, data: []byte{0x00}, wait: 32 * time.Second, phase: "refresh"},
		{op: EL673POF, data: []byte{0x00}, wait: 300 * time.Millisecond, phase: "power off"},
	}
}

// EL133UF1 drives the Spectra 6 Inky Impression 13.3". The panel is made of
// two halves, each behind its own chip select.
var EL133UF1 = &Profile{
	Name: "EL133UF1",
	Geometries: []Geometry{
		{Width: 1600, Height: 1200, Cols: 1200, Rows: 1600, Rotation: -90, ResSelect: 0b01},
	},
	Colors:        []Color{Multi},
	Freq:          10 * physic.MegaHertz,
	ChipSelects:   2,
	mask:          0x07,
	maxIndex:      uint8(GreenSpectra),
	defaultBorder: uint8(WhiteSpectra),
	palette:       func(Color) *Palette { return &spectraPalette },
	remap:         spectraRemap,
	pack:          packHalves,
	busy:          busyPollLow,
	pollInterval:  100 * time.Millisecond,
	commandDelay:  300 * time.Millisecond,
	reset:         spectraReset,
	init:          el133uf1Init,
	refresh:       el133uf1Refresh,
}

func el133uf1Init(s *settings) []command {
	return []command{
		{sel: cs0, op: EL133UF1ANTM, data: []byte{0xC0, 0x1C, 0x1C, 0xCC, 0xCC, 0xCC, 0x15, 0x15, 0x55}},
		{sel: csBoth, op: EL133UF1CMD66, data: []byte{0x49, 0x55, 0x13, 0x5D, 0x05, 0x10}},
		{sel: csBoth, op: EL133UF1PSR, data: []byte{0xDF, 0x69}},
		{sel: csBoth, op: EL133UF1PLL, data: []byte{0x08}},
		{sel: csBoth, op: EL133UF1CDI, data: []byte{0xF7}},
		{sel: csBoth, op: EL133UF1TCON, data: []byte{0x03, 0x03}},
		{sel: csBoth, op: EL133UF1AGID, data: []byte{0x10}},
		{sel: csBoth, op: EL133UF1PWS, data: []byte{0x22}},
		{sel: csBoth, op: EL133UF1CCSET, data: []byte{0x01}},
		{sel: csBoth, op: EL133UF1TRES, data: []byte{0x04, 0xB0, 0x03, 0x20}},
		{sel: cs0, op: EL133UF1PWR, data: []byte{0x0F, 0x00, 0x28, 0x2C, 0x28, 0x38}},
		{sel: cs0, op: EL133UF1EnBuf, data: []byte{0x07}},
		{sel: cs0, op: EL133UF1BTSTP, data: []byte{0xD8, 0x18}},
		{sel: cs0, op: EL133UF1BoostVDDPEn, data: []byte{0x01}},
		{sel: cs0, op: EL133UF1BTSTN, data: []byte{0xD8, 0x18}},
		{sel: cs0, op: EL133UF1BuckBoostVDDN, data: []byte{0x01}},
		{sel: cs0, op: EL133UF1TFTVCOMPower, data: []byte{0x02}},
	}
}

func el133uf1Refresh(s *settings, planes [][]byte, wait bool) []command {
	return []command{
		{sel: cs0, op: EL133UF1DTM, data: planes[0]},
		{sel: cs1, op: EL133UF1DTM, data: planes[1]},
		{sel: csBoth, op: EL133UF1PON, wait: 200 * time.Millisecond, phase: "power on"},
		{sel: csBoth, op: EL133UF1DRF, data: []byte{0x00}, wait: 32 * time.Second, phase: "refresh"},
		{sel: csBoth, op: EL133UF1POF, data: []byte{0x00}, wait: 200 * time.Millisecond, phase: "power off"},
	}
}
