// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

// Commands shared by the SSD1608 and SSD1683.
const (
	driverOutputControl = 0x01
	deepSleepMode       = 0x10
	dataEntryMode       = 0x11
	swReset             = 0x12
	masterActivation    = 0x20
	displayUpdateCtrl2  = 0x22
	writeRAMBW          = 0x24
	writeRAMAccent      = 0x26
	writeVCOM           = 0x2C
	writeLUT            = 0x32
	setDummyLinePeriod  = 0x3A
	setGateLineWidth    = 0x3B
	borderWaveform      = 0x3C
	setRAMXPos          = 0x44
	setRAMYPos          = 0x45
	setRAMXCount        = 0x4E
	setRAMYCount        = 0x4F
)

var ssd1608LUT = []byte{
	0x02, 0x02, 0x01, 0x11, 0x12, 0x12, 0x22, 0x22, 0x66, 0x69,
	0x69, 0x59, 0x58, 0x99, 0x99, 0x88, 0x00, 0x00, 0x00, 0x00,
	0xF8, 0xB4, 0x13, 0x51, 0x35, 0x51, 0x51, 0x19, 0x01, 0x00,
}

// SSD1608 drives the second revision of the pHAT.
var SSD1608 = &Profile{
	Name: "SSD1608",
	Geometries: []Geometry{
		{Width: 250, Height: 122, Cols: 136, Rows: 250, Rotation: -90, OffsetY: 6},
	},
	Colors:        []Color{Black, Red, Yellow},
	Freq:          488 * physic.KiloHertz,
	mask:          0x03,
	maxIndex:      uint8(RedHAT),
	filter:        true,
	defaultBorder: uint8(WhiteHAT),
	palette:       hatPalette,
	pack:          packPlanes,
	busy:          busyPollHigh,
	pollInterval:  10 * time.Millisecond,
	reset: func(ctrl controller) {
		ssdReset(ctrl, 5*time.Second)
	},
	init: func(s *settings) []command {
		return ssdInit(s, ssd1608LUT)
	},
	refresh: func(s *settings, planes [][]byte, wait bool) []command {
		return ssdRefresh(planes, wait, 5*time.Second)
	},
}

// SSD1683 drives the second revision of the wHAT.
var SSD1683 = &Profile{
	Name: "SSD1683",
	Geometries: []Geometry{
		{Width: 400, Height: 300, Cols: 400, Rows: 300},
	},
	Colors:        []Color{Black, Red, Yellow},
	Freq:          10 * physic.MegaHertz,
	mask:          0x03,
	maxIndex:      uint8(RedHAT),
	filter:        true,
	defaultBorder: uint8(WhiteHAT),
	palette:       hatPalette,
	pack:          packPlanes,
	busy:          busyFallingEdge,
	reset: func(ctrl controller) {
		ssdReset(ctrl, 30*time.Second)
	},
	init: func(s *settings) []command {
		// The waveform in OTP is used.
		return ssdInit(s, nil)
	},
	refresh: func(s *settings, planes [][]byte, wait bool) []command {
		return ssdRefresh(planes, wait, 30*time.Second)
	},
}

func ssdReset(ctrl controller, timeout time.Duration) {
	pulseReset(ctrl, 500*time.Millisecond, 500*time.Millisecond, 0)
	// The controller misses the first RAM write without the second.
	run(ctrl, []command{{op: swReset, pause: time.Second, wait: timeout, phase: "reset"}})
}

func ssdInit(s *settings, lut []byte) []command {
	rows := s.geometry.Rows - 1
	seq := []command{
		{op: driverOutputControl, data: []byte{byte(rows), byte(rows >> 8), 0x00}},
		{op: setDummyLinePeriod, data: []byte{0x1B}},
		{op: setGateLineWidth, data: []byte{0x0B}},
		// X/Y increment.
		{op: dataEntryMode, data: []byte{0x03}},
		{op: setRAMXPos, data: []byte{0x00, byte(s.geometry.Cols/8 - 1)}},
		{op: setRAMYPos, data: []byte{0x00, 0x00, byte(rows), byte(rows >> 8)}},
		{op: writeVCOM, data: []byte{0x70}},
	}
	if lut != nil {
		seq = append(seq, command{op: writeLUT, data: lut})
	}
	if b, ok := ssdBorder(s); ok {
		seq = append(seq, command{op: borderWaveform, data: []byte{b}})
	}
	return seq
}

// ssdBorder returns the border waveform for the requested border. The
// accent is only honoured on a panel of that colour.
func ssdBorder(s *settings) (byte, bool) {
	switch {
	case s.border == uint8(BlackHAT):
		// GS Transition + Waveform 00 + GSA 0 + GSB 0
		return 0b00000000, true
	case s.border == uint8(RedHAT) && s.color == Red:
		// GS Transition + Waveform 01 + GSA 1 + GSB 0
		return 0b00000110, true
	case s.border == uint8(YellowHAT) && s.color == Yellow:
		// GS Transition + Waveform 11 + GSA 1 + GSB 1
		return 0b00001111, true
	case s.border == uint8(WhiteHAT):
		// GS Transition + Waveform 00 + GSA 0 + GSB 1
		return 0b00000001, true
	}
	return 0, false
}

func ssdRefresh(planes [][]byte, wait bool, timeout time.Duration) []command {
	seq := []command{
		{op: setRAMXCount, data: []byte{0x00}},
		{op: setRAMYCount, data: []byte{0x00, 0x00}},
		{op: writeRAMBW, data: planes[0]},
		{op: writeRAMAccent, data: planes[1], wait: timeout, phase: "transmit"},
		{op: masterActivation},
	}
	if wait {
		seq[len(seq)-1].wait = timeout
		seq[len(seq)-1].phase = "refresh"
	}
	return seq
}
