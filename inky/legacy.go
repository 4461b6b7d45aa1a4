// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

// Commands only the original pHAT and wHAT controller knows about.
const (
	gateDrivingVoltage   = 0x03
	sourceDrivingVoltage = 0x04
	analogBlockControl   = 0x74
	digitalBlockControl  = 0x7E
)

// legacyTimeout bounds the busy waits of the original controller, which
// has no documented worst case.
const legacyTimeout = 30 * time.Second

// Waveform tables. The first 35 bytes drive the phases of each transition,
// the following 35 bytes are the phase timings.
var (
	legacyBlackLUT = []byte{
		0x48, 0xA0, 0x10, 0x10, 0x13, 0x00, 0x00,
		0x48, 0xA0, 0x80, 0x00, 0x03, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x48, 0xA5, 0x00, 0xBB, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x10, 0x04, 0x04, 0x04, 0x04,
		0x10, 0x04, 0x04, 0x04, 0x04,
		0x04, 0x08, 0x08, 0x10, 0x10,
		0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00,
	}
	legacyRedLUT = []byte{
		0x48, 0xA0, 0x10, 0x10, 0x13, 0x00, 0x00,
		0x48, 0xA0, 0x80, 0x00, 0x03, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x48, 0xA5, 0x00, 0xBB, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x40, 0x0C, 0x20, 0x0C, 0x06,
		0x10, 0x08, 0x04, 0x04, 0x06,
		0x04, 0x08, 0x08, 0x10, 0x10,
		0x02, 0x02, 0x02, 0x40, 0x20,
		0x02, 0x02, 0x02, 0x02, 0x02,
		0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00,
	}
	// legacyRedHTLUT is the red waveform for the high temperature panels.
	legacyRedHTLUT = []byte{
		0x48, 0xA0, 0x10, 0x10, 0x13, 0x10, 0x10,
		0x48, 0xA0, 0x80, 0x00, 0x03, 0x80, 0x80,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x48, 0xA5, 0x00, 0xBB, 0x00, 0x48, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x43, 0x0A, 0x1F, 0x0A, 0x04,
		0x10, 0x08, 0x04, 0x04, 0x06,
		0x04, 0x08, 0x08, 0x10, 0x0B,
		0x02, 0x04, 0x04, 0x40, 0x10,
		0x06, 0x06, 0x06, 0x02, 0x02,
		0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00,
	}
	legacyYellowLUT = []byte{
		0xFA, 0x94, 0x8C, 0xC0, 0xD0, 0x00, 0x00,
		0xFA, 0x94, 0x2C, 0x80, 0xE0, 0x00, 0x00,
		0xFA, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xFA, 0x94, 0xF8, 0x80, 0x50, 0x00, 0xCC,
		0xBF, 0x58, 0xFC, 0x80, 0xD0, 0x00, 0x11,
		0x40, 0x10, 0x40, 0x10, 0x08,
		0x08, 0x10, 0x04, 0x04, 0x10,
		0x08, 0x08, 0x03, 0x08, 0x20,
		0x08, 0x04, 0x00, 0x00, 0x10,
		0x10, 0x08, 0x08, 0x00, 0x20,
		0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00,
	}
)

// Legacy drives the original pHAT and wHAT.
var Legacy = &Profile{
	Name: "Legacy",
	Geometries: []Geometry{
		{Width: 212, Height: 104, Cols: 104, Rows: 212, Rotation: -90},
		{Width: 400, Height: 300, Cols: 400, Rows: 300},
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
		pulseReset(ctrl, 100*time.Millisecond, 100*time.Millisecond, 0)
		run(ctrl, []command{{op: swReset, wait: legacyTimeout, phase: "reset"}})
	},
	init:    legacyInit,
	refresh: legacyRefresh,
}

// legacyLUT returns the waveform matching the panel colour and variant.
func legacyLUT(s *settings) []byte {
	switch s.color {
	case Red:
		if s.variant == 1 || s.variant == 6 {
			return legacyRedHTLUT
		}
		return legacyRedLUT
	case Yellow:
		return legacyYellowLUT
	}
	return legacyBlackLUT
}

func legacyInit(s *settings) []command {
	rows := []byte{byte(s.geometry.Rows), byte(s.geometry.Rows >> 8)}
	seq := []command{
		{op: analogBlockControl, data: []byte{0x54}},
		{op: digitalBlockControl, data: []byte{0x3B}},
		// Gate setting
		{op: driverOutputControl, data: []byte{rows[0], rows[1], 0x00}},
		{op: gateDrivingVoltage, data: []byte{0x17}},
		{op: sourceDrivingVoltage, data: []byte{0x41, 0xAC, 0x32}},
		{op: setDummyLinePeriod, data: []byte{0x07}},
		{op: setGateLineWidth, data: []byte{0x04}},
		// X/Y increment.
		{op: dataEntryMode, data: []byte{0x03}},
		{op: writeVCOM, data: []byte{0x3C}},
		{op: borderWaveform, data: []byte{0x00}},
	}
	switch {
	case s.border == uint8(BlackHAT):
		// GS Transition Define A + VSS + LUT0
		seq = append(seq, command{op: borderWaveform, data: []byte{0b00000000}})
	case s.border == uint8(RedHAT) && s.color == Red:
		// Fix Level Define A + VSH2 + LUT3
		seq = append(seq, command{op: borderWaveform, data: []byte{0b01110011}})
	case s.border == uint8(YellowHAT) && s.color == Yellow:
		// GS Transition Define A + VSH2 + LUT3
		seq = append(seq, command{op: borderWaveform, data: []byte{0b00110011}})
	case s.border == uint8(WhiteHAT):
		// GS Transition Define A + VSH2 + LUT1
		seq = append(seq, command{op: borderWaveform, data: []byte{0b00110001}})
	}
	switch {
	case s.color == Yellow:
		seq = append(seq, command{op: sourceDrivingVoltage, data: []byte{0x07, 0xAC, 0x32}})
	case s.color == Red && s.geometry.Width == 400 && s.geometry.Height == 300:
		seq = append(seq, command{op: sourceDrivingVoltage, data: []byte{0x30, 0xAC, 0x22}})
	}
	return append(seq,
		command{op: writeLUT, data: legacyLUT(s)},
		command{op: setRAMXPos, data: []byte{0x00, byte(s.geometry.Cols/8 - 1)}},
		command{op: setRAMYPos, data: []byte{0x00, 0x00, rows[0], rows[1]}},
	)
}

func legacyRefresh(s *settings, planes [][]byte, wait bool) []command {
	seq := []command{
		{op: setRAMXCount, data: []byte{0x00}},
		{op: setRAMYCount, data: []byte{0x00, 0x00}},
		{op: writeRAMBW, data: planes[0]},
		{op: setRAMXCount, data: []byte{0x00}},
		{op: setRAMYCount, data: []byte{0x00, 0x00}},
		{op: writeRAMAccent, data: planes[1]},
		{op: displayUpdateCtrl2, data: []byte{0xC7}},
		{op: masterActivation, pause: 50 * time.Millisecond},
	}
	if wait {
		seq[len(seq)-1].wait = legacyTimeout
		seq[len(seq)-1].phase = "refresh"
		seq = append(seq, command{op: deepSleepMode, data: []byte{0x01}})
	}
	return seq
}
