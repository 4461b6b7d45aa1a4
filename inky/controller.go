// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// chipSelect is a bit mask of the chip select lines a command goes to. The
// zero value means the only (first) one.
type chipSelect uint8

const (
	cs0    chipSelect = 1
	cs1    chipSelect = 2
	csBoth            = cs0 | cs1
)

type controller interface {
	resetOut(l gpio.Level)
	sendCommand(sel chipSelect, cmd byte, data []byte)
	waitUntilIdle(phase string, timeout time.Duration)
	sleep(d time.Duration)
}

// command is one register write and what has to happen after it.
type command struct {
	sel  chipSelect
	op   byte
	data []byte
	// pause is a plain delay after the write.
	pause time.Duration
	// wait is the busy line budget after the write. Zero skips the wait.
	wait  time.Duration
	phase string
}

// settings is the part of the driver state a register sequence depends on.
type settings struct {
	geometry Geometry
	color    Color
	border   uint8
	variant  uint
}

func run(ctrl controller, seq []command) {
	for _, c := range seq {
		ctrl.sendCommand(c.sel, c.op, c.data)
		if c.pause > 0 {
			ctrl.sleep(c.pause)
		}
		if c.wait > 0 {
			ctrl.waitUntilIdle(c.phase, c.wait)
		}
	}
}

// pulseReset holds the reset line low, then high, then waits on the busy
// line when wait is not zero.
func pulseReset(ctrl controller, low, high time.Duration, wait time.Duration) {
	ctrl.resetOut(gpio.Low)
	ctrl.sleep(low)
	ctrl.resetOut(gpio.High)
	ctrl.sleep(high)
	if wait > 0 {
		ctrl.waitUntilIdle("reset", wait)
	}
}
