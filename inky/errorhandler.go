// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler is a wrapper for error management. It drives the real pins
// and SPI connection of a Dev and keeps the first error.
type errorHandler struct {
	d   *Dev
	err error
}

func (eh *errorHandler) resetOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.rst.Out(l)
}

func (eh *errorHandler) cTx(w []byte) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.c.Tx(w, nil)
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.dc.Out(l)
}

// csOut drives the chip select lines picked by sel. Nothing happens when
// the SPI port handles chip select itself.
func (eh *errorHandler) csOut(sel chipSelect, l gpio.Level) {
	if sel == 0 {
		sel = cs0
	}
	for i, p := range eh.d.cs {
		if p == nil || sel&(1<<uint(i)) == 0 {
			continue
		}
		if eh.err != nil {
			return
		}
		eh.err = p.Out(l)
	}
}

func (eh *errorHandler) sleep(d time.Duration) {
	if eh.err != nil {
		return
	}
	eh.d.sleep(d)
}

func (eh *errorHandler) waitUntilIdle(phase string, timeout time.Duration) {
	if eh.err != nil {
		return
	}
	w, err := eh.d.waitBusy(phase, timeout)
	if err != nil {
		eh.err = err
		return
	}
	if w != nil {
		eh.d.warn(w)
	}
}

// sendCommand writes cmd with DC low, then data with DC high, all within
// one chip select assertion. data is split in chunks the port can take.
func (eh *errorHandler) sendCommand(sel chipSelect, cmd byte, data []byte) {
	if eh.err != nil {
		return
	}

	eh.csOut(sel, gpio.Low)
	eh.dcOut(gpio.Low)
	if eh.d.profile.commandDelay > 0 {
		eh.sleep(eh.d.profile.commandDelay)
	}
	eh.cTx([]byte{cmd})
	if len(data) != 0 {
		eh.dcOut(gpio.High)
		for len(data) != 0 {
			n := len(data)
			if n > eh.d.maxTxSize {
				n = eh.d.maxTxSize
			}
			eh.cTx(data[:n])
			data = data[n:]
		}
	}
	eh.csOut(sel, gpio.High)
	eh.dcOut(gpio.Low)
}
