// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// BusyTimeout is reported when the busy line did not release in time.
//
// It is never returned by Show or Setup: the panel is left to finish on its
// own and the driver proceeds. Use Dev.Warnings to inspect the ones raised by
// the last Show.
type BusyTimeout struct {
	// Phase is the step that was waited on, e.g. "refresh".
	Phase string
	// Timeout is the budget that elapsed.
	Timeout time.Duration
	// HeldHigh is set when the line was already high before the wait started
	// and the full budget was slept instead.
	HeldHigh bool
}

func (b *BusyTimeout) Error() string {
	if b.HeldHigh {
		return fmt.Sprintf("inky: busy wait (%s): held high, waited %s", b.Phase, b.Timeout)
	}
	return fmt.Sprintf("inky: busy wait (%s): timed out after %s", b.Phase, b.Timeout)
}

// waitBusy blocks until the controller reports idle or timeout elapses.
func (d *Dev) waitBusy(phase string, timeout time.Duration) (*BusyTimeout, error) {
	switch d.profile.busy {
	case busyRisingEdge:
		d.drainEdges()
		if d.busy.Read() == gpio.High {
			// Pulled up by the host: no signal from the panel.
			d.sleep(timeout)
			return &BusyTimeout{Phase: phase, Timeout: timeout, HeldHigh: true}, nil
		}
		if !d.busy.WaitForEdge(timeout) {
			return &BusyTimeout{Phase: phase, Timeout: timeout}, nil
		}
		return nil, nil

	case busyFallingEdge:
		d.drainEdges()
		if d.busy.Read() == gpio.Low {
			return nil, nil
		}
		if !d.busy.WaitForEdge(timeout) {
			return &BusyTimeout{Phase: phase, Timeout: timeout}, nil
		}
		return nil, nil

	case busyPollHigh:
		return d.poll(phase, timeout, gpio.High), nil

	case busyPollLow:
		if d.busy.Read() == gpio.High {
			// Pulled up by the host: no signal from the panel.
			d.sleep(timeout)
			return nil, nil
		}
		return d.poll(phase, timeout, gpio.Low), nil
	}
	return nil, fmt.Errorf("inky: unknown busy mode %d", d.profile.busy)
}

// drainEdges discards edges latched during earlier phases so that the next
// WaitForEdge only sees the end of the current one.
func (d *Dev) drainEdges() {
	for i := 0; i < maxStaleEdges && d.busy.WaitForEdge(0); i++ {
	}
}

// maxStaleEdges bounds drainEdges on a noisy line.
const maxStaleEdges = 64

// poll sleeps while the busy line reads busy.
func (d *Dev) poll(phase string, timeout time.Duration, busy gpio.Level) *BusyTimeout {
	interval := d.profile.pollInterval
	if interval == 0 {
		interval = 10 * time.Millisecond
	}
	start := d.now()
	for d.busy.Read() == busy {
		d.sleep(interval)
		if d.now().Sub(start) >= timeout {
			return &BusyTimeout{Phase: phase, Timeout: timeout}
		}
	}
	return nil
}
