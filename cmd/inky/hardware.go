// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3/ftdi"

	"github.com/GermanBionicSystems/inky/inky"
)

// openBus opens the I²C bus the EEPROM is on. A missing bus is not an
// error: the display is then selected manually.
func openBus(cfg *Config) (i2c.Bus, func()) {
	if cfg.Transport != "host" {
		// The FT232H shares its MPSSE engine between SPI and I²C.
		return nil, func() {}
	}
	b, err := i2creg.Open(cfg.I2C)
	if err != nil {
		log.Printf("no I²C bus, the EEPROM can't be read: %v", err)
		return nil, func() {}
	}
	return b, func() { b.Close() }
}

// openHardware opens the SPI port and looks up the pins named in cfg.
func openHardware(cfg *Config) (*inky.Hardware, func(), error) {
	var port spi.PortCloser
	var byName func(name string) gpio.PinIO
	switch cfg.Transport {
	case "host":
		p, err := spireg.Open(cfg.SPI)
		if err != nil {
			return nil, nil, err
		}
		port = p
		byName = gpioreg.ByName
	case "ftdi":
		all := ftdi.All()
		if len(all) == 0 {
			return nil, nil, errors.New("found no FTDI device on the USB bus")
		}
		ft, ok := all[0].(*ftdi.FT232H)
		if !ok {
			return nil, nil, fmt.Errorf("%s is not a FT232H", all[0])
		}
		p, err := ft.SPI()
		if err != nil {
			return nil, nil, err
		}
		port = p
		byName = func(name string) gpio.PinIO {
			for _, h := range ft.Header() {
				if h.Name() == name {
					return h
				}
			}
			return nil
		}
	default:
		return nil, nil, fmt.Errorf("unknown transport %q", cfg.Transport)
	}
	closePort := func() { port.Close() }

	hw, err := lookupPins(cfg, byName)
	if err != nil {
		closePort()
		return nil, nil, err
	}
	hw.Port = port
	return hw, closePort, nil
}

// lookupPins returns the Hardware with every pin of cfg resolved by byName.
func lookupPins(cfg *Config, byName func(name string) gpio.PinIO) (*inky.Hardware, error) {
	get := func(role, name string) (gpio.PinIO, error) {
		if p := byName(name); p != nil {
			return p, nil
		}
		return nil, fmt.Errorf("%s pin %q not found", role, name)
	}
	hw := &inky.Hardware{HFlip: cfg.HFlip, VFlip: cfg.VFlip}
	dc, err := get("dc", cfg.DC)
	if err != nil {
		return nil, err
	}
	rst, err := get("reset", cfg.Reset)
	if err != nil {
		return nil, err
	}
	busy, err := get("busy", cfg.Busy)
	if err != nil {
		return nil, err
	}
	hw.DC, hw.Reset, hw.Busy = dc, rst, busy
	if cfg.CS0 != "" {
		p, err := get("cs0", cfg.CS0)
		if err != nil {
			return nil, err
		}
		hw.CS0 = p
	}
	if cfg.CS1 != "" {
		p, err := get("cs1", cfg.CS1)
		if err != nil {
			return nil, err
		}
		hw.CS1 = p
	}
	return hw, nil
}
