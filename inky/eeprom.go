// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"encoding/binary"
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// EEPROMAddr is the I²C address of the identity EEPROM found on Inky boards.
const EEPROMAddr = 0x50

// identitySize is the length of the record: <u16 width><u16 height><u8
// colour><u8 pcb variant><u8 display variant> followed by a 22 byte Pascal
// string.
const identitySize = 29

// maxWriteTime is the longest timestamp a 22 byte Pascal string can hold.
const maxWriteTime = 21

// ErrNotPresent is returned when no identity EEPROM answers on the bus. Older
// boards ship without one, so callers should treat it as a normal branch.
var ErrNotPresent = errors.New("inky: no EEPROM detected")

var (
	colorNames = [...]string{
		"none",
		"black",
		"red",
		"yellow",
		"multi",
		"7colour",
	}

	displayVariantMap = [...]string{
		"",
		"Red pHAT (High-Temp)",
		"Yellow wHAT",
		"Black wHAT",
		"Black pHAT",
		"Yellow pHAT",
		"Red wHAT",
		"Red wHAT (High-Temp)",
		"Red wHAT",
		"",
		"Black pHAT (SSD1608)",
		"Red pHAT (SSD1608)",
		"Yellow pHAT (SSD1608)",
		"",
		"7-Colour (UC8159)",
		"7-Colour 640x400 (UC8159)",
		"7-Colour 640x400 (UC8159)",
		"Black wHAT (SSD1683)",
		"Red wHAT (SSD1683)",
		"Yellow wHAT (SSD1683)",
		"7-Colour 800x480 (AC073TC1A)",
		"Spectra 6 13.3 1600x1200 (EL133UF1)",
		"Spectra 6 7.3 800x480 (E673)",
		"Red/Yellow wHAT (JD79668)",
	}
)

// Identity is the record stored in the board EEPROM.
type Identity struct {
	Width  uint16
	Height uint16
	// ColorCode indexes the colour names: none, black, red, yellow, multi,
	// 7colour.
	ColorCode uint8
	// PCBVariant is the board revision times ten (12 means 1.2).
	PCBVariant     uint8
	DisplayVariant uint8
	// WriteTime is the free form timestamp recorded when the EEPROM was
	// programmed.
	WriteTime string
}

// ReadIdentity reads and decodes the identity EEPROM.
//
// Any bus error is reported as ErrNotPresent.
func ReadIdentity(bus i2c.Bus) (*Identity, error) {
	if bus == nil {
		return nil, ErrNotPresent
	}
	// Latch address 0, then read the record from there.
	if err := bus.Tx(EEPROMAddr, []byte{0x00, 0x00}, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPresent, err)
	}
	data := make([]byte, identitySize)
	if err := bus.Tx(EEPROMAddr, []byte{0x00}, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotPresent, err)
	}
	return DecodeIdentity(data)
}

// DecodeIdentity parses a raw EEPROM record.
func DecodeIdentity(data []byte) (*Identity, error) {
	if len(data) != identitySize {
		return nil, fmt.Errorf("inky: identity record must be %d bytes, got %d", identitySize, len(data))
	}
	id := &Identity{
		Width:          binary.LittleEndian.Uint16(data[0:]),
		Height:         binary.LittleEndian.Uint16(data[2:]),
		ColorCode:      data[4],
		PCBVariant:     data[5],
		DisplayVariant: data[6],
	}
	n := int(data[7])
	if n > maxWriteTime {
		n = maxWriteTime
	}
	id.WriteTime = string(data[8 : 8+n])
	return id, nil
}

// Encode returns the 29 byte record as stored in the EEPROM. A WriteTime
// longer than 21 characters is truncated.
func (id *Identity) Encode() []byte {
	data := make([]byte, identitySize)
	binary.LittleEndian.PutUint16(data[0:], id.Width)
	binary.LittleEndian.PutUint16(data[2:], id.Height)
	data[4] = id.ColorCode
	data[5] = id.PCBVariant
	data[6] = id.DisplayVariant
	t := id.WriteTime
	if len(t) > maxWriteTime {
		t = t[:maxWriteTime]
	}
	data[7] = byte(len(t))
	copy(data[8:], t)
	return data
}

// ColorName returns the name of the colour code, or "unknown".
func (id *Identity) ColorName() string {
	if int(id.ColorCode) < len(colorNames) {
		return colorNames[id.ColorCode]
	}
	return "unknown"
}

// VariantName returns the human readable display variant, or "unknown".
func (id *Identity) VariantName() string {
	if int(id.DisplayVariant) < len(displayVariantMap) && displayVariantMap[id.DisplayVariant] != "" {
		return displayVariantMap[id.DisplayVariant]
	}
	return "unknown"
}

func (id *Identity) String() string {
	return fmt.Sprintf("Display: %dx%d\nColor: %s\nPCB Variant: %.1f\nDisplay Variant: %s\nTime: %s",
		id.Width, id.Height, id.ColorName(), float64(id.PCBVariant)/10, id.VariantName(), id.WriteTime)
}
