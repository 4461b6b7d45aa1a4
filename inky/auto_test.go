// Copyright 2023 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func eepromWith(variant uint8) *i2ctest.Playback {
	id := &Identity{PCBVariant: 12, DisplayVariant: variant}
	return &i2ctest.Playback{Ops: identityOps(id.Encode())}
}

func noEEPROM() *i2ctest.Playback {
	return &i2ctest.Playback{DontPanic: true}
}

func TestTypeNames(t *testing.T) {
	want := []string{
		"7colour", "impressions", "impressions73", "phat", "phatssd1608",
		"spectra133", "spectra73", "what", "whatry", "whatssd1683",
	}
	if diff := cmp.Diff(want, TypeNames()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestOptsForType(t *testing.T) {
	for _, tc := range []struct {
		name string
		c    Color
		want Opts
	}{
		{"phat", Yellow, Opts{Width: 212, Height: 104, Model: PHAT, ModelColor: Yellow}},
		{"what", Black, Opts{Width: 400, Height: 300, Model: WHAT, ModelColor: Black}},
		{"7colour", Red, Opts{Width: 600, Height: 448, Model: IMPRESSION57, ModelColor: Multi}},
		{"whatry", Black, Opts{Width: 400, Height: 300, Model: WHAT4, ModelColor: RedYellow}},
		{"spectra133", Multi, Opts{Width: 1600, Height: 1200, Model: SPECTRA133, ModelColor: Multi}},
	} {
		got, err := OptsForType(tc.name, tc.c)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if diff := cmp.Diff(&tc.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.name, diff)
		}
	}
	if _, err := OptsForType("inkypi", Black); !errors.Is(err, ErrUnsupported) {
		t.Errorf("OptsForType(inkypi) = %v", err)
	}
}

func TestResolveEEPROM(t *testing.T) {
	bus := eepromWith(22)
	d, err := Resolve(bus, nil, &Fallback{Type: "phat", Simulate: true})
	if err != nil {
		t.Fatal(err)
	}
	s, ok := d.(*Simulator)
	if !ok {
		t.Fatalf("got %T", d)
	}
	// The EEPROM wins over the fallback.
	if s.Model() != SPECTRA73 || s.Profile() != E673 {
		t.Errorf("got %v", s)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestResolveHardware(t *testing.T) {
	r := newRig(0)
	hw := &Hardware{Port: r.port, DC: r.dc, Reset: r.rst, Busy: r.busy, VFlip: true}
	d, err := Resolve(eepromWith(17), hw, nil)
	if err != nil {
		t.Fatal(err)
	}
	dev, ok := d.(*Dev)
	if !ok {
		t.Fatalf("got %T", d)
	}
	if dev.Model() != WHAT2 || dev.color != Black || dev.variant != 17 || !dev.vFlip || dev.hFlip {
		t.Errorf("got %v variant %d", dev, dev.variant)
	}
	if r.port.freq != SSD1683.Freq {
		t.Errorf("connected at %v", r.port.freq)
	}
}

func TestResolveFallback(t *testing.T) {
	for _, tc := range []struct {
		name  string
		bus   *i2ctest.Playback
		fb    *Fallback
		model Model
	}{
		{"no eeprom", noEEPROM(), &Fallback{Type: "whatssd1683", Color: Red, Simulate: true}, WHAT2},
		{"unknown variant", eepromWith(13), &Fallback{Type: "whatry", Simulate: true}, WHAT4},
		{"size", noEEPROM(), &Fallback{Type: "impressions", Simulate: true, Width: 600, Height: 448}, IMPRESSION57},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Resolve(tc.bus, nil, tc.fb)
			if err != nil {
				t.Fatal(err)
			}
			if m := d.(*Simulator).Model(); m != tc.model {
				t.Errorf("model = %v, want %v", m, tc.model)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	r := newRig(0)
	for _, tc := range []struct {
		name string
		bus  *i2ctest.Playback
		hw   *Hardware
		fb   *Fallback
		want []error
	}{
		{"no eeprom", noEEPROM(), nil, nil, []error{ErrNoConfig, ErrNotPresent}},
		{"no eeprom, empty fallback", noEEPROM(), nil, &Fallback{Simulate: true}, []error{ErrNoConfig, ErrNotPresent}},
		{"unknown variant", eepromWith(13), nil, nil, []error{ErrNoConfig, ErrUnsupported}},
		{"bad type", noEEPROM(), nil, &Fallback{Type: "inkypi"}, []error{ErrNoConfig, ErrUnsupported}},
		{"wrong size", eepromWith(14), nil, &Fallback{Width: 640, Height: 400, Simulate: true}, []error{ErrUnsupported}},
		{"no hardware", eepromWith(14), nil, nil, []error{ErrNoHardware}},
		{"missing pin", eepromWith(14), &Hardware{Port: r.port, DC: r.dc, Busy: r.busy}, nil, []error{ErrNoHardware}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(tc.bus, tc.hw, tc.fb)
			for _, w := range tc.want {
				if !errors.Is(err, w) {
					t.Errorf("Resolve() = %v, want %v", err, w)
				}
			}
		})
	}
}
