// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// Config is the wiring of the panel, as found in the YAML file passed with
// -config.
type Config struct {
	// Transport is "host" for the SoC buses and pins, or "ftdi" for the
	// first FT232H found on USB.
	Transport string `yaml:"transport"`
	// SPI is the port name, e.g. "SPI0.0". Ignored with the ftdi transport.
	SPI string `yaml:"spi"`
	// I2C is the bus the identity EEPROM is on. Empty for the default bus.
	I2C string `yaml:"i2c"`
	// Pin names, as known to gpioreg or printed on the FT232H header.
	DC    string `yaml:"dc"`
	Reset string `yaml:"reset"`
	Busy  string `yaml:"busy"`
	// Software chip selects. Empty leaves chip select to the SPI port.
	CS0 string `yaml:"cs0,omitempty"`
	CS1 string `yaml:"cs1,omitempty"`

	HFlip bool `yaml:"hflip,omitempty"`
	VFlip bool `yaml:"vflip,omitempty"`

	// Clock is the cron schedule of the clock scene.
	Clock string `yaml:"clock"`
}

// DefaultConfig returns the wiring of a HAT on a Raspberry Pi header.
func DefaultConfig() *Config {
	return &Config{
		Transport: "host",
		SPI:       "SPI0.0",
		DC:        "22",
		Reset:     "27",
		Busy:      "17",
		Clock:     "*/5 * * * *",
	}
}

// Normalize fills in missing values with the defaults.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Transport == "" {
		c.Transport = d.Transport
	}
	if c.SPI == "" {
		c.SPI = d.SPI
	}
	if c.DC == "" {
		c.DC = d.DC
	}
	if c.Reset == "" {
		c.Reset = d.Reset
	}
	if c.Busy == "" {
		c.Busy = d.Busy
	}
	if c.Clock == "" {
		c.Clock = d.Clock
	}
}

// Validate reports the first setting that can not be used.
func (c *Config) Validate() error {
	switch c.Transport {
	case "host", "ftdi":
	default:
		return fmt.Errorf("unknown transport %q: expected host or ftdi", c.Transport)
	}
	if c.CS0 == "" && c.CS1 != "" {
		return errors.New("cs1 is set without cs0")
	}
	if _, err := cron.ParseStandard(c.Clock); err != nil {
		return fmt.Errorf("invalid clock schedule %q: %w", c.Clock, err)
	}
	return nil
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes cfg to path, through a temporary file in the same directory.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	cfg.Normalize()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".inky-config-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
