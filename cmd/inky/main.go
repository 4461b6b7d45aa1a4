// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// inky drives a Pimoroni Inky e-paper display.
//
// The display is identified from its EEPROM. Boards without one, or
// displays without a driver, are selected with -type and -colour. With
// -simulate nothing is sent to the hardware.
//
// Usage:
//
//	inky [flags] identify
//	inky [flags] config
//	inky [flags] clean [cycles]
//	inky [flags] stripes
//	inky [flags] image <path>
//	inky [flags] badge [name]
//	inky [flags] clock
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/disintegration/imaging"
	"gopkg.in/yaml.v3"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/inky/inky"
	"github.com/GermanBionicSystems/inky/screen"
)

func mainImpl() error {
	cfgPath := flag.String("config", "", "YAML file describing the wiring")
	typ := flag.String("type", "", "display type when it can't be detected: "+strings.Join(inky.TypeNames(), ", "))
	var colour inky.Color
	flag.Var(&colour, "colour", "display colour when it can't be detected: black, red, yellow, multi or red/yellow")
	simulate := flag.Bool("simulate", false, "render off-screen instead of on the display")
	preview := flag.Bool("preview", false, "print every frame to the terminal")
	out := flag.String("png", "", "with -simulate, save the last frame to this PNG file")
	saturation := flag.Float64("saturation", 0.5, "colour saturation, from 0 to 1")
	border := flag.Int("border", -1, "border colour index, -1 for the default")
	fontPath := flag.String("font", "", "TrueType font file, defaults to the Go font")
	halftone := flag.Bool("halftone", false, "image: reduce to black and white first")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: inky [flags] identify|config|clean|stripes|image|badge|clock [args]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.Lmsgprefix | log.Ltime)
	log.SetPrefix("inky: ")

	if flag.NArg() == 0 {
		flag.Usage()
		return errors.New("no scene given")
	}
	scene, args := flag.Arg(0), flag.Args()[1:]

	cfg, err := Load(*cfgPath)
	if err != nil {
		return err
	}
	if scene == "config" {
		return writeConfig(*cfgPath, cfg)
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	bus, closeBus := openBus(cfg)
	defer closeBus()

	if scene == "identify" {
		id, err := inky.ReadIdentity(bus)
		if err != nil {
			return err
		}
		fmt.Println(id)
		if _, err := inky.OptsFromIdentity(id); err != nil {
			fmt.Println("No driver for this display.")
		}
		return nil
	}

	fb := &inky.Fallback{Type: *typ, Color: colour, Simulate: *simulate}
	var hw *inky.Hardware
	if !*simulate {
		var closeHW func()
		if hw, closeHW, err = openHardware(cfg); err != nil {
			return err
		}
		defer closeHW()
	}
	d, err := inky.Resolve(bus, hw, fb)
	if err != nil {
		if errors.Is(err, inky.ErrNoConfig) {
			return fmt.Errorf("%w; select the display with -type and -colour", err)
		}
		return err
	}
	defer d.Halt()
	log.Printf("using %s", d)

	if err := d.SetSaturation(*saturation); err != nil {
		return err
	}
	if *border >= 0 {
		d.SetBorder(uint8(*border))
	}
	sim, _ := d.(*inky.Simulator)
	if sim != nil && *preview {
		sim.SetPreview(screen.New(&screen.Opts{X: d.Bounds().Dx(), Y: d.Bounds().Dy()}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := runScene(ctx, d, cfg, scene, args, *fontPath, *halftone); err != nil {
		return err
	}
	if sim != nil && *out != "" {
		return sim.SavePNG(*out)
	}
	return nil
}

func runScene(ctx context.Context, d inky.Display, cfg *Config, scene string, args []string, fontPath string, halftone bool) error {
	in := inksOf(d)
	b := d.Bounds()
	show := func(img image.Image) error {
		return d.Draw(b, img, image.Point{})
	}
	switch scene {
	case "clean":
		cycles := 3
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("invalid cycle count %q", args[0])
			}
			cycles = n
		}
		frames := cleanFrames(b, in)
		for i := 0; i < cycles; i++ {
			for j, f := range frames {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Printf("clean: cycle %d, frame %d of %d", i+1, j+1, len(frames))
				if err := show(f); err != nil {
					return err
				}
			}
		}
		return nil

	case "stripes":
		return show(stripes(b, in))

	case "image":
		if len(args) != 1 {
			return errors.New("image: expected one path")
		}
		img, err := imaging.Open(args[0], imaging.AutoOrientation(true))
		if err != nil {
			return err
		}
		return show(fitImage(img, b, halftone))

	case "badge", "hello":
		f, err := loadFonts(fontPath)
		if err != nil {
			return err
		}
		name := "Inky"
		if len(args) > 0 {
			name = strings.Join(args, " ")
		}
		return show(badge(b, in, f, name))

	case "clock":
		f, err := loadFonts(fontPath)
		if err != nil {
			return err
		}
		return runClock(ctx, d, in, f, cfg.Clock, time.Now)
	}
	return fmt.Errorf("unknown scene %q", scene)
}

func writeConfig(path string, cfg *Config) error {
	if path != "" {
		return Save(path, cfg)
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(b)
	return err
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "inky: %s.\n", err)
		os.Exit(1)
	}
}
