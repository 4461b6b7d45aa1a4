// Copyright 2019 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package inky

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
var _ draw.Image = &Dev{}

var (
	// ErrNoHardware is returned when the SPI port or one of the pins is
	// missing.
	ErrNoHardware = errors.New("inky: no SPI port or GPIO available")
	// ErrImageSize is returned when an image does not match the panel.
	ErrImageSize = errors.New("inky: image size does not match the display")
)

// Dev is a handle to an Inky.
//
// Dev is not safe for concurrent use. Show blocks for the whole panel
// refresh, which takes up to 45 seconds on the larger colour panels.
type Dev struct {
	c         conn.Conn
	maxTxSize int
	dc        gpio.PinOut
	rst       gpio.PinOut
	cs        [2]gpio.PinOut
	busy      gpio.PinIn

	profile  *Profile
	model    Model
	geometry Geometry
	color    Color
	variant  uint
	hFlip    bool
	vFlip    bool

	// Representation of the pixels, in native colour indices.
	buf        *FrameBuffer
	border     uint8
	saturation float64
	palette    *Palette
	// Cache of palette.Blend(saturation).
	blended color.Palette

	configured bool
	warnings   []*BusyTimeout

	// Logf reports busy line timeouts. It defaults to log.Printf.
	Logf func(format string, v ...interface{})

	sleep func(time.Duration)
	now   func() time.Time
}

// New opens a handle to an Inky.
//
// The model and colour in o select the controller profile. Width and Height
// may be left to zero for the model's native resolution.
func New(p spi.Port, dc gpio.PinOut, reset gpio.PinOut, busy gpio.PinIn, o *Opts) (*Dev, error) {
	if p == nil || dc == nil || reset == nil || busy == nil {
		return nil, ErrNoHardware
	}
	d, err := newDev(o)
	if err != nil {
		return nil, err
	}
	d.cs = [2]gpio.PinOut{o.CS0, o.CS1}
	if n := d.profile.ChipSelects; n == 2 && (o.CS0 == nil || o.CS1 == nil) {
		return nil, fmt.Errorf("%w: %s needs %d chip select pins", ErrNoHardware, d.profile, n)
	}

	mode := spi.Mode0
	if o.CS0 != nil {
		mode |= spi.NoCS
	}
	c, err := p.Connect(d.profile.Freq, mode, 8)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to inky over spi: %w", err)
	}

	// Get the maxTxSize from the conn if it implements the conn.Limits interface,
	// otherwise use 4096 bytes.
	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize == 0 {
		maxTxSize = 4096 // Use a conservative default.
	}

	d.c = c
	d.maxTxSize = maxTxSize
	d.dc = dc
	d.rst = reset
	d.busy = busy
	return d, nil
}

// newDev validates o and returns a Dev with its frame buffer but no
// hardware.
func newDev(o *Opts) (*Dev, error) {
	profile, size, err := ProfileFor(o.Model)
	if err != nil {
		return nil, err
	}
	if !profile.supports(o.ModelColor) {
		return nil, fmt.Errorf("%w: color %v on %v", ErrUnsupported, o.ModelColor, o.Model)
	}
	w, h := o.Width, o.Height
	if w == 0 && h == 0 {
		w, h = size.X, size.Y
	}
	g, err := profile.Geometry(w, h)
	if err != nil {
		return nil, err
	}
	d := &Dev{
		profile:    profile,
		model:      o.Model,
		geometry:   g,
		color:      o.ModelColor,
		variant:    o.DisplayVariant,
		hFlip:      o.HFlip,
		vFlip:      o.VFlip,
		buf:        NewFrameBuffer(g.bufferSize()),
		border:     profile.defaultBorder,
		saturation: 0.5, // Looks good enough for most of the images.
		palette:    profile.palette(o.ModelColor),
		Logf:       log.Printf,
		sleep:      time.Sleep,
		now:        time.Now,
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("Inky %v (%v, %s) %dx%d", d.model, d.color, d.profile, d.geometry.Width, d.geometry.Height)
}

// Halt implements conn.Resource. The panel keeps its image without power,
// so there is nothing to do.
func (d *Dev) Halt() error {
	return nil
}

// Profile returns the controller profile in use.
func (d *Dev) Profile() *Profile {
	return d.profile
}

// Model returns the model this handle was opened for.
func (d *Dev) Model() Model {
	return d.model
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.geometry.Bounds()
}

// Width returns the logical width in pixels.
func (d *Dev) Width() int {
	return d.geometry.Width
}

// Height returns the logical height in pixels.
func (d *Dev) Height() int {
	return d.geometry.Height
}

// Saturation returns the current saturation level.
func (d *Dev) Saturation() float64 {
	return d.saturation
}

// SetSaturation changes the saturation level used by Draw and Set. This
// will not take effect until the next Draw().
func (d *Dev) SetSaturation(level float64) error {
	if err := checkSaturation(level); err != nil {
		return err
	}
	d.saturation = level
	d.blended = nil
	return nil
}

// Border returns the border colour index.
func (d *Dev) Border() uint8 {
	return d.border
}

// SetBorder changes the border colour index. Indices the panel can not
// show are ignored. This will not take effect until the next Show().
func (d *Dev) SetBorder(v uint8) {
	if !d.valid(v) {
		return
	}
	d.border = v
}

// SetPixel sets a pixel to the given colour index. v is masked to the
// controller's index width first. The mono and red/yellow controllers then
// ignore a value the panel can not show; the 7 colour and Spectra ones store
// it as is. Coordinates outside Bounds are ignored.
func (d *Dev) SetPixel(x, y int, v uint8) {
	if !(image.Point{x, y}).In(d.Bounds()) {
		return
	}
	v &= d.profile.mask
	if d.profile.filter && v > d.profile.maxIndex {
		return
	}
	d.buf.Set(d.geometry.OffsetX+x, d.geometry.OffsetY+y, v)
}

// Pixel returns the colour index at x, y.
func (d *Dev) Pixel(x, y int) uint8 {
	return d.buf.At(d.geometry.OffsetX+x, d.geometry.OffsetY+y)
}

// SetImage replaces the frame buffer with img.
//
// An *image.Paletted is taken as native colour indices, other images are
// dithered against the palette blended at saturation. img must be exactly
// the size of the display.
func (d *Dev) SetImage(img image.Image, saturation float64) error {
	r := img.Bounds()
	if r.Dx() != d.geometry.Width || r.Dy() != d.geometry.Height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrImageSize, r.Dx(), r.Dy(), d.geometry.Width, d.geometry.Height)
	}
	pix := d.indices(img, saturation)
	buf := NewFrameBuffer(d.buf.Width, d.buf.Height)
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			buf.Set(d.geometry.OffsetX+x, d.geometry.OffsetY+y, pix[y*r.Dx()+x])
		}
	}
	d.buf = buf
	return nil
}

// Warnings returns the busy line timeouts raised by the last Setup or Show.
func (d *Dev) Warnings() []*BusyTimeout {
	return d.warnings
}

func (d *Dev) warn(w *BusyTimeout) {
	d.warnings = append(d.warnings, w)
	if d.Logf != nil {
		d.Logf("%v", w)
	}
}

func (d *Dev) settings() *settings {
	return &settings{
		geometry: d.geometry,
		color:    d.color,
		border:   d.border,
		variant:  d.variant,
	}
}

// Setup resets the panel and sends its register configuration. The pins
// are configured on the first call only.
//
// Show calls Setup, since the panel forgets its configuration when reset.
func (d *Dev) Setup() error {
	d.warnings = nil
	eh := &errorHandler{d: d}
	d.setup(eh)
	if eh.err != nil {
		return fmt.Errorf("inky: setup failed: %w", eh.err)
	}
	return nil
}

func (d *Dev) setup(eh *errorHandler) {
	if !d.configured {
		eh.err = d.configure()
		if eh.err != nil {
			return
		}
		d.configured = true
	}
	d.profile.reset(eh)
	run(eh, d.profile.init(d.settings()))
}

func (d *Dev) configure() error {
	for _, p := range d.cs {
		if p == nil {
			continue
		}
		if err := p.Out(gpio.High); err != nil {
			return err
		}
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.rst.Out(gpio.High); err != nil {
		return err
	}
	pull, edge := d.profile.busy.pin()
	return d.busy.In(pull, edge)
}

// Show sends the frame buffer to the panel and refreshes it.
//
// With busyWait false, the final wait for the refresh to complete is
// skipped where the controller allows it, as is the deep sleep command that
// would follow. With busyWait true the SSD1608 and SSD1683 also wait on the
// busy line right after master activation. Busy line timeouts are not
// errors; see Warnings.
func (d *Dev) Show(busyWait bool) error {
	d.warnings = nil
	planes := d.profile.pack(d.wireOrder())
	eh := &errorHandler{d: d}
	d.setup(eh)
	run(eh, d.profile.refresh(d.settings(), planes, busyWait))
	if eh.err != nil {
		return fmt.Errorf("inky: failed to show: %w", eh.err)
	}
	return nil
}

// wireOrder returns the frame buffer flipped, rotated and mapped the way the
// controller expects it.
func (d *Dev) wireOrder() *FrameBuffer {
	region := d.buf.WireOrder(d.hFlip, d.vFlip, d.geometry.Rotation)
	if m := d.profile.wireMap; m != nil {
		for i, v := range region.Pix {
			if int(v) < len(m) {
				region.Pix[i] = m[v]
			}
		}
	}
	return region
}

// Render renders the content of the frame buffer to the screen and waits
// for the refresh to complete.
func (d *Dev) Render() error {
	return d.Show(true)
}

// blend returns the palette at the current saturation.
func (d *Dev) blend() color.Palette {
	if d.blended == nil {
		d.blended = d.palette.Blend(d.saturation)
	}
	return d.blended
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return d.blend()
}

// At implements draw.Image.
func (d *Dev) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(d.Bounds()) {
		return color.RGBA{}
	}
	pal := d.blend()
	i := int(d.profile.sequential(d.Pixel(x, y)))
	if i >= len(pal) {
		return color.RGBA{}
	}
	return pal[i]
}

// Set implements draw.Image.
func (d *Dev) Set(x, y int, c color.Color) {
	d.SetPixel(x, y, d.profile.native(uint8(d.blend().Index(c))))
}

// Draw implements display.Drawer.
//
// The image is dithered with the current saturation and shown right away.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if r != d.Bounds() {
		return fmt.Errorf("partial updates are not supported")
	}

	if src.Bounds() != d.Bounds() {
		return fmt.Errorf("image must be the same size as bounds: %v", d.Bounds())
	}

	if err := d.SetImage(src, d.saturation); err != nil {
		return err
	}
	return d.Render()
}

// DrawAll redraws the whole display.
func (d *Dev) DrawAll(src image.Image) error {
	return d.Draw(d.Bounds(), src, image.Point{})
}

// valid reports whether v is an index the panel can show.
func (d *Dev) valid(v uint8) bool {
	if v > d.profile.maxIndex {
		return false
	}
	if d.profile.remap == nil {
		return true
	}
	for _, n := range d.profile.remap {
		if n == v {
			return true
		}
	}
	return false
}
