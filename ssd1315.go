// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1315

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"

	"github.com/kihltech/ssd1315/image1bit"
)

// Command set shared with the SSD1306. See the datasheet for details.
const (
	_CHARGEPUMP          = 0x8D
	_CHARGEPUMPON        = 0x14
	_COLUMNADDR          = 0x21
	_COMSCANDEC          = 0xC8
	_COMSCANINC          = 0xC0
	_DISPLAYALLON_RESUME = 0xA4
	_DISPLAYOFF          = 0xAE
	_DISPLAYON           = 0xAF
	_INVERTDISPLAY       = 0xA7
	_MEMORYMODE          = 0x20
	_NORMALDISPLAY       = 0xA6
	_PAGEADDR            = 0x22
	_SEGREMAP            = 0xA0
	_SETCOMPINS          = 0xDA
	_SETCONTRAST         = 0x81
	_SETDISPLAYCLOCKDIV  = 0xD5
	_SETDISPLAYOFFSET    = 0xD3
	_SETMULTIPLEX        = 0xA8
	_SETPRECHARGE        = 0xD9
	_SETSEGMENTREMAP     = 0xA1
	_SETSTARTLINE        = 0x40
	_SETVCOMDETECT       = 0xDB
)

// DefaultOpts is the recommended default options, matching the Waveshare
// 0.49" module.
var DefaultOpts = Opts{
	W:       64,
	H:       32,
	Rotated: false,
	Addr:    0x3C,
}

// Opts defines the options for the device.
type Opts struct {
	// W and H are the panel dimensions in pixels. H must be a multiple of 8,
	// the controller's page height.
	W int
	H int
	// Rotated determines if the display is rotated by 180°.
	Rotated bool
	// Addr is the I²C address of the display.
	Addr uint16
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1315
// display controller.
//
// The geometry is validated before any bus transaction. The init sequence is
// sent during construction; the first bus failure is returned as-is.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.Addr == 0x00 {
		o.Addr = DefaultOpts.Addr
	}
	if o.W <= 0 {
		return nil, fmt.Errorf("ssd1315: invalid width %d", o.W)
	}
	if o.H <= 0 || o.H&7 != 0 {
		return nil, fmt.Errorf("ssd1315: height must be a positive multiple of 8; got %d", o.H)
	}
	d := &Dev{
		ch:     &i2cChannel{c: &i2c.Dev{Bus: b, Addr: o.Addr}},
		bus:    b,
		rect:   image.Rect(0, 0, o.W, o.H),
		pages:  o.H / 8,
		buffer: image1bit.NewVerticalLSB(image.Rect(0, 0, o.W, o.H)),
	}
	if err := d.init(&o); err != nil {
		return nil, err
	}
	return d, nil
}

// Dev is an open handle to the display controller.
//
// All mutating operations only touch the in-memory frame buffer; Flush()
// pushes it to the panel.
type Dev struct {
	// Communication.
	ch  channel
	bus i2c.Bus

	// Display size controlled by the SSD1315.
	rect  image.Rectangle
	pages int

	// Frame buffer, in the controller's page layout.
	buffer *image1bit.VerticalLSB
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1315.Dev{%s}", d.rect.Max)
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// init sends the power up sequence. The command order matters; it follows
// the datasheet's software initialization flow.
func (d *Dev) init(opts *Opts) error {
	// Segment remap and COM scan direction implement the 180° rotation.
	segRemap := byte(_SETSEGMENTREMAP)
	comScan := byte(_COMSCANDEC)
	if opts.Rotated {
		segRemap = _SEGREMAP
		comScan = _COMSCANINC
	}
	comPins := byte(0x02)
	if opts.H > 32 {
		comPins = 0x12
	}
	err := d.ch.sendCommand(
		_DISPLAYOFF,
		_SETDISPLAYCLOCKDIV, 0x80,
		_SETMULTIPLEX, byte(opts.H-1),
		_SETDISPLAYOFFSET, 0x00,
		_SETSTARTLINE|0x00,
		_CHARGEPUMP, _CHARGEPUMPON,
		_MEMORYMODE, 0x00, // Horizontal addressing mode.
		segRemap,
		comScan,
		_SETCOMPINS, comPins,
		_SETCONTRAST, 0xCF,
		_SETPRECHARGE, 0xF1,
		_SETVCOMDETECT, 0x40,
		_DISPLAYALLON_RESUME,
		_NORMALDISPLAY,
		_DISPLAYON,
	)
	if err != nil {
		return err
	}
	d.Clear()
	return d.Flush()
}

// SetPixel sets or clears a single pixel in the frame buffer.
//
// Pixels outside the panel are silently dropped, so drawing code does not
// need to clip. The change is not visible until Flush() is called.
func (d *Dev) SetPixel(x, y int, on bool) {
	d.buffer.SetBit(x, y, image1bit.Bit(on))
}

// Fill sets every pixel in the frame buffer to on or off.
func (d *Dev) Fill(on bool) {
	b := byte(0x00)
	if on {
		b = 0xFF
	}
	for i := range d.buffer.Pix {
		d.buffer.Pix[i] = b
	}
}

// Clear zeroes the frame buffer. It does not touch the panel.
func (d *Dev) Clear() {
	d.Fill(false)
}

// SetImage replaces the frame buffer content with src.
//
// src is converted to 1 bit and resized to the panel dimensions if it
// differs. A same sized image1bit.VerticalLSB is copied directly.
func (d *Dev) SetImage(src image.Image) {
	if img, ok := src.(*image1bit.VerticalLSB); ok && img.Rect == d.rect && img.Stride == d.buffer.Stride {
		copy(d.buffer.Pix, img.Pix)
		return
	}
	d.Clear()
	if b := src.Bounds(); b.Dx() != d.rect.Dx() || b.Dy() != d.rect.Dy() {
		xdraw.NearestNeighbor.Scale(d.buffer, d.rect, src, b, xdraw.Src, nil)
		return
	}
	draw.Draw(d.buffer, d.rect, src, src.Bounds().Min, draw.Src)
}

// Flush streams the frame buffer to the panel.
//
// It resets the column and page address windows to the full panel, then
// sends the whole buffer. Mutations become visible only after this call.
func (d *Dev) Flush() error {
	err := d.ch.sendCommand(
		_COLUMNADDR, 0x00, byte(d.rect.Dx()-1),
		_PAGEADDR, 0x00, byte(d.pages-1),
	)
	if err != nil {
		return err
	}
	return d.ch.sendData(d.buffer.Pix)
}

// Draw implements display.Drawer.
//
// It draws synchronously; once this function returns, the display is
// updated. On the default 100kHz I²C bus a full 64x32 frame takes a few
// milliseconds.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.rect)
	if r.Empty() {
		return nil
	}
	draw.Draw(d.buffer, r, src, sp, draw.Src)
	return d.Flush()
}

// SetContrast changes the screen contrast.
func (d *Dev) SetContrast(level byte) error {
	return d.ch.sendCommand(_SETCONTRAST, level)
}

// Invert the display (black on white vs white on black).
//
// The frame buffer is untouched; inversion happens in the controller.
func (d *Dev) Invert(blackOnWhite bool) error {
	b := byte(_NORMALDISPLAY)
	if blackOnWhite {
		b = _INVERTDISPLAY
	}
	return d.ch.sendCommand(b)
}

// Power turns the panel on or off.
//
// Powering off retains the controller RAM and the frame buffer; powering
// back on restores the previous frame.
func (d *Dev) Power(on bool) error {
	b := byte(_DISPLAYOFF)
	if on {
		b = _DISPLAYON
	}
	return d.ch.sendCommand(b)
}

// Halt implements conn.Resource. It powers off the panel.
func (d *Dev) Halt() error {
	return d.Power(false)
}

// Close powers off the panel and, when the bus handed to NewI2C is an
// i2c.BusCloser, closes it. Using the Dev afterwards is undefined.
func (d *Dev) Close() error {
	if err := d.Power(false); err != nil {
		return err
	}
	if bc, ok := d.bus.(i2c.BusCloser); ok {
		return bc.Close()
	}
	return nil
}

var _ display.Drawer = &Dev{}
