// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image1bit

import (
	"image"
	"image/color"
)

// Bit implements a 1 bit color.
type Bit bool

// RGBA returns either all white or all black.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 65535, 65535, 65535, 65535
	}
	return 0, 0, 0, 65535
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// Possible bitness.
const (
	On  = Bit(true)
	Off = Bit(false)
)

// BitModel is the color model for 1 bit color.
var BitModel = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	return convertBit(c)
}

// Anything not transparent and not pure black is white.
func convertBit(c color.Color) Bit {
	switch t := c.(type) {
	case Bit:
		return t
	default:
		r, g, b, _ := c.RGBA()
		return Bit((r | g | b) >= 0x8000)
	}
}

// VerticalLSB is a 1 bit (black and white) image in the memory layout of the
// SSD1306 family of OLED controllers.
//
// Each byte is 8 vertical pixels for one column. The image is stored as
// horizontal bands of 8 pixel high rows (pages), the most significant bit
// being the bottom pixel of the band. The stride equals the image width, so
// the byte for pixel (x, y) is at index (y/8)*Stride + x, bit y&7.
type VerticalLSB struct {
	// Pix holds the image's pixels, as vertically LSB-first packed bitmap. It
	// can be passed directly to the controller's RAM.
	Pix []byte
	// Stride is the Pix stride (in bytes) between vertically adjacent 8 pixel
	// high bands.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewVerticalLSB returns an initialized VerticalLSB instance.
//
// The height is rounded up to a multiple of 8, the channel's page size.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w := r.Dx()
	bands := (r.Dy() + 7) / 8
	return &VerticalLSB{
		Pix:    make([]byte, w*bands),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (i *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (i *VerticalLSB) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *VerticalLSB) At(x, y int) color.Color {
	return i.BitAt(x, y)
}

// BitAt is the optimized version of At().
func (i *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return Off
	}
	offset, mask := i.PixOffset(x, y)
	return Bit(i.Pix[offset]&mask != 0)
}

// Set implements draw.Image.
//
// Pixels outside the image bounds are silently dropped.
func (i *VerticalLSB) Set(x, y int, c color.Color) {
	i.SetBit(x, y, convertBit(c))
}

// SetBit is the optimized version of Set().
//
// Pixels outside the image bounds are silently dropped.
func (i *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return
	}
	offset, mask := i.PixOffset(x, y)
	if b {
		i.Pix[offset] |= mask
	} else {
		i.Pix[offset] &^= mask
	}
}

// PixOffset returns the index into Pix and the bit mask for the pixel at
// (x, y).
func (i *VerticalLSB) PixOffset(x, y int) (int, byte) {
	pY := y - i.Rect.Min.Y
	return (pY/8)*i.Stride + x - i.Rect.Min.X, 1 << uint(pY&7)
}

var _ image.Image = &VerticalLSB{}
var _ color.Color = On
