// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1315_test

import (
	"image"
	"image/draw"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/kihltech/ssd1315"
	"github.com/kihltech/ssd1315/image1bit"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg I²C bus registry to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := ssd1315.NewI2C(b, &ssd1315.DefaultOpts)
	if err != nil {
		log.Fatalf("failed to initialize display: %v", err)
	}
	defer dev.Halt()

	// Draw on it.
	f := basicfont.Face7x13
	err = dev.Canvas(func(img draw.Image) error {
		drawer := font.Drawer{
			Dst:  img,
			Src:  &image.Uniform{image1bit.On},
			Face: f,
			Dot:  fixed.P(0, img.Bounds().Dy()-1-f.Descent),
		}
		drawer.DrawString("Hello!")
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}

func ExampleDev_SetPixel() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := ssd1315.NewI2C(b, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Halt()

	// Light the four corners and the center, then push the frame.
	dev.SetPixel(0, 0, true)
	dev.SetPixel(63, 0, true)
	dev.SetPixel(0, 31, true)
	dev.SetPixel(63, 31, true)
	dev.SetPixel(32, 16, true)
	if err := dev.Flush(); err != nil {
		log.Fatal(err)
	}
}
