// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1315 controls a monochrome OLED display via a SSD1315
// controller over I²C.
//
// The SSD1315 is highly compatible with the SSD1306 and uses the same
// command set. The driver was developed for the Waveshare 0.49" OLED module
// (64x32 pixels) but the geometry is configurable, so it can drive other
// SSD1315 based panels.
//
// The driver keeps a full frame in memory, in the controller's page based
// layout (see package image1bit). Pixel and image mutations only touch that
// buffer; Flush() streams it to the panel in a single pass. For one-shot
// rendering, Canvas() hands out a scratch drawing surface and pushes it to
// the panel when the drawing function returns:
//
//	dev, err := ssd1315.NewI2C(bus, &ssd1315.DefaultOpts)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = dev.Canvas(func(img draw.Image) error {
//		draw.Draw(img, img.Bounds(), &image.Uniform{image1bit.On}, image.Point{}, draw.Src)
//		return nil
//	})
//
// The driver is synchronous and performs no locking; a Dev must be used from
// a single goroutine at a time. Transport errors are returned as-is to the
// caller of the operation that hit them, without retries.
//
// # Datasheet
//
// https://www.waveshare.com/w/upload/5/5f/SSD1315.pdf
//
// Product page:
//
// https://www.waveshare.com/0.49inch-oled-module.htm
package ssd1315
