// Copyright 2020 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image1bit implements black and white (1 bit per pixel) images in
// the page based memory layout used by the SSD1306/SSD1315 family of OLED
// controllers.
//
// A VerticalLSB can be drawn onto with the standard image/draw package and
// its Pix slice is in the exact byte order expected by the controller's
// graphic display data RAM, so a full frame can be streamed without any
// conversion.
package image1bit
