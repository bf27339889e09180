// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1315

import (
	"image/draw"

	"github.com/kihltech/ssd1315/image1bit"
)

// Canvas hands fn a scratch drawing surface sized to the panel and pushes
// the result to the panel when fn returns.
//
// The surface is a fresh 1 bit image cleared to black. Anything that can
// render into a draw.Image can be used on it: image/draw, font drawers, or a
// rasterizer like fogleman/gg (render there, then draw.Draw onto the
// surface).
//
// The surface is pushed even when fn returns an error: the panel shows
// whatever was drawn before the failure. Callers that want to drop a partial
// frame must do so inside fn. The returned error is fn's error if non-nil,
// otherwise the flush error.
//
// Only one Canvas call may be in flight per Dev; nesting or concurrent use
// is undefined.
func (d *Dev) Canvas(fn func(draw.Image) error) error {
	img := image1bit.NewVerticalLSB(d.rect)
	err := fn(img)
	d.SetImage(img)
	if ferr := d.Flush(); err == nil {
		err = ferr
	}
	return err
}
