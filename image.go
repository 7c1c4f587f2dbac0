// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"image/color"

	"cogentcore.org/colorspace/num"
)

// AsRGBA returns this color converted to 8-bit gamma-encoded sRGB as
// a standard [color.RGBA] with full alpha, clamping out-of-gamut
// components to [0, 1].
func (c Color) AsRGBA() color.RGBA {
	s := c.To(SRGB).Clamp01()
	r, g, b := SRGBFloatToUint8(s.Value.X, s.Value.Y, s.Value.Z)
	return color.RGBA{r, g, b, 255}
}

// FromColor returns a standard [color.Color] converted to the given
// space, going through gamma-encoded sRGB.
func FromColor(c color.Color, space ColorSpace) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	r, g, b := SRGBUint8ToFloat(n.R, n.G, n.B)
	return NewSRGB(r, g, b).To(space)
}

// SRGBFloatToUint8 converts gamma-encoded sRGB components in [0, 1]
// to 8-bit values, rounding to nearest.
func SRGBFloatToUint8(r, g, b num.Float) (ur, ug, ub uint8) {
	return uint8(r*255 + 0.5), uint8(g*255 + 0.5), uint8(b*255 + 0.5)
}

// SRGBUint8ToFloat converts 8-bit sRGB components to gamma-encoded
// floats in [0, 1].
func SRGBUint8ToFloat(r, g, b uint8) (fr, fg, fb num.Float) {
	return num.Float(r) / 255, num.Float(g) / 255, num.Float(b) / 255
}
