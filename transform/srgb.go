// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import "cogentcore.org/colorspace/num"

// SRGBFromLinear applies the sRGB gamma encoding (the IEC 61966-2-1
// piecewise transfer function) to each component. Components outside
// [0, 1] pass through the linear or power segment unclamped.
func SRGBFromLinear(v, wp num.Vector3) num.Vector3 {
	return num.V3(srgbFromLinear(v.X), srgbFromLinear(v.Y), srgbFromLinear(v.Z))
}

// SRGBToLinear removes the sRGB gamma encoding from each component.
func SRGBToLinear(v, wp num.Vector3) num.Vector3 {
	return num.V3(srgbToLinear(v.X), srgbToLinear(v.Y), srgbToLinear(v.Z))
}

func srgbFromLinear(c num.Float) num.Float {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*num.Pow(c, 1/2.4) - 0.055
}

func srgbToLinear(c num.Float) num.Float {
	if c <= 0.04045 {
		return c / 12.92
	}
	return num.Pow((c+0.055)/1.055, 2.4)
}

// Bt709FromLinear applies the BT.709 scene OETF (also used by
// BT.2020) to each component.
func Bt709FromLinear(v, wp num.Vector3) num.Vector3 {
	return num.V3(bt709FromLinear(v.X), bt709FromLinear(v.Y), bt709FromLinear(v.Z))
}

// Bt709ToLinear removes the BT.709 scene OETF from each component.
func Bt709ToLinear(v, wp num.Vector3) num.Vector3 {
	return num.V3(bt709ToLinear(v.X), bt709ToLinear(v.Y), bt709ToLinear(v.Z))
}

func bt709FromLinear(c num.Float) num.Float {
	if c < 0.018 {
		return 4.5 * c
	}
	return 1.099*num.Pow(c, 0.45) - 0.099
}

func bt709ToLinear(c num.Float) num.Float {
	if c < 0.081 {
		return c / 4.5
	}
	return num.Pow((c+0.099)/1.099, 1/0.45)
}
