// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform implements the non-linear transform functions
// that define color models such as sRGB, Oklab, CIE LAB, and HSL on
// top of a linear reference space.
//
// Every transform is a pure function pair with the uniform signature
//
//	func(v, wp num.Vector3) num.Vector3
//
// where wp is the XYZ white point (Y = 1) of the reference space.
// The forward direction maps a linear reference-space vector into the
// model, and the inverse maps back; transforms that do not depend on
// the white point ignore it. For every valid input,
// inverse(forward(v)) equals v up to floating point error.
//
// Hue components are degrees in [0, 360). Where hue is numerically
// unstable (near-zero chroma or saturation), it is defined as 0.
package transform

import "cogentcore.org/colorspace/num"

// chromaEps is the chroma / saturation magnitude below which hue is
// numerically meaningless and defined as 0.
const chromaEps = 1e-6

// polar converts cartesian opponent coordinates to (chroma, hue),
// with hue in degrees in [0, 360), and hue = 0 at degenerate chroma.
func polar(a, b num.Float) (c, h num.Float) {
	c = num.Sqrt(a*a + b*b)
	if c < chromaEps {
		return c, 0
	}
	h = num.RadToDeg(num.Atan2(b, a))
	if h < 0 {
		h += 360
	}
	return c, h
}

// cartesian converts (chroma, hue in degrees) back to cartesian
// opponent coordinates.
func cartesian(c, h num.Float) (a, b num.Float) {
	r := num.DegToRad(h)
	return c * num.Cos(r), c * num.Sin(r)
}
