// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz derives the 3x3 matrices between a linear RGB color
// space, defined by its primary chromaticities and white point, and
// the CIE XYZ reference space.
package xyz

import "cogentcore.org/colorspace/num"

// XYZFromXY converts an xy chromaticity coordinate to an XYZ
// tristimulus value with luminance Y = 1.
func XYZFromXY(c num.Vector2) num.Vector3 {
	return num.V3(c.X/c.Y, 1, (1-c.X-c.Y)/c.Y)
}

// XYFromXYZ converts an XYZ tristimulus value to its xy chromaticity
// coordinate.
func XYFromXYZ(v num.Vector3) num.Vector2 {
	s := v.X + v.Y + v.Z
	return num.V2(v.X/s, v.Y/s)
}

// RGBToXYZ returns the matrix from a linear RGB space with the given
// r, g, b primary chromaticities and white point (as XYZ, Y = 1) to
// CIE XYZ. Each primary becomes a matrix column scaled so that RGB
// (1,1,1) maps exactly to the white point.
//
// Degenerate primaries (collinear, or not spanning the white point)
// make the scale solve singular and yield a zero matrix; callers are
// responsible for providing a well-formed gamut.
func RGBToXYZ(r, g, b num.Vector2, wp num.Vector3) num.Matrix3 {
	m := num.Matrix3FromCols(XYZFromXY(r), XYZFromXY(g), XYZFromXY(b))
	scale := m.Inverse().MulVector3(wp)
	return m.Mul(num.Diagonal3(scale))
}

// XYZToRGB returns the matrix from CIE XYZ to a linear RGB space with
// the given primary chromaticities and white point; it is the inverse
// of [RGBToXYZ].
func XYZToRGB(r, g, b num.Vector2, wp num.Vector3) num.Matrix3 {
	return RGBToXYZ(r, g, b, wp).Inverse()
}
