// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import "cogentcore.org/colorspace/num"

// Oklab matrices from Björn Ottosson's reference implementation:
// oklabM1 maps XYZ (D65) to an LMS-like intermediate, and oklabM2
// maps the cube-root compressed intermediate to Lab.
var (
	oklabM1 = num.Matrix3FromRows(
		num.V3(0.8189330101, 0.3618667424, -0.1288597137),
		num.V3(0.0329845436, 0.9293118715, 0.0361456387),
		num.V3(0.0482003018, 0.2643662691, 0.6338517070),
	)
	oklabM2 = num.Matrix3FromRows(
		num.V3(0.2104542553, 0.7936177850, -0.0040720468),
		num.V3(1.9779984951, -2.4285922050, 0.4505937099),
		num.V3(0.0259040371, 0.7827717662, -0.8086757660),
	)
	oklabM1Inv = oklabM1.Inverse()
	oklabM2Inv = oklabM2.Inverse()
)

// OklabFromXYZ converts an XYZ (D65) vector to Oklab.
func OklabFromXYZ(v, wp num.Vector3) num.Vector3 {
	lms := oklabM1.MulVector3(v)
	lms = num.V3(num.Cbrt(lms.X), num.Cbrt(lms.Y), num.Cbrt(lms.Z))
	return oklabM2.MulVector3(lms)
}

// OklabToXYZ converts an Oklab vector back to XYZ (D65).
func OklabToXYZ(v, wp num.Vector3) num.Vector3 {
	lms := oklabM2Inv.MulVector3(v)
	lms = num.V3(lms.X*lms.X*lms.X, lms.Y*lms.Y*lms.Y, lms.Z*lms.Z*lms.Z)
	return oklabM1Inv.MulVector3(lms)
}

// OklchFromXYZ converts an XYZ (D65) vector to Oklch, the polar form
// of Oklab, as (L, chroma, hue in degrees).
func OklchFromXYZ(v, wp num.Vector3) num.Vector3 {
	lab := OklabFromXYZ(v, wp)
	c, h := polar(lab.Y, lab.Z)
	return num.V3(lab.X, c, h)
}

// OklchToXYZ converts an Oklch vector back to XYZ (D65).
func OklchToXYZ(v, wp num.Vector3) num.Vector3 {
	a, b := cartesian(v.Y, v.Z)
	return OklabToXYZ(num.V3(v.X, a, b), wp)
}
