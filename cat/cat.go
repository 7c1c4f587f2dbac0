// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cat implements chromatic adaptation transforms (CAT):
// 3x3 matrices that re-express a color relative to a different
// reference white point, by scaling in a cone-response (LMS) space
// (the von Kries method).
package cat

import "cogentcore.org/colorspace/num"

// ConeSpace selects the cone-response (LMS) space used for
// chromatic adaptation.
type ConeSpace int32

const (
	// Bradford is the cone space of the Bradford transform, used by
	// ICC profile conversions; a good general-purpose default.
	Bradford ConeSpace = iota

	// VonKries is the Hunt-Pointer-Estevez cone space normalized to
	// D65, used by the original von Kries transform.
	VonKries

	// CAT02 is the cone space of the CIECAM02 appearance model.
	CAT02

	// CAT16 is the cone space of the CAM16 appearance model.
	CAT16
)

var coneMatrices = [...]num.Matrix3{
	Bradford: num.Matrix3FromRows(
		num.V3(0.8951, 0.2664, -0.1614),
		num.V3(-0.7502, 1.7135, 0.0367),
		num.V3(0.0389, -0.0685, 1.0296),
	),
	VonKries: num.Matrix3FromRows(
		num.V3(0.40024, 0.70760, -0.08081),
		num.V3(-0.22630, 1.16532, 0.04570),
		num.V3(0, 0, 0.91822),
	),
	CAT02: num.Matrix3FromRows(
		num.V3(0.7328, 0.4296, -0.1624),
		num.V3(-0.7036, 1.6975, 0.0061),
		num.V3(0.0030, 0.0136, 0.9834),
	),
	CAT16: num.Matrix3FromRows(
		num.V3(0.401288, 0.650173, -0.051461),
		num.V3(-0.250268, 1.204414, 0.045854),
		num.V3(-0.002079, 0.048952, 0.953127),
	),
}

// Matrix returns the 3x3 matrix from CIE XYZ to this cone space.
func (cs ConeSpace) Matrix() num.Matrix3 {
	return coneMatrices[cs]
}

// white points closer than this per component are treated as equal
const whiteTol = 1e-6

// AdaptationMatrix returns the matrix adapting XYZ colors relative to
// the src white point to XYZ colors relative to the dst white point
// (both as XYZ tristimulus, Y = 1), scaling in the given cone space.
// If the white points are equal within floating tolerance, it returns
// the exact identity matrix.
func AdaptationMatrix(src, dst num.Vector3, cs ConeSpace) num.Matrix3 {
	if num.Abs(src.X-dst.X) < whiteTol &&
		num.Abs(src.Y-dst.Y) < whiteTol &&
		num.Abs(src.Z-dst.Z) < whiteTol {
		return num.Identity3()
	}
	cone := cs.Matrix()
	s := cone.MulVector3(src)
	d := cone.MulVector3(dst)
	scale := num.Diagonal3(d.Div(s))
	return cone.Inverse().Mul(scale).Mul(cone)
}
