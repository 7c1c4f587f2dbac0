// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"cogentcore.org/colorspace/cat"
	"cogentcore.org/colorspace/num"
	"cogentcore.org/colorspace/xyz"
)

// ColorConversion is a conversion between two color spaces, reduced
// to at most three stages: the source's inverse transform (if the
// source is non-linear), one 3x3 matrix between the linear reference
// spaces (with any chromatic adaptation already multiplied in), and
// the destination's forward transform (if the destination is
// non-linear). It is an immutable value; the exported fields let a
// caller port the same pipeline to another execution environment,
// such as a shader.
type ColorConversion struct {
	Src ColorSpace
	Dst ColorSpace

	// Matrix maps the source's linear reference space to the
	// destination's linear reference space.
	Matrix num.Matrix3

	// SrcTransform is applied in inverse as the first stage, and
	// DstTransform forward as the last; TransformNone means skip.
	SrcTransform TransformID
	DstTransform TransformID
}

// NewColorConversion returns the conversion from src to dst, for
// their canonical descriptions. Converting a space to itself is the
// exact identity. Conversions between built-in spaces are served from
// a precomputed matrix table; others are derived on demand.
func NewColorConversion(src, dst ColorSpace) ColorConversion {
	src = src.Canonical()
	dst = dst.Canonical()
	if src == dst {
		return ColorConversion{Src: src, Dst: dst, Matrix: num.Identity3()}
	}
	return ColorConversion{
		Src:          src,
		Dst:          dst,
		Matrix:       linearMatrix(src, dst),
		SrcTransform: src.Transform,
		DstTransform: dst.Transform,
	}
}

// linearMatrix returns the matrix between the linear reference spaces,
// from the precomputed table when available. Spaces sharing a
// reference (e.g. sRGB and HSL) get the exact identity rather than a
// derived round trip through XYZ.
func linearMatrix(src, dst ColorSpace) num.Matrix3 {
	if src.Reference() == dst.Reference() {
		return num.Identity3()
	}
	if m, ok := precomputedMatrix(src, dst); ok {
		return m
	}
	return deriveMatrix(src, dst)
}

// deriveMatrix composes source RGB -> XYZ, chromatic adaptation, and
// XYZ -> destination RGB into a single matrix.
func deriveMatrix(src, dst ColorSpace) num.Matrix3 {
	m := num.Identity3()
	if src.Primaries.Name != PrimariesCieXYZ {
		xy := src.Primaries.XY
		m = xyz.RGBToXYZ(xy[0], xy[1], xy[2], src.WhitePoint.XYZ)
	}
	if src.WhitePoint != dst.WhitePoint {
		m = cat.AdaptationMatrix(src.WhitePoint.XYZ, dst.WhitePoint.XYZ, cat.Bradford).Mul(m)
	}
	if dst.Primaries.Name != PrimariesCieXYZ {
		xy := dst.Primaries.XY
		m = xyz.XYZToRGB(xy[0], xy[1], xy[2], dst.WhitePoint.XYZ).Mul(m)
	}
	return m
}

// Convert applies the conversion to a color value in the source
// space, returning the value in the destination space. Out-of-gamut
// results pass through with out-of-range components; nothing clamps
// or errors.
func (c ColorConversion) Convert(v num.Vector3) num.Vector3 {
	if c.SrcTransform != TransformNone {
		v = transformFuncs[c.SrcTransform].inverse(v, c.Src.WhitePoint.XYZ)
	}
	v = c.Matrix.MulVector3(v)
	if c.DstTransform != TransformNone {
		v = transformFuncs[c.DstTransform].forward(v, c.Dst.WhitePoint.XYZ)
	}
	return v
}
