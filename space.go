// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"cogentcore.org/colorspace/num"
	"cogentcore.org/colorspace/transform"
)

// TransformID identifies the non-linear transform function pair of a
// color model, or TransformNone for a linear space.
type TransformID int32

const (
	TransformNone TransformID = iota
	TransformSRGB
	TransformBt709
	TransformPQ
	TransformOklab
	TransformOklch
	TransformLab
	TransformLch
	TransformLuv
	TransformXyY
	TransformHSL
	TransformHSV
	TransformHSI
	TransformICtCpPQ
)

var transformNames = [...]string{"None", "sRGB", "BT.709", "PQ", "Oklab",
	"Oklch", "CIE LAB", "CIE LCH", "CIE LUV", "CIE xyY", "HSL", "HSV", "HSI",
	"ICtCp PQ"}

func (t TransformID) String() string {
	if t < 0 || int(t) >= len(transformNames) {
		return "Invalid"
	}
	return transformNames[t]
}

// transformPair is the forward (linear reference -> model) and
// inverse function pair for one [TransformID].
type transformPair struct {
	forward func(v, wp num.Vector3) num.Vector3
	inverse func(v, wp num.Vector3) num.Vector3
}

var transformFuncs = [...]transformPair{
	TransformNone:    {},
	TransformSRGB:    {transform.SRGBFromLinear, transform.SRGBToLinear},
	TransformBt709:   {transform.Bt709FromLinear, transform.Bt709ToLinear},
	TransformPQ:      {transform.PQFromLinear, transform.PQToLinear},
	TransformOklab:   {transform.OklabFromXYZ, transform.OklabToXYZ},
	TransformOklch:   {transform.OklchFromXYZ, transform.OklchToXYZ},
	TransformLab:     {transform.LabFromXYZ, transform.LabToXYZ},
	TransformLch:     {transform.LchFromXYZ, transform.LchToXYZ},
	TransformLuv:     {transform.LuvFromXYZ, transform.LuvToXYZ},
	TransformXyY:     {transform.XyYFromXYZ, transform.XyYToXYZ},
	TransformHSL:     {transform.HslFromLinear, transform.HslToLinear},
	TransformHSV:     {transform.HsvFromLinear, transform.HsvToLinear},
	TransformHSI:     {transform.HsiFromLinear, transform.HsiToLinear},
	TransformICtCpPQ: {transform.ICtCpPQFromLinear, transform.ICtCpPQToLinear},
}

// ColorSpace describes a color space or color model: a linear space
// given by RGB primaries and a white point (Transform = TransformNone,
// with the special [PrimariesCieXYZ] marking the CIE XYZ root space),
// or a non-linear model given by its linear reference space plus a
// transform function. The zero value is not meaningful; use the
// built-in spaces or the constructors.
type ColorSpace struct {
	Primaries  RGBPrimaries
	WhitePoint WhitePoint
	Transform  TransformID
}

// NewColorSpace returns a linear RGB color space with the given
// primaries and white point.
func NewColorSpace(p RGBPrimaries, wp WhitePoint) ColorSpace {
	return ColorSpace{Primaries: p, WhitePoint: wp}
}

// NewModelColorSpace returns a non-linear color model defined by the
// given transform function pair over the linear reference of the
// given space.
func NewModelColorSpace(reference ColorSpace, t TransformID) ColorSpace {
	cs := reference.Reference()
	cs.Transform = t
	return cs
}

// IsLinear reports whether this space is a linear transform of CIE
// XYZ, i.e. it has no non-linear transform function.
func (cs ColorSpace) IsLinear() bool {
	return cs.Transform == TransformNone
}

// Reference returns the linear reference space of this space: the
// space itself if linear, otherwise the same primaries and white
// point without the transform.
func (cs ColorSpace) Reference() ColorSpace {
	cs.Transform = TransformNone
	return cs
}

// WithWhitePoint returns this space with the given white point.
// Converting between the two spaces performs chromatic adaptation.
func (cs ColorSpace) WithWhitePoint(wp WhitePoint) ColorSpace {
	cs.WhitePoint = wp
	return cs
}

// Canonical returns this space with its primaries and white point
// canonicalized, so equal-looking spaces have identical descriptions.
// Coordinates matching no named standard stay Custom.
func (cs ColorSpace) Canonical() ColorSpace {
	cs.Primaries.Canonicalize()
	cs.WhitePoint.Canonicalize()
	return cs
}

// Equal reports whether the two spaces have the same canonical
// description.
func (cs ColorSpace) Equal(o ColorSpace) bool {
	return cs.Canonical() == o.Canonical()
}
