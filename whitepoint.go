// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"cogentcore.org/colorspace/num"
	"cogentcore.org/colorspace/xyz"
)

// WhitePointName identifies a named standard illuminant, or Custom
// for a white point that matched no standard.
type WhitePointName int32

const (
	WhitePointCustom WhitePointName = iota
	WhitePointA
	WhitePointB
	WhitePointC
	WhitePointD50
	WhitePointD55

	// WhitePointD60 carries the ACES white point chromaticity
	// (0.32168, 0.33767), which is approximately D60.
	WhitePointD60
	WhitePointD65
	WhitePointD75
	WhitePointE
	WhitePointF2
	WhitePointF7
	WhitePointF11
)

var whitePointNames = [...]string{"Custom", "A", "B", "C", "D50", "D55",
	"D60", "D65", "D75", "E", "F2", "F7", "F11"}

func (wn WhitePointName) String() string {
	if wn < 0 || int(wn) >= len(whitePointNames) {
		return "Invalid"
	}
	return whitePointNames[wn]
}

// standardWhitePointValues holds the XYZ tristimulus (Y = 1, CIE 1931
// 2° observer) of each named illuminant, indexed by [WhitePointName].
var standardWhitePointValues = [...]num.Vector3{
	WhitePointCustom: {},
	WhitePointA:      {X: 1.09850, Y: 1, Z: 0.35585},
	WhitePointB:      {X: 0.99072, Y: 1, Z: 0.85223},
	WhitePointC:      {X: 0.98074, Y: 1, Z: 1.18232},
	WhitePointD50:    {X: 0.96422, Y: 1, Z: 0.82521},
	WhitePointD55:    {X: 0.95682, Y: 1, Z: 0.92149},
	WhitePointD60:    {X: 0.952646, Y: 1, Z: 1.008825},
	WhitePointD65:    {X: 0.95047, Y: 1, Z: 1.08883},
	WhitePointD75:    {X: 0.94972, Y: 1, Z: 1.22638},
	WhitePointE:      {X: 1, Y: 1, Z: 1},
	WhitePointF2:     {X: 0.99186, Y: 1, Z: 0.67393},
	WhitePointF7:     {X: 0.95041, Y: 1, Z: 1.08747},
	WhitePointF11:    {X: 1.00962, Y: 1, Z: 0.64350},
}

// WhitePoint is a reference white: either a named standard illuminant
// or a Custom XYZ tristimulus value (Y normalized to 1). For a named
// white point, XYZ always equals the standard's defining constants.
type WhitePoint struct {
	Name WhitePointName
	XYZ  num.Vector3
}

// StandardWhitePoint returns the [WhitePoint] for the given named
// illuminant.
func StandardWhitePoint(name WhitePointName) WhitePoint {
	return WhitePoint{Name: name, XYZ: standardWhitePointValues[name]}
}

// WhitePointFromXYZ classifies the given raw XYZ tristimulus value,
// returning the named illuminant if it is within [Tolerance]
// componentwise of its definition, and a Custom value otherwise.
func WhitePointFromXYZ(v num.Vector3) WhitePoint {
	wp := WhitePoint{Name: WhitePointCustom, XYZ: v}
	wp.Canonicalize()
	return wp
}

// WhitePointFromXY classifies a white point given as an xy
// chromaticity coordinate; the comparison happens in XYZ space.
func WhitePointFromXY(x, y num.Float) WhitePoint {
	return WhitePointFromXYZ(xyz.XYZFromXY(num.V2(x, y)))
}

// Canonicalize re-classifies a Custom white point against the named
// illuminants, mutating the receiver to the first standard matching
// within [Tolerance]. If none matches, the value is left Custom and
// [ErrCanonicalizationFailed] is returned. Named values are already
// canonical and return nil.
func (wp *WhitePoint) Canonicalize() error {
	if wp.Name != WhitePointCustom {
		return nil
	}
	for name := WhitePointA; name <= WhitePointF11; name++ {
		std := standardWhitePointValues[name]
		if num.Abs(wp.XYZ.X-std.X) < Tolerance &&
			num.Abs(wp.XYZ.Y-std.Y) < Tolerance &&
			num.Abs(wp.XYZ.Z-std.Z) < Tolerance {
			wp.Name = name
			wp.XYZ = std
			return nil
		}
	}
	return ErrCanonicalizationFailed
}
