// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import (
	"cogentcore.org/colorspace/num"
	"cogentcore.org/colorspace/xyz"
)

// CIE LAB constants: labEps = (6/29)^3, labKappa = (29/3)^3
const (
	labEps   = 216.0 / 24389
	labKappa = 24389.0 / 27
)

// labCompress applies the LAB cube-root compression function to a
// tristimulus ratio.
func labCompress(t num.Float) num.Float {
	if t > labEps {
		return num.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// labUncompress is the inverse of [labCompress].
func labUncompress(ft num.Float) num.Float {
	t := ft * ft * ft
	if t > labEps {
		return t
	}
	return (116*ft - 16) / labKappa
}

// LabFromXYZ converts XYZ to CIE L*a*b* relative to the given white
// point, with L in [0, 100].
func LabFromXYZ(v, wp num.Vector3) num.Vector3 {
	fx := labCompress(v.X / wp.X)
	fy := labCompress(v.Y / wp.Y)
	fz := labCompress(v.Z / wp.Z)
	return num.V3(116*fy-16, 500*(fx-fy), 200*(fy-fz))
}

// LabToXYZ converts CIE L*a*b* back to XYZ relative to the given
// white point.
func LabToXYZ(v, wp num.Vector3) num.Vector3 {
	fy := (v.X + 16) / 116
	fx := fy + v.Y/500
	fz := fy - v.Z/200
	return num.V3(
		labUncompress(fx)*wp.X,
		labUncompress(fy)*wp.Y,
		labUncompress(fz)*wp.Z,
	)
}

// LchFromXYZ converts XYZ to CIE L*C*h°, the polar form of L*a*b*,
// as (L, chroma, hue in degrees).
func LchFromXYZ(v, wp num.Vector3) num.Vector3 {
	lab := LabFromXYZ(v, wp)
	c, h := polar(lab.Y, lab.Z)
	return num.V3(lab.X, c, h)
}

// LchToXYZ converts CIE L*C*h° back to XYZ.
func LchToXYZ(v, wp num.Vector3) num.Vector3 {
	a, b := cartesian(v.Y, v.Z)
	return LabToXYZ(num.V3(v.X, a, b), wp)
}

// LuvFromXYZ converts XYZ to CIE L*u*v* relative to the given white
// point.
func LuvFromXYZ(v, wp num.Vector3) num.Vector3 {
	dn := wp.X + 15*wp.Y + 3*wp.Z
	un := 4 * wp.X / dn
	vn := 9 * wp.Y / dn
	d := v.X + 15*v.Y + 3*v.Z
	up, vp := un, vn
	if num.Abs(d) > chromaEps {
		up = 4 * v.X / d
		vp = 9 * v.Y / d
	}
	yr := v.Y / wp.Y
	var l num.Float
	if yr > labEps {
		l = 116*num.Cbrt(yr) - 16
	} else {
		l = labKappa * yr
	}
	return num.V3(l, 13*l*(up-un), 13*l*(vp-vn))
}

// LuvToXYZ converts CIE L*u*v* back to XYZ relative to the given
// white point.
func LuvToXYZ(v, wp num.Vector3) num.Vector3 {
	l := v.X
	if l == 0 {
		return num.Vector3{}
	}
	dn := wp.X + 15*wp.Y + 3*wp.Z
	un := 4 * wp.X / dn
	vn := 9 * wp.Y / dn
	up := v.Y/(13*l) + un
	vp := v.Z/(13*l) + vn
	var y num.Float
	if l > 8 {
		fy := (l + 16) / 116
		y = fy * fy * fy * wp.Y
	} else {
		y = l / labKappa * wp.Y
	}
	x := y * 9 * up / (4 * vp)
	z := y * (12 - 3*up - 20*vp) / (4 * vp)
	return num.V3(x, y, z)
}

// XyYFromXYZ converts XYZ to CIE xyY chromaticity + luminance. Black
// (zero tristimulus) maps to the white point's chromaticity with
// Y = 0, so the inverse stays well defined.
func XyYFromXYZ(v, wp num.Vector3) num.Vector3 {
	s := v.X + v.Y + v.Z
	if num.Abs(s) < chromaEps {
		c := xyz.XYFromXYZ(wp)
		return num.V3(c.X, c.Y, 0)
	}
	return num.V3(v.X/s, v.Y/s, v.Y)
}

// XyYToXYZ converts CIE xyY back to XYZ.
func XyYToXYZ(v, wp num.Vector3) num.Vector3 {
	if v.Y == 0 {
		return num.Vector3{}
	}
	y := v.Z
	return num.V3(v.X*y/v.Y, y, (1-v.X-v.Y)*y/v.Y)
}
