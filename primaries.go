// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"errors"

	"cogentcore.org/colorspace/num"
)

// ErrCanonicalizationFailed is returned by Canonicalize when the
// coordinates do not match any named standard within [Tolerance].
// It is not fatal: the value stays Custom and remains fully usable
// for conversions, at the cost of precomputed matrix reuse.
var ErrCanonicalizationFailed = errors.New("colorspace: coordinates do not match any named standard within tolerance")

// Tolerance is the absolute per-coordinate tolerance within which raw
// primaries and white points are classified as a named standard.
const Tolerance num.Float = 1e-4

// PrimariesName identifies a named standard set of RGB primaries, or
// Custom for coordinates that matched no standard.
type PrimariesName int32

const (
	PrimariesCustom PrimariesName = iota
	PrimariesBt709
	PrimariesBt2020
	PrimariesP3
	PrimariesAdobe1998
	PrimariesProPhoto
	PrimariesAcesAp0
	PrimariesAcesAp1
	PrimariesCieRGB

	// PrimariesCieXYZ marks the CIE XYZ reference space itself, which
	// acts as the root of all conversions.
	PrimariesCieXYZ
)

var primariesNames = [...]string{"Custom", "BT.709", "BT.2020", "P3",
	"Adobe RGB (1998)", "ProPhoto", "ACES AP0", "ACES AP1", "CIE RGB", "CIE XYZ"}

func (pn PrimariesName) String() string {
	if pn < 0 || int(pn) >= len(primariesNames) {
		return "Invalid"
	}
	return primariesNames[pn]
}

// standardPrimariesXY holds the defining r, g, b chromaticities of
// each named standard, indexed by [PrimariesName]. Classification
// scans it in declared order, so the catalog must keep any two
// standards further apart than 2*[Tolerance] on at least one
// coordinate.
var standardPrimariesXY = [...][3]num.Vector2{
	PrimariesCustom:    {},
	PrimariesBt709:     {{X: 0.64, Y: 0.33}, {X: 0.30, Y: 0.60}, {X: 0.15, Y: 0.06}},
	PrimariesBt2020:    {{X: 0.708, Y: 0.292}, {X: 0.170, Y: 0.797}, {X: 0.131, Y: 0.046}},
	PrimariesP3:        {{X: 0.680, Y: 0.320}, {X: 0.265, Y: 0.690}, {X: 0.150, Y: 0.060}},
	PrimariesAdobe1998: {{X: 0.64, Y: 0.33}, {X: 0.21, Y: 0.71}, {X: 0.15, Y: 0.06}},
	PrimariesProPhoto:  {{X: 0.734699, Y: 0.265301}, {X: 0.159597, Y: 0.840403}, {X: 0.036598, Y: 0.000105}},
	PrimariesAcesAp0:   {{X: 0.7347, Y: 0.2653}, {X: 0.0, Y: 1.0}, {X: 0.0001, Y: -0.0770}},
	PrimariesAcesAp1:   {{X: 0.713, Y: 0.293}, {X: 0.165, Y: 0.830}, {X: 0.128, Y: 0.044}},
	PrimariesCieRGB:    {{X: 0.7347, Y: 0.2653}, {X: 0.2738, Y: 0.2742}, {X: 0.1666, Y: 0.0089}},
	PrimariesCieXYZ:    {{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 0}},
}

// RGBPrimaries is a set of RGB primary chromaticities: either a named
// standard, or Custom coordinates that matched no standard (or have
// not yet been checked). For a named set, XY always equals the
// standard's defining constants.
type RGBPrimaries struct {
	Name PrimariesName
	XY   [3]num.Vector2
}

// StandardPrimaries returns the [RGBPrimaries] for the given named
// standard.
func StandardPrimaries(name PrimariesName) RGBPrimaries {
	return RGBPrimaries{Name: name, XY: standardPrimariesXY[name]}
}

// PrimariesFromRGBXY classifies the given raw r, g, b chromaticities,
// returning the named standard if all three are within [Tolerance]
// componentwise of its definition, and Custom coordinates otherwise.
func PrimariesFromRGBXY(r, g, b num.Vector2) RGBPrimaries {
	p := RGBPrimaries{Name: PrimariesCustom, XY: [3]num.Vector2{r, g, b}}
	p.Canonicalize()
	return p
}

// Canonicalize re-classifies Custom coordinates against the named
// standards, mutating the receiver to the first standard matching
// within [Tolerance]. If none matches, the value is left Custom and
// [ErrCanonicalizationFailed] is returned. Named values are already
// canonical and return nil.
func (p *RGBPrimaries) Canonicalize() error {
	if p.Name != PrimariesCustom {
		return nil
	}
	for name := PrimariesBt709; name <= PrimariesCieXYZ; name++ {
		std := standardPrimariesXY[name]
		if xyInTolerance(p.XY[0], std[0]) &&
			xyInTolerance(p.XY[1], std[1]) &&
			xyInTolerance(p.XY[2], std[2]) {
			p.Name = name
			p.XY = std
			return nil
		}
	}
	return ErrCanonicalizationFailed
}

func xyInTolerance(a, b num.Vector2) bool {
	return num.Abs(a.X-b.X) < Tolerance && num.Abs(a.Y-b.Y) < Tolerance
}
