// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"cogentcore.org/colorspace/num"
	"github.com/stretchr/testify/assert"
)

func TestDetectExactBt709(t *testing.T) {
	p := PrimariesFromRGBXY(num.V2(0.64, 0.33), num.V2(0.30, 0.60), num.V2(0.15, 0.06))
	assert.Equal(t, PrimariesBt709, p.Name)
}

func TestDetectBt709WithinTolerance(t *testing.T) {
	p := PrimariesFromRGBXY(
		num.V2(0.64005, 0.33005),
		num.V2(0.30005, 0.60005),
		num.V2(0.15005, 0.06005),
	)
	assert.Equal(t, PrimariesBt709, p.Name)
	// detected values collapse to the standard's exact definition
	assert.Equal(t, StandardPrimaries(PrimariesBt709), p)
}

func TestCustomPrimariesForUnknownValues(t *testing.T) {
	p := PrimariesFromRGBXY(num.V2(0.7, 0.3), num.V2(0.2, 0.7), num.V2(0.1, 0.1))
	assert.Equal(t, PrimariesCustom, p.Name)
}

func TestCanonicalizeMatchingCustomPrimaries(t *testing.T) {
	p := RGBPrimaries{Name: PrimariesCustom, XY: [3]num.Vector2{
		{X: 0.64, Y: 0.33}, {X: 0.30, Y: 0.60}, {X: 0.15, Y: 0.06}}}
	assert.NoError(t, p.Canonicalize())
	assert.Equal(t, PrimariesBt709, p.Name)
}

func TestCanonicalizeNonMatchingCustomPrimaries(t *testing.T) {
	p := RGBPrimaries{Name: PrimariesCustom, XY: [3]num.Vector2{
		{X: 0.7, Y: 0.3}, {X: 0.2, Y: 0.7}, {X: 0.1, Y: 0.1}}}
	assert.ErrorIs(t, p.Canonicalize(), ErrCanonicalizationFailed)
	assert.Equal(t, PrimariesCustom, p.Name)
	// the value stays usable as custom
	assert.Equal(t, num.V2(0.7, 0.3), p.XY[0])
}

func TestCanonicalizeAlreadyCanonical(t *testing.T) {
	p := StandardPrimaries(PrimariesBt709)
	assert.NoError(t, p.Canonicalize())
	assert.Equal(t, PrimariesBt709, p.Name)
}

func TestCanonicalizeIdempotent(t *testing.T) {
	p := PrimariesFromRGBXY(num.V2(0.64, 0.33), num.V2(0.30, 0.60), num.V2(0.15, 0.06))
	before := p
	assert.NoError(t, p.Canonicalize())
	assert.Equal(t, before, p)
}

func TestDetectExactD65(t *testing.T) {
	wp := WhitePointFromXY(0.31271, 0.32902)
	assert.Equal(t, WhitePointD65, wp.Name)
}

func TestDetectD65WithinTolerance(t *testing.T) {
	wp := WhitePointFromXY(0.312715, 0.329025)
	assert.Equal(t, WhitePointD65, wp.Name)
	assert.Equal(t, StandardWhitePoint(WhitePointD65), wp)
}

func TestCustomWhitePointForUnknownValues(t *testing.T) {
	wp := WhitePointFromXY(0.4, 0.4)
	assert.Equal(t, WhitePointCustom, wp.Name)
}

func TestCanonicalizeMatchingCustomWhitePoint(t *testing.T) {
	wp := WhitePoint{Name: WhitePointCustom, XYZ: num.V3(0.95047, 1, 1.08883)}
	assert.NoError(t, wp.Canonicalize())
	assert.Equal(t, WhitePointD65, wp.Name)
}

func TestCanonicalizeNonMatchingCustomWhitePoint(t *testing.T) {
	wp := WhitePoint{Name: WhitePointCustom, XYZ: num.V3(0.9, 1, 1.1)}
	assert.ErrorIs(t, wp.Canonicalize(), ErrCanonicalizationFailed)
	assert.Equal(t, WhitePointCustom, wp.Name)
	assert.Equal(t, num.V3(0.9, 1, 1.1), wp.XYZ)
}

func TestAcesAp0Detection(t *testing.T) {
	p := PrimariesFromRGBXY(
		num.V2(0.7347, 0.2653),
		num.V2(0.0000, 1.0000),
		num.V2(0.0001, -0.0770),
	)
	assert.Equal(t, PrimariesAcesAp0, p.Name)
}

func TestAcesAp1Detection(t *testing.T) {
	p := PrimariesFromRGBXY(
		num.V2(0.713, 0.293),
		num.V2(0.165, 0.830),
		num.V2(0.128, 0.044),
	)
	assert.Equal(t, PrimariesAcesAp1, p.Name)
}

// No two named standards may be inside 2x tolerance of each other on
// all coordinates simultaneously, so first-match classification can
// never be ambiguous.
func TestCatalogSeparation(t *testing.T) {
	for a := PrimariesBt709; a <= PrimariesCieXYZ; a++ {
		for b := a + 1; b <= PrimariesCieXYZ; b++ {
			pa, pb := standardPrimariesXY[a], standardPrimariesXY[b]
			sep := num.Float(0)
			for i := range pa {
				sep = num.Max(sep, num.Abs(pa[i].X-pb[i].X))
				sep = num.Max(sep, num.Abs(pa[i].Y-pb[i].Y))
			}
			assert.Greater(t, sep, 2*Tolerance, "%v vs %v", a, b)
		}
	}
	for a := WhitePointA; a <= WhitePointF11; a++ {
		for b := a + 1; b <= WhitePointF11; b++ {
			wa, wb := standardWhitePointValues[a], standardWhitePointValues[b]
			sep := num.Max(num.Abs(wa.X-wb.X),
				num.Max(num.Abs(wa.Y-wb.Y), num.Abs(wa.Z-wb.Z)))
			assert.Greater(t, sep, 2*Tolerance, "%v vs %v", a, b)
		}
	}
}
