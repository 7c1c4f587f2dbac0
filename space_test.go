// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"testing"

	"cogentcore.org/colorspace/num"
	"github.com/stretchr/testify/assert"
)

func TestSpaceEquality(t *testing.T) {
	// user-constructed sRGB equals the built-in definition
	user := NewColorSpace(
		PrimariesFromRGBXY(num.V2(0.64, 0.33), num.V2(0.30, 0.60), num.V2(0.15, 0.06)),
		WhitePointFromXY(0.31271, 0.32902),
	)
	assert.True(t, user.Equal(LinearSRGB))
	assert.True(t, NewModelColorSpace(user, TransformSRGB).Equal(SRGB))

	// transforms distinguish otherwise identical spaces
	assert.False(t, SRGB.Equal(LinearSRGB))
	assert.False(t, HSL.Equal(HSV))

	// equality canonicalizes both sides
	raw := ColorSpace{
		Primaries: RGBPrimaries{Name: PrimariesCustom, XY: [3]num.Vector2{
			{X: 0.64, Y: 0.33}, {X: 0.30, Y: 0.60}, {X: 0.15, Y: 0.06}}},
		WhitePoint: WhitePoint{Name: WhitePointCustom, XYZ: num.V3(0.95047, 1, 1.08883)},
	}
	assert.True(t, raw.Equal(LinearSRGB))
	assert.False(t, raw.Equal(BT2020))
}

func TestReference(t *testing.T) {
	assert.Equal(t, LinearSRGB, SRGB.Reference())
	assert.Equal(t, BT2020, ICtCpPQ.Reference())
	assert.Equal(t, XYZ, Oklab.Reference())
	assert.True(t, LinearSRGB.IsLinear())
	assert.False(t, SRGB.IsLinear())

	// a model space shares its reference's primaries and white point
	assert.Equal(t, PrimariesBt2020, BT2100PQ.Primaries.Name)
	assert.Equal(t, WhitePointD65, BT2100PQ.WhitePoint.Name)
}

func TestWithWhitePoint(t *testing.T) {
	d50 := LinearSRGB.WithWhitePoint(StandardWhitePoint(WhitePointD50))
	assert.Equal(t, WhitePointD50, d50.WhitePoint.Name)
	assert.Equal(t, PrimariesBt709, d50.Primaries.Name)
	assert.False(t, d50.Equal(LinearSRGB))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "BT.709", PrimariesBt709.String())
	assert.Equal(t, "D65", WhitePointD65.String())
	assert.Equal(t, "Oklab", TransformOklab.String())
	assert.Equal(t, "Invalid", PrimariesName(99).String())
}
