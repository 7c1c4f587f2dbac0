// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import (
	"fmt"

	"cogentcore.org/colorspace/num"
)

// Color is a color value: a 3-component vector tagged with the
// [ColorSpace] its components are relative to. Component meaning and
// range depend entirely on the space (e.g. LAB's L is in [0, 100]
// while normalized RGB is in [0, 1]); nothing enforces ranges.
type Color struct {
	Space ColorSpace
	Value num.Vector3
}

// NewColor returns a color with the given components in the given
// space.
func NewColor(space ColorSpace, x, y, z num.Float) Color {
	return Color{Space: space, Value: num.V3(x, y, z)}
}

// NewSRGB returns a gamma-encoded sRGB color.
func NewSRGB(r, g, b num.Float) Color {
	return NewColor(SRGB, r, g, b)
}

// NewLinearSRGB returns a linear-light sRGB color.
func NewLinearSRGB(r, g, b num.Float) Color {
	return NewColor(LinearSRGB, r, g, b)
}

// NewXYZ returns a CIE XYZ (D65) color.
func NewXYZ(x, y, z num.Float) Color {
	return NewColor(XYZ, x, y, z)
}

// To converts this color to the given destination space. Converting
// to the same space returns the value unchanged. Out-of-gamut results
// pass through with out-of-range components rather than clamping or
// erroring.
func (c Color) To(dst ColorSpace) Color {
	conv := NewColorConversion(c.Space, dst)
	return Color{Space: dst, Value: conv.Convert(c.Value)}
}

// Clamp01 returns the color with each component clamped to [0, 1],
// a convenience for display-referred RGB spaces.
func (c Color) Clamp01() Color {
	c.Value = num.V3(
		num.Clamp(c.Value.X, 0, 1),
		num.Clamp(c.Value.Y, 0, 1),
		num.Clamp(c.Value.Z, 0, 1),
	)
	return c
}

func (c Color) String() string {
	return fmt.Sprintf("(%g, %g, %g) %v/%v %v", c.Value.X, c.Value.Y, c.Value.Z,
		c.Space.Primaries.Name, c.Space.WhitePoint.Name, c.Space.Transform)
}
