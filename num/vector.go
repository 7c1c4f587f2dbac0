// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

// Vector2 is a 2 dimensional vector, used here for xy chromaticity
// coordinates.
type Vector2 struct {
	X Float
	Y Float
}

// V2 returns a new [Vector2] with the given x and y components.
func V2(x, y Float) Vector2 {
	return Vector2{x, y}
}

// Vector3 is a 3 dimensional vector, used here for color component
// triples and XYZ tristimulus values.
type Vector3 struct {
	X Float
	Y Float
	Z Float
}

// V3 returns a new [Vector3] with the given x, y, and z components.
func V3(x, y, z Float) Vector3 {
	return Vector3{x, y, z}
}

// Add adds the other given vector to this one and returns the result.
func (v Vector3) Add(o Vector3) Vector3 {
	return V3(v.X+o.X, v.Y+o.Y, v.Z+o.Z)
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector3) Sub(o Vector3) Vector3 {
	return V3(v.X-o.X, v.Y-o.Y, v.Z-o.Z)
}

// Mul multiplies each component of this vector by the corresponding
// component of the other given vector and returns the result.
func (v Vector3) Mul(o Vector3) Vector3 {
	return V3(v.X*o.X, v.Y*o.Y, v.Z*o.Z)
}

// Div divides each component of this vector by the corresponding
// component of the other given vector and returns the result.
func (v Vector3) Div(o Vector3) Vector3 {
	return V3(v.X/o.X, v.Y/o.Y, v.Z/o.Z)
}

// MulScalar multiplies each component of this vector by the given
// scalar and returns the result.
func (v Vector3) MulScalar(s Float) Vector3 {
	return V3(v.X*s, v.Y*s, v.Z*s)
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector3) Dot(o Vector3) Float {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}
