// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides the vector, matrix, and scalar math used by
// colorspace, at a build-time selectable floating point precision.
// Initially copied from cogentcore.org/core/math32, with the element
// type generalized to [Float].
package num

// Clamp clamps x to the provided closed interval [lo, hi].
func Clamp(x, lo, hi Float) Float {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// DegToRad converts a number of degrees to radians.
func DegToRad(deg Float) Float {
	return deg * (Pi / 180)
}

// RadToDeg converts a number of radians to degrees.
func RadToDeg(rad Float) Float {
	return rad * (180 / Pi)
}
