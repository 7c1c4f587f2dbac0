// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorspace converts colors between color spaces and color
// models that use 3-component vectors, such as sRGB, BT.2020, ACEScg,
// CIE XYZ/LAB/LCH/LUV/xyY, Oklab, HSL/HSV/HSI, and ICtCp. It is
// intended for games and other interactive visual applications where
// correct wide-gamut and non-linear color handling matters.
//
// A [Color] is a [ColorSpace] tag plus a 3-component vector, and
// [Color.To] converts it to any other space. Conversions are derived
// programmatically by routing through CIE XYZ as a connecting space:
// every supported space is either a linear transform of XYZ (an RGB
// space given by primaries and a white point) or a non-linear model
// defined by a transform function pair over such a linear reference
// space. A conversion is therefore always three stages: the source's
// inverse transform (if any), one premultiplied 3x3 matrix (including
// any chromatic adaptation between differing white points), and the
// destination's forward transform (if any). [ColorConversion] exposes
// the matrix and the transform identifiers so the same pipeline can
// be ported to a shader or other execution environment.
//
// Raw primaries and white points are canonicalized: coordinates that
// match a named standard within a small tolerance collapse to the
// named variant, so user-constructed spaces compare equal to the
// built-in ones and can reuse precomputed conversion matrices.
//
// All computation uses [num.Float], which is float32 by default and
// float64 when building with the colorspace64 tag. Everything in this
// package is immutable after initialization and safe for concurrent
// use.
package colorspace
