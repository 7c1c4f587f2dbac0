// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !colorspace64

package num

import "github.com/chewxy/math32"

// Float is the floating point type used for all color computation.
// It is float32 by default; building with the colorspace64 tag
// switches it to float64.
type Float = float32

// Pi is the circle constant at the active precision.
const Pi = math32.Pi

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

func Abs(x Float) Float { return math32.Abs(x) }

func Sqrt(x Float) Float { return math32.Sqrt(x) }

func Cbrt(x Float) Float { return math32.Cbrt(x) }

func Pow(x, y Float) Float { return math32.Pow(x, y) }

func Sin(x Float) Float { return math32.Sin(x) }

func Cos(x Float) Float { return math32.Cos(x) }

func Acos(x Float) Float { return math32.Acos(x) }

func Atan2(y, x Float) Float { return math32.Atan2(y, x) }

func Mod(x, y Float) Float { return math32.Mod(x, y) }

func Floor(x Float) Float { return math32.Floor(x) }

func Min(x, y Float) Float { return math32.Min(x, y) }

func Max(x, y Float) Float { return math32.Max(x, y) }

func IsNaN(x Float) bool { return math32.IsNaN(x) }
