// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build colorspace64

package num

import "math"

// Float is the floating point type used for all color computation.
// It is float32 by default; building with the colorspace64 tag
// switches it to float64.
type Float = float64

// Pi is the circle constant at the active precision.
const Pi = math.Pi

func Abs(x Float) Float { return math.Abs(x) }

func Sqrt(x Float) Float { return math.Sqrt(x) }

func Cbrt(x Float) Float { return math.Cbrt(x) }

func Pow(x, y Float) Float { return math.Pow(x, y) }

func Sin(x Float) Float { return math.Sin(x) }

func Cos(x Float) Float { return math.Cos(x) }

func Acos(x Float) Float { return math.Acos(x) }

func Atan2(y, x Float) Float { return math.Atan2(y, x) }

func Mod(x, y Float) Float { return math.Mod(x, y) }

func Floor(x Float) Float { return math.Floor(x) }

func Min(x, y Float) Float { return math.Min(x, y) }

func Max(x, y Float) Float { return math.Max(x, y) }

func IsNaN(x Float) bool { return math.IsNaN(x) }
