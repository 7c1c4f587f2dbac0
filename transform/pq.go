// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import "cogentcore.org/colorspace/num"

// SMPTE ST 2084 constants
const (
	pqM1 = 2610.0 / 16384
	pqM2 = 2523.0 / 4096 * 128
	pqC1 = 3424.0 / 4096
	pqC2 = 2413.0 / 4096 * 32
	pqC3 = 2392.0 / 4096 * 32
)

// PQFromLinear applies the SMPTE ST 2084 perceptual quantizer to each
// component, with 1.0 linear corresponding to 10,000 cd/m². The PQ
// curve is only defined for non-negative input, so negative
// components clamp to 0.
func PQFromLinear(v, wp num.Vector3) num.Vector3 {
	return num.V3(pqFromLinear(v.X), pqFromLinear(v.Y), pqFromLinear(v.Z))
}

// PQToLinear removes the SMPTE ST 2084 perceptual quantizer from each
// component.
func PQToLinear(v, wp num.Vector3) num.Vector3 {
	return num.V3(pqToLinear(v.X), pqToLinear(v.Y), pqToLinear(v.Z))
}

func pqFromLinear(c num.Float) num.Float {
	c = num.Max(c, 0)
	p := num.Pow(c, pqM1)
	return num.Pow((pqC1+pqC2*p)/(1+pqC3*p), pqM2)
}

func pqToLinear(c num.Float) num.Float {
	c = num.Max(c, 0)
	p := num.Pow(c, 1/pqM2)
	n := num.Max(p-pqC1, 0)
	return num.Pow(n/(pqC2-pqC3*p), 1/pqM1)
}
