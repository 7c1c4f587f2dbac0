// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import "cogentcore.org/colorspace/num"

// BT.2100 ICtCp matrices: linear BT.2020 RGB to LMS, and PQ-encoded
// L'M'S' to ICtCp.
var (
	ictcpRGBToLMS = num.Matrix3FromRows(
		num.V3(1688.0/4096, 2146.0/4096, 262.0/4096),
		num.V3(683.0/4096, 2951.0/4096, 462.0/4096),
		num.V3(99.0/4096, 309.0/4096, 3688.0/4096),
	)
	ictcpLMSToOpp = num.Matrix3FromRows(
		num.V3(2048.0/4096, 2048.0/4096, 0),
		num.V3(6610.0/4096, -13613.0/4096, 7003.0/4096),
		num.V3(17933.0/4096, -17390.0/4096, -543.0/4096),
	)
	ictcpLMSToRGB = ictcpRGBToLMS.Inverse()
	ictcpOppToLMS = ictcpLMSToOpp.Inverse()
)

// ICtCpPQFromLinear converts a linear BT.2020 RGB vector to BT.2100
// ICtCp with the PQ nonlinearity (1.0 linear = 10,000 cd/m²).
func ICtCpPQFromLinear(v, wp num.Vector3) num.Vector3 {
	lms := ictcpRGBToLMS.MulVector3(v)
	lms = PQFromLinear(lms, wp)
	return ictcpLMSToOpp.MulVector3(lms)
}

// ICtCpPQToLinear converts BT.2100 ICtCp (PQ) back to linear BT.2020
// RGB.
func ICtCpPQToLinear(v, wp num.Vector3) num.Vector3 {
	lms := ictcpOppToLMS.MulVector3(v)
	lms = PQToLinear(lms, wp)
	return ictcpLMSToRGB.MulVector3(lms)
}
