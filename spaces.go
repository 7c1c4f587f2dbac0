// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

// The built-in color space catalog. These are initialized once and
// never mutated; treat them as constants.
var (
	// XYZ is the CIE XYZ reference space with a D65 white point, the
	// connecting space all conversions are routed through.
	XYZ = ColorSpace{
		Primaries:  StandardPrimaries(PrimariesCieXYZ),
		WhitePoint: StandardWhitePoint(WhitePointD65),
	}

	// LinearSRGB is linear-light sRGB / BT.709: BT.709 primaries with
	// a D65 white point and no transfer encoding.
	LinearSRGB = ColorSpace{
		Primaries:  StandardPrimaries(PrimariesBt709),
		WhitePoint: StandardWhitePoint(WhitePointD65),
	}

	// SRGB is gamma-encoded sRGB, the usual 8-bit display space.
	SRGB = NewModelColorSpace(LinearSRGB, TransformSRGB)

	// BT709 is BT.709 with its scene OETF, as used for HD video.
	BT709 = NewModelColorSpace(LinearSRGB, TransformBt709)

	// BT2020 is linear-light BT.2020: wide-gamut UHD primaries, D65.
	BT2020 = ColorSpace{
		Primaries:  StandardPrimaries(PrimariesBt2020),
		WhitePoint: StandardWhitePoint(WhitePointD65),
	}

	// EncodedBT2020 is BT.2020 with the BT.709-style scene OETF.
	EncodedBT2020 = NewModelColorSpace(BT2020, TransformBt709)

	// BT2100PQ is BT.2100: BT.2020 primaries with the PQ (SMPTE ST
	// 2084) transfer, for HDR video.
	BT2100PQ = NewModelColorSpace(BT2020, TransformPQ)

	// LinearP3 is linear-light DCI-P3 with a D65 white point.
	LinearP3 = ColorSpace{
		Primaries:  StandardPrimaries(PrimariesP3),
		WhitePoint: StandardWhitePoint(WhitePointD65),
	}

	// DisplayP3 is Apple's Display P3: P3 primaries with the sRGB
	// transfer encoding.
	DisplayP3 = NewModelColorSpace(LinearP3, TransformSRGB)

	// ACEScg is the ACES AP1 working space (linear, D60 white).
	ACEScg = ColorSpace{
		Primaries:  StandardPrimaries(PrimariesAcesAp1),
		WhitePoint: StandardWhitePoint(WhitePointD60),
	}

	// ACES2065_1 is the ACES AP0 archival space (linear, D60 white).
	ACES2065_1 = ColorSpace{
		Primaries:  StandardPrimaries(PrimariesAcesAp0),
		WhitePoint: StandardWhitePoint(WhitePointD60),
	}

	// Oklab is Björn Ottosson's perceptual Lab space, defined over
	// XYZ D65.
	Oklab = NewModelColorSpace(XYZ, TransformOklab)

	// Oklch is the polar form of Oklab: (lightness, chroma, hue°).
	Oklch = NewModelColorSpace(XYZ, TransformOklch)

	// CieLAB is CIE 1976 L*a*b* relative to D65, with L in [0, 100].
	CieLAB = NewModelColorSpace(XYZ, TransformLab)

	// CieLCH is the polar form of CIE LAB: (L, chroma, hue°).
	CieLCH = NewModelColorSpace(XYZ, TransformLch)

	// CieLUV is CIE 1976 L*u*v* relative to D65.
	CieLUV = NewModelColorSpace(XYZ, TransformLuv)

	// CieXyY is chromaticity + luminance: (x, y, Y).
	CieXyY = NewModelColorSpace(XYZ, TransformXyY)

	// HSL, HSV, and HSI are hue/saturation views of gamma-encoded
	// sRGB, with hue in degrees in [0, 360).
	HSL = NewModelColorSpace(LinearSRGB, TransformHSL)
	HSV = NewModelColorSpace(LinearSRGB, TransformHSV)
	HSI = NewModelColorSpace(LinearSRGB, TransformHSI)

	// ICtCpPQ is BT.2100 ICtCp with the PQ nonlinearity, defined over
	// linear BT.2020.
	ICtCpPQ = NewModelColorSpace(BT2020, TransformICtCpPQ)
)
