// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorspace

import "cogentcore.org/colorspace/num"

// The precomputed conversion matrix table. It is a pure cache keyed
// by canonical (source, destination) reference-space descriptions:
// serving a conversion from here instead of deriving it on demand
// must not change the result beyond floating point rounding. The
// table is populated once at package initialization and never
// mutated, so unsynchronized concurrent reads are safe.

type matrixKey struct {
	srcPrimaries PrimariesName
	srcWhite     WhitePointName
	dstPrimaries PrimariesName
	dstWhite     WhitePointName
}

// precomputedMatrix returns the bundled matrix between the linear
// reference spaces of src and dst, if one exists. Spaces with custom
// primaries or white points never hit the table.
func precomputedMatrix(src, dst ColorSpace) (num.Matrix3, bool) {
	if src.Primaries.Name == PrimariesCustom || src.WhitePoint.Name == WhitePointCustom ||
		dst.Primaries.Name == PrimariesCustom || dst.WhitePoint.Name == WhitePointCustom {
		return num.Matrix3{}, false
	}
	m, ok := conversionMatrices[matrixKey{
		src.Primaries.Name, src.WhitePoint.Name,
		dst.Primaries.Name, dst.WhitePoint.Name,
	}]
	return m, ok
}

var conversionMatrices = map[matrixKey]num.Matrix3{
	{PrimariesBt709, WhitePointD65, PrimariesCieXYZ, WhitePointD65}: num.Matrix3FromRows(
		num.V3(0.4124564, 0.3575761, 0.1804375),
		num.V3(0.2126729, 0.7151522, 0.0721750),
		num.V3(0.0193339, 0.1191920, 0.9503041),
	),
	{PrimariesCieXYZ, WhitePointD65, PrimariesBt709, WhitePointD65}: num.Matrix3FromRows(
		num.V3(3.2404542, -1.5371385, -0.4985314),
		num.V3(-0.9692660, 1.8760108, 0.0415560),
		num.V3(0.0556434, -0.2040259, 1.0572252),
	),
	{PrimariesBt2020, WhitePointD65, PrimariesCieXYZ, WhitePointD65}: num.Matrix3FromRows(
		num.V3(0.6369580, 0.1446169, 0.1688810),
		num.V3(0.2627002, 0.6779981, 0.0593017),
		num.V3(0.0000000, 0.0280727, 1.0609851),
	),
	{PrimariesCieXYZ, WhitePointD65, PrimariesBt2020, WhitePointD65}: num.Matrix3FromRows(
		num.V3(1.7166512, -0.3556708, -0.2533663),
		num.V3(-0.6666844, 1.6164812, 0.0157685),
		num.V3(0.0176399, -0.0427706, 0.9421031),
	),
	{PrimariesBt709, WhitePointD65, PrimariesBt2020, WhitePointD65}: num.Matrix3FromRows(
		num.V3(0.6274039, 0.3292830, 0.0433131),
		num.V3(0.0690973, 0.9195404, 0.0113623),
		num.V3(0.0163914, 0.0880133, 0.8955953),
	),
	{PrimariesBt2020, WhitePointD65, PrimariesBt709, WhitePointD65}: num.Matrix3FromRows(
		num.V3(1.6604911, -0.5876411, -0.0728499),
		num.V3(-0.1245505, 1.1328999, -0.0083494),
		num.V3(-0.0181508, -0.1005789, 1.1187297),
	),
	{PrimariesAcesAp0, WhitePointD60, PrimariesCieXYZ, WhitePointD60}: num.Matrix3FromRows(
		num.V3(0.9525523959, 0, 0.0000936786),
		num.V3(0.3439664498, 0.7281660966, -0.0721325464),
		num.V3(0, 0, 1.0088251844),
	),
	{PrimariesCieXYZ, WhitePointD60, PrimariesAcesAp0, WhitePointD60}: num.Matrix3FromRows(
		num.V3(1.0498110175, 0, -0.0000974845),
		num.V3(-0.4959030231, 1.3733130458, 0.0982400361),
		num.V3(0, 0, 0.9912520182),
	),
	{PrimariesAcesAp1, WhitePointD60, PrimariesCieXYZ, WhitePointD60}: num.Matrix3FromRows(
		num.V3(0.6624541811, 0.1340042065, 0.1561876870),
		num.V3(0.2722287168, 0.6740817658, 0.0536895174),
		num.V3(-0.0055746495, 0.0040607335, 1.0103391003),
	),
	{PrimariesCieXYZ, WhitePointD60, PrimariesAcesAp1, WhitePointD60}: num.Matrix3FromRows(
		num.V3(1.6410233797, -0.3248032942, -0.2364246952),
		num.V3(-0.6636628587, 1.6153315917, 0.0167563477),
		num.V3(0.0117218943, -0.0082844420, 0.9883948585),
	),
}
