// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

import "cogentcore.org/colorspace/num"

// The HSL, HSV, and HSI models are hue/saturation views of
// gamma-encoded sRGB components, so each transform applies the sRGB
// encoding on the way in and removes it on the way out, keeping the
// reference space linear. Hue is degrees in [0, 360); r = g = b has
// hue and saturation 0.

// hexHue returns the hexagonal hue in degrees for encoded r, g, b
// with the given max component and chroma.
func hexHue(r, g, b, max, chroma num.Float) num.Float {
	var h num.Float
	switch max {
	case r:
		h = num.Mod((g-b)/chroma, 6)
	case g:
		h = (b-r)/chroma + 2
	default:
		h = (r-g)/chroma + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h
}

func minMax(r, g, b num.Float) (min, max num.Float) {
	return num.Min(r, num.Min(g, b)), num.Max(r, num.Max(g, b))
}

// HslFromLinear converts a linear sRGB vector to (hue, saturation,
// lightness).
func HslFromLinear(v, wp num.Vector3) num.Vector3 {
	e := SRGBFromLinear(v, wp)
	min, max := minMax(e.X, e.Y, e.Z)
	l := (max + min) / 2
	chroma := max - min
	if chroma < chromaEps {
		return num.V3(0, 0, l)
	}
	var s num.Float
	if l > 0.5 {
		s = chroma / (2 - max - min)
	} else {
		s = chroma / (max + min)
	}
	return num.V3(hexHue(e.X, e.Y, e.Z, max, chroma), s, l)
}

// HslToLinear converts (hue, saturation, lightness) back to linear
// sRGB.
func HslToLinear(v, wp num.Vector3) num.Vector3 {
	h, s, l := v.X/360, v.Y, v.Z
	if s == 0 {
		return SRGBToLinear(num.V3(l, l, l), wp)
	}
	var q num.Float
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	e := num.V3(
		hueToComp(p, q, h+1.0/3),
		hueToComp(p, q, h),
		hueToComp(p, q, h-1.0/3),
	)
	return SRGBToLinear(e, wp)
}

func hueToComp(p, q, t num.Float) num.Float {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// HsvFromLinear converts a linear sRGB vector to (hue, saturation,
// value).
func HsvFromLinear(v, wp num.Vector3) num.Vector3 {
	e := SRGBFromLinear(v, wp)
	min, max := minMax(e.X, e.Y, e.Z)
	chroma := max - min
	if chroma < chromaEps || max == 0 {
		return num.V3(0, 0, max)
	}
	return num.V3(hexHue(e.X, e.Y, e.Z, max, chroma), chroma/max, max)
}

// HsvToLinear converts (hue, saturation, value) back to linear sRGB.
func HsvToLinear(v, wp num.Vector3) num.Vector3 {
	h, s, val := num.Mod(v.X, 360)/60, v.Y, v.Z
	if h < 0 {
		h += 6
	}
	i := num.Floor(h)
	f := h - i
	p := val * (1 - s)
	q := val * (1 - s*f)
	u := val * (1 - s*(1-f))
	var e num.Vector3
	switch int(i) % 6 {
	case 0:
		e = num.V3(val, u, p)
	case 1:
		e = num.V3(q, val, p)
	case 2:
		e = num.V3(p, val, u)
	case 3:
		e = num.V3(p, q, val)
	case 4:
		e = num.V3(u, p, val)
	default:
		e = num.V3(val, p, q)
	}
	return SRGBToLinear(e, wp)
}

// HsiFromLinear converts a linear sRGB vector to (hue, saturation,
// intensity), using the circular hue definition.
func HsiFromLinear(v, wp num.Vector3) num.Vector3 {
	e := SRGBFromLinear(v, wp)
	r, g, b := e.X, e.Y, e.Z
	i := (r + g + b) / 3
	if i < chromaEps {
		return num.V3(0, 0, i)
	}
	min, _ := minMax(r, g, b)
	s := 1 - min/i
	if s < chromaEps {
		return num.V3(0, 0, i)
	}
	n := 0.5 * ((r - g) + (r - b))
	d := num.Sqrt((r-g)*(r-g) + (r-b)*(g-b))
	h := num.RadToDeg(num.Acos(num.Clamp(n/d, -1, 1)))
	if b > g {
		h = 360 - h
	}
	return num.V3(h, s, i)
}

// HsiToLinear converts (hue, saturation, intensity) back to linear
// sRGB.
func HsiToLinear(v, wp num.Vector3) num.Vector3 {
	h, s, i := num.Mod(v.X, 360), v.Y, v.Z
	if h < 0 {
		h += 360
	}
	var r, g, b num.Float
	switch {
	case h < 120:
		b = i * (1 - s)
		r = i * (1 + s*num.Cos(num.DegToRad(h))/num.Cos(num.DegToRad(60-h)))
		g = 3*i - r - b
	case h < 240:
		h -= 120
		r = i * (1 - s)
		g = i * (1 + s*num.Cos(num.DegToRad(h))/num.Cos(num.DegToRad(60-h)))
		b = 3*i - r - g
	default:
		h -= 240
		g = i * (1 - s)
		b = i * (1 + s*num.Cos(num.DegToRad(h))/num.Cos(num.DegToRad(60-h)))
		r = 3*i - g - b
	}
	return SRGBToLinear(num.V3(r, g, b), wp)
}
