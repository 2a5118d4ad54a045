package img2ascii

import "math"

// normalizer shapes a raw luminance into the final glyph brightness:
// optional range stretch, gamma correction, S-curve contrast, inversion.
type normalizer struct {
	lo, hi   float64 // Histogram bounds, used when stretch is set
	stretch  bool
	gamma    float64
	contrast float64 // S-curve strength; zero disables the curve
	invert   bool
}

func (n normalizer) apply(b float64) float64 {
	v := clamp01(b)
	// A near-flat histogram means there is no range worth stretching.
	if n.stretch && n.hi-n.lo > 0.01 {
		v = clamp01((v - n.lo) / (n.hi - n.lo))
	}
	v = gammaExpand(v, n.gamma)
	if n.contrast > 0 {
		v = sCurve(v, n.contrast)
	}
	if n.invert {
		v = 1 - v
	}
	return clamp01(v)
}

// gammaExpand is the sRGB-style expansion with a configurable exponent.
func gammaExpand(v, gamma float64) float64 {
	if v < 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, gamma)
}

// sCurve applies a symmetric contrast curve around the midpoint.
func sCurve(v, strength float64) float64 {
	if v < 0.5 {
		return math.Pow(2*v, strength) / 2
	}
	return 1 - math.Pow(2*(1-v), strength)/2
}
