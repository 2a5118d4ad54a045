package img2ascii

// Character ramps run darkest to lightest. Reference tables from
// http://paulbourke.net/dataformats/asciiart/
const (
	// RampSmooth trades gradation for clean large-area shading.
	RampSmooth = "@%#*+=-:. "
	// RampDetailed has 70 glyph densities for finer gradation.
	RampDetailed = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "
)

// glyphAt quantizes a brightness in [0,1] to a ramp glyph. Index 0 is the
// densest glyph, so bright pixels land at the end of the ramp.
func glyphAt(ramp []rune, v float64) rune {
	return ramp[int(v*float64(len(ramp)-1)+0.5)]
}
