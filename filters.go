package img2ascii

import (
	"image"
	"sort"
)

// Filter-chain constants for the detailed pipeline.
const (
	detailContrast  = 4.0
	detailSharpen   = 2.0
	edgeCutoff      = 0.5
	lowerPercentile = 2.0
	upperPercentile = 98.0
)

func opaque(img *image.NRGBA) bool {
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0xff {
			return false
		}
	}
	return true
}

// compositeWhite flattens transparency onto a white background.
func compositeWhite(img *image.NRGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		a := float64(img.Pix[i+3]) / 255
		if a == 1 {
			continue
		}
		for c := 0; c < 3; c++ {
			v := float64(img.Pix[i+c])
			img.Pix[i+c] = clamp255(v*a + 255*(1-a))
		}
		img.Pix[i+3] = 0xff
	}
}

// grayscale replaces each pixel's color channels with its luminance.
// Alpha is left alone.
func grayscale(img *image.NRGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		v := clamp255(luminance(img.Pix[i], img.Pix[i+1], img.Pix[i+2]) * 255)
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = v, v, v
	}
}

// adjustContrast stretches each channel linearly around the midpoint,
// pushing mid-tones toward black and white ahead of thresholding.
func adjustContrast(img *image.NRGBA, factor float64) {
	for i := 0; i < len(img.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			img.Pix[i+c] = clamp255((float64(img.Pix[i+c])-128)*factor + 128)
		}
	}
}

// unsharpMask amplifies each pixel's difference from its 3x3 neighborhood
// mean. Border neighbors clamp to the raster edge. A strength of zero or
// less leaves the raster unchanged.
func unsharpMask(img *image.NRGBA, strength float64) {
	if strength <= 0 {
		return
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	lum := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			lum[y*w+x] = luminance(img.Pix[i], img.Pix[i+1], img.Pix[i+2])
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum float64
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := clampInt(x+dx, 0, w-1)
					ny := clampInt(y+dy, 0, h-1)
					sum += lum[ny*w+nx]
				}
			}
			center := lum[y*w+x]
			sharp := clamp01(center + (center-sum/8)*strength)
			v := clamp255(sharp * 255)
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = v, v, v
		}
	}
}

// thresholdMedian binarizes at the raster's median luminance, recomputed
// per image. For even pixel counts the upper median is used.
func thresholdMedian(img *image.NRGBA) {
	lums := luminances(img)
	sort.Float64s(lums)
	median := lums[len(lums)/2]
	for i := 0; i < len(img.Pix); i += 4 {
		v := uint8(0)
		if luminance(img.Pix[i], img.Pix[i+1], img.Pix[i+2]) > median {
			v = 255
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = v, v, v
	}
}

// thresholdEdge binarizes again at a fixed cutoff. It runs after the
// median pass as a final sharpening guarantee.
func thresholdEdge(img *image.NRGBA, cutoff float64) {
	for i := 0; i < len(img.Pix); i += 4 {
		v := uint8(0)
		if luminance(img.Pix[i], img.Pix[i+1], img.Pix[i+2]) >= cutoff {
			v = 255
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = v, v, v
	}
}
