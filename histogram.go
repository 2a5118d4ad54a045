package img2ascii

import (
	"image"
	"sort"
)

// luminances collects every pixel's luminance in row-major order.
func luminances(img *image.NRGBA) []float64 {
	out := make([]float64, 0, len(img.Pix)/4)
	for i := 0; i < len(img.Pix); i += 4 {
		out = append(out, luminance(img.Pix[i], img.Pix[i+1], img.Pix[i+2]))
	}
	return out
}

// percentileBounds returns the luminances at the lower and upper
// percentiles of the raster. Trimming the outlier pixels keeps a few very
// dark or very light pixels from compressing the usable dynamic range.
func percentileBounds(img *image.NRGBA, lower, upper float64) (lo, hi float64) {
	lums := luminances(img)
	sort.Float64s(lums)
	n := len(lums)
	loIdx := clampInt(int(float64(n)*lower/100), 0, n-1)
	hiIdx := clampInt(int(float64(n)*upper/100), 0, n-1)
	return lums[loIdx], lums[hiIdx]
}
