package img2ascii

import (
	"image"

	"github.com/nfnt/resize"
)

// Character cells are roughly twice as tall as wide, so the grid height is
// half of what the source aspect ratio alone would give.
const cellAspect = 0.5

// gridSize derives the character grid dimensions from the source bounds
// and the configured width.
func gridSize(bounds image.Rectangle, width int) (cols, rows int, err error) {
	if width < 1 {
		return 0, 0, &InvalidDimensionError{Width: width}
	}
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW < 1 || srcH < 1 {
		return 0, 0, &InvalidDimensionError{Width: srcW, Height: srcH}
	}
	rows = int(float64(width)*float64(srcH)/float64(srcW)*cellAspect + 0.5)
	if rows < 1 {
		return 0, 0, &InvalidDimensionError{Width: width, Height: rows}
	}
	return width, rows, nil
}

// The interpolation split is deliberate: cubic on the way into the
// working raster, nearest-neighbor on the way out. The final resample
// runs after the filter chain has binarized the working raster and must
// not blur those edges back out.

func resampleCubic(img image.Image, w, h int) image.Image {
	return resize.Resize(uint(w), uint(h), img, resize.Bicubic)
}

func resampleNearest(img image.Image, w, h int) image.Image {
	return resize.Resize(uint(w), uint(h), img, resize.NearestNeighbor)
}
