package img2ascii

import (
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

// Detail selects the conversion pipeline and its default character ramp.
type Detail int

const (
	// DetailSmooth resizes directly to the character grid and maps
	// brightness through the short ramp.
	DetailSmooth Detail = iota
	// DetailDetailed works at twice the grid resolution, sharpens and
	// binarizes before downsampling, and maps through the long ramp.
	DetailDetailed
)

type Option func(conv *Converter)

// WithWidth sets the output width in character columns. The output height
// is always derived from the source aspect ratio.
func WithWidth(width int) Option {
	return func(conv *Converter) {
		conv.width = width
	}
}

// If used, the brightness-to-glyph mapping is reversed.
func WithInvert() Option {
	return func(conv *Converter) {
		conv.invert = true
	}
}

// WithDetail selects the pipeline variant.
func WithDetail(detail Detail) Option {
	return func(conv *Converter) {
		conv.detail = detail
	}
}

// WithRamp overrides the detail-selected character ramp. The ramp must
// hold at least two glyphs, ordered darkest to lightest.
func WithRamp(ramp string) Option {
	return func(conv *Converter) {
		conv.ramp = ramp
	}
}

type Converter struct {
	width  int    // Character columns
	invert bool   // Invert brightness
	detail Detail // Pipeline variant
	ramp   string // Overrides the detail-selected ramp when set
}

func New(opts ...Option) *Converter {
	conv := Converter{
		width:  80,
		invert: false,
		detail: DetailSmooth,
	}
	for _, opt := range opts {
		opt(&conv)
	}
	return &conv
}

// Encode converts img and writes the character art to w.
func Encode(w io.Writer, img image.Image, opts ...Option) error {
	art, err := New(opts...).Convert(img)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, art)
	return err
}

// ConvertReader decodes any registered image format from r and converts
// it. Decoding failures surface as *DecodeError.
func (conv *Converter) ConvertReader(r io.Reader) (string, error) {
	img, err := decode(r)
	if err != nil {
		return "", err
	}
	return conv.Convert(img)
}

// Convert renders img as lines of ramp glyphs, one line per character
// row. Every line is exactly the configured width.
func (conv *Converter) Convert(img image.Image) (string, error) {
	cols, rows, err := gridSize(img.Bounds(), conv.width)
	if err != nil {
		return "", err
	}
	if conv.detail == DetailDetailed {
		return conv.convertDetailed(img, cols, rows), nil
	}
	return conv.convertSmooth(img, cols, rows), nil
}

func (conv *Converter) glyphRamp() []rune {
	if conv.ramp != "" {
		return []rune(conv.ramp)
	}
	if conv.detail == DetailDetailed {
		return []rune(RampDetailed)
	}
	return []rune(RampSmooth)
}

// Alpha below this is treated as nothing to draw at all.
const transparentAlpha = 10

func (conv *Converter) convertSmooth(img image.Image, cols, rows int) string {
	// Clone normalizes the raster to NRGBA with its origin at (0, 0),
	// so pixel offsets below can use grid coordinates directly.
	small := imaging.Clone(resampleCubic(img, cols, rows))

	ramp := conv.glyphRamp()
	norm := normalizer{gamma: 2.2, invert: conv.invert}

	var sb strings.Builder
	sb.Grow((cols + 1) * rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			i := small.PixOffset(x, y)
			if small.Pix[i+3] < transparentAlpha {
				sb.WriteRune(ramp[len(ramp)-1])
				continue
			}
			b := luminance(small.Pix[i], small.Pix[i+1], small.Pix[i+2])
			sb.WriteRune(glyphAt(ramp, norm.apply(b)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (conv *Converter) convertDetailed(img image.Image, cols, rows int) string {
	// Work at twice the grid resolution so the filter chain binarizes
	// before the nearest-neighbor downsample, which keeps hard edges
	// that binarizing at grid resolution would lose.
	work := imaging.Clone(resampleCubic(img, cols*2, rows*2))
	if !opaque(work) {
		compositeWhite(work)
	}
	grayscale(work)
	adjustContrast(work, detailContrast)
	unsharpMask(work, detailSharpen)
	thresholdMedian(work)
	thresholdEdge(work, edgeCutoff)

	final := imaging.Clone(resampleNearest(work, cols, rows))
	lo, hi := percentileBounds(final, lowerPercentile, upperPercentile)
	norm := normalizer{
		lo:       lo,
		hi:       hi,
		stretch:  true,
		gamma:    1.5,
		contrast: 2.0,
		invert:   conv.invert,
	}

	ramp := conv.glyphRamp()
	var sb strings.Builder
	sb.Grow((cols + 1) * rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			i := final.PixOffset(x, y)
			b := luminance(final.Pix[i], final.Pix[i+1], final.Pix[i+2])
			sb.WriteRune(glyphAt(ramp, norm.apply(b)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
