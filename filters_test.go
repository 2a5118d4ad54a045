package img2ascii

import (
	"image/color"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("filters", func() {
	Describe("compositeWhite", func() {
		It("replaces fully transparent pixels with white", func() {
			img := uniformImage(2, 2, color.NRGBA{R: 100, G: 100, B: 100, A: 0})
			compositeWhite(img)
			for i := 0; i < len(img.Pix); i += 4 {
				Expect(img.Pix[i+0]).To(Equal(uint8(255)))
				Expect(img.Pix[i+1]).To(Equal(uint8(255)))
				Expect(img.Pix[i+2]).To(Equal(uint8(255)))
				Expect(img.Pix[i+3]).To(Equal(uint8(255)))
			}
		})

		It("blends partially transparent pixels toward white", func() {
			img := uniformImage(1, 1, color.NRGBA{R: 0, G: 0, B: 0, A: 128})
			compositeWhite(img)
			Expect(img.Pix[0]).To(Equal(uint8(127)))
			Expect(img.Pix[3]).To(Equal(uint8(255)))
		})

		It("leaves opaque pixels alone", func() {
			img := uniformImage(1, 1, color.NRGBA{R: 12, G: 34, B: 56, A: 255})
			Expect(opaque(img)).To(BeTrue())
			compositeWhite(img)
			Expect(img.Pix[0]).To(Equal(uint8(12)))
			Expect(img.Pix[1]).To(Equal(uint8(34)))
			Expect(img.Pix[2]).To(Equal(uint8(56)))
		})
	})

	Describe("grayscale", func() {
		It("replicates the weighted luminance across channels", func() {
			img := uniformImage(1, 1, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
			grayscale(img)
			Expect(img.Pix[0]).To(Equal(uint8(76))) // 0.299 * 255
			Expect(img.Pix[1]).To(Equal(uint8(76)))
			Expect(img.Pix[2]).To(Equal(uint8(76)))
			Expect(img.Pix[3]).To(Equal(uint8(255)))
		})
	})

	Describe("adjustContrast", func() {
		It("stretches channels around the midpoint and clamps", func() {
			img := grayImage(2, 1, func(x, y int) uint8 {
				if x == 0 {
					return 100
				}
				return 200
			})
			adjustContrast(img, 2)
			Expect(img.Pix[0]).To(Equal(uint8(72)))  // (100-128)*2+128
			Expect(img.Pix[4]).To(Equal(uint8(255))) // (200-128)*2+128 clamped
		})
	})

	Describe("unsharpMask", func() {
		It("is a no-op at zero strength", func() {
			img := grayImage(3, 3, func(x, y int) uint8 { return uint8(x * 100) })
			before := append([]uint8(nil), img.Pix...)
			unsharpMask(img, 0)
			Expect(img.Pix).To(Equal(before))
		})

		It("leaves a uniform raster unchanged", func() {
			img := uniformImage(3, 3, color.NRGBA{R: 90, G: 90, B: 90, A: 255})
			unsharpMask(img, 2)
			for i := 0; i < len(img.Pix); i += 4 {
				Expect(img.Pix[i]).To(Equal(uint8(90)))
			}
		})

		It("pushes a bright center further from its dark neighborhood", func() {
			img := grayImage(3, 3, func(x, y int) uint8 {
				if x == 1 && y == 1 {
					return 200
				}
				return 50
			})
			unsharpMask(img, 2)
			center := img.PixOffset(1, 1)
			Expect(img.Pix[center]).To(Equal(uint8(255))) // clamped upward
		})
	})

	Describe("thresholdMedian", func() {
		It("binarizes at the upper median", func() {
			img := grayImage(2, 2, func(x, y int) uint8 {
				return [4]uint8{10, 20, 200, 210}[y*2+x]
			})
			thresholdMedian(img)
			// Median of {10,20,200,210} is 200; only 210 exceeds it.
			Expect(img.Pix[img.PixOffset(0, 0)]).To(Equal(uint8(0)))
			Expect(img.Pix[img.PixOffset(1, 0)]).To(Equal(uint8(0)))
			Expect(img.Pix[img.PixOffset(0, 1)]).To(Equal(uint8(0)))
			Expect(img.Pix[img.PixOffset(1, 1)]).To(Equal(uint8(255)))
		})
	})

	Describe("thresholdEdge", func() {
		It("cuts at the fixed midpoint", func() {
			img := grayImage(2, 1, func(x, y int) uint8 {
				if x == 0 {
					return 127
				}
				return 128
			})
			thresholdEdge(img, edgeCutoff)
			Expect(img.Pix[img.PixOffset(0, 0)]).To(Equal(uint8(0)))
			Expect(img.Pix[img.PixOffset(1, 0)]).To(Equal(uint8(255)))
		})
	})
})
