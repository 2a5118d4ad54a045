package img2ascii

import (
	"math/rand"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("normalizer", func() {
	It("stretches against the histogram bounds", func() {
		n := normalizer{lo: 0.25, hi: 0.75, stretch: true, gamma: 1}
		Expect(n.apply(0.25)).To(BeNumerically("~", gammaExpand(0, 1), 1e-9))
		Expect(n.apply(0.75)).To(BeNumerically("~", gammaExpand(1, 1), 1e-9))
		Expect(n.apply(0)).To(Equal(n.apply(0.1))) // clamped below lo
	})

	It("skips the stretch when the bounds are nearly flat", func() {
		n := normalizer{lo: 0.5, hi: 0.505, stretch: true, gamma: 1.5}
		Expect(n.apply(0.5)).To(BeNumerically("~", gammaExpand(0.5, 1.5), 1e-9))
	})

	It("inverts as the final step", func() {
		plain := normalizer{gamma: 1.5}
		flipped := normalizer{gamma: 1.5, invert: true}
		for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
			Expect(flipped.apply(v)).To(BeNumerically("~", 1-plain.apply(v), 1e-9))
		}
	})

	It("stays within [0,1] for any input", func() {
		n := normalizer{lo: 0.1, hi: 0.9, stretch: true, gamma: 1.5, contrast: 2}
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 1000; i++ {
			out := n.apply(rng.Float64()*3 - 1)
			Expect(out).To(BeNumerically(">=", 0.0))
			Expect(out).To(BeNumerically("<=", 1.0))
		}
	})
})

var _ = Describe("sCurve", func() {
	It("fixes the endpoints and the midpoint", func() {
		Expect(sCurve(0, 2)).To(Equal(0.0))
		Expect(sCurve(0.5, 2)).To(Equal(0.5))
		Expect(sCurve(1, 2)).To(Equal(1.0))
	})

	It("darkens shadows and lightens highlights", func() {
		Expect(sCurve(0.25, 2)).To(BeNumerically("<", 0.25))
		Expect(sCurve(0.75, 2)).To(BeNumerically(">", 0.75))
	})
})

var _ = Describe("glyphAt", func() {
	It("indexes within the ramp across the brightness range", func() {
		ramp := []rune(RampDetailed)
		Expect(glyphAt(ramp, 0)).To(Equal(ramp[0]))
		Expect(glyphAt(ramp, 1)).To(Equal(ramp[len(ramp)-1]))
		Expect(glyphAt(ramp, 0.5)).To(Equal(ramp[(len(ramp)-1+1)/2]))

		rng := rand.New(rand.NewSource(2))
		for i := 0; i < 1000; i++ {
			// Any [0,1] brightness must land on a valid glyph.
			glyphAt(ramp, rng.Float64())
		}
	})
})
