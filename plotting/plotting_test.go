package plotting

import (
	"bytes"
	"math"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bosestat/physics"
	"github.com/sarchlab/bosestat/sweep"
	"gonum.org/v1/plot/vg"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func expectImage(path string, magic []byte) {
	data, err := os.ReadFile(path)
	Expect(err).NotTo(HaveOccurred())
	Expect(bytes.HasPrefix(data, magic)).To(BeTrue(),
		"unexpected header in %s", path)
}

var _ = Describe("segments", func() {
	It("should keep a finite series whole", func() {
		runs := segments([]float64{1, 2, 3}, []float64{4, 5, 6})

		Expect(runs).To(HaveLen(1))
		Expect(runs[0]).To(HaveLen(3))
	})

	It("should split at NaN and infinite values", func() {
		nan := math.NaN()
		xs := []float64{1, 2, 3, 4, 5, 6, 7}
		ys := []float64{nan, 1, 2, nan, math.Inf(1), 3, nan}

		runs := segments(xs, ys)

		Expect(runs).To(HaveLen(2))
		Expect(runs[0]).To(HaveLen(2))
		Expect(runs[0][0].X).To(Equal(2.0))
		Expect(runs[1]).To(HaveLen(1))
		Expect(runs[1][0].X).To(Equal(6.0))
	})

	It("should return nothing for an all-NaN series", func() {
		nan := math.NaN()

		Expect(segments([]float64{1, 2}, []float64{nan, nan})).To(BeEmpty())
	})
})

var _ = Describe("Series styling", func() {
	It("should stroke lines two points wide", func() {
		Expect(lineWidth).To(Equal(vg.Points(2)))
	})
})

var _ = Describe("Condensate panels", func() {
	It("should plot the slope of the ground state occupation", func() {
		const t, h = 1.0, 1e-4
		a, err := sweep.MakeBuilder().
			WithParticleCount(100).
			WithLevels(physics.EvenlySpaced(20, 1)).
			WithTemperatures([]float64{t - h, t, t + h}).
			Build()
		Expect(err).NotTo(HaveOccurred())

		result, err := a.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Failures).To(BeZero())

		n0 := result.Series(condensatePanels[1].value)
		slope := (n0[2] - n0[0]) / (2 * h)
		Expect(slope).To(BeNumerically("<", 0))

		dn0dt := condensatePanels[3].value(result.Samples[1])
		Expect(dn0dt).To(BeNumerically("~", slope, 1e-4*math.Abs(slope)))

		cv := condensatePanels[4].value(result.Samples[1])
		Expect(cv).To(BeNumerically("~", -t*slope, 1e-4*math.Abs(slope)))
	})
})

var _ = Describe("Rendering", func() {
	var (
		dir   string
		temps []float64
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		temps = sweep.Linspace(0.1, 10, 40)
	})

	It("should draw a two-level occupation plot", func() {
		path := filepath.Join(dir, "plot_c.png")
		c := sweep.ClassicalTwoLevel(physics.NaturalUnits(), 10, temps)

		Expect(Occupation(c, "Occupation Numbers vs Temperature (Classical Case)", path)).
			To(Succeed())

		expectImage(path, pngMagic)
	})

	It("should pick the format from the extension", func() {
		path := filepath.Join(dir, "plot_e.svg")
		c := sweep.QuantumTwoLevel(physics.NaturalUnits(), 10, temps)

		Expect(Occupation(c, "Quantum", path)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("<svg"))
	})

	It("should draw a ground curve with gaps", func() {
		path := filepath.Join(dir, "plot_h.png")
		c := sweep.GroundCurve{
			Temperatures: []float64{1, 2, 3, 4},
			Mu:           []float64{math.NaN(), -0.1, -0.2, -0.3},
			Ground:       []float64{math.NaN(), 10, 5, 3},
			Failures:     1,
		}

		Expect(GroundState(c, path)).To(Succeed())

		expectImage(path, pngMagic)
	})

	It("should draw the condensate panels", func() {
		path := filepath.Join(dir, "plot_bose_system.png")
		a, err := sweep.MakeBuilder().
			WithParticleCount(100).
			WithLevels(physics.EvenlySpaced(20, 1)).
			WithTemperatures([]float64{0.5, 1, 1e-12, 2, 5}).
			Build()
		Expect(err).NotTo(HaveOccurred())

		result, err := a.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Failures).To(Equal(1))

		Expect(Condensate(result, path)).To(Succeed())

		expectImage(path, pngMagic)
	})

	It("should reject an unknown extension", func() {
		path := filepath.Join(dir, "plot.bmp")
		c := sweep.ClassicalTwoLevel(physics.NaturalUnits(), 10, temps)

		Expect(Occupation(c, "x", path)).To(MatchError(ErrUnsupportedFormat))
		Expect(Condensate(&sweep.Result{}, path)).
			To(MatchError(ErrUnsupportedFormat))

		_, err := os.Stat(path)
		Expect(os.IsNotExist(err)).To(BeTrue())
	})
})
