package sweep

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Linspace", func() {
	It("should include both ends", func() {
		Expect(Linspace(0.1, 10, 100)).To(HaveLen(100))
		Expect(Linspace(0.1, 10, 100)[0]).To(Equal(0.1))
		Expect(Linspace(0.1, 10, 100)[99]).To(Equal(10.0))
	})

	It("should space values evenly", func() {
		Expect(Linspace(0, 1, 5)).To(Equal([]float64{0, 0.25, 0.5, 0.75, 1}))
	})

	It("should handle degenerate counts", func() {
		Expect(Linspace(3, 4, 0)).To(BeEmpty())
		Expect(Linspace(3, 4, 1)).To(Equal([]float64{3}))
	})
})
