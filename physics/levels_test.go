package physics

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Levels", func() {
	It("should create evenly spaced levels", func() {
		levels := EvenlySpaced(100, 0.1)

		Expect(levels.Len()).To(Equal(100))
		Expect(levels.Min()).To(BeNumerically("==", 0))
		Expect(levels[99]).To(BeNumerically("~", 9.9, 1e-12))
		Expect(levels.Validate()).To(Succeed())
	})

	It("should reject an empty set", func() {
		Expect(errors.Is(Levels{}.Validate(), ErrEmptyLevels)).To(BeTrue())
	})

	It("should reject unsorted levels", func() {
		err := Levels{0, 0.2, 0.1}.Validate()

		var levelErr *LevelError
		Expect(errors.As(err, &levelErr)).To(BeTrue())
		Expect(levelErr.Index).To(Equal(2))
		Expect(errors.Is(err, ErrUnsortedLevels)).To(BeTrue())
	})

	It("should reject negative or non-finite levels", func() {
		Expect(errors.Is(Levels{-1, 0}.Validate(), ErrNegativeLevel)).
			To(BeTrue())
		Expect(errors.Is(Levels{0, math.Inf(1)}.Validate(), ErrNegativeLevel)).
			To(BeTrue())
	})

	It("should allow degenerate levels", func() {
		Expect(Levels{0, 0.5, 0.5, 1}.Validate()).To(Succeed())
	})

	It("should panic on Min of an empty set", func() {
		Expect(func() { Levels{}.Min() }).To(Panic())
	})
})

var _ = Describe("Params", func() {
	It("should convert between temperature and beta", func() {
		p := Params{KB: 2, Epsilon: 1}

		Expect(p.Beta(0.25)).To(BeNumerically("~", 2, 1e-12))
		Expect(p.Temperature(2)).To(BeNumerically("~", 0.25, 1e-12))
	})

	It("should validate constants", func() {
		Expect(NaturalUnits().Validate()).To(Succeed())

		err := Params{KB: 0, Epsilon: 1}.Validate()
		Expect(errors.Is(err, ErrInvalidParam)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("kB"))

		err = Params{KB: 1, Epsilon: math.NaN()}.Validate()
		Expect(errors.Is(err, ErrInvalidParam)).To(BeTrue())
	})
})
