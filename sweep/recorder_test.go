package sweep

import (
	"context"
	"database/sql"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/bosestat/datarecording"
	"github.com/sarchlab/bosestat/physics"
)

var _ = Describe("TableRecorder", func() {
	var (
		mockCtrl     *gomock.Controller
		dataRecorder *MockDataRecorder
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		dataRecorder = NewMockDataRecorder(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should create the table once and insert every sample", func() {
		r := NewTableRecorder(dataRecorder, "")
		first := Sample{Step: 0, Temperature: 1, Solved: true}
		second := Sample{Step: 1, Temperature: 2}
		second.markUnsolved()

		gomock.InOrder(
			dataRecorder.EXPECT().CreateTable(SamplesTable, Sample{}),
			dataRecorder.EXPECT().InsertData(SamplesTable, first),
			dataRecorder.EXPECT().InsertData(SamplesTable, gomock.Any()).
				Do(func(_ string, entry any) {
					s := entry.(Sample)
					Expect(s.Step).To(Equal(1))
					Expect(math.IsNaN(s.Mu)).To(BeTrue())
				}),
		)

		r.RecordSample(first)
		r.RecordSample(second)
	})

	It("should use the given table name", func() {
		r := NewTableRecorder(dataRecorder, "cooling")

		dataRecorder.EXPECT().CreateTable("cooling", Sample{})
		dataRecorder.EXPECT().InsertData("cooling", gomock.Any())

		r.RecordSample(Sample{})
	})
})

var _ = Describe("LoadResult", func() {
	var db *sql.DB

	BeforeEach(func() {
		var err error
		db, err = sql.Open("sqlite3", ":memory:")
		Expect(err).NotTo(HaveOccurred())
		db.SetMaxOpenConns(1)
	})

	AfterEach(func() {
		db.Close()
	})

	It("should read back a recorded sweep with its failures", func() {
		writer := datarecording.NewWithDB(db)
		a, err := MakeBuilder().
			WithParticleCount(100).
			WithLevels(physics.EvenlySpaced(20, 1)).
			WithTemperatures([]float64{2, 1e-12, 0.5}).
			WithRecorder(NewTableRecorder(writer, "")).
			Build()
		Expect(err).NotTo(HaveOccurred())

		want, err := a.Run()
		Expect(err).NotTo(HaveOccurred())
		writer.Flush()

		got, err := LoadResult(context.Background(),
			datarecording.NewReaderWithDB(db), "")
		Expect(err).NotTo(HaveOccurred())

		Expect(got.Failures).To(Equal(want.Failures))
		Expect(got.Failures).To(Equal(1))
		Expect(got.Samples).To(HaveLen(3))
		Expect(got.Temperatures()).To(Equal([]float64{2, 1e-12, 0.5}))
		Expect(got.Samples[0]).To(Equal(want.Samples[0]))
		Expect(math.IsNaN(got.Samples[1].Mu)).To(BeTrue())
		Expect(got.Samples[1].Solved).To(BeFalse())
	})

	It("should fail on a table that was never recorded", func() {
		_, err := LoadResult(context.Background(),
			datarecording.NewReaderWithDB(db), "cooling")

		Expect(err).To(MatchError(datarecording.ErrNoTable))
	})
})
