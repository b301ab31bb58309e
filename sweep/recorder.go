package sweep

import (
	"context"

	"github.com/sarchlab/bosestat/datarecording"
)

// A Recorder receives every sample as soon as it is computed.
type Recorder interface {
	RecordSample(s Sample)
}

// SamplesTable is the default table name used by NewTableRecorder.
const SamplesTable = "samples"

type tableRecorder struct {
	recorder datarecording.DataRecorder
	table    string
	created  bool
}

// NewTableRecorder stores samples as rows of a DataRecorder table. The table
// is created on the first sample. NaN values are stored as NULL.
func NewTableRecorder(
	recorder datarecording.DataRecorder,
	table string,
) Recorder {
	if table == "" {
		table = SamplesTable
	}

	return &tableRecorder{
		recorder: recorder,
		table:    table,
	}
}

func (r *tableRecorder) RecordSample(s Sample) {
	if !r.created {
		r.recorder.CreateTable(r.table, Sample{})
		r.created = true
	}

	r.recorder.InsertData(r.table, s)
}

// LoadResult reads a recorded sweep back in step order. Unsolved samples
// count as failures.
func LoadResult(
	ctx context.Context,
	r *datarecording.Reader,
	table string,
) (*Result, error) {
	if table == "" {
		table = SamplesTable
	}

	samples, err := datarecording.ReadAll[Sample](ctx, r, table,
		datarecording.OrderBy("Step"))
	if err != nil {
		return nil, err
	}

	result := &Result{Samples: samples}
	for _, s := range samples {
		if !s.Solved {
			result.Failures++
		}
	}

	return result, nil
}
