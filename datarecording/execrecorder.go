package datarecording

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/shirou/gopsutil/process"
)

// RunsTable is the table that holds one row per recorded run.
const RunsTable = "runs"

// RunInfo describes one execution of the tool.
type RunInfo struct {
	ID             string
	Command        string
	StartTime      string
	EndTime        string
	ElapsedSeconds float64
	Samples        int
	Failures       int
	RSSBytes       int64
}

const timeFormat = "2006-01-02 15:04:05.000000000"

// RunRecorder records when a run started and finished, how many samples it
// produced and how much memory the process held at the end.
type RunRecorder struct {
	recorder DataRecorder
	info     RunInfo
	start    time.Time
	now      func() time.Time
}

// NewRunRecorder creates a RunRecorder writing to recorder.
func NewRunRecorder(recorder DataRecorder) *RunRecorder {
	return &RunRecorder{
		recorder: recorder,
		now:      time.Now,
	}
}

// ID returns the identifier of the current run.
func (r *RunRecorder) ID() string {
	return r.info.ID
}

// Start marks the beginning of a run.
func (r *RunRecorder) Start() {
	r.start = r.now()
	r.info = RunInfo{
		ID:        xid.New().String(),
		Command:   strings.Join(os.Args, " "),
		StartTime: r.start.Format(timeFormat),
	}
}

// End writes the run row and flushes the recorder.
func (r *RunRecorder) End(samples, failures int) {
	end := r.now()

	r.info.EndTime = end.Format(timeFormat)
	r.info.ElapsedSeconds = end.Sub(r.start).Seconds()
	r.info.Samples = samples
	r.info.Failures = failures
	r.info.RSSBytes = residentSetSize()

	r.recorder.CreateTable(RunsTable, RunInfo{})
	r.recorder.InsertData(RunsTable, r.info)
	r.recorder.Flush()
}

// ReadRuns returns the run rows of an export, oldest first.
func ReadRuns(ctx context.Context, r *Reader) ([]RunInfo, error) {
	return ReadAll[RunInfo](ctx, r, RunsTable, OrderBy("StartTime"))
}

func residentSetSize() int64 {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0
	}

	mem, err := p.MemoryInfo()
	if err != nil {
		return 0
	}

	return int64(mem.RSS)
}
