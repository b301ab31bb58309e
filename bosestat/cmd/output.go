package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/bosestat/config"
	"github.com/sarchlab/bosestat/datarecording"
)

var openFile = browser.OpenFile

// outputPath places a file in the output directory, creating the directory
// when needed.
func outputPath(c *config.Config, name string) (string, error) {
	err := os.MkdirAll(c.Output.Dir, 0o755)
	if err != nil {
		return "", err
	}

	return filepath.Join(c.Output.Dir, name), nil
}

// plotWritten reports a rendered plot and opens it when asked to.
func plotWritten(c *config.Config, logger logrus.FieldLogger, path string) {
	logger.WithField("path", path).Info("plot written")

	if !c.Output.Show {
		return
	}

	err := openFile(path)
	if err != nil {
		logger.WithError(err).Warn("cannot open plot")
	}
}

// recording is an open SQLite export together with its run row.
type recording struct {
	recorder datarecording.DataRecorder
	runs     *datarecording.RunRecorder
	path     string
	logger   logrus.FieldLogger
}

// openRecording starts an export when recording is enabled. It returns nil
// otherwise.
func openRecording(
	c *config.Config,
	logger logrus.FieldLogger,
) (*recording, error) {
	if !c.Output.Record {
		return nil, nil
	}

	name := c.Output.RecordPath
	if name == "" {
		name = datarecording.DefaultPath()
	}

	path, err := outputPath(c, name)
	if err != nil {
		return nil, err
	}

	recorder, err := datarecording.New(path)
	if err != nil {
		return nil, err
	}

	r := &recording{
		recorder: recorder,
		runs:     datarecording.NewRunRecorder(recorder),
		path:     path + ".sqlite3",
		logger:   logger,
	}
	r.runs.Start()

	logger.WithFields(logrus.Fields{
		"path": r.path,
		"run":  r.runs.ID(),
	}).Info("recording")

	return r, nil
}

// finish writes the run row and closes the export. It is safe on a nil
// recording.
func (r *recording) finish(samples, failures int) error {
	if r == nil {
		return nil
	}

	r.runs.End(samples, failures)

	err := r.recorder.Close()
	if err != nil {
		return err
	}

	r.logger.WithField("path", r.path).Info("export written")

	return nil
}

// abort closes the export after a failed run. It is safe on a nil recording.
func (r *recording) abort() {
	if r == nil {
		return
	}

	err := r.recorder.Close()
	if err != nil {
		r.logger.WithError(err).Warn("cannot close export")
	}
}
