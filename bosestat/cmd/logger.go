package cmd

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/bosestat/config"
)

func setupLogger(c config.Log, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	switch c.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	logger.SetLevel(level)

	return logger, nil
}
