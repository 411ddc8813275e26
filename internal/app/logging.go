package app

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	debugLogMaxSizeMB  = 10
	debugLogMaxBackups = 3
	debugLogMaxAgeDays = 28
)

// NewLogger returns the debug logger for one run. With an empty path all
// output is discarded; otherwise entries go to a size-rotated file. The
// returned close function releases the file.
func NewLogger(path string) (*logrus.Logger, func() error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if path == "" {
		logger.SetOutput(io.Discard)
		logger.SetLevel(logrus.WarnLevel)
		return logger, func() error { return nil }
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    debugLogMaxSizeMB,
		MaxBackups: debugLogMaxBackups,
		MaxAge:     debugLogMaxAgeDays,
	}
	logger.SetOutput(sink)
	logger.SetLevel(logrus.DebugLevel)
	return logger, sink.Close
}
