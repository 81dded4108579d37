package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/NeuralTrust/content-analyzer/pkg/config"
	"github.com/sirupsen/logrus"
)

const fileBufferSize = 32 * 1024

// NewLogger builds a JSON logger writing to out. When cfg.File is set,
// entries are mirrored to that file through an AsyncFileWriter; the returned
// close func flushes it and must be called before the process exits.
func NewLogger(cfg config.LogConfig, out io.Writer) (*logrus.Logger, func(), error) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(ParseLevel(cfg.Level))
	logger.SetOutput(out)

	if cfg.File == "" {
		return logger, func() {}, nil
	}

	asyncWriter, err := NewAsyncFileWriter(cfg.File, fileBufferSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	logger.AddHook(NewWriterHook(asyncWriter))

	return logger, func() { _ = asyncWriter.Close() }, nil
}

// ParseLevel maps a configured level name to a logrus level, defaulting to
// warn for unknown names.
func ParseLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}
