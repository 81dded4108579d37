package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// WriterHook mirrors every formatted entry to an extra writer.
type WriterHook struct {
	out io.Writer
}

func NewWriterHook(out io.Writer) *WriterHook {
	return &WriterHook{out: out}
}

func (h *WriterHook) Fire(entry *logrus.Entry) error {
	line, err := entry.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.out.Write(line)
	return err
}

func (h *WriterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
