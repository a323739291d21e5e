package logger

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory creates the sinks a logger writes to
type WriterFactory struct{}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{}
}

// CreateConsoleWriter creates a console writer on out (stderr when nil)
func (wf *WriterFactory) CreateConsoleWriter(format LogFormat, out io.Writer, noColor bool) io.Writer {
	if out == nil {
		out = os.Stderr
	}
	return formatWriter(format, out, noColor)
}

// CreateFileWriter creates a size-rotated file writer. Files never get ANSI colors.
func (wf *WriterFactory) CreateFileWriter(cfg LoggerConfig) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, err
	}

	rotating := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	}
	return formatWriter(cfg.Format, rotating, true), nil
}
