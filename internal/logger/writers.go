package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// formatWriter wraps out for the given format. JSON passes through untouched;
// the text format is a console layout with RFC3339 timestamps and no color.
func formatWriter(format LogFormat, out io.Writer, noColor bool) io.Writer {
	switch format {
	case FormatJSON:
		return out
	case FormatText:
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: noColor}
	}
}
