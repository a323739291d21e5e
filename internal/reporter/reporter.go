package reporter

import (
	"io"
	"strings"

	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/aleister1102/linkcheck/internal/models"
	"github.com/rs/zerolog"
)

// Reporter renders a finished run.
type Reporter interface {
	Report(w io.Writer, result *models.RunResult) error
}

// Options tunes the reporters that support it.
type Options struct {
	Color bool
}

// NewReporter returns the reporter for format ("" means text).
func NewReporter(format string, opts Options, logger zerolog.Logger) (Reporter, error) {
	logger = logger.With().Str("module", "Reporter").Str("format", format).Logger()

	switch strings.ToLower(format) {
	case "", FormatText:
		return NewTextReporter(opts.Color, logger), nil
	case FormatJSON:
		return NewJSONReporter(logger), nil
	case FormatCSV:
		return NewCSVReporter(logger), nil
	default:
		return nil, common.NewValidationError("format", format, "unsupported report format")
	}
}
