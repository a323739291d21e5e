package reporter

import (
	"io"

	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/aleister1102/linkcheck/internal/models"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"
)

// CSVReporter writes one row per Finding with a header row.
type CSVReporter struct {
	logger zerolog.Logger
}

func NewCSVReporter(logger zerolog.Logger) *CSVReporter {
	return &CSVReporter{logger: logger}
}

func (r *CSVReporter) Report(w io.Writer, result *models.RunResult) error {
	findings := result.Findings
	if findings == nil {
		findings = []models.Finding{}
	}
	if err := gocsv.Marshal(&findings, w); err != nil {
		return common.WrapError(err, "failed to write CSV report")
	}
	return nil
}
