package reporter

import (
	"encoding/json"
	"io"

	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/aleister1102/linkcheck/internal/models"
	"github.com/rs/zerolog"
)

type jsonReport struct {
	Outcome      string           `json:"outcome"`
	FindingCount int              `json:"finding_count"`
	Findings     []models.Finding `json:"findings"`
	Stats        models.RunStats  `json:"stats"`
}

// JSONReporter writes the findings and run statistics as one JSON document.
type JSONReporter struct {
	logger zerolog.Logger
}

func NewJSONReporter(logger zerolog.Logger) *JSONReporter {
	return &JSONReporter{logger: logger}
}

func (r *JSONReporter) Report(w io.Writer, result *models.RunResult) error {
	findings := result.Findings
	if findings == nil {
		findings = []models.Finding{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonReport{
		Outcome:      result.Outcome.String(),
		FindingCount: len(findings),
		Findings:     findings,
		Stats:        result.Stats,
	}); err != nil {
		return common.WrapError(err, "failed to encode JSON report")
	}
	return nil
}
