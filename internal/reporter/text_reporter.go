package reporter

import (
	"fmt"
	"io"

	"github.com/aleister1102/linkcheck/internal/models"
	"github.com/rodaine/table"
	"github.com/rs/zerolog"
)

// TextReporter prints a human readable summary.
type TextReporter struct {
	color  bool
	logger zerolog.Logger
}

// NewTextReporter creates a TextReporter. color enables a bold table header.
func NewTextReporter(color bool, logger zerolog.Logger) *TextReporter {
	return &TextReporter{color: color, logger: logger}
}

// Report writes the all-clear line for a clean run; otherwise a count header,
// one table row per Finding and the remediation hints.
// When the server was unreachable a notice comes first and a clean run only
// vouches for the static files.
func (r *TextReporter) Report(w io.Writer, result *models.RunResult) error {
	reachable := result != nil && result.Stats.ServerReachable
	if !reachable {
		if _, err := fmt.Fprintln(w, ServerUnreachableNotice); err != nil {
			return err
		}
	}

	if !result.HasFindings() {
		msg := AllClearMessage
		if !reachable {
			msg = StaticOnlyClearMessage
		}
		_, err := fmt.Fprintln(w, msg)
		return err
	}

	if _, err := fmt.Fprintf(w, "Found %d issue(s):\n\n", len(result.Findings)); err != nil {
		return err
	}

	tbl := table.New("Kind", "Source Page", "Link / File", "Status", "Detail").WithWriter(w)
	if r.color {
		tbl.WithHeaderFormatter(boldFormatter)
	}
	for _, f := range result.Findings {
		tbl.AddRow(f.Kind, orDash(f.SourcePage), f.Link, f.Status, orDash(f.ErrorDetail))
	}
	tbl.Print()

	if _, err := fmt.Fprintln(w, "\nRemediation hints:"); err != nil {
		return err
	}
	for i, hint := range RemediationHints {
		if _, err := fmt.Fprintf(w, "  %d. %s\n", i+1, hint); err != nil {
			return err
		}
	}
	return nil
}

func boldFormatter(format string, vals ...interface{}) string {
	return "\x1b[1m" + fmt.Sprintf(format, vals...) + "\x1b[0m"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
