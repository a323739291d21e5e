package models

import "time"

// Outcome is the typed result of a run, turned into a process exit code by the CLI.
type Outcome int

const (
	OutcomeClean Outcome = iota
	OutcomeFindingsPresent
	OutcomeServerUnreachable
)

const (
	ExitCodeClean    = 0
	ExitCodeFindings = 1
	ExitCodeFatal    = 2
)

func (o Outcome) String() string {
	switch o {
	case OutcomeClean:
		return "clean"
	case OutcomeFindingsPresent:
		return "findings_present"
	case OutcomeServerUnreachable:
		return "server_unreachable"
	default:
		return "unknown"
	}
}

// ExitCode maps the outcome to the process exit status.
func (o Outcome) ExitCode() int {
	if o == OutcomeClean {
		return ExitCodeClean
	}
	return ExitCodeFindings
}

// RunStats summarises a run.
type RunStats struct {
	ServerReachable bool      `json:"server_reachable"`
	PagesFetched    int       `json:"pages_fetched"`
	LinksExtracted  int       `json:"links_extracted"`
	LinksVerified   int       `json:"links_verified"`
	FilesChecked    int       `json:"files_checked"`
	StartedAt       time.Time `json:"started_at"`
	Duration        float64   `json:"duration"` // in seconds
}

// RunResult is everything a run produced, in discovery order.
type RunResult struct {
	Outcome  Outcome   `json:"-"`
	Findings []Finding `json:"findings"`
	Stats    RunStats  `json:"stats"`
}

// HasFindings returns true if the run recorded at least one Finding.
func (r *RunResult) HasFindings() bool {
	if r == nil {
		return false
	}
	return len(r.Findings) > 0
}

// DetermineOutcome picks the outcome from the findings and server state.
// An unreachable server only fails the run when requireServer is set.
func DetermineOutcome(findings []Finding, serverReachable, requireServer bool) Outcome {
	if len(findings) > 0 {
		return OutcomeFindingsPresent
	}
	if !serverReachable && requireServer {
		return OutcomeServerUnreachable
	}
	return OutcomeClean
}
