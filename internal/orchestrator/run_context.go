package orchestrator

import (
	"time"

	"github.com/aleister1102/linkcheck/internal/checker"
	"github.com/aleister1102/linkcheck/internal/models"
)

// runContext holds the state of one run. A fresh value is built per Run call.
type runContext struct {
	visited  *checker.VisitedSet
	findings []models.Finding
	stats    models.RunStats
}

func newRunContext() *runContext {
	return &runContext{
		visited:  checker.NewVisitedSet(),
		findings: make([]models.Finding, 0),
		stats:    models.RunStats{StartedAt: time.Now()},
	}
}

func (rc *runContext) record(findings ...models.Finding) {
	rc.findings = append(rc.findings, findings...)
}

func (rc *runContext) result(requireServer bool) *models.RunResult {
	rc.stats.Duration = time.Since(rc.stats.StartedAt).Seconds()
	// Every claimed link is verified unless the run was cancelled, and a cancelled run has no result.
	rc.stats.LinksVerified = rc.visited.Len()
	return &models.RunResult{
		Outcome:  models.DetermineOutcome(rc.findings, rc.stats.ServerReachable, requireServer),
		Findings: rc.findings,
		Stats:    rc.stats,
	}
}
