package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "404", HTTPStatus(404).String())
	assert.Equal(t, "TIMEOUT", TimeoutStatus().String())
	assert.Equal(t, "NOT_FOUND", NotFoundStatus().String())
	assert.True(t, HTTPStatus(500).IsHTTP())
	assert.False(t, TimeoutStatus().IsHTTP())
}

func TestFinding_JSON(t *testing.T) {
	tests := []struct {
		name     string
		finding  Finding
		expected string
	}{
		{
			name:     "link with http status",
			finding:  NewLinkFinding("/", "/missing-page", HTTPStatus(404), ""),
			expected: `{"kind":"link","source_page":"/","link":"/missing-page","status":404}`,
		},
		{
			name:     "link timeout",
			finding:  NewLinkFinding("/", "/slow", TimeoutStatus(), "request timed out"),
			expected: `{"kind":"link","source_page":"/","link":"/slow","status":"TIMEOUT","error_detail":"request timed out"}`,
		},
		{
			name:     "missing file",
			finding:  NewFileFinding("public/a.html"),
			expected: `{"kind":"file","link":"public/a.html","status":"NOT_FOUND"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.finding)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(data))

			var decoded Finding
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.finding, decoded)
		})
	}
}

func TestStatus_UnmarshalCSV(t *testing.T) {
	var s Status
	require.NoError(t, s.UnmarshalCSV("301"))
	assert.Equal(t, HTTPStatus(301), s)

	require.NoError(t, s.UnmarshalCSV("NOT_FOUND"))
	assert.Equal(t, NotFoundStatus(), s)

	assert.Error(t, s.UnmarshalCSV("BROKEN"))
}

func TestNewPageFinding(t *testing.T) {
	f := NewPageFinding("/blog/", HTTPStatus(500), "")
	assert.Equal(t, FindingKindPage, f.Kind)
	assert.Equal(t, "/blog/", f.SourcePage)
	assert.Equal(t, "/blog/", f.Link)
}

func TestDetermineOutcome(t *testing.T) {
	findings := []Finding{NewFileFinding("public/a.html")}

	tests := []struct {
		name          string
		findings      []Finding
		reachable     bool
		requireServer bool
		expected      Outcome
		exitCode      int
	}{
		{name: "clean", reachable: true, expected: OutcomeClean, exitCode: 0},
		{name: "findings", findings: findings, reachable: true, expected: OutcomeFindingsPresent, exitCode: 1},
		{name: "unreachable tolerated", reachable: false, expected: OutcomeClean, exitCode: 0},
		{name: "unreachable required", reachable: false, requireServer: true, expected: OutcomeServerUnreachable, exitCode: 1},
		{name: "findings win over unreachable", findings: findings, requireServer: true, expected: OutcomeFindingsPresent, exitCode: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := DetermineOutcome(tt.findings, tt.reachable, tt.requireServer)
			assert.Equal(t, tt.expected, outcome)
			assert.Equal(t, tt.exitCode, outcome.ExitCode())
		})
	}
}

func TestRunResult_HasFindings(t *testing.T) {
	var nilResult *RunResult
	assert.False(t, nilResult.HasFindings())
	assert.False(t, (&RunResult{}).HasFindings())
	assert.True(t, (&RunResult{Findings: []Finding{NewFileFinding("x")}}).HasFindings())
}
