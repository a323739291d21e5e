package checker

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/aleister1102/linkcheck/internal/httpclient"
	"github.com/rs/zerolog"
)

// ProbeResult tells whether the site answered the availability probe.
type ProbeResult struct {
	Reachable  bool
	StatusCode int
	Err        error
}

// AvailabilityProbe issues one GET to the site root before any other network work.
type AvailabilityProbe struct {
	client  *httpclient.HTTPClient
	baseURL string
	logger  zerolog.Logger
}

// NewAvailabilityProbe creates a probe for baseURL.
func NewAvailabilityProbe(client *httpclient.HTTPClient, baseURL string, logger zerolog.Logger) *AvailabilityProbe {
	return &AvailabilityProbe{
		client:  client,
		baseURL: baseURL,
		logger:  logger.With().Str("module", "AvailabilityProbe").Logger(),
	}
}

// Check reports the site reachable only on a 2xx answer.
// Failures are logged as warnings and returned in the result, never as a fatal error.
func (p *AvailabilityProbe) Check(ctx context.Context) ProbeResult {
	resp, err := p.client.Do(&httpclient.HTTPRequest{
		URL:         p.baseURL,
		Method:      http.MethodGet,
		Context:     ctx,
		DiscardBody: true,
	})
	if err != nil {
		p.logger.Warn().
			Str("url", p.baseURL).
			Err(err).
			Msg("Server is not reachable, skipping page and link checks")
		return ProbeResult{Err: fmt.Errorf("%w: %w", common.ErrServerUnreachable, err)}
	}

	if !resp.IsSuccess() {
		httpErr := common.NewHTTPErrorWithURL(resp.StatusCode, "availability probe failed", p.baseURL)
		p.logger.Warn().
			Str("url", p.baseURL).
			Int("status", resp.StatusCode).
			Msg("Server answered with non-success status, skipping page and link checks")
		return ProbeResult{StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %w", common.ErrServerUnreachable, httpErr)}
	}

	p.logger.Info().Str("url", p.baseURL).Int("status", resp.StatusCode).Msg("Server is reachable")
	return ProbeResult{Reachable: true, StatusCode: resp.StatusCode}
}
