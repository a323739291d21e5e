package checker

import (
	"context"
	"errors"
	"net/http"

	"github.com/aleister1102/linkcheck/internal/httpclient"
	"github.com/aleister1102/linkcheck/internal/models"
	"github.com/aleister1102/linkcheck/internal/urlhandler"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// LinkVerifierConfig controls how links are verified.
type LinkVerifierConfig struct {
	BaseURL string
	// HeadFallbackGet re-asks with GET when the server rejects HEAD with 405 or 501.
	HeadFallbackGet bool
	// Concurrency bounds parallel checks within one page. 1 or less verifies sequentially.
	Concurrency int
}

// LinkVerifier checks that normalized links resolve, at most once per link per run.
type LinkVerifier struct {
	client  *httpclient.HTTPClient
	visited *VisitedSet
	config  LinkVerifierConfig
	logger  zerolog.Logger
}

// NewLinkVerifier creates a verifier that records claimed links in visited.
func NewLinkVerifier(client *httpclient.HTTPClient, visited *VisitedSet, cfg LinkVerifierConfig, logger zerolog.Logger) *LinkVerifier {
	if visited == nil {
		visited = NewVisitedSet()
	}
	return &LinkVerifier{
		client:  client,
		visited: visited,
		config:  cfg,
		logger:  logger.With().Str("module", "LinkVerifier").Logger(),
	}
}

// VerifyPage checks every link of sourcePage not yet in the visited set.
// Findings come back in the order of links. The second return value is the
// number of existence checks issued.
func (v *LinkVerifier) VerifyPage(ctx context.Context, sourcePage string, links []string) ([]models.Finding, int) {
	claimed := make([]string, 0, len(links))
	for _, link := range links {
		if v.visited.Add(link) {
			claimed = append(claimed, link)
		}
	}

	results := make([]*models.Finding, len(claimed))
	if v.config.Concurrency <= 1 {
		for i, link := range claimed {
			if ctx.Err() != nil {
				break
			}
			results[i] = v.verifyLink(ctx, sourcePage, link)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(v.config.Concurrency)
		for i, link := range claimed {
			g.Go(func() error {
				if gctx.Err() != nil {
					return nil
				}
				results[i] = v.verifyLink(gctx, sourcePage, link)
				return nil
			})
		}
		_ = g.Wait()
	}

	findings := make([]models.Finding, 0)
	for _, f := range results {
		if f != nil {
			findings = append(findings, *f)
		}
	}
	return findings, len(claimed)
}

// verifyLink returns nil when the link resolved with a 2xx status.
func (v *LinkVerifier) verifyLink(ctx context.Context, sourcePage, link string) *models.Finding {
	target := urlhandler.BuildURL(v.config.BaseURL, link)

	resp, err := v.client.Head(ctx, target)
	if err == nil && v.config.HeadFallbackGet && headRejected(resp.StatusCode) {
		v.logger.Debug().Str("link", link).Int("status", resp.StatusCode).Msg("HEAD rejected, retrying with GET")
		resp, err = v.client.Do(&httpclient.HTTPRequest{
			URL:         target,
			Method:      http.MethodGet,
			Context:     ctx,
			DiscardBody: true,
		})
	}

	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil
		}
		v.logger.Warn().Str("page", sourcePage).Str("link", link).Err(err).Msg("Link check failed")
		f := models.NewLinkFinding(sourcePage, link, models.TimeoutStatus(), err.Error())
		return &f
	}

	if !resp.IsSuccess() {
		v.logger.Warn().Str("page", sourcePage).Str("link", link).Int("status", resp.StatusCode).Msg("Broken link")
		f := models.NewLinkFinding(sourcePage, link, models.HTTPStatus(resp.StatusCode), "")
		return &f
	}

	v.logger.Debug().Str("link", link).Int("status", resp.StatusCode).Msg("Link OK")
	return nil
}

func headRejected(status int) bool {
	return status == http.StatusMethodNotAllowed || status == http.StatusNotImplemented
}
