package orchestrator

import (
	"context"

	"github.com/aleister1102/linkcheck/internal/checker"
	"github.com/aleister1102/linkcheck/internal/models"
)

// checkPage fetches one seed page, then extracts, normalizes and verifies its links.
func (o *LinkCheckOrchestrator) checkPage(ctx context.Context, rc *runContext, verifier *checker.LinkVerifier, page string) {
	result := o.fetcher.Fetch(ctx, page)

	if result.Err != nil {
		if ctx.Err() != nil {
			return
		}
		rc.record(models.NewPageFinding(page, models.TimeoutStatus(), result.Err.Error()))
		return
	}
	if !result.OK() {
		rc.record(models.NewPageFinding(page, models.HTTPStatus(result.StatusCode), ""))
		return
	}
	rc.stats.PagesFetched++

	rawLinks, err := o.extractor.Extract(result.Body)
	if err != nil {
		o.logger.Error().Str("page", page).Err(err).Msg("Failed to extract links")
		return
	}

	links := o.normalizeLinks(page, rawLinks)
	rc.stats.LinksExtracted += len(links)

	findings, checked := verifier.VerifyPage(ctx, page, links)
	rc.record(findings...)

	o.logger.Info().
		Str("page", page).
		Int("links", len(links)).
		Int("checked", checked).
		Int("broken", len(findings)).
		Msg("Page checked")
}

// normalizeLinks maps raw hrefs to unique normalized links, keeping first-occurrence order.
func (o *LinkCheckOrchestrator) normalizeLinks(page string, rawLinks []string) []string {
	seen := make(map[string]struct{}, len(rawLinks))
	links := make([]string, 0, len(rawLinks))
	for _, raw := range rawLinks {
		link, err := o.normalizer.Normalize(page, raw)
		if err != nil {
			o.logger.Debug().Str("page", page).Str("href", raw).Err(err).Msg("Skipping link")
			continue
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}
	return links
}
