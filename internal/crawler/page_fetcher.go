package crawler

import (
	"context"

	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/aleister1102/linkcheck/internal/httpclient"
	"github.com/aleister1102/linkcheck/internal/urlhandler"
	"github.com/gocolly/colly/v2"
	"github.com/rs/zerolog"
)

// PageResult is the outcome of fetching one seed page.
type PageResult struct {
	Page       string
	URL        string
	StatusCode int
	Body       []byte
	// Err is a *common.NetworkError when no response was received.
	Err error
}

// OK reports whether the page was served with a 2xx status.
func (r PageResult) OK() bool {
	return r.Err == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// PageFetcher retrieves seed pages from the site.
type PageFetcher struct {
	collector *colly.Collector
	baseURL   string
	logger    zerolog.Logger
}

// Fetch issues a GET for base URL + page and returns what came back.
// Non-2xx responses are returned with their status and no error.
func (pf *PageFetcher) Fetch(ctx context.Context, page string) PageResult {
	target := urlhandler.BuildURL(pf.baseURL, page)
	result := PageResult{Page: page, URL: target}

	c := pf.collector.Clone()
	c.Context = ctx
	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.Body = r.Body
	})
	c.OnError(func(r *colly.Response, err error) {
		pf.handleError(&result, r, err)
	})

	if err := c.Visit(target); err != nil && result.Err == nil && result.StatusCode == 0 {
		result.Err = common.NewNetworkError(target, describeFetchError(err), err)
	}

	pf.logFetch(result)
	return result
}

func (pf *PageFetcher) handleError(result *PageResult, r *colly.Response, err error) {
	if r != nil && r.StatusCode > 0 {
		result.StatusCode = r.StatusCode
		return
	}
	result.Err = common.NewNetworkError(result.URL, describeFetchError(err), err)
}

func (pf *PageFetcher) logFetch(result PageResult) {
	switch {
	case result.Err != nil:
		pf.logger.Error().
			Str("page", result.Page).
			Str("url", result.URL).
			Err(result.Err).
			Msg("Failed to fetch page")
	case !result.OK():
		pf.logger.Warn().
			Str("page", result.Page).
			Int("status", result.StatusCode).
			Msg("Page returned non-success status")
	default:
		pf.logger.Debug().
			Str("page", result.Page).
			Int("status", result.StatusCode).
			Int("bytes", len(result.Body)).
			Msg("Fetched page")
	}
}

func describeFetchError(err error) string {
	if httpclient.IsTimeout(err) {
		return common.ReasonTimeout
	}
	return common.ReasonFailed
}
