package crawler

import (
	"github.com/aleister1102/linkcheck/internal/httpclient"
	"github.com/gocolly/colly/v2"
)

const defaultMaxBodySize = 10 * 1024 * 1024

// newCollector configures the colly collector that every fetch is cloned from.
func newCollector(cfg PageFetcherConfig) *colly.Collector {
	maxBody := cfg.MaxBodySize
	if maxBody <= 0 {
		maxBody = defaultMaxBodySize
	}

	options := []colly.CollectorOption{
		colly.IgnoreRobotsTxt(),
		colly.AllowURLRevisit(),
		colly.MaxBodySize(maxBody),
		colly.ParseHTTPErrorResponse(),
	}
	if cfg.UserAgent != "" {
		options = append(options, colly.UserAgent(cfg.UserAgent))
	}

	collector := colly.NewCollector(options...)
	if cfg.Timeout > 0 {
		collector.SetRequestTimeout(cfg.Timeout)
	}
	if cfg.Transport != nil {
		collector.WithTransport(cfg.Transport)
	}
	// Page fetches follow the same redirect policy as link checks.
	collector.SetRedirectHandler(httpclient.RedirectPolicy(cfg.FollowRedirects, cfg.MaxRedirects))
	return collector
}
