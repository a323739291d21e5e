package crawler

import (
	"net/http"
	"time"
)

// PageFetcherConfig holds the settings the page fetcher needs.
type PageFetcherConfig struct {
	BaseURL         string
	UserAgent       string
	Timeout         time.Duration
	MaxBodySize     int
	FollowRedirects bool
	MaxRedirects    int
	// Transport is shared with the link verifier so both use one connection pool.
	Transport http.RoundTripper
}
