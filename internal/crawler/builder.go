package crawler

import (
	"net/http"

	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/rs/zerolog"
)

// PageFetcherBuilder provides a fluent interface for creating PageFetcher instances
type PageFetcherBuilder struct {
	config *PageFetcherConfig
	logger zerolog.Logger
}

// NewPageFetcherBuilder creates a new PageFetcherBuilder instance
func NewPageFetcherBuilder(logger zerolog.Logger) *PageFetcherBuilder {
	return &PageFetcherBuilder{
		logger: logger.With().Str("module", "PageFetcher").Logger(),
	}
}

// WithConfig sets the fetcher configuration
func (b *PageFetcherBuilder) WithConfig(cfg *PageFetcherConfig) *PageFetcherBuilder {
	b.config = cfg
	return b
}

// WithTransport overrides the round tripper used by the collector
func (b *PageFetcherBuilder) WithTransport(rt http.RoundTripper) *PageFetcherBuilder {
	if b.config == nil {
		b.config = &PageFetcherConfig{}
	}
	b.config.Transport = rt
	return b
}

// Build creates a new PageFetcher instance with the configured settings
func (b *PageFetcherBuilder) Build() (*PageFetcher, error) {
	if b.config == nil {
		return nil, common.NewValidationError("config", nil, "page fetcher config cannot be nil")
	}
	if b.config.BaseURL == "" {
		return nil, common.NewValidationError("base_url", b.config.BaseURL, "base URL is required")
	}

	fetcher := &PageFetcher{
		baseURL: b.config.BaseURL,
		logger:  b.logger,
	}
	fetcher.collector = newCollector(*b.config)

	b.logger.Debug().
		Str("base_url", b.config.BaseURL).
		Dur("timeout", b.config.Timeout).
		Msg("Initialized with config")

	return fetcher, nil
}
