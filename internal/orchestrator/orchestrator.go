package orchestrator

import (
	"context"

	"github.com/aleister1102/linkcheck/internal/checker"
	"github.com/aleister1102/linkcheck/internal/common"
	"github.com/aleister1102/linkcheck/internal/config"
	"github.com/aleister1102/linkcheck/internal/crawler"
	"github.com/aleister1102/linkcheck/internal/extractor"
	"github.com/aleister1102/linkcheck/internal/httpclient"
	"github.com/aleister1102/linkcheck/internal/models"
	"github.com/aleister1102/linkcheck/internal/urlhandler"
	"github.com/rs/zerolog"
)

// LinkCheckOrchestrator runs the probe, page, link and static file phases in order.
type LinkCheckOrchestrator struct {
	globalConfig *config.GlobalConfig
	logger       zerolog.Logger
	client       *httpclient.HTTPClient
	fetcher      *crawler.PageFetcher
	extractor    *extractor.LinkExtractor
	normalizer   *urlhandler.LinkNormalizer
	assetChecker *checker.StaticAssetChecker
}

// NewLinkCheckOrchestrator wires the components for cfg.
func NewLinkCheckOrchestrator(cfg *config.GlobalConfig, logger zerolog.Logger) (*LinkCheckOrchestrator, error) {
	if cfg == nil {
		return nil, common.NewConfigurationError("", "", "configuration is nil")
	}
	moduleLogger := logger.With().Str("module", "Orchestrator").Logger()

	checkerCfg := cfg.CheckerConfig
	client, err := httpclient.NewHTTPClientBuilder(logger).
		WithTimeout(checkerCfg.Timeout()).
		WithUserAgent(checkerCfg.UserAgent).
		WithInsecureSkipVerify(checkerCfg.InsecureSkipVerify).
		WithFollowRedirects(checkerCfg.FollowRedirects()).
		WithMaxRedirects(checkerCfg.MaxRedirects).
		WithMaxContentSize(checkerCfg.MaxBodyBytes).
		WithHTTP2(checkerCfg.EnableHTTP2).
		Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to create HTTP client")
	}

	fetcher, err := crawler.NewPageFetcherBuilder(logger).
		WithConfig(&crawler.PageFetcherConfig{
			BaseURL:         cfg.Site.SiteRoot(),
			UserAgent:       client.Config().UserAgent,
			Timeout:         checkerCfg.Timeout(),
			MaxBodySize:     int(client.Config().MaxContentSize),
			FollowRedirects: client.Config().FollowRedirects,
			MaxRedirects:    client.Config().MaxRedirects,
		}).
		WithTransport(client.Transport()).
		Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to create page fetcher")
	}

	basePath := cfg.Site.EffectiveBasePath()

	return &LinkCheckOrchestrator{
		globalConfig: cfg,
		logger:       moduleLogger,
		client:       client,
		fetcher:      fetcher,
		extractor:    extractor.NewLinkExtractor(logger, basePath),
		normalizer:   urlhandler.NewLinkNormalizer(basePath),
		assetChecker: checker.NewStaticAssetChecker(common.NewFileManager(logger), logger),
	}, nil
}

// Run performs one complete check. Expected failures become Findings; the
// returned error is non-nil only when ctx is cancelled before the run finishes.
func (o *LinkCheckOrchestrator) Run(ctx context.Context) (*models.RunResult, error) {
	rc := newRunContext()
	site := o.globalConfig.Site

	o.logger.Info().
		Str("base_url", site.BaseURL).
		Str("base_path", o.normalizer.BasePath()).
		Int("seed_pages", len(site.SeedPages)).
		Int("seed_files", len(site.SeedFiles)).
		Msg("Starting link check")

	probe := checker.NewAvailabilityProbe(o.client, site.BaseURL, o.logger).Check(ctx)
	rc.stats.ServerReachable = probe.Reachable

	if probe.Reachable {
		verifier := checker.NewLinkVerifier(o.client, rc.visited, checker.LinkVerifierConfig{
			BaseURL:         site.SiteRoot(),
			HeadFallbackGet: o.globalConfig.CheckerConfig.HeadFallbackGet,
			Concurrency:     o.globalConfig.CheckerConfig.Workers(),
		}, o.logger)

		for _, page := range site.SeedPages {
			if ctx.Err() != nil {
				break
			}
			o.checkPage(ctx, rc, verifier, page)
		}
	}

	if err := ctx.Err(); err != nil {
		o.logger.Warn().Err(err).Msg("Run cancelled before completion")
		return nil, common.WrapError(err, "link check cancelled")
	}

	rc.record(o.assetChecker.Check(site.SeedFiles)...)
	rc.stats.FilesChecked = len(site.SeedFiles)

	result := rc.result(o.globalConfig.CheckerConfig.RequireServer)
	o.logger.Info().
		Bool("server_reachable", result.Stats.ServerReachable).
		Int("pages_fetched", result.Stats.PagesFetched).
		Int("links_extracted", result.Stats.LinksExtracted).
		Int("links_verified", result.Stats.LinksVerified).
		Int("files_checked", result.Stats.FilesChecked).
		Int("findings", len(result.Findings)).
		Float64("duration_secs", result.Stats.Duration).
		Str("outcome", result.Outcome.String()).
		Msg("Link check finished")

	return result, nil
}
