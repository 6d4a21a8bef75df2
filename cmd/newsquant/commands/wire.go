package commands

import (
	"fmt"

	"github.com/wonny/newsquant/internal/external/articles"
	"github.com/wonny/newsquant/internal/external/feeds"
	"github.com/wonny/newsquant/internal/scan"
	"github.com/wonny/newsquant/internal/selection"
	"github.com/wonny/newsquant/internal/sentiment"
	"github.com/wonny/newsquant/internal/signals"
	"github.com/wonny/newsquant/internal/synopsis"
	"github.com/wonny/newsquant/internal/taxonomy"
	"github.com/wonny/newsquant/internal/tickers"
	"github.com/wonny/newsquant/pkg/config"
	"github.com/wonny/newsquant/pkg/httputil"
	"github.com/wonny/newsquant/pkg/logger"
	"github.com/wonny/newsquant/pkg/redis"
)

// app holds the wired pipeline shared by every command
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	redis *redis.Client

	composer  *signals.Composer
	ranker    *selection.Ranker
	fetcher   *feeds.Fetcher
	extractor *articles.Extractor
	scanner   *scan.Service
}

// newApp loads config and builds the pipeline
// ⭐ SSOT: 의존성 조립은 여기서만
func newApp() (*app, error) {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// CLI flag overrides
	if verbose {
		cfg.LogLevel = "debug"
	}
	if noSummary {
		cfg.Summary.Disabled = true
	}
	if taxonomyPath != "" {
		cfg.TaxonomyPath = taxonomyPath
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Redis (disabled unless REDIS_ENABLED=true)
	rc, err := redis.New(cfg)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, continuing without cache")
		rc = redis.Disabled()
	}
	// Redis에는 피드 원문만 TTL 캐시 (점수/스캔 결과는 저장하지 않음)
	cache := redis.NewCache(rc, "newsquant")

	// 4. HTTP client (local limiter + shared limiter when Redis is up)
	httpClient := httputil.New(cfg, log)
	if rc.Enabled() {
		httpClient.WithRateLimiter(redis.NewRateLimiter(rc, "newsquant"), redis.FeedRateLimit)
	}

	// 5. Taxonomy
	tax, err := taxonomy.LoadOrBuiltin(cfg.TaxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}
	if err := taxonomy.Validate(tax); err != nil {
		return nil, fmt.Errorf("invalid taxonomy: %w", err)
	}

	// 6. Signal pipeline
	composer := signals.NewComposer(
		sentiment.NewScorer(),
		tickers.NewDefaultRecognizer(),
		tax,
		synopsis.FromConfig(cfg, log),
		signals.WeightsFromConfig(cfg.Signal),
		log,
	)
	ranker := selection.NewRanker(composer, cfg.Signal.Workers, log)

	// 7. Collaborators
	fetcher := feeds.NewFetcher(httpClient, cache, cfg.Feed, log)
	articleClient := httputil.New(cfg, log).
		WithLocalLimit(0, 0).
		WithRateLimiter(redis.NewRateLimiter(rc, "newsquant"), redis.ArticleRateLimit)
	extractor := articles.NewExtractor(articleClient, log)

	log.WithFields(map[string]interface{}{
		"taxonomy":   tax.Version,
		"categories": len(tax.Categories),
		"summary":    !cfg.Summary.Disabled,
		"provider":   cfg.Summary.Provider,
		"redis":      rc.Enabled(),
		"workers":    cfg.Signal.Workers,
	}).Debug("Pipeline initialized")

	return &app{
		cfg:       cfg,
		log:       log,
		redis:     rc,
		composer:  composer,
		ranker:    ranker,
		fetcher:   fetcher,
		extractor: extractor,
		scanner:   scan.NewService(fetcher, ranker, log),
	}, nil
}

// Close releases external connections
func (a *app) Close() {
	if err := a.redis.Close(); err != nil {
		a.log.WithError(err).Warn("Failed to close redis")
	}
}
