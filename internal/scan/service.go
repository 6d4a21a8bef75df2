package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/newsquant/internal/contracts"
	"github.com/wonny/newsquant/internal/external/feeds"
	"github.com/wonny/newsquant/internal/selection"
	"github.com/wonny/newsquant/pkg/logger"
)

// Service runs fetch-then-rank scans
type Service struct {
	fetcher contracts.ArticleFetcher
	ranker  *selection.Ranker
	logger  *logger.Logger
	now     func() time.Time
}

// NewService creates a scan service
func NewService(fetcher contracts.ArticleFetcher, ranker *selection.Ranker, log *logger.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		ranker:  ranker,
		logger:  log,
		now:     time.Now,
	}
}

// Run fetches recent news and returns it ranked by score.
// Invalid selectors return feeds.ErrInvalidPeriod or feeds.ErrInvalidIndustry.
// A context cancelled during the scan returns its error instead of a partial ranking.
func (s *Service) Run(ctx context.Context, period, industry string) (*contracts.ScanResult, error) {
	p, err := feeds.ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	ind, err := feeds.ParseIndustry(industry)
	if err != nil {
		return nil, err
	}

	start := s.now()

	articles, err := s.fetcher.Fetch(ctx, string(p), string(ind))
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}

	ranked, stats := s.ranker.Rank(ctx, articles)
	// 취소된 스캔은 빈 결과가 아니라 에러
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("rank articles: %w", err)
	}

	result := &contracts.ScanResult{
		Period:    string(p),
		Industry:  string(ind),
		Count:     len(ranked),
		Failed:    len(stats.Failed),
		Articles:  ranked,
		ScannedAt: start.UTC(),
		Duration:  s.now().Sub(start),
	}

	s.logger.WithFields(map[string]interface{}{
		"period":   result.Period,
		"industry": result.Industry,
		"fetched":  len(articles),
		"ranked":   result.Count,
		"failed":   result.Failed,
		"duration": result.Duration,
	}).Info("Scan completed")

	return result, nil
}
