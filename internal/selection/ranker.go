package selection

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/wonny/newsquant/internal/contracts"
	"github.com/wonny/newsquant/pkg/logger"
)

// Ranker composes a batch of articles and orders it by score
// ⭐ SSOT: 배치 랭킹 로직은 여기서만
type Ranker struct {
	composer contracts.SignalComposer
	workers  int
	logger   *logger.Logger
}

// Failure is one article that could not be composed
type Failure struct {
	Index int    `json:"index"`
	URL   string `json:"url"`
	Error string `json:"error"`
}

// RankStats describes a Rank call
type RankStats struct {
	Total    int           `json:"total"`
	Ranked   int           `json:"ranked"`
	Failed   []Failure     `json:"failed,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// NewRanker creates a ranker; workers < 1 is treated as 1
func NewRanker(composer contracts.SignalComposer, workers int, log *logger.Logger) *Ranker {
	if workers < 1 {
		workers = 1
	}
	return &Ranker{
		composer: composer,
		workers:  workers,
		logger:   log,
	}
}

type slot struct {
	summary contracts.SignalSummary
	err     error
}

// Rank composes every article and returns summaries sorted by descending score.
// Equal scores keep their input order. Failed articles are left out and reported in RankStats.
func (r *Ranker) Rank(ctx context.Context, articles []contracts.RawArticle) ([]contracts.SignalSummary, RankStats) {
	start := time.Now()
	stats := RankStats{Total: len(articles)}

	if len(articles) == 0 {
		return []contracts.SignalSummary{}, stats
	}

	workers := r.workers
	if workers > len(articles) {
		workers = len(articles)
	}

	// 인덱스 기반 결과 슬롯 (정렬 전 입력 순서 유지)
	slots := make([]slot, len(articles))
	indexCh := make(chan int, len(articles))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, articles, indexCh, slots)
		}()
	}

	for i := range articles {
		indexCh <- i
	}
	close(indexCh)

	wg.Wait()

	ranked := make([]contracts.SignalSummary, 0, len(articles))
	for i, s := range slots {
		if s.err != nil {
			stats.Failed = append(stats.Failed, Failure{
				Index: i,
				URL:   articles[i].URL,
				Error: s.err.Error(),
			})
			r.logger.WithError(s.err).WithFields(map[string]interface{}{
				"index": i,
				"url":   articles[i].URL,
			}).Warn("Article excluded from ranking")
			continue
		}
		ranked = append(ranked, s.summary)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	stats.Ranked = len(ranked)
	stats.Duration = time.Since(start)

	fields := map[string]interface{}{
		"total":    stats.Total,
		"ranked":   stats.Ranked,
		"failed":   len(stats.Failed),
		"workers":  workers,
		"duration": stats.Duration,
	}
	if len(ranked) > 0 {
		fields["top_score"] = ranked[0].Score
	}
	r.logger.WithFields(fields).Info("Ranking completed")

	return ranked, stats
}

func (r *Ranker) worker(ctx context.Context, articles []contracts.RawArticle, indexCh <-chan int, slots []slot) {
	for i := range indexCh {
		if err := ctx.Err(); err != nil {
			slots[i] = slot{err: err}
			continue
		}

		summary, err := r.composer.Compose(ctx, articles[i])
		slots[i] = slot{summary: summary, err: err}
	}
}
