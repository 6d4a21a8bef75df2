package jobs

import (
	"context"
	"fmt"
	"sync"

	"github.com/wonny/newsquant/internal/contracts"
	"github.com/wonny/newsquant/pkg/logger"
)

// Scanner runs one fetch-and-rank pass
type Scanner interface {
	Run(ctx context.Context, period, industry string) (*contracts.ScanResult, error)
}

// Broadcaster pushes a scan result to live subscribers
type Broadcaster interface {
	Broadcast(result *contracts.ScanResult) int
}

// ScanJob periodically scans recent news and publishes the ranking
type ScanJob struct {
	scanner     Scanner
	broadcaster Broadcaster // nil이면 전송 생략
	logger      *logger.Logger

	schedule string
	period   string
	industry string

	mu   sync.RWMutex
	last *contracts.ScanResult
}

// NewScanJob creates a scan job; broadcaster may be nil.
// 결과는 메모리에만 보관 (점수 이력은 저장하지 않음)
func NewScanJob(scanner Scanner, broadcaster Broadcaster, schedule, period, industry string, log *logger.Logger) *ScanJob {
	return &ScanJob{
		scanner:     scanner,
		broadcaster: broadcaster,
		logger:      log,
		schedule:    schedule,
		period:      period,
		industry:    industry,
	}
}

// Name returns the job name
func (j *ScanJob) Name() string {
	return "news_scan"
}

// Schedule returns the cron schedule
func (j *ScanJob) Schedule() string {
	return j.schedule
}

// Run executes one scan
func (j *ScanJob) Run(ctx context.Context) error {
	result, err := j.scanner.Run(ctx, j.period, j.industry)
	if err != nil {
		return fmt.Errorf("scan %s/%s: %w", j.period, j.industry, err)
	}

	j.mu.Lock()
	j.last = result
	j.mu.Unlock()

	sent := 0
	if j.broadcaster != nil {
		sent = j.broadcaster.Broadcast(result)
	}

	fields := map[string]interface{}{
		"period":      result.Period,
		"industry":    result.Industry,
		"articles":    result.Count,
		"subscribers": sent,
	}
	if result.Count > 0 {
		fields["top_score"] = result.Articles[0].Score
	}
	j.logger.WithFields(fields).Info("Scheduled scan published")

	return nil
}

// Last returns the most recent successful scan, or nil
func (j *ScanJob) Last() *contracts.ScanResult {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.last
}
