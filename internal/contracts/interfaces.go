package contracts

import "context"

// SentimentScorer returns a compound polarity in [-1, 1]
// ⭐ SSOT: 파이프라인 단계 인터페이스는 여기서만 정의
type SentimentScorer interface {
	Score(text string) float64
}

// TickerExtractor returns deduplicated, sorted ticker symbols
type TickerExtractor interface {
	Extract(text string) []string
}

// CategoryDetector returns matched category ids in taxonomy order
type CategoryDetector interface {
	Detect(text string) []string
	Explain(id string) string
}

// SynopsisGenerator never fails; it degrades to truncation
type SynopsisGenerator interface {
	Summarize(ctx context.Context, title, content string) string
}

// SignalComposer builds one summary per article
type SignalComposer interface {
	Compose(ctx context.Context, article RawArticle) (SignalSummary, error)
}

// ArticleFetcher returns recent articles for a period and industry selector
type ArticleFetcher interface {
	Fetch(ctx context.Context, period, industry string) ([]RawArticle, error)
}
