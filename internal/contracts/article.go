package contracts

import (
	"time"
)

// RawArticle is a news item handed to the pipeline by a fetcher or an API caller
// ⭐ SSOT: 파이프라인 입력 타입은 여기서만 정의
type RawArticle struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Source      string     `json:"source"`
	URL         string     `json:"url"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// Direction is a per-ticker directional call
type Direction string

const (
	Bullish Direction = "Bullish"
	Bearish Direction = "Bearish"
)

// SignalSummary is the scored, ranked view of one article
// 생성 후 변경 금지
type SignalSummary struct {
	Title      string               `json:"title"`
	Brief      string               `json:"brief"`
	WhyMatters string               `json:"why_matters"`
	Tickers    []string             `json:"tickers"`
	Prediction map[string]Direction `json:"prediction"`
	Score      float64              `json:"score"` // 0 ~ 10
	URL        string               `json:"url"`
}

// HasPrediction reports whether any ticker carries a direction
func (s *SignalSummary) HasPrediction() bool {
	return len(s.Prediction) > 0
}

// ArticleAnalysis is the single-article response with the raw signal inputs attached
type ArticleAnalysis struct {
	ID string `json:"id"`
	SignalSummary
	Source     string    `json:"source"`
	Sentiment  float64   `json:"sentiment_score"` // -1.0 ~ 1.0
	Categories []string  `json:"traffic_boosts"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}

// ScanResult is one completed feed scan
type ScanResult struct {
	Period    string          `json:"period"`
	Industry  string          `json:"industry"`
	Count     int             `json:"count"`
	Failed    int             `json:"failed"`
	Articles  []SignalSummary `json:"articles"`
	ScannedAt time.Time       `json:"scanned_at"`
	Duration  time.Duration   `json:"duration_ns"`
}
