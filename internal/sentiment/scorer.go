package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Scorer wraps the VADER analyzer and returns the compound polarity
// ⭐ SSOT: 감성 점수 계산은 여기서만
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewScorer builds the VADER lexicon once
func NewScorer() *Scorer {
	return &Scorer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Score returns the compound polarity of text in [-1.0, 1.0]; empty text is 0
func (s *Scorer) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0.0
	}

	compound := s.analyzer.PolarityScores(text).Compound

	// Clamp to -1.0 ~ 1.0
	if compound > 1.0 {
		return 1.0
	}
	if compound < -1.0 {
		return -1.0
	}
	return compound
}
