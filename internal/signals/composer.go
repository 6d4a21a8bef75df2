package signals

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wonny/newsquant/internal/contracts"
	"github.com/wonny/newsquant/pkg/config"
	"github.com/wonny/newsquant/pkg/logger"
)

// ErrCompose wraps any unexpected failure while composing a summary
var ErrCompose = errors.New("compose failed")

// Fixed output phrases
const (
	ImpactPrefix      = "Potential impact: "
	ImpactNoDirection = "equity-relevant, no clear directional signal."
	ImpactGeneral     = "general industry sentiment, no specific equity signal."
	NoCategorySignal  = "general sentiment, no traffic-boost signal"
)

// Weights are the composite score parameters
type Weights struct {
	DeadZone        float64 // |sentiment| must exceed this for a direction
	CategoryWeight  float64 // per detected category
	TickerBonus     float64 // flat, when any ticker is present
	SentimentWeight float64 // multiplier on |sentiment|
	SentimentCap    float64 // upper bound of the sentiment term
	MaxScore        float64
}

// DefaultWeights returns the standard 3/1/2 weighting with a 0.3 dead zone
func DefaultWeights() Weights {
	return Weights{
		DeadZone:        0.3,
		CategoryWeight:  3,
		TickerBonus:     1,
		SentimentWeight: 2,
		SentimentCap:    2,
		MaxScore:        10,
	}
}

// WeightsFromConfig maps signal config onto Weights
func WeightsFromConfig(cfg config.SignalConfig) Weights {
	return Weights{
		DeadZone:        cfg.DeadZone,
		CategoryWeight:  cfg.CategoryWeight,
		TickerBonus:     cfg.TickerBonus,
		SentimentWeight: cfg.SentimentWeight,
		SentimentCap:    cfg.SentimentCap,
		MaxScore:        cfg.MaxScore,
	}
}

// Composer turns one RawArticle into a SignalSummary
// ⭐ SSOT: brief / why_matters / prediction / score 조합은 여기서만
type Composer struct {
	sentiment  contracts.SentimentScorer
	tickers    contracts.TickerExtractor
	categories contracts.CategoryDetector
	synopsis   contracts.SynopsisGenerator
	weights    Weights
	logger     *logger.Logger

	now   func() time.Time
	newID func() string
}

// NewComposer creates a composer from its collaborators
func NewComposer(
	sentiment contracts.SentimentScorer,
	tickers contracts.TickerExtractor,
	categories contracts.CategoryDetector,
	synopsis contracts.SynopsisGenerator,
	weights Weights,
	log *logger.Logger,
) *Composer {
	return &Composer{
		sentiment:  sentiment,
		tickers:    tickers,
		categories: categories,
		synopsis:   synopsis,
		weights:    weights,
		logger:     log,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Compose builds the summary for a single article
func (c *Composer) Compose(ctx context.Context, article contracts.RawArticle) (contracts.SignalSummary, error) {
	analysis, err := c.compose(ctx, article)
	if err != nil {
		return contracts.SignalSummary{}, err
	}
	return analysis.SignalSummary, nil
}

// Analyze is Compose plus the raw inputs, an id and a timestamp
func (c *Composer) Analyze(ctx context.Context, article contracts.RawArticle) (contracts.ArticleAnalysis, error) {
	analysis, err := c.compose(ctx, article)
	if err != nil {
		return contracts.ArticleAnalysis{}, err
	}

	analysis.ID = c.newID()
	analysis.AnalyzedAt = c.now().UTC()

	c.logger.WithFields(map[string]interface{}{
		"id":         analysis.ID,
		"url":        analysis.URL,
		"score":      analysis.Score,
		"tickers":    analysis.Tickers,
		"categories": analysis.Categories,
	}).Debug("Article analyzed")

	return analysis, nil
}

func (c *Composer) compose(ctx context.Context, article contracts.RawArticle) (out contracts.ArticleAnalysis, err error) {
	if err := ctx.Err(); err != nil {
		return out, err
	}

	defer func() {
		if r := recover(); r != nil {
			out = contracts.ArticleAnalysis{}
			err = fmt.Errorf("%w: %v", ErrCompose, r)
		}
	}()

	sentiment := c.sentiment.Score(article.Content)
	if math.IsNaN(sentiment) {
		sentiment = 0
	}

	tickers := c.tickers.Extract(article.Content)
	if tickers == nil {
		tickers = []string{}
	}

	categories := c.categories.Detect(article.Content)
	if categories == nil {
		categories = []string{}
	}

	prediction := c.predict(tickers, sentiment)
	synopsis := c.synopsis.Summarize(ctx, article.Title, article.Content)

	out = contracts.ArticleAnalysis{
		SignalSummary: contracts.SignalSummary{
			Title:      article.Title,
			Brief:      Brief(synopsis, tickers, prediction),
			WhyMatters: c.whyMatters(categories),
			Tickers:    tickers,
			Prediction: prediction,
			Score:      c.Score(len(categories), len(tickers) > 0, sentiment),
			URL:        article.URL,
		},
		Source:     article.Source,
		Sentiment:  sentiment,
		Categories: categories,
	}

	return out, nil
}

// predict assigns a direction to every ticker outside the dead zone
func (c *Composer) predict(tickers []string, sentiment float64) map[string]contracts.Direction {
	prediction := make(map[string]contracts.Direction, len(tickers))

	var dir contracts.Direction
	switch {
	case sentiment > c.weights.DeadZone:
		dir = contracts.Bullish
	case sentiment < -c.weights.DeadZone:
		dir = contracts.Bearish
	default:
		return prediction
	}

	for _, t := range tickers {
		prediction[t] = dir
	}
	return prediction
}

func (c *Composer) whyMatters(categories []string) string {
	if len(categories) == 0 {
		return NoCategorySignal
	}

	parts := make([]string, 0, len(categories))
	for _, id := range categories {
		parts = append(parts, c.categories.Explain(id))
	}
	return strings.Join(parts, "; ")
}

// Score computes the composite relevance score, clamped to [0, MaxScore]
func (c *Composer) Score(categoryCount int, hasTickers bool, sentiment float64) float64 {
	w := c.weights

	score := w.CategoryWeight * float64(categoryCount)
	if hasTickers {
		score += w.TickerBonus
	}
	score += math.Min(w.SentimentCap, w.SentimentWeight*math.Abs(sentiment))

	return math.Max(0, math.Min(w.MaxScore, score))
}

// Brief joins the synopsis with the potential-impact clause
func Brief(synopsis string, tickers []string, prediction map[string]contracts.Direction) string {
	clause := ImpactClause(tickers, prediction)
	if synopsis == "" {
		return ImpactPrefix + clause
	}
	return synopsis + " " + ImpactPrefix + clause
}

// ImpactClause renders the per-ticker directions in ticker order
func ImpactClause(tickers []string, prediction map[string]contracts.Direction) string {
	if len(tickers) == 0 {
		return ImpactGeneral
	}

	pairs := make([]string, 0, len(tickers))
	for _, t := range tickers {
		if dir, ok := prediction[t]; ok {
			pairs = append(pairs, t+" "+string(dir))
		}
	}

	if len(pairs) == 0 {
		return ImpactNoDirection
	}
	return strings.Join(pairs, "; ") + "."
}
