package signals

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/newsquant/internal/contracts"
	"github.com/wonny/newsquant/internal/sentiment"
	"github.com/wonny/newsquant/internal/synopsis"
	"github.com/wonny/newsquant/internal/taxonomy"
	"github.com/wonny/newsquant/internal/tickers"
	"github.com/wonny/newsquant/pkg/config"
	"github.com/wonny/newsquant/pkg/logger"
)

type fixedSentiment float64

func (f fixedSentiment) Score(string) float64 { return float64(f) }

type fixedTickers []string

func (f fixedTickers) Extract(string) []string { return append([]string(nil), f...) }

type fixedSynopsis string

func (f fixedSynopsis) Summarize(context.Context, string, string) string { return string(f) }

type panickyTickers struct{}

func (panickyTickers) Extract(string) []string { panic("index out of range") }

func newTestComposer(s contracts.SentimentScorer, t contracts.TickerExtractor, syn contracts.SynopsisGenerator) *Composer {
	return NewComposer(s, t, taxonomy.Builtin(), syn, DefaultWeights(), logger.Nop())
}

func TestCompose_BullishScenario(t *testing.T) {
	c := newTestComposer(fixedSentiment(0.6), fixedTickers{"TSLA"}, fixedSynopsis("Tesla names a new CEO."))

	article := contracts.RawArticle{
		Title:   "Tesla leadership",
		Content: "$TSLA surges after new CEO appointed; investors cheer",
		URL:     "https://example.com/tsla",
	}

	got, err := c.Compose(context.Background(), article)
	require.NoError(t, err)

	assert.Equal(t, []string{"TSLA"}, got.Tickers)
	assert.Equal(t, map[string]contracts.Direction{"TSLA": contracts.Bullish}, got.Prediction)
	assert.Equal(t, "Tesla names a new CEO. Potential impact: TSLA Bullish.", got.Brief)
	assert.Equal(t, taxonomy.Builtin().Explain(taxonomy.ManagementChange), got.WhyMatters)
	assert.InDelta(t, 3+1+1.2, got.Score, 1e-9)
	assert.Equal(t, "https://example.com/tsla", got.URL)
	assert.Equal(t, "Tesla leadership", got.Title)
}

func TestCompose_RealComponents(t *testing.T) {
	gen := synopsis.NewGenerator(nil, synopsis.Options{}, logger.Nop())
	c := NewComposer(sentiment.NewScorer(), tickers.NewDefaultRecognizer(), taxonomy.Builtin(), gen, DefaultWeights(), logger.Nop())

	got, err := c.Analyze(context.Background(), contracts.RawArticle{
		Content: "$TSLA surges after new CEO appointed; investors cheer",
	})
	require.NoError(t, err)

	assert.Greater(t, got.Sentiment, 0.3, "lexicon should read the headline as clearly positive")
	assert.Equal(t, []string{"TSLA"}, got.Tickers)
	assert.Equal(t, map[string]contracts.Direction{"TSLA": contracts.Bullish}, got.Prediction)
	assert.Equal(t, []string{taxonomy.ManagementChange}, got.Categories)
	assert.InDelta(t, c.Score(1, true, got.Sentiment), got.Score, 1e-9)
	assert.GreaterOrEqual(t, got.Score, 4.0)
	assert.LessOrEqual(t, got.Score, 10.0)
	assert.Equal(t, taxonomy.Builtin().Explain(taxonomy.ManagementChange), got.WhyMatters)
	assert.Equal(t, "$TSLA surges after new CEO appointed; investors cheer Potential impact: TSLA Bullish.", got.Brief)
}

func TestCompose_NeutralScenario(t *testing.T) {
	c := newTestComposer(fixedSentiment(0), fixedTickers{}, fixedSynopsis("The weather was mild."))

	got, err := c.Compose(context.Background(), contracts.RawArticle{Content: "The weather was mild."})
	require.NoError(t, err)

	assert.Equal(t, 0.0, got.Score)
	assert.Empty(t, got.Prediction)
	assert.NotNil(t, got.Prediction)
	assert.NotNil(t, got.Tickers)
	assert.True(t, strings.HasSuffix(got.Brief, ImpactGeneral))
	assert.Equal(t, NoCategorySignal, got.WhyMatters)
}

func TestCompose_DeadZone(t *testing.T) {
	tests := []struct {
		name      string
		sentiment float64
		want      map[string]contracts.Direction
		clause    string
	}{
		{"bullish", 0.31, map[string]contracts.Direction{"MCD": contracts.Bullish, "SBUX": contracts.Bullish}, "MCD Bullish; SBUX Bullish."},
		{"bearish", -0.8, map[string]contracts.Direction{"MCD": contracts.Bearish, "SBUX": contracts.Bearish}, "MCD Bearish; SBUX Bearish."},
		{"upper edge", 0.3, map[string]contracts.Direction{}, ImpactNoDirection},
		{"lower edge", -0.3, map[string]contracts.Direction{}, ImpactNoDirection},
		{"zero", 0, map[string]contracts.Direction{}, ImpactNoDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestComposer(fixedSentiment(tt.sentiment), fixedTickers{"MCD", "SBUX"}, fixedSynopsis("S."))

			got, err := c.Compose(context.Background(), contracts.RawArticle{Content: "x"})
			require.NoError(t, err)

			assert.Equal(t, tt.want, got.Prediction)
			assert.Equal(t, "S. "+ImpactPrefix+tt.clause, got.Brief)
		})
	}
}

func TestCompose_WhyMattersDetectionOrder(t *testing.T) {
	tax := taxonomy.Builtin()
	c := NewComposer(fixedSentiment(0), fixedTickers{}, tax, fixedSynopsis(""), DefaultWeights(), logger.Nop())

	got, err := c.Compose(context.Background(), contracts.RawArticle{
		Content: "Chain teams up with a delivery app for a limited time offer; new CEO to lead",
	})
	require.NoError(t, err)

	want := strings.Join([]string{
		tax.Explain(taxonomy.ManagementChange),
		tax.Explain(taxonomy.TechDigitalLoyalty),
		tax.Explain(taxonomy.LTO),
		tax.Explain(taxonomy.Partnership),
	}, "; ")
	assert.Equal(t, want, got.WhyMatters)
	assert.Equal(t, 10.0, got.Score, "4 categories x 3 is clamped to the maximum")
	assert.Equal(t, ImpactPrefix+ImpactGeneral, got.Brief)
}

func TestCompose_Idempotent(t *testing.T) {
	gen := synopsis.NewGenerator(nil, synopsis.Options{}, logger.Nop())
	c := NewComposer(sentiment.NewScorer(), tickers.NewDefaultRecognizer(), taxonomy.Builtin(), gen, DefaultWeights(), logger.Nop())

	article := contracts.RawArticle{
		Title:   "Starbucks and McDonald's",
		Content: "Starbucks rolls out a new loyalty program while McDonald's (NYSE:MCD) shares slump on weak sales.",
		URL:     "https://example.com/a",
	}

	first, err := c.Compose(context.Background(), article)
	require.NoError(t, err)
	second, err := c.Compose(context.Background(), article)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompose_RecoversPanic(t *testing.T) {
	c := newTestComposer(fixedSentiment(0), panickyTickers{}, fixedSynopsis(""))

	_, err := c.Compose(context.Background(), contracts.RawArticle{Content: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCompose)
}

func TestCompose_CanceledContext(t *testing.T) {
	c := newTestComposer(fixedSentiment(0), fixedTickers{}, fixedSynopsis(""))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Compose(ctx, contracts.RawArticle{Content: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScore_Bounds(t *testing.T) {
	c := newTestComposer(fixedSentiment(0), fixedTickers{}, fixedSynopsis(""))

	tests := []struct {
		cats      int
		tickers   bool
		sentiment float64
		want      float64
	}{
		{0, false, 0, 0},
		{0, true, 0, 1},
		{0, false, -1, 2},
		{0, false, 0.25, 0.5},
		{1, true, 0.9, 5.8},
		{3, true, 1, 10},
		{8, true, 1, 10},
	}

	for _, tt := range tests {
		got := c.Score(tt.cats, tt.tickers, tt.sentiment)
		assert.InDelta(t, tt.want, got, 1e-9, "Score(%d, %v, %v)", tt.cats, tt.tickers, tt.sentiment)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 10.0)
	}
}

func TestCompose_PathologicalInputs(t *testing.T) {
	gen := synopsis.NewGenerator(nil, synopsis.Options{}, logger.Nop())
	c := NewComposer(sentiment.NewScorer(), tickers.NewDefaultRecognizer(), taxonomy.Builtin(), gen, DefaultWeights(), logger.Nop())

	inputs := []string{
		"",
		"   ",
		strings.Repeat("great amazing wonderful new ceo partnership $MCD ", 2000),
		"<script>alert(1)</script>",
	}

	for _, in := range inputs {
		got, err := c.Compose(context.Background(), contracts.RawArticle{Content: in})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Score, 0.0)
		assert.LessOrEqual(t, got.Score, 10.0)
	}
}

func TestAnalyze(t *testing.T) {
	c := newTestComposer(fixedSentiment(-0.5), fixedTickers{"SBUX"}, fixedSynopsis("Sales fall."))
	fixed := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }
	c.newID = func() string { return "id-1" }

	got, err := c.Analyze(context.Background(), contracts.RawArticle{
		Title:   "SBUX",
		Content: "Starbucks launches a seasonal menu",
		Source:  "Reuters",
	})
	require.NoError(t, err)

	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, fixed, got.AnalyzedAt)
	assert.Equal(t, "Reuters", got.Source)
	assert.Equal(t, -0.5, got.Sentiment)
	assert.Equal(t, []string{taxonomy.LTO}, got.Categories)
	assert.Equal(t, map[string]contracts.Direction{"SBUX": contracts.Bearish}, got.Prediction)
}

func TestWeightsFromConfig(t *testing.T) {
	assert.Equal(t, DefaultWeights(), WeightsFromConfig(config.Default().Signal))
}
