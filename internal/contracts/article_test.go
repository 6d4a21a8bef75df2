package contracts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalSummary_HasPrediction(t *testing.T) {
	s := SignalSummary{Tickers: []string{"MCD"}}
	assert.False(t, s.HasPrediction())

	s.Prediction = map[string]Direction{"MCD": Bearish}
	assert.True(t, s.HasPrediction())
}

func TestArticleAnalysis_WireNames(t *testing.T) {
	a := ArticleAnalysis{
		ID: "abc",
		SignalSummary: SignalSummary{
			Title:      "t",
			WhyMatters: "w",
			Tickers:    []string{"SBUX"},
			Prediction: map[string]Direction{"SBUX": Bullish},
			Score:      4,
		},
		Sentiment:  0.5,
		Categories: []string{"lto"},
	}

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	// 기존 UI 필드명 유지
	for _, key := range []string{"id", "title", "brief", "why_matters", "tickers", "prediction", "score", "url", "sentiment_score", "traffic_boosts", "analyzed_at"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, map[string]interface{}{"SBUX": "Bullish"}, raw["prediction"])
}

func TestRawArticle_OptionalPublishedAt(t *testing.T) {
	var a RawArticle
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x","content":"y"}`), &a))
	assert.Nil(t, a.PublishedAt)

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "published_at")
}
