package tickers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecognizer_Extract(t *testing.T) {
	r := NewDefaultRecognizer()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no markers no companies",
			text: "Local diners report a quiet weekend as weather turns cold.",
			want: []string{},
		},
		{
			name: "uppercase words without markers are ignored",
			text: "THE CEO SAID SALES ROSE AT MCX AND ABC",
			want: []string{},
		},
		{
			name: "dollar marker",
			text: "$TSLA surges after new CEO appointed; investors cheer",
			want: []string{"TSLA"},
		},
		{
			name: "exchange markers",
			text: "Shares of NASDAQ:SBUX and NYSE:MCD moved in opposite directions.",
			want: []string{"MCD", "SBUX"},
		},
		{
			name: "stop-word after marker is dropped",
			text: "Buy $THE dip and $AND more, says $ABCD",
			want: []string{"ABCD"},
		},
		{
			name: "too long symbol is not captured",
			text: "Ticker $ABCDEFG is not real",
			want: []string{},
		},
		{
			name: "six letter run is not captured",
			text: "Rumours about $ABCDEF spread",
			want: []string{},
		},
		{
			name: "digits or lowercase may follow the symbol",
			text: "$ABCD1 and $WXYZx and $ABCDEF",
			want: []string{"ABCD", "WXYZ"},
		},
		{
			name: "adjacent markers",
			text: "$MCD$SBUX, NYSE:YUM.",
			want: []string{"MCD", "SBUX", "YUM"},
		},
		{
			name: "single letter after marker is not captured",
			text: "Costs rose by $5 and $F today",
			want: []string{},
		},
		{
			name: "company name fallback",
			text: "Starbucks unveils a new loyalty program while Chipotle tests robots.",
			want: []string{"CMG", "SBUX"},
		},
		{
			name: "curly apostrophe company name",
			text: "McDonald’s brings back a fan favorite",
			want: []string{"MCD"},
		},
		{
			name: "union of tiers deduplicated",
			text: "$MCD rallies as McDonald's and mcdonalds fans line up; NYSE:MCD",
			want: []string{"MCD"},
		},
		{
			name: "company inside url is ignored",
			text: "Read more at https://www.starbucks.com/press and www.chipotle.com/news",
			want: []string{},
		},
		{
			name: "whole word only",
			text: "The applesauce festival and teslacoil demo drew crowds.",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Extract(tt.text)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecognizer_NeverReturnsStopWords(t *testing.T) {
	r := NewDefaultRecognizer()

	var b strings.Builder
	for _, w := range DefaultStopWords {
		b.WriteString("$" + w + " NASDAQ:" + w + " NYSE:" + w + " ")
	}

	got := r.Extract(b.String())
	for _, sym := range got {
		assert.False(t, r.IsStopWord(sym), "stop-word %s leaked", sym)
	}
	assert.Empty(t, got)
}

func TestRecognizer_MarkerAlwaysRecognized(t *testing.T) {
	r := NewDefaultRecognizer()

	for _, sym := range []string{"ABCD", "XY", "QWERT", "WING"} {
		got := r.Extract("Breaking: $" + sym + " jumps.")
		assert.Contains(t, got, sym)
	}
}

func TestRecognizer_SortedAndDeduplicated(t *testing.T) {
	r := NewDefaultRecognizer()

	got := r.Extract("$ZZZ $AAA $MMM $AAA Wendy's and Starbucks")
	assert.Equal(t, []string{"AAA", "MMM", "SBUX", "WEN", "ZZZ"}, got)
}

func TestRecognizer_SubstituteLookup(t *testing.T) {
	r := NewRecognizer(map[string]string{
		"acme widgets": "acme",
		"":             "EMPTY",
		"blank":        "",
	}, []string{"the"})

	assert.Equal(t, []string{"ACME"}, r.Extract("Acme Widgets opens its 100th store"))
	assert.Empty(t, r.Extract("blank space"))
	assert.Empty(t, r.Extract("$THE end"))
}

func TestRecognizer_NilLookup(t *testing.T) {
	r := NewRecognizer(nil, DefaultStopWords)

	assert.Equal(t, []string{"SBUX"}, r.Extract("Starbucks news: $SBUX up"))
	assert.Empty(t, r.Extract("Starbucks news"))
}
