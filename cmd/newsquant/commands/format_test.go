package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/newsquant/internal/contracts"
)

func TestPrintScanResult(t *testing.T) {
	result := &contracts.ScanResult{
		Period:   "week",
		Industry: "fnb",
		Count:    2,
		Duration: 1500 * time.Millisecond,
		Articles: []contracts.SignalSummary{
			{
				Title:      "McDonald's names new CEO",
				Brief:      "Synopsis. Potential impact: MCD Bullish.",
				WhyMatters: "Leadership changes can shift company strategy and investor sentiment.",
				Tickers:    []string{"MCD", "SBUX"},
				Prediction: map[string]contracts.Direction{"MCD": contracts.Bullish},
				Score:      7.4,
				URL:        "https://example.com/mcd",
			},
			{Title: "Quiet day", Score: 0, WhyMatters: "general sentiment, no traffic-boost signal"},
		},
	}

	var buf bytes.Buffer
	printScanResult(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "Period    : week")
	assert.Contains(t, out, "Duration  : 1.50s")
	assert.Contains(t, out, "#1  [ 7.4] McDonald's names new CEO")
	assert.Contains(t, out, "Tickers : MCD (Bullish), SBUX")
	assert.Contains(t, out, "#2  [ 0.0] Quiet day")
	assert.Less(t, strings.Index(out, "#1"), strings.Index(out, "#2"))
}

func TestPrintScanResult_Empty(t *testing.T) {
	var buf bytes.Buffer
	printScanResult(&buf, &contracts.ScanResult{Period: "day", Industry: "all"})
	assert.Contains(t, buf.String(), "(no articles in window)")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, printJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, sortedKeys(map[string]int{"c": 3, "a": 1, "b": 2}))
}
