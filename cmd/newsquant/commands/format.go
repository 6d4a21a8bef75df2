package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/wonny/newsquant/internal/contracts"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 모든 커맨드가 동일한 출력 포맷을 사용하도록 통일
// ═══════════════════════════════════════════════════════════

const (
	ruleHeavy = "═══════════════════════════════════════════════════════════"
	ruleLight = "───────────────────────────────────────────────────────────"
)

// printScanHeader prints a formatted scan header
func printScanHeader(w io.Writer, result *contracts.ScanResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, ruleHeavy)
	fmt.Fprintln(w, "  News Scan")
	fmt.Fprintln(w, ruleLight)
	fmt.Fprintf(w, "  Period    : %s\n", result.Period)
	fmt.Fprintf(w, "  Industry  : %s\n", result.Industry)
	fmt.Fprintf(w, "  Articles  : %d (failed %d)\n", result.Count, result.Failed)
	fmt.Fprintf(w, "  Duration  : %.2fs\n", result.Duration.Seconds())
	fmt.Fprintln(w, ruleLight)
}

// printSummary prints one ranked summary
// Example: #1 [7.4] MCD Bullish | McDonald's names new CEO
func printSummary(w io.Writer, rank int, s contracts.SignalSummary) {
	fmt.Fprintf(w, "#%-2d [%4.1f] %s\n", rank, s.Score, s.Title)
	if len(s.Tickers) > 0 {
		fmt.Fprintf(w, "     Tickers : %s\n", formatTickers(s))
	}
	fmt.Fprintf(w, "     Brief   : %s\n", s.Brief)
	fmt.Fprintf(w, "     Why     : %s\n", s.WhyMatters)
	if s.URL != "" {
		fmt.Fprintf(w, "     URL     : %s\n", s.URL)
	}
}

func formatTickers(s contracts.SignalSummary) string {
	parts := make([]string, 0, len(s.Tickers))
	for _, t := range s.Tickers {
		if dir, ok := s.Prediction[t]; ok {
			parts = append(parts, fmt.Sprintf("%s (%s)", t, dir))
		} else {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, ", ")
}

// printScanResult prints the whole ranking as text
func printScanResult(w io.Writer, result *contracts.ScanResult) {
	printScanHeader(w, result)
	if len(result.Articles) == 0 {
		fmt.Fprintln(w, "  (no articles in window)")
	}
	for i, s := range result.Articles {
		printSummary(w, i+1, s)
	}
	fmt.Fprintln(w, ruleHeavy)
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// sortedKeys returns map keys in order for stable output
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
