package tickers

import (
	"regexp"
	"sort"
	"strings"
)

var (
	// $TSLA, NASDAQ:TSLA, NYSE:MCD
	// 뒤따르는 대문자 여부는 markerSymbols에서 검사 (RE2 lookahead 없음)
	markerPattern = regexp.MustCompile(`(?:\$|NASDAQ:|NYSE:)([A-Z]{2,5})`)

	urlPattern = regexp.MustCompile(`(?i)(?:https?://|www\.)\S+`)
)

type companyPattern struct {
	name   string
	ticker string
	re     *regexp.Regexp
}

// Recognizer extracts ticker symbols from free text
// ⭐ SSOT: 티커 추출 로직은 여기서만
type Recognizer struct {
	stopWords map[string]struct{}
	companies []companyPattern
}

// NewRecognizer compiles the company lookup once; nil lookup disables the name tier
func NewRecognizer(lookup map[string]string, stopWords []string) *Recognizer {
	r := &Recognizer{
		stopWords: make(map[string]struct{}, len(stopWords)),
		companies: make([]companyPattern, 0, len(lookup)),
	}

	for _, w := range stopWords {
		r.stopWords[strings.ToUpper(w)] = struct{}{}
	}

	for name, ticker := range lookup {
		name = strings.ToLower(strings.TrimSpace(name))
		ticker = strings.ToUpper(strings.TrimSpace(ticker))
		if name == "" || ticker == "" {
			continue
		}
		r.companies = append(r.companies, companyPattern{
			name:   name,
			ticker: ticker,
			re:     regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`),
		})
	}

	// 결정적 순회 순서
	sort.Slice(r.companies, func(i, j int) bool {
		return r.companies[i].name < r.companies[j].name
	})

	return r
}

// NewDefaultRecognizer uses the built-in lookup and stop-words
func NewDefaultRecognizer() *Recognizer {
	return NewRecognizer(DefaultLookup, DefaultStopWords)
}

// Extract returns the sorted union of marker-tier and company-name-tier tickers
func (r *Recognizer) Extract(text string) []string {
	found := make(map[string]struct{})

	// 1. Explicit market notation
	for _, sym := range markerSymbols(text) {
		// 2. Stop-word filter
		if r.IsStopWord(sym) {
			continue
		}
		found[sym] = struct{}{}
	}

	// 3. Company-name fallback on URL-free, lowercased text
	if len(r.companies) > 0 {
		lowered := strings.ToLower(urlPattern.ReplaceAllString(text, " "))
		lowered = strings.ReplaceAll(lowered, "’", "'")
		for _, c := range r.companies {
			if _, ok := found[c.ticker]; ok {
				continue
			}
			if r.IsStopWord(c.ticker) {
				continue
			}
			if c.re.MatchString(lowered) {
				found[c.ticker] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(found))
	for sym := range found {
		out = append(out, sym)
	}
	sort.Strings(out)

	return out
}

// markerSymbols returns the uppercase runs right after a market marker.
// A run longer than five letters is not a symbol; digits or lowercase may follow ($ABCD1 → ABCD).
func markerSymbols(text string) []string {
	var out []string
	for _, m := range markerPattern.FindAllStringSubmatchIndex(text, -1) {
		end := m[3]
		if end < len(text) && text[end] >= 'A' && text[end] <= 'Z' {
			continue
		}
		out = append(out, text[m[2]:end])
	}
	return out
}

// IsStopWord reports whether sym is in the reserved set
func (r *Recognizer) IsStopWord(sym string) bool {
	_, ok := r.stopWords[strings.ToUpper(sym)]
	return ok
}
