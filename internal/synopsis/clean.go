package synopsis

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// TruncationMarker is appended when content exceeds the limit
const TruncationMarker = "…"

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	urlPattern        = regexp.MustCompile(`(?i)(?:https?://|www\.)\S+`)
	whitespacePattern = regexp.MustCompile(`[\s\x{00a0}]+`) // &nbsp; 포함
)

// Clean strips tags, decodes HTML entities, drops URLs and collapses whitespace runs to single spaces
func Clean(text string) string {
	text = tagPattern.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = urlPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Truncate keeps the first limit runes and appends the marker when text is longer
func Truncate(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}

	runes := []rune(text)
	return string(runes[:limit]) + TruncationMarker
}
