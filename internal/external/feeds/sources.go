package feeds

import "fmt"

const googleNewsSearch = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"

// DefaultFeeds are the Google News searches per industry
var DefaultFeeds = map[Industry][]string{
	FnB: {
		searchURL("restaurant+OR+%22fast+food%22"),
		searchURL("coffee+chain+OR+cafe"),
	},
	Tech: {
		searchURL("technology+company+investment"),
		searchURL("software+saas"),
	},
	All: {
		searchURL("business"),
	},
}

// DefaultKeywords filter items for relevance; an industry without keywords is unfiltered.
// Matching is lowercase substring, so "ai" also hits inside longer words.
var DefaultKeywords = map[Industry][]string{
	FnB:  {"restaurant", "burger", "pizza", "coffee", "cafe", "chain", "dining", "menu"},
	Tech: {"software", "ai", "cloud", "saas"},
}

// searchURL takes an already-escaped query
func searchURL(query string) string {
	return fmt.Sprintf(googleNewsSearch, query)
}
