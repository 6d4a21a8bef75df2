package feeds

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"github.com/wonny/newsquant/internal/contracts"
	"github.com/wonny/newsquant/pkg/config"
	"github.com/wonny/newsquant/pkg/httputil"
	"github.com/wonny/newsquant/pkg/logger"
	"github.com/wonny/newsquant/pkg/redis"
)

// ErrAllFeedsFailed is returned when no feed of the industry could be read
var ErrAllFeedsFailed = errors.New("all feeds failed")

// Fetcher pulls recent articles from RSS feeds
// ⭐ SSOT: RSS 수집 / 기간 필터 / URL 중복 제거는 여기서만
type Fetcher struct {
	httpClient *httputil.Client
	cache      *redis.Cache
	logger     *logger.Logger

	feeds    map[Industry][]string
	keywords map[Industry][]string
	limit    int
	cacheTTL time.Duration
	now      func() time.Time
}

// NewFetcher creates a fetcher over the default Google News feeds; cache may be nil
func NewFetcher(httpClient *httputil.Client, cache *redis.Cache, cfg config.FeedConfig, log *logger.Logger) *Fetcher {
	limit := cfg.Limit
	if limit <= 0 {
		limit = 30
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = redis.TTLMedium
	}

	return &Fetcher{
		httpClient: httpClient,
		cache:      cache,
		logger:     log,
		feeds:      DefaultFeeds,
		keywords:   DefaultKeywords,
		limit:      limit,
		cacheTTL:   ttl,
		now:        time.Now,
	}
}

// WithFeeds replaces the feed URLs per industry
func (f *Fetcher) WithFeeds(feeds map[Industry][]string) *Fetcher {
	f.feeds = feeds
	return f
}

// Fetch returns deduplicated articles published within the period, filtered by industry
func (f *Fetcher) Fetch(ctx context.Context, period, industry string) ([]contracts.RawArticle, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	ind, err := ParseIndustry(industry)
	if err != nil {
		return nil, err
	}

	urls := f.feeds[ind]
	if len(urls) == 0 {
		urls = f.feeds[All]
	}

	cutoff := f.now().Add(-p.Lookback())
	seen := make(map[string]struct{})
	results := make([]contracts.RawArticle, 0, f.limit)

	failed := 0
	var lastErr error

	for _, feedURL := range urls {
		feed, err := f.readFeed(ctx, feedURL)
		if err != nil {
			failed++
			lastErr = err
			f.logger.WithError(err).WithFields(map[string]interface{}{
				"feed": feedURL,
			}).Warn("Feed skipped")
			continue
		}

		for _, item := range feed.Items {
			published := publishedAt(item)
			if published != nil && published.Before(cutoff) {
				continue
			}

			if _, dup := seen[item.Link]; dup {
				continue
			}
			seen[item.Link] = struct{}{}

			summary := item.Description
			if summary == "" {
				summary = item.Content
			}

			if !matchesKeywords(item.Title+" "+summary, f.keywords[ind]) {
				continue
			}

			results = append(results, contracts.RawArticle{
				Title:       strings.TrimSpace(item.Title),
				Content:     htmlToText(summary),
				Source:      feed.Title,
				URL:         item.Link,
				PublishedAt: published,
			})

			if len(results) >= f.limit {
				f.logFetched(p, ind, results, failed)
				return results, nil
			}
		}
	}

	if failed == len(urls) && lastErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllFeedsFailed, lastErr)
	}

	f.logFetched(p, ind, results, failed)
	return results, nil
}

func (f *Fetcher) logFetched(p Period, ind Industry, results []contracts.RawArticle, failed int) {
	f.logger.WithFields(map[string]interface{}{
		"period":       string(p),
		"industry":     string(ind),
		"articles":     len(results),
		"failed_feeds": failed,
	}).Info("Feeds fetched")
}

// readFeed returns the parsed feed, serving the raw body from cache when possible.
// 파싱 불가한 본문은 캐시에서 제거 (다음 호출에서 재요청)
func (f *Fetcher) readFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	body, err := f.feedBody(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		if f.cache != nil {
			if derr := f.cache.Delete(ctx, redis.FeedKey(feedURL)); derr != nil {
				f.logger.WithError(derr).Debug("Feed cache evict failed")
			}
		}
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}
	return feed, nil
}

func (f *Fetcher) feedBody(ctx context.Context, feedURL string) ([]byte, error) {
	fetch := func() (interface{}, error) {
		body, err := f.httpClient.ReadBody(ctx, feedURL)
		if err != nil {
			return nil, fmt.Errorf("fetch feed: %w", err)
		}
		return body, nil
	}

	if f.cache == nil {
		v, err := fetch()
		if err != nil {
			return nil, err
		}
		return v.([]byte), nil
	}

	var body []byte
	if err := f.cache.GetOrSet(ctx, redis.FeedKey(feedURL), &body, f.cacheTTL, fetch); err != nil {
		return nil, err
	}
	return body, nil
}

func publishedAt(item *gofeed.Item) *time.Time {
	var t *time.Time
	switch {
	case item.PublishedParsed != nil:
		t = item.PublishedParsed
	case item.UpdatedParsed != nil:
		t = item.UpdatedParsed
	default:
		return nil
	}
	utc := t.UTC()
	return &utc
}

func matchesKeywords(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// htmlToText flattens an item description to plain text
func htmlToText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
