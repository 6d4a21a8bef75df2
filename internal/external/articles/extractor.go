package articles

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"github.com/wonny/newsquant/pkg/httputil"
	"github.com/wonny/newsquant/pkg/logger"
)

var (
	// ErrNoContent is returned when a page has no readable body text
	ErrNoContent = errors.New("no readable content")

	// ErrInvalidURL is returned for anything but an absolute http(s) URL
	ErrInvalidURL = errors.New("invalid article url")
)

// Extractor fetches a page and reduces it to its main text
// ⭐ SSOT: 기사 본문 추출은 여기서만
type Extractor struct {
	httpClient *httputil.Client
	logger     *logger.Logger
}

// NewExtractor creates an extractor
func NewExtractor(httpClient *httputil.Client, log *logger.Logger) *Extractor {
	return &Extractor{
		httpClient: httpClient,
		logger:     log,
	}
}

// Extract returns the page title and whitespace-normalized body text
func (e *Extractor) Extract(ctx context.Context, rawURL string) (string, string, error) {
	pageURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (pageURL.Scheme != "http" && pageURL.Scheme != "https") || pageURL.Host == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	body, err := e.httpClient.ReadBody(ctx, pageURL.String())
	if err != nil {
		return "", "", fmt.Errorf("fetch article: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return "", "", fmt.Errorf("readability extraction failed: %w", err)
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	if text == "" {
		return "", "", fmt.Errorf("%w: %s", ErrNoContent, pageURL)
	}

	e.logger.WithFields(map[string]interface{}{
		"url":    pageURL.String(),
		"title":  article.Title,
		"length": len(text),
	}).Debug("Article extracted")

	return strings.TrimSpace(article.Title), text, nil
}
