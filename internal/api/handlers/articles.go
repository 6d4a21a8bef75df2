package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/wonny/newsquant/internal/contracts"
	"github.com/wonny/newsquant/internal/external/articles"
	"github.com/wonny/newsquant/pkg/logger"
)

// Analyzer composes a single article
type Analyzer interface {
	Analyze(ctx context.Context, article contracts.RawArticle) (contracts.ArticleAnalysis, error)
}

// Extractor pulls title and body text from a page
type Extractor interface {
	Extract(ctx context.Context, url string) (string, string, error)
}

// ArticleHandler handles single-article analysis
// ⭐ SSOT: 단건 기사 분석 API는 여기서만
type ArticleHandler struct {
	analyzer  Analyzer
	extractor Extractor
	logger    *logger.Logger
}

// NewArticleHandler creates a new article handler; extractor may be nil
func NewArticleHandler(analyzer Analyzer, extractor Extractor, log *logger.Logger) *ArticleHandler {
	return &ArticleHandler{
		analyzer:  analyzer,
		extractor: extractor,
		logger:    log,
	}
}

// Analyze scores one article
// POST /articles/analyze
func (h *ArticleHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req contracts.RawArticle
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.URL = strings.TrimSpace(req.URL)
	if strings.TrimSpace(req.Content) == "" {
		if req.URL == "" {
			respondError(w, http.StatusBadRequest, "content or url is required")
			return
		}
		if h.extractor == nil {
			respondError(w, http.StatusBadGateway, "Article extraction is not available")
			return
		}

		title, text, err := h.extractor.Extract(ctx, req.URL)
		if err != nil {
			if errors.Is(err, articles.ErrInvalidURL) {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			h.logger.WithError(err).WithField("url", req.URL).Warn("Article extraction failed")
			respondError(w, http.StatusBadGateway, "Failed to extract article content")
			return
		}

		req.Content = text
		if strings.TrimSpace(req.Title) == "" {
			req.Title = title
		}
	}

	analysis, err := h.analyzer.Analyze(ctx, req)
	if err != nil {
		h.logger.WithError(err).WithField("url", req.URL).Error("Failed to analyze article")
		respondError(w, http.StatusInternalServerError, "Failed to analyze article")
		return
	}

	respondJSON(w, http.StatusOK, analysis)
}
