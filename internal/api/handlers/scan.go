package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/wonny/newsquant/internal/contracts"
	"github.com/wonny/newsquant/internal/external/feeds"
	"github.com/wonny/newsquant/pkg/logger"
)

// Scanner runs a fetch-and-rank scan
type Scanner interface {
	Run(ctx context.Context, period, industry string) (*contracts.ScanResult, error)
}

// ScanHandler handles batch scans of recent news
type ScanHandler struct {
	scanner Scanner
	logger  *logger.Logger
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scanner Scanner, log *logger.Logger) *ScanHandler {
	return &ScanHandler{
		scanner: scanner,
		logger:  log,
	}
}

// Scan returns ranked summaries for recent news
// GET /scan?period=day|week|month&industry=fnb|tech|all
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	period := q.Get("period")
	industry := q.Get("industry")

	result, err := h.scanner.Run(r.Context(), period, industry)
	if err != nil {
		if errors.Is(err, feeds.ErrInvalidPeriod) || errors.Is(err, feeds.ErrInvalidIndustry) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log := h.logger.WithError(err).WithFields(map[string]interface{}{
			"period":   period,
			"industry": industry,
		})
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			log.Warn("Scan timed out")
			respondError(w, http.StatusGatewayTimeout, "Scan timed out")
			return
		case errors.Is(err, context.Canceled):
			log.Warn("Scan cancelled")
			respondError(w, http.StatusServiceUnavailable, "Scan cancelled")
			return
		}
		log.Error("Scan failed")
		respondError(w, http.StatusInternalServerError, "Failed to scan news")
		return
	}

	articles := result.Articles
	if articles == nil {
		articles = []contracts.SignalSummary{}
	}
	respondJSON(w, http.StatusOK, articles)
}
