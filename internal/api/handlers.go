package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/quantdesk/market-analytics/internal/analytics"
	"github.com/quantdesk/market-analytics/internal/cache"
	"github.com/quantdesk/market-analytics/internal/kafka"
	"github.com/quantdesk/market-analytics/internal/ledger"
	"github.com/quantdesk/market-analytics/internal/marketdata"
	"github.com/quantdesk/market-analytics/internal/models"
	"github.com/quantdesk/market-analytics/internal/valuation"
	"github.com/shopspring/decimal"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	series   *marketdata.Series
	summary  *marketdata.SummaryService
	risk     *analytics.RiskEngine
	store    ledger.Store
	producer *kafka.Producer
	cache    *cache.Cache
}

// NewHandler creates a new Handler. producer and cache may be nil, in
// which case event publishing and response caching are skipped.
func NewHandler(series *marketdata.Series, summary *marketdata.SummaryService,
	risk *analytics.RiskEngine, store ledger.Store,
	producer *kafka.Producer, responseCache *cache.Cache) *Handler {
	return &Handler{
		series:   series,
		summary:  summary,
		risk:     risk,
		store:    store,
		producer: producer,
		cache:    responseCache,
	}
}

// GetMarketSummary handles GET /market/summary
func (h *Handler) GetMarketSummary(w http.ResponseWriter, r *http.Request) {
	key := "market:summary:" + h.series.Symbol()
	var cached models.MarketSummary
	if h.cacheGet(r, key, &cached) {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	summary, err := h.summary.LatestSummary()
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	h.cacheSet(r, key, summary)
	respondJSON(w, http.StatusOK, summary)
}

// GetMarketHistory handles GET /market/history
func (h *Handler) GetMarketHistory(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.series.History())
}

// GetHoldings handles GET /portfolio/holdings
func (h *Handler) GetHoldings(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.store.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if holdings == nil {
		holdings = []*models.Holding{}
	}

	respondJSON(w, http.StatusOK, holdings)
}

// AddHolding handles POST /portfolio/holdings
func (h *Handler) AddHolding(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Symbol   string          `json:"symbol"`
		Quantity decimal.Decimal `json:"quantity"`
		BuyPrice decimal.Decimal `json:"buy_price"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	holding, err := h.store.Add(req.Symbol, req.Quantity, req.BuyPrice)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	if h.producer != nil {
		if err := h.producer.PublishHoldingAdded(r.Context(), holding); err != nil {
			log.Printf("Failed to publish holding event: %v", err)
		}
	}

	respondJSON(w, http.StatusCreated, holding)
}

// GetPortfolioSummary handles GET /portfolio/summary
func (h *Handler) GetPortfolioSummary(w http.ResponseWriter, r *http.Request) {
	holdings, err := h.store.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	prices := map[string]decimal.Decimal{
		h.series.Symbol(): h.series.LatestClose(),
	}

	summary, err := valuation.Summarize(holdings, prices)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// GetRiskMetrics handles GET /risk/metrics
func (h *Handler) GetRiskMetrics(w http.ResponseWriter, r *http.Request) {
	key := "risk:metrics:" + h.series.Symbol()
	var cached models.RiskMetrics
	if h.cacheGet(r, key, &cached) {
		respondJSON(w, http.StatusOK, cached)
		return
	}

	metrics, err := h.risk.ComputeMetrics(h.series.Points())
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	h.cacheSet(r, key, metrics)
	respondJSON(w, http.StatusOK, metrics)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// cacheGet loads a cached response; a miss or cache failure just means
// recompute.
func (h *Handler) cacheGet(r *http.Request, key string, dest interface{}) bool {
	if h.cache == nil {
		return false
	}
	hit, err := h.cache.GetJSON(r.Context(), key, dest)
	if err != nil {
		log.Printf("Cache read failed for %s: %v", key, err)
		return false
	}
	return hit
}

func (h *Handler) cacheSet(r *http.Request, key string, value interface{}) {
	if h.cache == nil {
		return
	}
	if err := h.cache.SetJSON(r.Context(), key, value); err != nil {
		log.Printf("Cache write failed for %s: %v", key, err)
	}
}

// statusForError maps domain errors onto HTTP statuses. Write-path
// validation rejects with 400; not-enough-history and degenerate-price
// conditions are 422 because the request was well-formed but the data
// cannot support the statistic.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, valuation.ErrUnknownSymbol):
		return http.StatusNotFound
	case errors.Is(err, analytics.ErrInsufficientData),
		errors.Is(err, marketdata.ErrInsufficientData),
		errors.Is(err, marketdata.ErrInvalidPrice):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
