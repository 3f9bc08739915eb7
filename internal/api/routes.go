package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes. The returned handler wraps the
// router with CORS so browser preflights are answered before routing.
func SetupRoutes(handler *Handler, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// Market routes
	r.HandleFunc("/market/summary", handler.GetMarketSummary).Methods("GET")
	r.HandleFunc("/market/history", handler.GetMarketHistory).Methods("GET")

	// Portfolio routes
	r.HandleFunc("/portfolio/holdings", handler.GetHoldings).Methods("GET")
	r.HandleFunc("/portfolio/holdings", handler.AddHolding).Methods("POST")
	r.HandleFunc("/portfolio/summary", handler.GetPortfolioSummary).Methods("GET")

	// Risk routes
	r.HandleFunc("/risk/metrics", handler.GetRiskMetrics).Methods("GET")

	return corsHandler(allowedOrigins, r)
}
