package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/quantdesk/market-analytics/internal/analytics"
	"github.com/quantdesk/market-analytics/internal/api"
	"github.com/quantdesk/market-analytics/internal/cache"
	"github.com/quantdesk/market-analytics/internal/config"
	"github.com/quantdesk/market-analytics/internal/database"
	"github.com/quantdesk/market-analytics/internal/kafka"
	"github.com/quantdesk/market-analytics/internal/ledger"
	"github.com/quantdesk/market-analytics/internal/marketdata"
	"github.com/shopspring/decimal"
)

func main() {
	cfg := config.Load()

	// The frontend consumes every numeric field as a plain JSON number.
	decimal.MarshalJSONWithoutQuotes = true

	// The engine cannot serve correct metrics without the price series,
	// so a load failure is fatal.
	series, err := marketdata.LoadCSV(cfg.Market.DataPath, cfg.Market.Symbol)
	if err != nil {
		log.Fatalf("Failed to load price data: %v", err)
	}
	log.Printf("Loaded %d daily closes for %s", series.Len(), series.Symbol())

	var store ledger.Store
	switch cfg.Store.Backend {
	case config.BackendMemory:
		store = ledger.NewMemoryStore()
		log.Println("Using in-memory holdings store")
	case config.BackendPostgres:
		db, err := database.New(cfg.Database.ConnectionString())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		store = db
		log.Printf("Connected to PostgreSQL at %s:%s", cfg.Database.Host, cfg.Database.Port)
	default:
		log.Fatalf("Unknown store backend: %s", cfg.Store.Backend)
	}

	var producer *kafka.Producer
	if cfg.Kafka.Enabled {
		producer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		log.Printf("Publishing portfolio events to %s", cfg.Kafka.Topic)
	}

	var responseCache *cache.Cache
	if cfg.Redis.Addr != "" {
		responseCache = cache.New(cfg.Redis.Addr, cfg.Redis.TTL)
		defer responseCache.Close()
		log.Printf("Caching derived metrics in Redis at %s", cfg.Redis.Addr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Kafka.Enabled && cfg.Kafka.ConsumerEnabled {
		consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerTopic,
			cfg.Kafka.ConsumerGroupID, store)
		go func() {
			if err := consumer.Start(ctx); err != nil {
				log.Printf("Kafka consumer stopped: %v", err)
			}
		}()
	}

	riskEngine := analytics.NewRiskEngine(cfg.Market.TradingDays)
	summaryService := marketdata.NewSummaryService(series)
	handler := api.NewHandler(series, summaryService, riskEngine, store, producer, responseCache)

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      api.SetupRoutes(handler, cfg.Server.AllowedOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
