package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backend constants
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Market   MarketConfig
	Store    StoreConfig
	Database DatabaseConfig
	Kafka    KafkaConfig
	Redis    RedisConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           string
	Host           string
	AllowedOrigins []string
}

// MarketConfig holds price data source configuration
type MarketConfig struct {
	DataPath    string
	Symbol      string
	TradingDays int
}

// StoreConfig selects the holdings ledger backend
type StoreConfig struct {
	Backend string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Enabled         bool
	Brokers         []string
	Topic           string
	ConsumerTopic   string
	ConsumerGroupID string
	ConsumerEnabled bool
}

// RedisConfig holds the metrics cache configuration. An empty Addr
// disables caching.
type RedisConfig struct {
	Addr string
	TTL  time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8000"),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			AllowedOrigins: splitEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000"),
		},
		Market: MarketConfig{
			DataPath:    getEnv("MARKET_DATA_PATH", "data/nifty_sample.csv"),
			Symbol:      getEnv("MARKET_SYMBOL", "NIFTY"),
			TradingDays: getEnvInt("MARKET_TRADING_DAYS", 252),
		},
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", BackendPostgres),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "marketanalytics"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Kafka: KafkaConfig{
			Enabled:         getEnvBool("KAFKA_ENABLED", false),
			Brokers:         splitEnv("KAFKA_BROKERS", "localhost:9092"),
			Topic:           getEnv("KAFKA_TOPIC", "portfolio-events"),
			ConsumerTopic:   getEnv("KAFKA_CONSUMER_TOPIC", "holding-events"),
			ConsumerGroupID: getEnv("KAFKA_CONSUMER_GROUP", "market-analytics"),
			ConsumerEnabled: getEnvBool("KAFKA_CONSUMER_ENABLED", false),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", ""),
			TTL:  getEnvDuration("REDIS_TTL", 5*time.Minute),
		},
	}
}

// ConnectionString returns the PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.DBName + "?sslmode=" + d.SSLMode
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
