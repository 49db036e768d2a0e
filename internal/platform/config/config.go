package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     slog.Level

	StorageDriver string
	SQLitePath    string
	DatabaseURL   string
	EnableDBCheck bool

	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter format, e.g. "300-M"; empty disables
	AnalyticsCacheTTL  time.Duration
	ReportTitle        string
	ShutdownTimeout    time.Duration

	// Transaction change events
	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string

	// Usage tracking
	PostHogAPIKey   string
	PostHogEndpoint string
	ShopID          string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORAGE_DRIVER", StorageSQLite)
	viper.SetDefault("SQLITE_PATH", "data/fruit_shop.db")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("ANALYTICS_CACHE_TTL", "5m")
	viper.SetDefault("REPORT_TITLE", "Fruit & Juice Shop Management Report")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "fruit_shop")
	viper.SetDefault("AMQP_ROUTING_KEY", "transactions")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://us.i.posthog.com")
	viper.SetDefault("SHOP_ID", "fruit-shop")

	// Environment variables override both the defaults and values loaded from .env.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	level, err := parseLogLevel(viper.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER")))
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	switch cfg.StorageDriver {
	case StorageMemory:
		log.Println("Warning: STORAGE_DRIVER=memory, transactions will not survive a restart.")
	case StorageSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH must be set when STORAGE_DRIVER=%s", StorageSQLite)
		}
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (want %s, %s or %s)", cfg.StorageDriver, StorageMemory, StorageSQLite, StoragePostgres)
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = strings.TrimSpace(viper.GetString("RATE_LIMIT"))
	cfg.ReportTitle = viper.GetString("REPORT_TITLE")

	cfg.AnalyticsCacheTTL = parseDuration("ANALYTICS_CACHE_TTL", 5*time.Minute)
	cfg.ShutdownTimeout = parseDuration("SHUTDOWN_TIMEOUT", 10*time.Second)

	cfg.AMQPURL = viper.GetString("AMQP_URL")
	cfg.AMQPExchange = viper.GetString("AMQP_EXCHANGE")
	cfg.AMQPRoutingKey = viper.GetString("AMQP_ROUTING_KEY")
	if cfg.AMQPURL == "" {
		log.Println("Warning: AMQP_URL not set. Transaction change events will not be published.")
	}

	cfg.PostHogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PostHogEndpoint = viper.GetString("POSTHOG_ENDPOINT")
	cfg.ShopID = viper.GetString("SHOP_ID")

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		}
		return fallback
	}
	return d
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
