package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// DatabaseURL selects the Postgres document store when set; the
	// JSON-file store under DataDir is used otherwise.
	DatabaseURL string
	DataDir     string

	// APIToken protects the API when set; empty means no auth (local use).
	APIToken string

	SyncInterval   time.Duration
	SyncResetDelay time.Duration
	SyncRateLimit  string // ulule/limiter format, e.g. "10-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("DATA_DIR", "")
	viper.SetDefault("API_TOKEN", "")
	viper.SetDefault("SYNC_INTERVAL", "2m")
	viper.SetDefault("SYNC_RESET_DELAY", "4s")
	viper.SetDefault("SYNC_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.DataDir = viper.GetString("DATA_DIR")
	cfg.APIToken = viper.GetString("API_TOKEN")
	cfg.SyncRateLimit = viper.GetString("SYNC_RATE_LIMIT")

	syncIntervalStr := viper.GetString("SYNC_INTERVAL")
	syncInterval, err := time.ParseDuration(syncIntervalStr)
	if err != nil {
		syncInterval = 2 * time.Minute
		log.Printf("Warning: Invalid value for SYNC_INTERVAL ('%s'). Defaulting to %s.\n", syncIntervalStr, syncInterval)
	}
	cfg.SyncInterval = syncInterval

	resetDelayStr := viper.GetString("SYNC_RESET_DELAY")
	resetDelay, err := time.ParseDuration(resetDelayStr)
	if err != nil {
		resetDelay = 4 * time.Second
		log.Printf("Warning: Invalid value for SYNC_RESET_DELAY ('%s'). Defaulting to %s.\n", resetDelayStr, resetDelay)
	}
	cfg.SyncResetDelay = resetDelay

	return cfg, nil
}
