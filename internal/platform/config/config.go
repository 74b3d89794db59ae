package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Classifier Config
	ClassifierEnabled bool
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	ClassifierModel   string `mapstructure:"CLASSIFIER_MODEL"`
	ClassifierTimeout time.Duration

	// Fallback classification rules
	FallbackUsefulLifeYears int
	CapitalAmountThreshold  float64

	// Rate limiting, ulule/limiter format (e.g. "30-M")
	RateLimit string `mapstructure:"RATE_LIMIT"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("CLASSIFIER_ENABLED", true)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("CLASSIFIER_MODEL", "gemini-2.0-flash")
	viper.SetDefault("CLASSIFIER_TIMEOUT", "10s")
	viper.SetDefault("FALLBACK_USEFUL_LIFE_YEARS", 3)
	viper.SetDefault("CAPITAL_AMOUNT_THRESHOLD", 50.0)
	viper.SetDefault("RATE_LIMIT", "30-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.ClassifierEnabled = viper.GetBool("CLASSIFIER_ENABLED")
	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	if cfg.ClassifierEnabled && cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Expense classification falls back to local rules.")
	}
	cfg.ClassifierModel = viper.GetString("CLASSIFIER_MODEL")

	classifierTimeoutStr := viper.GetString("CLASSIFIER_TIMEOUT")
	classifierTimeout, err := time.ParseDuration(classifierTimeoutStr)
	if err != nil {
		classifierTimeout = 10 * time.Second
		if classifierTimeoutStr != "" {
			log.Printf("Warning: Invalid value for CLASSIFIER_TIMEOUT ('%s'). Defaulting to %s.\n", classifierTimeoutStr, classifierTimeout.String())
		}
	}
	cfg.ClassifierTimeout = classifierTimeout

	cfg.FallbackUsefulLifeYears = viper.GetInt("FALLBACK_USEFUL_LIFE_YEARS")
	if cfg.FallbackUsefulLifeYears <= 0 {
		cfg.FallbackUsefulLifeYears = 3
		log.Println("Warning: FALLBACK_USEFUL_LIFE_YEARS must be positive. Defaulting to 3.")
	}

	cfg.CapitalAmountThreshold = viper.GetFloat64("CAPITAL_AMOUNT_THRESHOLD")
	if cfg.CapitalAmountThreshold < 0 {
		cfg.CapitalAmountThreshold = 50.0
		log.Println("Warning: CAPITAL_AMOUNT_THRESHOLD must not be negative. Defaulting to 50.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
