package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// ProposalValidityDuration is how long a payment proposal stays actionable
	// before it is treated as expired.
	ProposalValidityDuration time.Duration

	// Rate limiting, expressed in ulule/limiter notation, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "treasury-backend")
	viper.SetDefault("PROPOSAL_VALIDITY_DURATION", "168h") // 7 days
	viper.SetDefault("RATE_LIMIT", "100-M")

	// Read environment variables. Values from the .env file are loaded first
	// and can be overridden by actual environment variables.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		log.Printf("Invalid JWT_EXPIRY_DURATION, using default 1h: %v", err)
		jwtExpiry = time.Hour
	}
	cfg.JWTExpiryDuration = jwtExpiry

	proposalValidity, err := time.ParseDuration(viper.GetString("PROPOSAL_VALIDITY_DURATION"))
	if err != nil {
		log.Printf("Invalid PROPOSAL_VALIDITY_DURATION, using default 168h: %v", err)
		proposalValidity = 168 * time.Hour
	}
	cfg.ProposalValidityDuration = proposalValidity

	return cfg, nil
}
