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

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "relief-ledger"
)

// Config holds application configuration.
type Config struct {
	Port              string
	IsProduction      bool
	LogLevel          slog.Level
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// EnableDevTokens exposes POST /auth/token, which mints a token for any
	// registered account, admins included. Off unless set explicitly and
	// never honoured in production.
	EnableDevTokens bool

	// SettlementDelay is waited out before a transfer or allocation is
	// submitted, mimicking block confirmation time.
	SettlementDelay time.Duration
	SeedDemoData    bool

	RateLimit          string // ulule formatted rate, e.g. "60-M"
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("ENABLE_DEV_TOKENS", false)
	v.SetDefault("SETTLEMENT_DELAY", "0s")
	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		EnableDevTokens: v.GetBool("ENABLE_DEV_TOKENS"),
		SeedDemoData:    v.GetBool("SEED_DEMO_DATA"),
		RateLimit:       v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.SettlementDelay, err = time.ParseDuration(v.GetString("SETTLEMENT_DELAY"))
	if err != nil || cfg.SettlementDelay < 0 {
		return nil, fmt.Errorf("invalid SETTLEMENT_DELAY '%s'", v.GetString("SETTLEMENT_DELAY"))
	}

	cfg.ShutdownTimeout, err = time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil || cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT. Defaulting to %s.\n", cfg.ShutdownTimeout)
	}

	if cfg.IsProduction && cfg.EnableDevTokens {
		log.Println("Warning: ENABLE_DEV_TOKENS ignored in production.")
		cfg.EnableDevTokens = false
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
