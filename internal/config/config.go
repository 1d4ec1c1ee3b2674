package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/vaultpass/pwgen/internal/crypto"
)

var ErrTokenSecretRequired = errors.New("TOKEN_SECRET must be set in production environment")

type Config struct {
	Port string
	Env  string

	// TokenSecret verifies API client tokens. Empty disables API auth.
	TokenSecret string

	RateLimitRPS   float64
	RateLimitBurst int

	DefaultLength int

	// RandomSource is "crypto" (default) or "math". RandomSeed only
	// applies to "math".
	RandomSource string
	RandomSeed   uint64
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		TokenSecret:  os.Getenv("TOKEN_SECRET"),
		RandomSource: getEnv("RANDOM_SOURCE", "crypto"),
	}

	var err error
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return Config{}, fmt.Errorf("parsing RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err != nil {
		return Config{}, fmt.Errorf("parsing RATE_LIMIT_BURST: %w", err)
	}
	if cfg.DefaultLength, err = strconv.Atoi(getEnv("DEFAULT_LENGTH", strconv.Itoa(crypto.DefaultLength))); err != nil {
		return Config{}, fmt.Errorf("parsing DEFAULT_LENGTH: %w", err)
	}
	if cfg.DefaultLength < crypto.MinLength || cfg.DefaultLength > crypto.MaxLength {
		return Config{}, fmt.Errorf("DEFAULT_LENGTH must be between %d and %d", crypto.MinLength, crypto.MaxLength)
	}
	if seed := os.Getenv("RANDOM_SEED"); seed != "" {
		if cfg.RandomSeed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return Config{}, fmt.Errorf("parsing RANDOM_SEED: %w", err)
		}
	}

	if _, err := cfg.Source(); err != nil {
		return Config{}, err
	}
	if cfg.Env == "production" && cfg.TokenSecret == "" {
		return Config{}, ErrTokenSecretRequired
	}

	return cfg, nil
}

// Source builds the random source named by RandomSource.
func (c Config) Source() (crypto.Source, error) {
	switch c.RandomSource {
	case "", "crypto":
		return crypto.CryptoSource{}, nil
	case "math":
		return crypto.NewMathSource(c.RandomSeed), nil
	default:
		return nil, fmt.Errorf("unknown RANDOM_SOURCE %q", c.RandomSource)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
