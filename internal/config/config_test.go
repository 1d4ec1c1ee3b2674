package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/pwgen/internal/crypto"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "TOKEN_SECRET", "RATE_LIMIT_RPS",
		"RATE_LIMIT_BURST", "DEFAULT_LENGTH", "RANDOM_SOURCE", "RANDOM_SEED"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Empty(t, cfg.TokenSecret)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, crypto.DefaultLength, cfg.DefaultLength)

	src, err := cfg.Source()
	require.NoError(t, err)
	assert.IsType(t, crypto.CryptoSource{}, src)
}

func TestLoadMathSource(t *testing.T) {
	t.Setenv("RANDOM_SOURCE", "math")
	t.Setenv("RANDOM_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.RandomSeed)

	src, err := cfg.Source()
	require.NoError(t, err)
	assert.IsType(t, &crypto.MathSource{}, src)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "production without secret", env: map[string]string{"ENV": "production", "TOKEN_SECRET": ""}},
		{name: "bad rps", env: map[string]string{"RATE_LIMIT_RPS": "fast"}},
		{name: "bad burst", env: map[string]string{"RATE_LIMIT_BURST": "1.5"}},
		{name: "default length out of range", env: map[string]string{"DEFAULT_LENGTH": "4"}},
		{name: "unknown source", env: map[string]string{"RANDOM_SOURCE": "dice"}},
		{name: "bad seed", env: map[string]string{"RANDOM_SOURCE": "math", "RANDOM_SEED": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadProductionWithSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("TOKEN_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.TokenSecret)
}
