package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("SERVER_ADDRESS", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("REQUEST_TIMEOUT", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.ServerAddress)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.False(t, cfg.IsLocal())
}

func TestLoad_Env(t *testing.T) {
	viper.Reset()
	t.Setenv("SERVER_ADDRESS", "192.168.1.10:8080/")
	t.Setenv("APP_ENV", "local")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://192.168.1.10:8080", cfg.ServerAddress)
	assert.True(t, cfg.IsLocal())
}

func TestNormalizeAddress(t *testing.T) {
	tests := map[string]string{
		"localhost:3000":          "http://localhost:3000",
		"https://thuchi.example/": "https://thuchi.example",
		" http://127.0.0.1:3000 ": "http://127.0.0.1:3000",
		"":                        "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeAddress(in), in)
	}
}
