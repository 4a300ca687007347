package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStore(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		key     string
		wantErr bool
	}{
		{"both set", "https://abc.supabase.co", "service-key", false},
		{"missing url", "", "service-key", true},
		{"missing key", "https://abc.supabase.co", "", true},
		{"blank url", "   ", "service-key", true},
		{"both missing", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStore(&Config{StoreURL: tt.url, StoreKey: tt.key})
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrStoreNotConfigured)
		})
	}
}

func TestValidateForProduction(t *testing.T) {
	t.Run("non-production is a no-op", func(t *testing.T) {
		cfg := &Config{Environment: EnvDevelopment, LogLevel: "debug", StoreURL: "http://x"}
		assert.NoError(t, ValidateForProduction(cfg))
	})

	t.Run("debug logging rejected", func(t *testing.T) {
		cfg := &Config{Environment: EnvProduction, LogLevel: "debug", StoreURL: "https://x"}
		assert.Error(t, ValidateForProduction(cfg))
	})

	t.Run("plain http postgrest rejected", func(t *testing.T) {
		cfg := &Config{
			Environment: EnvProduction,
			LogLevel:    "info",
			StoreDriver: StoreDriverPostgREST,
			StoreURL:    "http://abc.supabase.co",
		}
		assert.Error(t, ValidateForProduction(cfg))
	})

	t.Run("valid production config", func(t *testing.T) {
		cfg := &Config{
			Environment: EnvProduction,
			LogLevel:    "info",
			StoreDriver: StoreDriverPostgREST,
			StoreURL:    "https://abc.supabase.co",
		}
		assert.NoError(t, ValidateForProduction(cfg))
	})
}

func TestAddr(t *testing.T) {
	cfg := &Config{Host: "0.0.0.0", Port: 8787}
	assert.Equal(t, "0.0.0.0:8787", cfg.Addr())
}
