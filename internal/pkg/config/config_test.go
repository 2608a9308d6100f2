package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "3000")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "pt-BR", cfg.Locale.Default)
		assert.Equal(t, []string{"en-US", "es-ES", "pt-BR"}, cfg.Locale.Supported)
		assert.Equal(t, ContentSourceFixtures, cfg.Content.Source)
		assert.Equal(t, TyCsModeStatic, cfg.Content.TyCsMode)
		assert.Zero(t, cfg.API.Timeout)
		assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL())
	})

	t.Run("missing port", func(t *testing.T) {
		t.Setenv("PORT", "")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("explicit api origin", func(t *testing.T) {
		t.Setenv("PORT", "3000")
		t.Setenv("API_BASE_URL", "https://api.loja.example/")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://api.loja.example", cfg.APIBaseURL())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "test config is valid",
			mutate: func(*Config) {},
		},
		{
			name:    "default locale outside supported set",
			mutate:  func(c *Config) { c.Locale.Default = "fr-FR" },
			wantErr: "LOCALE_DEFAULT",
		},
		{
			name:    "malformed locale",
			mutate:  func(c *Config) { c.Locale.Supported = append(c.Locale.Supported, "not a locale") },
			wantErr: "invalid locale",
		},
		{
			name:    "empty supported set",
			mutate:  func(c *Config) { c.Locale.Supported = nil },
			wantErr: "LOCALE_SUPPORTED",
		},
		{
			name:    "unknown content source",
			mutate:  func(c *Config) { c.Content.Source = "s3" },
			wantErr: "CONTENT_SOURCE",
		},
		{
			name: "postgres without credentials",
			mutate: func(c *Config) {
				c.Content.Source = ContentSourcePostgres
				c.DB.User = ""
			},
			wantErr: "DB_USER",
		},
		{
			name:    "unknown tycs mode",
			mutate:  func(c *Config) { c.Content.TyCsMode = "isr" },
			wantErr: "TYCS_MODE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewTestConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
