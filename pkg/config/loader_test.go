package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localekit/localekit/pkg/config"
)

type testConfig struct {
	DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
	LocalePath      string `env:"I18N_LOCALE_PATH" envDefault:"locales"`
	MaxLanguages    int    `env:"I18N_MAX_LANGUAGES" envDefault:"8"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "en", cfg.DefaultLanguage)
		assert.Equal(t, "locales", cfg.LocalePath)
		assert.Equal(t, 8, cfg.MaxLanguages)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("I18N_DEFAULT_LANGUAGE", "pl")
		t.Setenv("I18N_LOCALE_PATH", "/srv/locales")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "pl", cfg.DefaultLanguage)
		assert.Equal(t, "/srv/locales", cfg.LocalePath)
	})

	t.Run("nil destination", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilConfig)
	})

	t.Run("parse error", func(t *testing.T) {
		t.Setenv("I18N_MAX_LANGUAGES", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns populated config", func(t *testing.T) {
		cfg := config.MustLoad(&testConfig{})
		assert.Equal(t, "en", cfg.DefaultLanguage)
	})

	t.Run("panics on parse error", func(t *testing.T) {
		t.Setenv("I18N_MAX_LANGUAGES", "nope")
		assert.Panics(t, func() {
			config.MustLoad(&testConfig{})
		})
	})
}
