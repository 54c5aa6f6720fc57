package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadTestConfig(t *testing.T) {
	assert := require.New(t)

	cfg, err := Load("test")
	assert.NoError(err)

	assert.Equal("8089", cfg.GetPort())
	assert.Equal("debug", cfg.GetLogLevel())
	assert.Equal("static", cfg.GetContentSource())
	assert.Equal(4, cfg.GetFetchConcurrency())
	assert.Equal("fuzzy", cfg.GetSearchBackend())
	assert.Equal("en", cfg.GetDefaultLocale())
	assert.Equal(16, cfg.GetCacheSize())
	assert.Equal([]string{"zh-Hans", "en"}, cfg.GetLocales())
	assert.Equal("/docs", cfg.GetDocsURLPrefix())
}

func TestEnvironmentOverrides(t *testing.T) {
	assert := require.New(t)
	t.Setenv("PORT", "9000")
	t.Setenv("SEARCH_BACKEND", "bleve")
	t.Setenv("FETCH_CONCURRENCY", "2")
	t.Setenv("LOCALES", "en, fr ,")

	cfg, err := Load("test")
	assert.NoError(err)

	assert.Equal("9000", cfg.GetPort())
	assert.Equal("bleve", cfg.GetSearchBackend())
	assert.Equal(2, cfg.GetFetchConcurrency())
	assert.Equal([]string{"en", "fr"}, cfg.GetLocales())
}

func TestDefaultsWithoutConfigFile(t *testing.T) {
	assert := require.New(t)

	cfg, err := Load("missing")
	assert.NoError(err)

	assert.Equal(defaultPort, cfg.GetPort())
	assert.Equal(defaultLocale, cfg.GetDefaultLocale())
	assert.Equal(defaultBackend, cfg.GetSearchBackend())
	assert.Equal(defaultFetchConcurrency, cfg.GetFetchConcurrency())
	assert.Equal(defaultCacheSize, cfg.GetCacheSize())
	assert.Empty(cfg.GetRegistryPath())
}

func TestNew(t *testing.T) {
	assert := require.New(t)
	v := viper.New()
	v.Set("catalog.docs_path", "/srv/docs")
	v.Set("content.source", "file")

	cfg := New(v)
	assert.Equal("/srv/docs", cfg.GetDocsPath())
	assert.Equal("file", cfg.GetContentSource())
}
