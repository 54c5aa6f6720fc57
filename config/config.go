package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	defaultPort             = "8080"
	defaultLocale           = "zh-Hans"
	defaultBackend          = "fuzzy"
	defaultFetchConcurrency = 8
	defaultCacheSize        = 256
	defaultLogLevel         = "info"
	defaultDocsURLPrefix    = "/docs"
)

var defaultLocales = []string{"zh-Hans", "en"}

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	viperConfig.SetDefault("server.port", defaultPort)
	viperConfig.SetDefault("search.default_locale", defaultLocale)
	viperConfig.SetDefault("search.backend", defaultBackend)
	viperConfig.SetDefault("search.cache_size", defaultCacheSize)
	viperConfig.SetDefault("content.fetch_concurrency", defaultFetchConcurrency)
	viperConfig.SetDefault("log.level", defaultLogLevel)
	viperConfig.SetDefault("catalog.locales", defaultLocales)
	viperConfig.SetDefault("catalog.docs_url_prefix", defaultDocsURLPrefix)

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

// New wraps an already populated viper instance.
func New(v *viper.Viper) *Config {
	return &Config{config: v}
}

func (c *Config) GetPort() string {
	return c.getString("PORT", "server.port")
}

func (c *Config) GetLogLevel() string {
	return c.getString("LOG_LEVEL", "log.level")
}

// GetRegistryPath is the site metadata export used for catalog discovery.
func (c *Config) GetRegistryPath() string {
	return c.getString("REGISTRY_PATH", "catalog.registry_path")
}

// GetDocsPath is the markdown root scanned for catalog discovery and read by the file fetcher.
func (c *Config) GetDocsPath() string {
	return c.getString("DOCS_PATH", "catalog.docs_path")
}

// GetDocsURLPrefix is the route prefix of pages generated from the docs root.
func (c *Config) GetDocsURLPrefix() string {
	return c.getString("DOCS_URL_PREFIX", "catalog.docs_url_prefix")
}

// GetLocales lists the site locales. A LOCALES env value is comma separated.
func (c *Config) GetLocales() []string {
	if value := c.config.GetString("LOCALES"); len(value) > 0 {
		var locales []string
		for _, locale := range strings.Split(value, ",") {
			if locale = strings.TrimSpace(locale); locale != "" {
				locales = append(locales, locale)
			}
		}
		return locales
	}

	return c.config.GetStringSlice("catalog.locales")
}

// GetContentSource is one of static, file, http or snapshot.
func (c *Config) GetContentSource() string {
	return c.getString("CONTENT_SOURCE", "content.source")
}

func (c *Config) GetContentBaseURL() string {
	return c.getString("CONTENT_BASE_URL", "content.base_url")
}

func (c *Config) GetSnapshotPath() string {
	return c.getString("SNAPSHOT_PATH", "content.snapshot_path")
}

func (c *Config) GetFetchConcurrency() int {
	return c.getInt("FETCH_CONCURRENCY", "content.fetch_concurrency")
}

func (c *Config) GetDefaultLocale() string {
	return c.getString("DEFAULT_LOCALE", "search.default_locale")
}

func (c *Config) GetSearchBackend() string {
	return c.getString("SEARCH_BACKEND", "search.backend")
}

func (c *Config) GetCacheSize() int {
	return c.getInt("CACHE_SIZE", "search.cache_size")
}

func (c *Config) getString(envKey string, fileKey string) string {
	value := c.config.GetString(envKey)
	if len(value) == 0 {
		value = c.config.GetString(fileKey)
	}

	return value
}

func (c *Config) getInt(envKey string, fileKey string) int {
	if c.config.IsSet(envKey) {
		if value := c.config.GetInt(envKey); value > 0 {
			return value
		}
	}

	return c.config.GetInt(fileKey)
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
