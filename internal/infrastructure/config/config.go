package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Wrapped    WrappedConfig    `mapstructure:"wrapped"`
	Explorer   ExplorerConfig   `mapstructure:"explorer"`
	Enriched   EnrichedConfig   `mapstructure:"enriched"`
	Reputation ReputationConfig `mapstructure:"reputation"`
}

// AppConfig represents application-specific configuration
type AppConfig struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
	HTTPPort int    `mapstructure:"http_port"`
}

// WrappedConfig pins the target year for the wrapped window.
type WrappedConfig struct {
	Year int `mapstructure:"year"`
}

// Window returns the inclusive Unix-second bounds of the wrapped year.
func (w WrappedConfig) Window() (start, end int64) {
	start = time.Date(w.Year, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	end = time.Date(w.Year, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
	return start, end
}

// ExplorerConfig represents the Etherscan-compatible explorer API
type ExplorerConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	APIKey         string        `mapstructure:"api_key"`
	Timeout        time.Duration `mapstructure:"timeout"`
	TxOffset       int           `mapstructure:"tx_offset"`
	TransferOffset int           `mapstructure:"transfer_offset"`
}

// EnrichedConfig represents the enriched activity provider
type EnrichedConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	APIKey   string        `mapstructure:"api_key"`
	ChainID  string        `mapstructure:"chain_id"`
	PageSize int           `mapstructure:"page_size"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// ReputationConfig represents the reputation/identity provider
type ReputationConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	APIKey     string        `mapstructure:"api_key"`
	ScorerSlug string        `mapstructure:"scorer_slug"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Load loads configuration from environment variables and files
func Load() (*Config, error) {
	// Best-effort .env preload for local development
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/base-wrapped-api")

	// Environment variables
	viper.AutomaticEnv()
	viper.SetEnvPrefix("")

	// Map environment variables to nested config keys
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Default values
	setDefaults()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// App defaults
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.http_port", 8080)

	// Wrapped window defaults
	viper.SetDefault("wrapped.year", 2025)

	// Explorer defaults (Routescan's Etherscan-compatible API for Base)
	viper.SetDefault("explorer.base_url", "https://api.routescan.io/v2/network/mainnet/evm/8453/etherscan/api")
	viper.SetDefault("explorer.timeout", "15s")
	viper.SetDefault("explorer.tx_offset", 10000)
	viper.SetDefault("explorer.transfer_offset", 5000)

	// Enriched activity provider defaults
	viper.SetDefault("enriched.base_url", "https://api.zerion.io")
	viper.SetDefault("enriched.chain_id", "base")
	viper.SetDefault("enriched.page_size", 100)
	viper.SetDefault("enriched.timeout", "15s")

	// Reputation provider defaults
	viper.SetDefault("reputation.base_url", "https://api.talentprotocol.com")
	viper.SetDefault("reputation.scorer_slug", "builder_score")
	viper.SetDefault("reputation.timeout", "10s")

	// Bind env for API keys
	viper.BindEnv("explorer.api_key", "EXPLORER_API_KEY")
	viper.BindEnv("enriched.api_key", "ZERION_API_KEY")
	viper.BindEnv("reputation.api_key", "TALENT_API_KEY")
}
