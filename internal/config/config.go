package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/textcrest/textcrest-go/pkg/textcrest"
)

// Config holds the smsctl configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	SenderID string `mapstructure:"sender_id"`

	ReportersFile string `mapstructure:"reporters_file"`

	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout"`
	HTTPTimeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "smsctl")
	v.SetDefault("api_key", "")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("base_url", textcrest.DefaultBaseURL)
	v.SetDefault("http_timeout", 15) // seconds
	v.SetDefault("reporters_file", "")
	v.SetDefault("sender_id", "")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api_key is required (set API_KEY)")
	}
	if cfg.HTTPTimeoutSeconds < 0 {
		return nil, fmt.Errorf("invalid http_timeout (must be non-negative seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	return &cfg, nil
}
