package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything a Draftsmith client consumer can configure.
type Config struct {
	Draftsmith DraftsmithConfig
	Logger     LoggerConfig
}

type DraftsmithConfig struct {
	BaseURL           string
	AccessToken       string
	Timeout           time.Duration
	RequestsPerSecond float64 // 0 disables client-side throttling
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/draftsmith/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/draftsmith/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Draftsmith.BaseURL = viper.GetString("draftsmith.base_url")
	cfg.Draftsmith.AccessToken = viper.GetString("draftsmith.access_token")
	cfg.Draftsmith.Timeout = viper.GetDuration("draftsmith.timeout")
	cfg.Draftsmith.RequestsPerSecond = viper.GetFloat64("draftsmith.requests_per_second")

	// Flat env overrides for containerized deployments
	if baseURL := viper.GetString("draftsmith_base_url"); baseURL != "" {
		cfg.Draftsmith.BaseURL = baseURL
	}
	if token := viper.GetString("draftsmith_access_token"); token != "" {
		cfg.Draftsmith.AccessToken = token
	}

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("draftsmith.base_url", "http://localhost:37240")
	viper.SetDefault("draftsmith.timeout", "30s")
	viper.SetDefault("draftsmith.requests_per_second", 0)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
}
