package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg is the process-wide configuration instance, populated by LoadConfig.
var Cfg *Config

// LoadConfig reads ./configs/config.yaml and fills Cfg.
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.port", 8080)
	// 42 posts per page, fixed since the php days; legacy pid links depend on it.
	viper.SetDefault("site.page_size", 42)

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// page math divides by this; an explicit 0 in the file must not pass
	if cfg.Site.PageSize <= 0 {
		return fmt.Errorf("site.page_size must be positive, got %d", cfg.Site.PageSize)
	}

	Cfg = &cfg

	return nil
}
