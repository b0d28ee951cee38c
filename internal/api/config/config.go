package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg is the globally accessible configuration instance.
var Cfg *Config

// LoadConfig reads the config file and fills Cfg.
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

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

	if cfg.Plans == nil {
		cfg.Plans = DefaultPlans()
	}

	Cfg = &cfg

	return nil
}

// DefaultPlans is the plan-limit table shipped with the product.
// Deployments can override it from the config file.
func DefaultPlans() map[string]PlanLimits {
	return map[string]PlanLimits{
		"free":       {Messages: 50, Tokens: 50000},
		"pro":        {Messages: 1000, Tokens: 1000000},
		"enterprise": {Messages: -1, Tokens: -1},
	}
}
