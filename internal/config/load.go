package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load,
// e.g. SHOPLIST_SERVER_PORT or SHOPLIST_DATABASE_URL.
const envPrefix = "SHOPLIST"

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults double as key registration so Unmarshal sees env-only keys.
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.url", "")
	v.SetDefault("auth.mode", AuthModeRemote)
	v.SetDefault("auth.provider_url", "")
	v.SetDefault("auth.api_key", "")
	v.SetDefault("auth.jwt_secret", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; the environment is the primary source.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate applies the struct tags and the mode-dependent auth rules.
func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	switch cfg.Auth.Mode {
	case AuthModeRemote:
		if cfg.Auth.ProviderURL == "" {
			return fmt.Errorf("invalid configuration: auth.provider_url is required in remote mode")
		}
	case AuthModeJWT:
		if cfg.Auth.JWTSecret == "" {
			return fmt.Errorf("invalid configuration: auth.jwt_secret is required in jwt mode")
		}
	}

	return nil
}
