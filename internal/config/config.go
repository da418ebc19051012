// Package config loads and validates application configuration from the
// environment and an optional config file.
package config

// Auth verification modes. In remote mode every request is verified with a
// round trip to the identity provider; in jwt mode the provider's signed
// access tokens are verified locally with the shared project secret.
const (
	AuthModeRemote = "remote"
	AuthModeJWT    = "jwt"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains the identity provider settings. ProviderURL and APIKey
// are required in remote mode, JWTSecret in jwt mode; the cross-field rules
// are enforced in Load since they depend on Mode.
type AuthConfig struct {
	Mode        string `mapstructure:"mode"         validate:"required,oneof=remote jwt"`
	ProviderURL string `mapstructure:"provider_url" validate:"omitempty,url"`
	APIKey      string `mapstructure:"api_key"`
	JWTSecret   string `mapstructure:"jwt_secret"`
}
