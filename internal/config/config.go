package config

import "time"

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
	URL          string `mapstructure:"url"            validate:"required"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"gte=1"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"gte=0"`
}

// AuthConfig contains the authentication settings shared by the token
// service and the request authentication gate.
type AuthConfig struct {
	// APIKey is the process-wide static key accepted in the X-API-Key header.
	APIKey string `mapstructure:"api_key" validate:"required"`

	// JWTSecret signs and verifies bearer tokens (HMAC-SHA256).
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	Issuer   string `mapstructure:"issuer"   validate:"required"`
	Audience string `mapstructure:"audience" validate:"required"`

	// TokenExpirationHours is resolved by Load from a raw string so that an
	// unparsable value falls back to the default instead of failing startup.
	TokenExpirationHours int `mapstructure:"-" validate:"gt=0,lte=2562047"`

	BcryptCost      int `mapstructure:"bcrypt_cost"      validate:"gte=4,lte=31"`
	HashConcurrency int `mapstructure:"hash_concurrency" validate:"gte=1"`
}

// TokenLifetime returns the configured bearer token lifetime. Values above
// MaxTokenExpirationHours report zero rather than wrapping around.
func (c AuthConfig) TokenLifetime() time.Duration {
	if c.TokenExpirationHours > MaxTokenExpirationHours {
		return 0
	}
	return time.Duration(c.TokenExpirationHours) * time.Hour
}
