package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Default values applied when neither the environment nor a config file
// provides a setting.
const (
	DefaultPort                 = 8080
	DefaultLogLevel             = "info"
	DefaultIssuer               = "MeandAI"
	DefaultAudience             = "MeandAI_Users"
	DefaultTokenExpirationHours = 24
	DefaultMaxOpenConns         = 10
	DefaultMaxIdleConns         = 5
)

// MaxTokenExpirationHours is the largest lifetime a time.Duration can hold.
const MaxTokenExpirationHours = int(math.MaxInt64 / int64(time.Hour))

// envBindings maps configuration keys to the environment variables that can
// set them. When several names are listed the first one present wins.
var envBindings = map[string][]string{
	"server.port":                 {"MEANDAI_SERVER_PORT", "PORT"},
	"server.log_level":            {"MEANDAI_LOG_LEVEL"},
	"database.url":                {"MEANDAI_DB_CONNECTION"},
	"database.max_open_conns":     {"MEANDAI_DB_MAX_OPEN_CONNS"},
	"database.max_idle_conns":     {"MEANDAI_DB_MAX_IDLE_CONNS"},
	"auth.api_key":                {"API_KEY"},
	"auth.jwt_secret":             {"JWT_KEY"},
	"auth.issuer":                 {"JWT_ISSUER"},
	"auth.audience":               {"JWT_AUDIENCE"},
	"auth.token_expiration_hours": {"JWT_TOKEN_EXPIRATION_HOURS"},
	"auth.bcrypt_cost":            {"MEANDAI_BCRYPT_COST"},
	"auth.hash_concurrency":       {"MEANDAI_HASH_CONCURRENCY"},
}

// Options tweak where Load looks for optional sources.
type Options struct {
	// EnvFile is a dotenv file loaded before reading the environment.
	// Variables already present in the environment are never overridden.
	EnvFile string

	// ConfigPaths are directories searched for config.yaml.
	ConfigPaths []string
}

// DefaultOptions reads ./.env and ./config.yaml when they exist.
func DefaultOptions() Options {
	return Options{
		EnvFile:     ".env",
		ConfigPaths: []string{"."},
	}
}

// Load reads the configuration using DefaultOptions.
func Load() (*Config, error) {
	return LoadWithOptions(DefaultOptions())
}

// LoadWithOptions loads configuration from a dotenv file, a config file and
// environment variables, in increasing order of precedence, and validates it.
// Returns a populated Config or an error if loading/validation fails.
func LoadWithOptions(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %q: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	for key, names := range envBindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	if len(opts.ConfigPaths) > 0 {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, p := range opts.ConfigPaths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Auth.TokenExpirationHours = parseExpirationHours(v.GetString("auth.token_expiration_hours"))
	cfg.Server.LogLevel = strings.ToLower(cfg.Server.LogLevel)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("database.max_open_conns", DefaultMaxOpenConns)
	v.SetDefault("database.max_idle_conns", DefaultMaxIdleConns)
	v.SetDefault("auth.issuer", DefaultIssuer)
	v.SetDefault("auth.audience", DefaultAudience)
	v.SetDefault("auth.bcrypt_cost", bcrypt.DefaultCost)
	v.SetDefault("auth.hash_concurrency", runtime.NumCPU())
}

// parseExpirationHours falls back to DefaultTokenExpirationHours when the
// value is unset, not an integer, not positive or too large for a Duration.
func parseExpirationHours(raw string) int {
	hours, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || hours <= 0 || hours > MaxTokenExpirationHours {
		return DefaultTokenExpirationHours
	}
	return hours
}
