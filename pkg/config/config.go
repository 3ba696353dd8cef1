// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, and fetcher settings

package config

import (
	"github.com/spf13/viper"

	coreerrors "wikiscroll-api/core/errors"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Fetch contains batch fetcher tuning
	Fetch FetchConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// StaticDir is the directory holding the client app shell served on
	// the pass-through path
	StaticDir string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// TTLSeconds is the edge cache time-to-live for article batches
	TTLSeconds int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the cache database file path
	Path string
}

// FetchConfig holds batch fetcher tuning knobs
type FetchConfig struct {
	// FanoutLimit caps concurrent upstream requests per batch operation
	FanoutLimit int

	// TimeoutSeconds bounds each individual upstream request
	TimeoutSeconds int
}

// LoadFromEnv loads configuration from environment variables via viper
func LoadFromEnv() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("STATIC_DIR", "public")
	v.SetDefault("CACHE_TYPE", "memory")
	v.SetDefault("CACHE_TTL", 300)
	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SQLITE_PATH", "cache.db")
	v.SetDefault("FETCH_FANOUT", 25)
	v.SetDefault("FETCH_TIMEOUT", 10)

	cfg := &Config{
		Server: ServerConfig{
			Port:      v.GetString("PORT"),
			StaticDir: v.GetString("STATIC_DIR"),
		},
		Cache: CacheConfig{
			Type:       v.GetString("CACHE_TYPE"),
			TTLSeconds: v.GetInt("CACHE_TTL"),
			Redis: RedisConfig{
				Address:  v.GetString("REDIS_ADDRESS"),
				Password: v.GetString("REDIS_PASSWORD"),
				DB:       v.GetInt("REDIS_DB"),
			},
			SQLite: SQLiteConfig{
				Path: v.GetString("SQLITE_PATH"),
			},
		},
		Fetch: FetchConfig{
			FanoutLimit:    v.GetInt("FETCH_FANOUT"),
			TimeoutSeconds: v.GetInt("FETCH_TIMEOUT"),
		},
	}

	return cfg, nil
}

// Validate checks if the configuration is valid. Failures are reported
// as ValidationErrors naming the offending field.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return &coreerrors.ValidationError{Field: "PORT", Message: "cannot be empty"}
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return &coreerrors.ValidationError{Field: "CACHE_TYPE", Message: "must be 'memory', 'redis' or 'sqlite'"}
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return &coreerrors.ValidationError{Field: "REDIS_ADDRESS", Message: "cannot be empty when using redis cache"}
	}

	if c.Cache.TTLSeconds < 1 {
		return &coreerrors.ValidationError{Field: "CACHE_TTL", Message: "must be at least 1 second"}
	}

	if c.Fetch.FanoutLimit < 1 {
		return &coreerrors.ValidationError{Field: "FETCH_FANOUT", Message: "must be at least 1"}
	}

	if c.Fetch.TimeoutSeconds < 1 {
		return &coreerrors.ValidationError{Field: "FETCH_TIMEOUT", Message: "must be at least 1 second"}
	}

	return nil
}
