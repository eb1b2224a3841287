package server

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the HTTP server configuration, loaded from a TOML file.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// ReadTimeout and WriteTimeout bound request handling.
	ReadTimeout  duration `toml:"read_timeout"`
	WriteTimeout duration `toml:"write_timeout"`

	// MaxGraphNodes and MaxGraphEdges reject analysis requests above
	// these counts. Zero means no limit.
	MaxGraphNodes int `toml:"max_graph_nodes"`
	MaxGraphEdges int `toml:"max_graph_edges"`

	Cache CacheConfig `toml:"cache"`
	Store StoreConfig `toml:"store"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	// Backend is one of "null", "file", or "redis".
	Backend string `toml:"backend"`

	// Dir is the cache directory for the file backend.
	Dir string `toml:"dir"`

	// RedisURL is the connection URL for the redis backend.
	RedisURL string `toml:"redis_url"`
}

// StoreConfig selects the report store backend.
type StoreConfig struct {
	// Backend is one of "memory" or "mongo".
	Backend string `toml:"backend"`

	// MongoURI is the connection URI for the mongo backend.
	MongoURI string `toml:"mongo_uri"`

	// Database is the mongo database name.
	Database string `toml:"database"`
}

// duration wraps time.Duration for TOML decoding from strings like "30s".
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// DefaultConfig returns a config suitable for local development: memory
// store, no cache, port 8080.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		ReadTimeout:  duration(30 * time.Second),
		WriteTimeout: duration(60 * time.Second),
		Cache:        CacheConfig{Backend: "null"},
		Store:        StoreConfig{Backend: "memory", Database: "clowd"},
	}
}

// LoadConfig reads a TOML config file, filling unset fields with defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks backend names and required backend settings.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case "null", "file":
	case "redis":
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("cache.redis_url is required for the redis backend")
		}
	default:
		return fmt.Errorf("invalid cache.backend: %q (must be one of: null, file, redis)", c.Cache.Backend)
	}

	switch c.Store.Backend {
	case "memory":
	case "mongo":
		if c.Store.MongoURI == "" {
			return fmt.Errorf("store.mongo_uri is required for the mongo backend")
		}
	default:
		return fmt.Errorf("invalid store.backend: %q (must be one of: memory, mongo)", c.Store.Backend)
	}

	return nil
}
