// Package config loads levnet settings from a TOML file.
//
// Config file locations (priority order):
//  1. the --config flag
//  2. $LEVNET_CONFIG
//  3. $XDG_CONFIG_HOME/levnet/config.toml (or ~/.config/levnet/config.toml)
//
// A missing file at the default location is not an error; defaults are used.
// Command-line flags override whatever the file sets.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/levnet/pkg/cache"
	"github.com/matzehuels/levnet/pkg/errors"
	"github.com/matzehuels/levnet/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address of `levnet serve`.
	DefaultAddr = ":8080"

	// DefaultMaxDegree bounds degrees accepted by the HTTP API.
	DefaultMaxDegree = 6
)

// Config is the full set of file-configurable settings.
type Config struct {
	Wordlist string       `toml:"wordlist"`
	Degree   int          `toml:"degree"`
	Workers  int          `toml:"workers"`
	Cache    CacheConfig  `toml:"cache"`
	Server   ServerConfig `toml:"server"`
}

// CacheConfig selects and configures the cache backend. A zero TTL keeps
// the per-entry defaults (cache.TTLAdjacency, cache.TTLNetwork).
type CacheConfig struct {
	Backend       string   `toml:"backend"`
	Dir           string   `toml:"dir"`
	TTL           Duration `toml:"ttl"`
	RedisAddr     string   `toml:"redis_addr"`
	RedisPassword string   `toml:"redis_password"`
	RedisDB       int      `toml:"redis_db"`
	MongoURI      string   `toml:"mongo_uri"`
	MongoDatabase string   `toml:"mongo_database"`
	BadgerPath    string   `toml:"badger_path"`

	// Prefix namespaces every key, for deployments sharing one redis or
	// mongo instance.
	Prefix string `toml:"prefix"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr      string `toml:"addr"`
	MaxDegree int    `toml:"max_degree"`
}

// Duration is a time.Duration written as a Go duration string ("720h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Wordlist: pipeline.DefaultWordlist,
		Degree:   pipeline.DefaultDegree,
		Cache: CacheConfig{
			Backend:       cache.BackendFile,
			RedisAddr:     "localhost:6379",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "levnet",
		},
		Server: ServerConfig{
			Addr:      DefaultAddr,
			MaxDegree: DefaultMaxDegree,
		},
	}
}

// DefaultPath returns the config file path used when --config is not given.
func DefaultPath() string {
	if p := os.Getenv("LEVNET_CONFIG"); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "levnet", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "levnet", "config.toml")
}

// Load reads the config at path. An empty path means [DefaultPath], where a
// missing file yields [Default]. An explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if !explicit {
				return Default(), nil
			}
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found: %s", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data on top of [Default] and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must be >= 0, got %d", c.Workers)
	}
	if c.Cache.Backend != "" && !slices.Contains(cache.Backends, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (want one of %s)",
			c.Cache.Backend, strings.Join(cache.Backends, ", "))
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}
	if c.Cache.RedisDB < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "redis_db must be >= 0")
	}
	if c.Server.MaxDegree < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server max_degree must be >= 0")
	}
	return nil
}

// CacheOptions converts the cache section into [cache.Options]. An empty
// dir is replaced by defaultDir.
func (c *Config) CacheOptions(defaultDir string) cache.Options {
	dir := c.Cache.Dir
	if dir == "" {
		dir = defaultDir
	}
	badgerPath := c.Cache.BadgerPath
	if badgerPath == "" && dir != "" {
		badgerPath = filepath.Join(dir, "badger")
	}
	return cache.Options{
		Backend:       c.Cache.Backend,
		Dir:           dir,
		RedisAddr:     c.Cache.RedisAddr,
		RedisPassword: c.Cache.RedisPassword,
		RedisDB:       c.Cache.RedisDB,
		MongoURI:      c.Cache.MongoURI,
		MongoDatabase: c.Cache.MongoDatabase,
		BadgerPath:    badgerPath,
	}
}

// Keyer returns the cache keyer, scoped by Cache.Prefix when one is set.
func (c *Config) Keyer() cache.Keyer {
	if c.Cache.Prefix == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), c.Cache.Prefix)
}
