package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/levnet/pkg/cache"
	"github.com/matzehuels/levnet/pkg/errors"
	"github.com/matzehuels/levnet/pkg/pipeline"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Wordlist != pipeline.DefaultWordlist || cfg.Degree != pipeline.DefaultDegree {
		t.Errorf("Default() = %+v", cfg)
	}
	if cfg.Cache.Backend != cache.BackendFile {
		t.Errorf("default backend = %q", cfg.Cache.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
wordlist = "words.txt"
degree = 3
workers = 8

[cache]
backend = "badger"
ttl = "12h"
badger_path = "/tmp/levnet-badger"

[server]
addr = ":9090"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Wordlist != "words.txt" || cfg.Degree != 3 || cfg.Workers != 8 {
		t.Errorf("top-level fields = %+v", cfg)
	}
	if cfg.Cache.Backend != "badger" || cfg.Cache.TTL.Duration != 12*time.Hour {
		t.Errorf("cache section = %+v", cfg.Cache)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("server addr = %q", cfg.Server.Addr)
	}
	// Unset keys keep their defaults.
	if cfg.Cache.MongoDatabase != "levnet" || cfg.Server.MaxDegree != DefaultMaxDegree {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `degree = `},
		{"bad duration", "[cache]\nttl = \"forever\""},
		{"unknown key", `colour = "blue"`},
		{"unknown backend", "[cache]\nbackend = \"memcached\""},
		{"negative workers", `workers = -1`},
		{"negative ttl", "[cache]\nttl = \"-1h\""},
		{"negative max degree", "[server]\nmax_degree = -2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Parse(%q) error = %v, want INVALID_CONFIG", tt.data, err)
			}
		})
	}
}

func TestNegativeDegreeIsValid(t *testing.T) {
	cfg, err := Parse([]byte(`degree = -1`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Degree != -1 {
		t.Errorf("degree = %d", cfg.Degree)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("degree = 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Degree != 2 {
		t.Errorf("degree = %d, want 2", cfg.Degree)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadMissingDefaultPath(t *testing.T) {
	t.Setenv("LEVNET_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Degree != pipeline.DefaultDegree {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("LEVNET_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got, want := DefaultPath(), filepath.Join("/xdg", "levnet", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %s, want %s", got, want)
	}

	t.Setenv("LEVNET_CONFIG", "/etc/levnet.toml")
	if got := DefaultPath(); got != "/etc/levnet.toml" {
		t.Errorf("DefaultPath() with LEVNET_CONFIG = %s", got)
	}
}

func TestCacheOptions(t *testing.T) {
	cfg := Default()
	opts := cfg.CacheOptions("/cache")
	if opts.Dir != "/cache" || opts.BadgerPath != filepath.Join("/cache", "badger") {
		t.Errorf("CacheOptions = %+v", opts)
	}

	cfg.Cache.Dir = "/custom"
	cfg.Cache.BadgerPath = "/db"
	opts = cfg.CacheOptions("/cache")
	if opts.Dir != "/custom" || opts.BadgerPath != "/db" {
		t.Errorf("CacheOptions with overrides = %+v", opts)
	}
}

func TestKeyer(t *testing.T) {
	cfg := Default()
	plain := cfg.Keyer().AdjacencyKey("abc")

	cfg, err := Parse([]byte("[cache]\nprefix = \"staging:\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Keyer().AdjacencyKey("abc"); got != "staging:"+plain {
		t.Errorf("scoped key = %q, want %q", got, "staging:"+plain)
	}
}
