// Package cli implements the levnet command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/levnet/pkg/buildinfo"
	"github.com/matzehuels/levnet/pkg/cache"
	"github.com/matzehuels/levnet/pkg/config"
	"github.com/matzehuels/levnet/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "levnet"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Config is loaded before any subcommand runs; flags override it.
	Config     *config.Config
	configPath string

	out io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command results (not logs). Defaults to stdout.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "levnet explores Levenshtein friend networks in word lists",
		Long: `levnet finds the social network of a word: its friends (words at edit
distance exactly 1), their friends, and so on up to a chosen degree.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/levnet/config.toml)")

	// Register all subcommands
	root.AddCommand(c.distanceCommand())
	root.AddCommand(c.friendsCommand())
	root.AddCommand(c.networkCommand())
	root.AddCommand(c.indexCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cache, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	runner := pipeline.NewRunner(cache, c.Config.Keyer(), c.Logger)
	runner.TTL = c.Config.Cache.TTL.Duration
	return runner, nil
}

func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || c.Config.Cache.Backend == cache.BackendNone {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		dir = ""
	}
	opts := c.Config.CacheOptions(dir)
	if opts.Dir == "" && (opts.Backend == "" || opts.Backend == cache.BackendFile) {
		c.Logger.Warn("no cache directory available, caching disabled")
		return cache.NewNullCache(), nil
	}
	opts.Logger = c.Logger
	return cache.Open(ctx, opts)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/levnet/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// pipelineOptions seeds pipeline options from the loaded config.
func (c *CLI) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Wordlist: c.Config.Wordlist,
		Degree:   c.Config.Degree,
		Workers:  c.Config.Workers,
		Logger:   c.Logger,
	}
}

// applyFlagOverrides copies explicitly set flags over config values.
func applyFlagOverrides(cmd *cobra.Command, opts *pipeline.Options, wordlist string, degree, workers int) {
	if cmd.Flags().Changed("wordlist") {
		opts.Wordlist = wordlist
	}
	if cmd.Flags().Changed("degree") {
		opts.Degree = degree
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = workers
	}
}
