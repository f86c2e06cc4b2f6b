package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/levnet/internal/server"
	"github.com/matzehuels/levnet/pkg/pipeline"
)

// serveCommand creates the serve command, which answers network queries over
// HTTP against one preloaded word list.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		wordlist  string
		workers   int
		maxDegree int
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve friend and network queries over HTTP",
		Long: `Serve friend and network queries over HTTP.

The word list is loaded once at startup. Endpoints:

  GET /healthz
  GET /distance?a=<word>&b=<word>
  GET /friends/<word>
  GET /network/<word>?degree=N&format=json|text|dot|svg|png&direct=true`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			applyFlagOverrides(cmd, &opts, wordlist, 0, workers)
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			if !cmd.Flags().Changed("max-degree") {
				maxDegree = c.Config.Server.MaxDegree
			}
			return c.runServe(cmd.Context(), opts, addr, maxDegree, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVarP(&wordlist, "wordlist", "w", pipeline.DefaultWordlist, "word list file, one word per line")
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "parallel workers (0 = one per CPU)")
	cmd.Flags().IntVar(&maxDegree, "max-degree", 0, "largest degree a request may ask for (0 = unlimited)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts pipeline.Options, addr string, maxDegree int, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(logger)
	words, err := runner.LoadWords(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %d words", len(words)))

	srv := server.New(runner, server.Options{
		Words:     words,
		MaxDegree: maxDegree,
		Workers:   opts.Workers,
		Logger:    logger,
	})
	return srv.ListenAndServe(ctx, addr)
}
