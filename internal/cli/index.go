package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/levnet/pkg/friends"
	"github.com/matzehuels/levnet/pkg/pipeline"
)

// indexCommand creates the index command, which precomputes the friend map
// of a whole word list.
func (c *CLI) indexCommand() *cobra.Command {
	var (
		wordlist string
		workers  int
		output   string
		noCache  bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build the friend map of a word list",
		Long: `Build the friend map of a word list.

Every word is compared with every other word once, so later network queries
only look up precomputed friends. The map is stored in the configured cache
and, with --output, also written as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			applyFlagOverrides(cmd, &opts, wordlist, 0, workers)
			opts.Refresh = refresh
			return c.runIndex(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&wordlist, "wordlist", "w", pipeline.DefaultWordlist, "word list file, one word per line")
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "parallel workers (0 = one per CPU)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the friend map to this JSON file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "do not read or write the cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "rebuild even if a cached map exists")

	return cmd
}

func (c *CLI) runIndex(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Loading word list...")
	spinner.Start()

	words, err := runner.LoadWords(ctx, opts)
	if err != nil {
		spinner.Stop()
		return err
	}
	opts.Words = words
	logger.Debug("loaded word list", "path", opts.Wordlist, "words", len(words))
	spinner.SetMessage("Indexing %d words...", len(words))

	prog := newProgress(logger)
	adj, hit, err := runner.AdjacencyWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Indexing failed")
		return fmt.Errorf("index: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Indexed %d words", len(adj)))

	printSuccess("Friend map ready")
	printKeyValue("words", fmt.Sprint(len(adj)))
	printKeyValue("friendships", fmt.Sprint(adj.Edges()/2))
	printKeyValue("lonely", fmt.Sprint(countLonely(adj)))
	printStats(len(words), 0, hit)

	if output != "" {
		if err := friends.WriteAdjacencyFile(adj, output); err != nil {
			return err
		}
		printFile(output)
	}

	printNewline()
	printNextStep("Explore a network", "levnet network <word> --degree 3")
	return nil
}

func countLonely(adj friends.Adjacency) int {
	n := 0
	for _, f := range adj {
		if f.Len() == 0 {
			n++
		}
	}
	return n
}
