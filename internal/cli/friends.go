package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/levnet/pkg/pipeline"
)

// friendsCommand creates the friends command.
func (c *CLI) friendsCommand() *cobra.Command {
	var wordlist string

	cmd := &cobra.Command{
		Use:   "friends <word>",
		Short: "List the words at edit distance exactly 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.pipelineOptions()
			if cmd.Flags().Changed("wordlist") {
				opts.Wordlist = wordlist
			}
			return c.runFriends(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&wordlist, "wordlist", "w", pipeline.DefaultWordlist, "word list file, one word per line")

	return cmd
}

func (c *CLI) runFriends(ctx context.Context, word string, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	runner := pipeline.NewRunner(nil, nil, logger)
	words, err := runner.LoadWords(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %d words", len(words)))

	opts.Words = words
	set, err := runner.Friends(ctx, word, opts)
	if err != nil {
		return err
	}
	for _, f := range set.Sorted() {
		fmt.Fprintln(c.out, f)
	}
	return nil
}
