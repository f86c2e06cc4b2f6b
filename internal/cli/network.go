package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/levnet/pkg/errors"
	"github.com/matzehuels/levnet/pkg/pipeline"
	"github.com/matzehuels/levnet/pkg/render"
)

// networkOpts holds the command-line flags for the network command that do
// not map directly onto pipeline.Options.
type networkOpts struct {
	wordlist string // word list path
	degree   int    // friendship hops
	workers  int    // parallelism for indexing and expansion
	formats  string // comma-separated output formats
	output   string // output file (single format) or base path (multiple)
	noCache  bool   // disable caching entirely
	levels   bool   // group text output by hop
}

// networkCommand creates the network command.
func (c *CLI) networkCommand() *cobra.Command {
	var flags networkOpts
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "network <word>",
		Short: "Find every word within N friendship hops",
		Long: `Find the social network of a word.

Two words are friends when their Levenshtein distance is exactly 1. The
network of degree N holds the word's friends, their friends, and so on for
N hops. By default the friend map of the whole word list is built once and
cached; --direct computes friends hop by hop instead, which is faster for a
single small query and works for words that are not in the list.`,
		Example: `  levnet network word --degree 3
  levnet network word -d 2 -f svg -o word.svg
  levnet network word -d 2 -f json,dot -o out/word`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := c.pipelineOptions()
			applyFlagOverrides(cmd, &base, flags.wordlist, flags.degree, flags.workers)
			base.Seed = args[0]
			base.Direct = opts.Direct
			base.Refresh = opts.Refresh
			base.Detailed = opts.Detailed
			base.Formats = parseFormats(flags.formats)
			return c.runNetwork(cmd.Context(), base, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.wordlist, "wordlist", "w", pipeline.DefaultWordlist, "word list file, one word per line")
	cmd.Flags().IntVarP(&flags.degree, "degree", "d", pipeline.DefaultDegree, "number of friendship hops")
	cmd.Flags().IntVarP(&flags.workers, "workers", "j", 0, "parallel workers (0 = one per CPU)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): text (default), json, dot, svg, png (comma-separated)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.levels, "levels", false, "group text output by hop")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "ignore cached results and rebuild them")
	cmd.Flags().BoolVar(&opts.Direct, "direct", false, "compute friends per hop instead of indexing the word list")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "show hop numbers in diagrams")

	return cmd
}

func (c *CLI) runNetwork(ctx context.Context, opts pipeline.Options, flags networkOpts) error {
	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = loggerFromContext(ctx)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if err := checkOutput(opts.Formats, flags.output); err != nil {
		return err
	}

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		if errors.Is(err, errors.ErrCodeCacheMismatch) {
			printWarning("%q is not in the word list; rerun with --direct to compute its friends on the fly", opts.Seed)
		}
		return err
	}

	if flags.levels && flags.output == "" && len(opts.Formats) == 1 && opts.Formats[0] == string(render.FormatText) {
		writeLevels(c, result)
	} else if err := c.writeArtifacts(result.Artifacts, opts.Formats, flags.output); err != nil {
		return err
	}

	printStats(result.Stats.WordCount, result.Stats.NetworkSize, result.CacheInfo.NetworkHit || result.CacheInfo.AdjacencyHit)
	return nil
}

// checkOutput rejects format/output combinations that cannot be written.
func checkOutput(formats []string, output string) error {
	if output != "" {
		return nil
	}
	if len(formats) > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "multiple formats require --output")
	}
	if f, _ := render.ParseFormat(formats[0]); f.Binary() {
		return errors.New(errors.ErrCodeInvalidInput, "%s output requires --output", f)
	}
	return nil
}

// writeArtifacts prints a single artifact to stdout, or writes every artifact
// to a file derived from output.
func (c *CLI) writeArtifacts(artifacts map[string][]byte, formats []string, output string) error {
	if output == "" {
		_, err := c.out.Write(artifacts[formats[0]])
		return err
	}

	paths := make(map[string]string, len(formats))
	if len(formats) == 1 {
		paths[formats[0]] = output
	} else {
		base := basePath(output)
		for _, name := range formats {
			f, _ := render.ParseFormat(name)
			paths[string(f)] = base + "." + f.Extension()
		}
	}

	for name, path := range paths {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, artifacts[name], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// basePath strips a known format extension from output.
func basePath(output string) string {
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if _, err := render.ParseFormat(ext); err == nil && ext != "" {
		return strings.TrimSuffix(output, "."+ext)
	}
	if ext == "txt" {
		return strings.TrimSuffix(output, ".txt")
	}
	return output
}

func writeLevels(c *CLI, result *pipeline.Result) {
	for i, level := range result.Levels {
		fmt.Fprintf(c.out, "%d\t%s\n", i+1, strings.Join(level.Sorted(), " "))
	}
}

// parseFormats parses the --format flag. Empty means the pipeline default.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}
