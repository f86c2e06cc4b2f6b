package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/levnet/pkg/editdist"
)

// distanceCommand creates the distance command.
func (c *CLI) distanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <a> <b>",
		Short: "Print the Levenshtein distance between two words",
		Example: `  levnet distance apple bananna   # 5
  levnet distance apple snapple   # 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.out, editdist.Distance(args[0], args[1]))
			return nil
		},
	}
}
