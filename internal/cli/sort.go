package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cladegram/pkg/newick"
	"github.com/matzehuels/cladegram/pkg/treeio"
)

// newSortCmd creates the sort command. It ladderizes a tree (sorts every
// node's children by clade size) and prints the result as Newick.
func newSortCmd() *cobra.Command {
	var (
		output  string
		reverse bool
	)

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Ladderize a tree and print the sorted Newick",
		Long: `Sort orders every node's children by the number of descendants, smallest
clade first. With --reverse the largest clade comes first. Ties keep
their original order, so sorting is deterministic.

Examples:
  cladegram sort primates.nwk
  echo '((A:1,B:1):1,C:2):0;' | cladegram sort --reverse`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}

			text, err := readInput(input)
			if err != nil {
				return err
			}

			t, err := newick.Parse(text)
			if err != nil {
				return err
			}
			sorted := t.Sorted(reverse)

			if output != "" {
				if err := treeio.ExportNewick(sorted, output); err != nil {
					return err
				}
				printFile(output)
				return nil
			}
			return newick.Write(sorted, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the sorted Newick to this file")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "largest clade first")

	return cmd
}
