package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cladegram/pkg/pipeline"
	"github.com/matzehuels/cladegram/pkg/treeio"
)

// parseOpts holds the command-line flags for the parse command.
type parseOpts struct {
	output  string // write the parsed tree as JSON to this path
	asJSON  bool   // print the parsed tree as JSON to stdout
	noCache bool   // disable the parse cache
	refresh bool   // bypass the cache and reparse
}

// newParseCmd creates the parse command. It reads Newick text from a file
// argument or stdin, parses and age-normalizes it, and reports the tree
// structure. With --json the tree is printed as JSON for further tooling.
func newParseCmd() *cobra.Command {
	var opts parseOpts

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a Newick tree and report its structure",
		Long: `Parse reads a rooted tree in Newick format, converts branch lengths into
node ages (time before present), and reports the tree structure. Input
comes from a file argument or stdin.

Examples:
  cladegram parse primates.nwk
  echo '((A:1,B:1):1,C:2):0;' | cladegram parse
  cladegram parse primates.nwk --json -o primates.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runParse(cmd, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the tree as JSON to this file")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the tree as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the parse cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and reparse")

	return cmd
}

func runParse(cmd *cobra.Command, input string, opts *parseOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	text, err := readInput(input)
	if err != nil {
		return err
	}

	runner, err := newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()
	runner.Logger = logger

	prog := newProgress(logger)
	t, hit, err := runner.ParseWithCacheInfo(ctx, pipeline.Options{
		Newick:  text,
		Refresh: opts.refresh,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Parsed %d nodes", t.NodeCount()))

	printSuccess("Parsed tree")
	printStats(t.LeafCount(), t.NodeCount(), t.Height(), hit)

	if opts.output != "" {
		if err := treeio.ExportJSON(t, opts.output); err != nil {
			return err
		}
		printFile(opts.output)
	}
	if opts.asJSON {
		if err := treeio.WriteJSON(t, os.Stdout); err != nil {
			return err
		}
	}
	return nil
}
