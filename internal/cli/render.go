package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cladegram/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file path (or base path for multiple formats)
	formats     []string // output formats: text, dot, svg, png, pdf, json, nwk
	width       int      // text render width in columns
	noLabels    bool     // suppress leaf labels in text output
	noDots      bool     // suppress dot leaders in text output
	ladderize   string   // clade sorting: "", "ascending", "descending"
	showAges    bool     // annotate internal nodes with ages (Graphviz formats)
	annotations bool     // include Newick annotations in labels (Graphviz formats)
	noCache     bool     // disable caching
	refresh     bool     // bypass the cache and recompute
}

// newRenderCmd creates the render command for drawing trees.
//
// Default settings:
//   - format: text (printed to stdout unless --output is set)
//   - width: 70 columns
//   - labels and dot leaders: on
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{width: pipeline.DefaultWidth}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a tree as a time-scaled cladogram",
		Long: `Render draws a Newick tree as a time-scaled cladogram. The default text
format prints an ASCII drawing to stdout; Graphviz formats (dot, svg,
png, pdf) draw a node-link diagram instead.

Examples:
  cladegram render primates.nwk
  cladegram render primates.nwk --width 100 --ladderize descending
  cladegram render primates.nwk -f svg,png -o primates
  echo '((A:1,B:1):1,C:2):0;' | cladegram render --no-dots`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return runRender(cmd, input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): text (default), dot, svg, png, pdf, json, nwk (comma-separated)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", opts.width, "text render width in columns")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "suppress leaf labels in text output")
	cmd.Flags().BoolVar(&opts.noDots, "no-dots", false, "suppress dot leaders in text output")
	cmd.Flags().StringVar(&opts.ladderize, "ladderize", "", "sort clades by size: ascending, descending")
	cmd.Flags().BoolVar(&opts.showAges, "ages", false, "annotate internal nodes with ages (Graphviz formats)")
	cmd.Flags().BoolVar(&opts.annotations, "annotations", false, "include Newick annotations in labels (Graphviz formats)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and recompute")

	return cmd
}

func runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
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

	pipeOpts := pipeline.Options{
		Newick:          text,
		Refresh:         opts.refresh,
		Ladderize:       opts.ladderize,
		Formats:         opts.formats,
		Width:           opts.width,
		NoLabels:        opts.noLabels,
		NoDots:          opts.noDots,
		ShowAges:        opts.showAges,
		ShowAnnotations: opts.annotations,
		Logger:          logger,
	}

	if err := pipeOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	var spin *spinner
	if pipeOpts.NeedsGraphviz() {
		spin = startSpinner(ctx, "Parsing tree")
		defer spin.Stop()
	}

	t, err := runner.Parse(ctx, pipeOpts)
	if err != nil {
		return err
	}
	t = runner.Transform(t, pipeOpts)

	if spin != nil {
		spin.SetMessage(fmt.Sprintf("Rendering %s", strings.Join(opts.formats, ", ")))
	}

	artifacts, renderHit, err := runner.RenderWithCacheInfo(ctx, t, pipeOpts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		if spin != nil && spin.Cancelled() {
			printError("Render cancelled")
		}
		return err
	}

	// A single text format without --output goes straight to stdout.
	if len(opts.formats) == 1 && opts.output == "" && isStreamable(opts.formats[0]) {
		_, err := os.Stdout.Write(artifacts[opts.formats[0]])
		return err
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := opts.output
		if len(opts.formats) > 1 || path == "" {
			path = fmt.Sprintf("%s.%s", base, extension(format))
		}
		if err := os.WriteFile(path, artifacts[format], 0644); err != nil {
			return err
		}
		logger.Debugf("Generated %s: %d bytes", format, len(artifacts[format]))
		printFile(path)
	}

	printStats(t.LeafCount(), t.NodeCount(), t.Height(), renderHit)
	return nil
}

// isStreamable reports whether a format is text-based and safe for stdout.
func isStreamable(format string) bool {
	switch format {
	case pipeline.FormatText, pipeline.FormatDOT, pipeline.FormatJSON, pipeline.FormatNewick:
		return true
	}
	return false
}
