package pipeline

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/cladegram/pkg/newick"
	"github.com/matzehuels/cladegram/pkg/render/ascii"
	"github.com/matzehuels/cladegram/pkg/render/nodelink"
	"github.com/matzehuels/cladegram/pkg/timetree"
	"github.com/matzehuels/cladegram/pkg/treeio"
)

// renderFormats renders the tree into every requested format.
// The DOT source is built once and shared by the Graphviz formats.
func renderFormats(t *timetree.Tree, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var dot string
	if opts.NeedsGraphviz() {
		dot = nodelink.ToDOT(t, nodelink.Options{
			ShowAges:        opts.ShowAges,
			ShowAnnotations: opts.ShowAnnotations,
		})
	}

	for _, format := range opts.Formats {
		data, err := renderFormat(t, dot, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderFormat(t *timetree.Tree, dot, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatText:
		lines, err := ascii.Render(t, opts.AsciiOptions()...)
		if err != nil {
			return nil, err
		}
		return []byte(strings.Join(lines, "\n") + "\n"), nil

	case FormatNewick:
		return append(newick.Marshal(t), '\n'), nil

	case FormatJSON:
		var buf bytes.Buffer
		if err := treeio.WriteJSON(t, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case FormatDOT:
		return []byte(dot), nil

	case FormatSVG:
		return nodelink.RenderSVG(dot)

	case FormatPNG:
		return nodelink.RenderPNG(dot)

	case FormatPDF:
		return nodelink.RenderPDF(dot)

	default:
		return nil, fmt.Errorf("unknown format: %q", format)
	}
}
