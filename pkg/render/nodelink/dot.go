package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/cladegram/pkg/render"
	"github.com/matzehuels/cladegram/pkg/timetree"
)

// Options configures node-link diagram generation.
type Options struct {
	// ShowAges labels every edge with its branch length and every internal
	// node with its age. When false, internal nodes render as small points.
	ShowAges bool

	// ShowAnnotations appends the Newick annotations to node labels.
	ShowAnnotations bool
}

// ToDOT converts a time tree to Graphviz DOT format. Nodes are identified by
// their tree numbering, edges run from parent to child, and the graph is laid
// out left to right so the drawing reads like the ASCII chronogram: root on
// the left, tips on the right.
func ToDOT(t *timetree.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph timetree {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=12];\n")
	buf.WriteString("  edge [arrowhead=none];\n")
	buf.WriteString("\n")

	for _, n := range t.Nodes() {
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.Number, strings.Join(nodeAttrs(n, opts), ", "))
	}

	buf.WriteString("\n")
	for _, n := range t.Nodes() {
		if n.IsRoot() {
			continue
		}
		if opts.ShowAges {
			fmt.Fprintf(&buf, "  n%d -> n%d [label=%q];\n",
				n.Parent().Number, n.Number, formatAge(n.BranchLength()))
		} else {
			fmt.Fprintf(&buf, "  n%d -> n%d;\n", n.Parent().Number, n.Number)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n *timetree.Node, opts Options) []string {
	if n.IsLeaf() {
		label := n.Label
		if label == "" {
			label = fmt.Sprintf("#%d", n.Number)
		}
		if opts.ShowAnnotations {
			label = annotatedLabel(label, n.Annotations)
		}
		return []string{fmt.Sprintf("label=%q", label), "shape=box", "style=rounded"}
	}

	if opts.ShowAges {
		return []string{fmt.Sprintf("label=%q", formatAge(n.Age)), "shape=ellipse"}
	}
	return []string{"label=\"\"", "shape=point"}
}

func annotatedLabel(label string, ann map[string]string) string {
	parts := []string{label}
	for _, k := range slices.Sorted(maps.Keys(ann)) {
		parts = append(parts, fmt.Sprintf("%s=%s", k, ann[k]))
	}
	return strings.Join(parts, "\n")
}

func formatAge(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// RenderSVG rasterizes a DOT graph to SVG.
func RenderSVG(dot string) ([]byte, error) {
	return rasterize(dot, graphviz.SVG)
}

// RenderPDF rasterizes a DOT graph to PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG rasterizes a DOT graph to PNG.
func RenderPNG(dot string) ([]byte, error) {
	return rasterize(dot, graphviz.PNG)
}

func rasterize(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
