package ascii

import (
	"errors"
	"math"

	"github.com/matzehuels/cladegram/pkg/timetree"
)

var (
	// ErrNoLeaves is returned by [Render] when the tree has no leaves to lay
	// out. Every row of the grid corresponds to one leaf, so an empty tree
	// has nothing to draw.
	ErrNoLeaves = errors.New("tree has no leaves")

	// ErrZeroHeight is returned by [Render] for a degenerate star tree whose
	// root age is zero: the age-to-column mapping divides by the root age.
	// A single-node tree is exempt (it has no edges to map).
	ErrZeroHeight = errors.New("tree has zero height")

	// ErrWidthTooSmall is returned by [Render] when the configured width
	// leaves no room for both a root column and a tip column.
	ErrWidthTooSmall = errors.New("width must be at least 2")
)

// DefaultWidth is the grid width used when no WithWidth option is given.
const DefaultWidth = 70

// leader is the dot-leader fill character between the grid edge and a leaf.
const leader = '⋅'

// Option configures Render.
type Option func(*options)

type options struct {
	width  int
	labels bool
	dots   bool
}

// WithWidth sets the grid width in columns. Widths below 2 are rejected by
// Render with ErrWidthTooSmall.
func WithWidth(w int) Option {
	return func(o *options) { o.width = w }
}

// WithoutLabels disables the trailing leaf labels. This also disables dot
// leaders, which only exist to guide the eye toward a label.
func WithoutLabels() Option {
	return func(o *options) { o.labels = false }
}

// WithoutDots disables the dot leaders while keeping labels.
func WithoutDots() Option {
	return func(o *options) { o.dots = false }
}

// Render lays the tree out as one text line per leaf. Each line is exactly
// width characters of grid, optionally followed by a space and the leaf's
// label. Rendering never mutates the tree, and the same tree with the same
// options always produces byte-identical output.
func Render(t *timetree.Tree, opts ...Option) ([]string, error) {
	cfg := options{width: DefaultWidth, labels: true, dots: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.width < 2 {
		return nil, ErrWidthTooSmall
	}
	leaves := t.Leaves()
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}
	rootAge := t.Height()
	if rootAge <= 0 {
		if t.NodeCount() > 1 {
			return nil, ErrZeroHeight
		}
		// Single-node tree: no edges exist, so any positive height works as
		// the column scale. The lone leaf still lands in the tip column.
		rootAge = 1
	}

	g := newGrid(len(leaves), cfg.width)
	pos := verticalPositions(t, leaves)

	toCol := func(age float64) int {
		return int(math.Round(age/rootAge*float64(cfg.width-1))) + 1
	}
	toRow := func(n *timetree.Node) int {
		return int(math.Round(pos[n]))
	}

	// Edge pass. Nodes are visited in numbering order (leaves first, then
	// internal nodes), so the draw order is deterministic and a later edge
	// overwrites earlier strokes in shared cells.
	for _, n := range t.Nodes() {
		if n.IsRoot() {
			continue
		}
		g.drawEdge(toRow(n), toCol(n.Age), toRow(n.Parent()), toCol(n.Parent().Age))
	}

	// Marker pass, strictly after all edges: node markers always win.
	for _, leaf := range leaves {
		g.set(toRow(leaf), toCol(leaf.Age), '*')
	}
	for _, n := range t.Internal() {
		g.set(toRow(n), toCol(n.Age), '+')
	}

	if cfg.labels && cfg.dots {
		for _, leaf := range leaves {
			g.drawLeaders(toRow(leaf), toCol(leaf.Age))
		}
	}

	lines := make([]string, len(leaves))
	for i, leaf := range leaves {
		line := g.reversedRow(i + 1)
		if cfg.labels {
			line += " " + leaf.Label
		}
		lines[i] = line
	}
	return lines, nil
}

// verticalPositions computes the real-valued row for every node: leaves get
// their 1-based rank, internal nodes the arithmetic mean of their children's
// positions, bottom-up.
func verticalPositions(t *timetree.Tree, leaves []*timetree.Node) map[*timetree.Node]float64 {
	pos := make(map[*timetree.Node]float64, t.NodeCount())
	for i, leaf := range leaves {
		pos[leaf] = float64(i + 1)
	}

	var fill func(n *timetree.Node) float64
	fill = func(n *timetree.Node) float64 {
		if n.IsLeaf() {
			return pos[n]
		}
		var sum float64
		for _, c := range n.Children {
			sum += fill(c)
		}
		p := sum / float64(len(n.Children))
		pos[n] = p
		return p
	}
	fill(t.Root)
	return pos
}
