// Package ascii renders time trees as two-dimensional character grids.
//
// The layout maps tree structure and continuous node ages onto a discrete
// grid of one row per leaf and a configurable number of columns (70 by
// default). Vertical placement comes from recursive averaging: a leaf sits at
// its 1-based rank among the leaves, an internal node at the arithmetic mean
// of its children's positions. Horizontal placement is a linear map from age
// to column, so the root occupies one edge of the grid and the most recent
// sampling time the other; rows are reversed on output so the root reads on
// the left and the tips on the right.
//
// Edges are rasterized as horizontal '-' runs along the child's row plus a
// vertical '|' run in the parent's column, with '/' and '\' elbow marks at
// the top and bottom ends of the vertical run. Node markers ('*' for leaves,
// '+' for internal nodes) are drawn in a separate pass after all edges, so
// markers always win over strokes. With labels and dot leaders enabled, blank
// cells on the root side of each leaf are filled with '⋅'.
//
// All real-valued coordinates are rounded with [math.Round], i.e. half away
// from zero. When a child rounds onto its parent's row the vertical run
// degenerates and no elbow is drawn; the horizontal run and the parent's '+'
// marker form the joint.
//
// The grid occupies leafCount x width cells of memory and the positioning
// recursion is bounded by the tree depth; both grow linearly with the input
// and are the practical scaling limits of this design.
package ascii
