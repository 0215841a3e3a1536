package timetree

// Tree owns a root node together with derived caches: the flat node list
// (leaves first, then internal nodes, both in pre-order), the leaf count and
// the total node count. The caches are consistent with the live tree shape as
// of the last [New] or [Tree.Rebuild] call; structural mutation afterwards
// invalidates them until Rebuild is called again.
type Tree struct {
	// Root is the unique node with a nil parent.
	Root *Node

	nodes     []*Node // leaves first, then internal nodes
	leafCount int
}

// New creates a Tree over root, computes the caches and assigns node numbers:
// leaves get 1..leafCount in pre-order, internal nodes continue from
// leafCount+1 in pre-order. A nil root yields an empty tree.
func New(root *Node) *Tree {
	t := &Tree{Root: root}
	t.Rebuild()
	return t
}

// Rebuild recomputes the node list, counts and numbering from the current
// shape of the tree. Call it after mutating the structure of an existing tree.
func (t *Tree) Rebuild() {
	t.nodes = t.nodes[:0]
	t.leafCount = 0
	if t.Root == nil {
		return
	}

	t.nodes = append(t.nodes, t.Root.Leaves()...)
	t.leafCount = len(t.nodes)
	t.nodes = append(t.nodes, t.Root.Internal()...)

	for i, n := range t.nodes {
		n.Number = i + 1
	}
}

// Nodes returns all nodes, leaves first then internal nodes.
// The returned slice is the live cache; treat it as read-only.
func (t *Tree) Nodes() []*Node { return t.nodes }

// Leaves returns the leaf nodes in pre-order.
func (t *Tree) Leaves() []*Node { return t.nodes[:t.leafCount] }

// Internal returns the internal nodes in pre-order.
func (t *Tree) Internal() []*Node { return t.nodes[t.leafCount:] }

// LeafCount returns the number of leaves.
func (t *Tree) LeafCount() int { return t.leafCount }

// InternalCount returns the number of internal nodes.
func (t *Tree) InternalCount() int { return len(t.nodes) - t.leafCount }

// NodeCount returns the total number of nodes.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// Node returns the node with the given 1-based number and true,
// or nil and false if the number is out of range.
func (t *Tree) Node(number int) (*Node, bool) {
	if number < 1 || number > len(t.nodes) {
		return nil, false
	}
	return t.nodes[number-1], true
}

// Height returns the age of the root: the maximum root-to-leaf cumulative
// branch length. Returns 0 for an empty tree.
func (t *Tree) Height() float64 {
	if t.Root == nil {
		return 0
	}
	return t.Root.Age
}

// Copy returns a deep copy of the tree with freshly computed caches.
func (t *Tree) Copy() *Tree {
	if t.Root == nil {
		return New(nil)
	}
	return New(t.Root.Copy())
}

// Sorted returns a deep copy with every child list reordered by ascending
// descendant count, or descending when rev is true. Ties keep their original
// relative order. Numbering is reassigned on the copy.
func (t *Tree) Sorted(rev bool) *Tree {
	if t.Root == nil {
		return New(nil)
	}
	return New(t.Root.Sorted(rev))
}
