package timetree

import (
	"maps"
	"sort"
)

// Node is a single point in a time tree. A node owns its children exclusively;
// the parent pointer is a back-reference and is nil at the root.
//
// The zero value is usable but [NewNode] is preferred because it initializes
// the annotation map.
type Node struct {
	parent *Node

	// Children holds the node's subtrees in order. Order matters for Newick
	// serialization and for layout, not for tree equality.
	Children []*Node

	// Age is the node's temporal position measured from the most recent leaf.
	// It is non-negative and never exceeds the parent's age in a temporally
	// consistent tree.
	Age float64

	// Label is the display name, conventionally populated on leaves.
	Label string

	// Annotations carries auxiliary Newick metadata from [&key=value,...]
	// blocks. The map is never nil after NewNode.
	Annotations map[string]string

	// Number is a dense 1-based identifier unique within one tree, assigned
	// leaves-first then internal nodes. It is 0 before a Tree assigns it.
	Number int
}

// NewNode creates an empty node: age zero, no label, no children, no parent.
func NewNode() *Node {
	return &Node{Annotations: map[string]string{}}
}

// AddChild attaches c as the last child of n and sets its parent pointer.
func (n *Node) AddChild(c *Node) {
	c.parent = n
	n.Children = append(n.Children, c)
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// BranchLength returns the length of the edge above the node:
// parent age minus own age. The root has branch length zero.
func (n *Node) BranchLength() float64 {
	if n.parent == nil {
		return 0
	}
	return n.parent.Age - n.Age
}

// Walk visits the clade rooted at n in pre-order: the node itself first,
// then each child subtree in order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Leaves returns the leaves of the clade rooted at n, in pre-order.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(d *Node) {
		if d.IsLeaf() {
			leaves = append(leaves, d)
		}
	})
	return leaves
}

// Internal returns the internal nodes of the clade rooted at n, in pre-order.
func (n *Node) Internal() []*Node {
	var internal []*Node
	n.Walk(func(d *Node) {
		if !d.IsLeaf() {
			internal = append(internal, d)
		}
	})
	return internal
}

// DescendantCount returns the number of nodes in the clade rooted at n,
// including n itself.
func (n *Node) DescendantCount() int {
	count := 1
	for _, c := range n.Children {
		count += c.DescendantCount()
	}
	return count
}

// Copy returns a deep copy of the clade rooted at n. The copy's root has a
// nil parent regardless of n's position in its original tree. Numbers are
// preserved; annotation maps are cloned.
func (n *Node) Copy() *Node {
	c := &Node{
		Age:         n.Age,
		Label:       n.Label,
		Annotations: maps.Clone(n.Annotations),
		Number:      n.Number,
	}
	if c.Annotations == nil {
		c.Annotations = map[string]string{}
	}
	for _, child := range n.Children {
		c.AddChild(child.Copy())
	}
	return c
}

// Sorted returns a deep copy of the clade rooted at n with every child list
// reordered by ascending descendant count, or descending when rev is true.
// Ties keep their original relative order.
func (n *Node) Sorted(rev bool) *Node {
	c := n.Copy()
	c.sortInPlace(rev)
	return c
}

func (n *Node) sortInPlace(rev bool) {
	sort.SliceStable(n.Children, func(i, j int) bool {
		ci, cj := n.Children[i].DescendantCount(), n.Children[j].DescendantCount()
		if rev {
			return ci > cj
		}
		return ci < cj
	})
	for _, c := range n.Children {
		c.sortInPlace(rev)
	}
}
