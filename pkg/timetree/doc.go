// Package timetree implements rooted phylogenetic time trees.
//
// A time tree is a rooted, fully-resolved tree in which every node carries an
// absolute age: its temporal distance from the most recent leaf. Ages increase
// toward the root, so the root is the oldest node and leaves sampled in the
// present have age zero. The branch length of a node is derived, never stored:
// it is the difference between the parent's age and the node's own age.
//
// The package provides two types. [Node] is one point in the tree and owns its
// children; the parent reference is a plain back-pointer and is nil exactly at
// the root. [Tree] wraps a root node with derived caches: a flat node list
// ordered leaves-first-then-internal, the leaf count and the total node count.
// The caches are computed once by [New] and are not maintained incrementally -
// after mutating the structure, call [Tree.Rebuild].
//
// Trees are built by parsers (see package newick) and consumed by renderers
// (see package render/ascii and render/nodelink). None of the operations here
// are safe for concurrent mutation; concurrent reads are fine.
package timetree
