// Package newick parses and serializes time trees in Newick format.
//
// The dialect understood here is the classic parenthesized tree grammar with
// two common extensions: quoted labels (single or double quotes) and
// annotation blocks of the form [&key=value,key=value,...] attached to a node
// before its branch length:
//
//	Tree   := Node ';'
//	Node   := ('(' Node (',' Node)* ')')? Label? Annotation? Branch?
//	Label  := bareword | "'"..."'" | '"'..."""
//	Branch := ':' Number
//
// Whitespace (spaces and tabs) between tokens is skipped. Optional tokens
// that fail to match consume nothing and default; mandatory tokens that fail
// to match abort the parse with a [*SyntaxError] pointing at the failure.
//
// Newick encodes branch lengths - the temporal span of the edge above each
// node - not absolute ages. [Parse] therefore post-processes the raw tree in
// two traversals: a depth pass accumulating cumulative branch length from the
// root (the maximum over all nodes is the tree height), then a conversion
// pass assigning each node the age height minus its cumulative depth. The
// result is a [timetree.Tree] whose root age equals the tree height and whose
// leaves carry their true sampling ages.
//
// [Marshal] is the inverse: it derives an edge length for every node from the
// age difference to its parent, so a parse/serialize/parse round trip yields
// an equivalent tree up to floating-point precision.
package newick
