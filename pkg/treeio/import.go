package treeio

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"github.com/matzehuels/cladegram/pkg/newick"
	"github.com/matzehuels/cladegram/pkg/timetree"
)

// ReadJSON decodes a JSON tree from r.
//
// The input must be a JSON object with a "nodes" array of flat records:
//
//	{
//	  "nodes": [
//	    {"number": 1, "parent": 3, "age": 0, "label": "A"},
//	    {"number": 2, "parent": 3, "age": 0, "label": "B"},
//	    {"number": 3, "age": 1}
//	  ]
//	}
//
// Each record must have a unique positive "number" and an "age". The
// record without a "parent" field (or with parent 0) becomes the root.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or the nodes array is empty
//   - A record has a non-positive or duplicate number
//   - A parent reference points to an unknown number or the record itself
//   - There is no root, or more than one
//   - A record is unreachable from the root (a parent cycle)
//   - A child is older than its parent
//
// Errors name the record that caused the problem. The returned tree is
// renumbered on load, so record numbers act as identifiers within the
// file only.
//
// The returned tree is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*timetree.Tree, error) {
	var data doc
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(data.Nodes) == 0 {
		return nil, fmt.Errorf("decode: empty nodes array")
	}

	byNumber := make(map[int]*timetree.Node, len(data.Nodes))
	for _, rec := range data.Nodes {
		if rec.Number <= 0 {
			return nil, fmt.Errorf("node %d: number must be positive", rec.Number)
		}
		if _, ok := byNumber[rec.Number]; ok {
			return nil, fmt.Errorf("node %d: duplicate number", rec.Number)
		}
		n := timetree.NewNode()
		n.Age = rec.Age
		n.Label = rec.Label
		maps.Copy(n.Annotations, rec.Annotations)
		byNumber[rec.Number] = n
	}

	var root *timetree.Node
	for _, rec := range data.Nodes {
		n := byNumber[rec.Number]
		if rec.Parent == 0 {
			if root != nil {
				return nil, fmt.Errorf("node %d: multiple roots", rec.Number)
			}
			root = n
			continue
		}
		parent, ok := byNumber[rec.Parent]
		if !ok {
			return nil, fmt.Errorf("node %d: unknown parent %d", rec.Number, rec.Parent)
		}
		if parent == n {
			return nil, fmt.Errorf("node %d: node is its own parent", rec.Number)
		}
		if n.Age > parent.Age {
			return nil, fmt.Errorf("node %d: age %g exceeds parent age %g", rec.Number, n.Age, parent.Age)
		}
		parent.AddChild(n)
	}
	if root == nil {
		return nil, fmt.Errorf("decode: no root node")
	}

	reachable := 0
	root.Walk(func(*timetree.Node) { reachable++ })
	if reachable != len(data.Nodes) {
		return nil, fmt.Errorf("decode: %d nodes unreachable from root (parent cycle)", len(data.Nodes)-reachable)
	}

	return timetree.New(root), nil
}

// ImportJSON reads a JSON file at path and returns the decoded tree.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. Errors wrap the underlying cause with the file path for context,
// and include the same validation errors as [ReadJSON].
func ImportJSON(path string) (*timetree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// ReadNewick reads a Newick statement from r and returns the parsed,
// age-normalized tree. Leading and trailing whitespace around the
// statement is ignored, so newline-terminated files parse cleanly.
func ReadNewick(r io.Reader) (*timetree.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return newick.Parse(strings.TrimSpace(string(data)))
}

// ImportNewick reads a Newick file at path and returns the parsed tree.
func ImportNewick(path string) (*timetree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	t, err := ReadNewick(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return t, nil
}
