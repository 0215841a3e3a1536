package treeio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/cladegram/pkg/newick"
	"github.com/matzehuels/cladegram/pkg/timetree"
)

type doc struct {
	Nodes []record `json:"nodes"`
}

type record struct {
	Number      int               `json:"number"`
	Parent      int               `json:"parent,omitempty"`
	Age         float64           `json:"age"`
	Label       string            `json:"label,omitempty"`
	Annotations map[string]string `json:"annotations,omitempty"`
}

// WriteJSON encodes a tree as JSON and writes it to w.
// The output includes every node with its age, label, and annotations.
// Records are written in pre-order so that [ReadJSON], which attaches
// children in record order, reconstructs the same sibling order.
func WriteJSON(t *timetree.Tree, w io.Writer) error {
	if t == nil || t.Root == nil {
		return fmt.Errorf("encode: empty tree")
	}
	out := doc{Nodes: make([]record, 0, t.NodeCount())}

	t.Root.Walk(func(n *timetree.Node) {
		rec := record{Number: n.Number, Age: n.Age, Label: n.Label}
		if p := n.Parent(); p != nil {
			rec.Parent = p.Number
		}
		if len(n.Annotations) > 0 {
			rec.Annotations = n.Annotations
		}
		out.Nodes = append(out.Nodes, rec)
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a tree to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(t *timetree.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(t, f)
}

// WriteNewick serializes a tree as a newline-terminated Newick statement
// and writes it to w.
func WriteNewick(t *timetree.Tree, w io.Writer) error {
	return newick.Write(t, w)
}

// ExportNewick writes a tree to a Newick file at path.
func ExportNewick(t *timetree.Tree, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteNewick(t, f)
}
