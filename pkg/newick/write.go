package newick

import (
	"bytes"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/cladegram/pkg/timetree"
)

// Marshal serializes a time tree to Newick text, terminated by ';'.
//
// Edge lengths are always derived as parent age minus node age (0 for the
// root), never the stored age itself - this is what makes a
// parse/serialize/parse round trip produce an equivalent tree. Annotations
// are written with sorted keys so output is deterministic.
func Marshal(t *timetree.Tree) []byte {
	var buf bytes.Buffer
	if t.Root != nil {
		writeNode(&buf, t.Root)
	}
	buf.WriteByte(';')
	return buf.Bytes()
}

// Write serializes a time tree to w in Newick format with a trailing newline.
func Write(t *timetree.Tree, w io.Writer) error {
	if _, err := w.Write(Marshal(t)); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

func writeNode(buf *bytes.Buffer, n *timetree.Node) {
	if !n.IsLeaf() {
		buf.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeNode(buf, c)
		}
		buf.WriteByte(')')
	}

	buf.WriteString(quoteLabel(n.Label))
	writeAnnotations(buf, n.Annotations)

	buf.WriteByte(':')
	buf.WriteString(formatLength(n.BranchLength()))
}

func writeAnnotations(buf *bytes.Buffer, ann map[string]string) {
	if len(ann) == 0 {
		return
	}
	buf.WriteString("[&")
	for i, k := range slices.Sorted(maps.Keys(ann)) {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(ann[k])
	}
	buf.WriteByte(']')
}

// quoteLabel wraps a label in quotes unless it is a pure bareword, so that
// anything the parser would not re-read as a label survives a round trip.
// Single quotes are preferred; a label containing a single quote falls back
// to double quotes.
func quoteLabel(label string) string {
	if isBareword(label) {
		return label
	}
	if strings.ContainsRune(label, '\'') {
		return `"` + label + `"`
	}
	return "'" + label + "'"
}

// isBareword reports whether the label can be emitted without quotes. The
// empty label is a bareword: it is simply omitted.
func isBareword(label string) bool {
	for i := 0; i < len(label); i++ {
		if !isWordChar(label[i]) {
			return false
		}
	}
	return true
}

// formatLength renders an edge length with the shortest representation that
// round-trips through ParseFloat. Tiny negative residue from float arithmetic
// is clamped to zero so output never carries a negative branch.
func formatLength(v float64) string {
	if v < 0 && v > -ageEpsilon {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
