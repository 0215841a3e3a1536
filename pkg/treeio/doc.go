// Package treeio provides file import and export for time trees.
//
// # Overview
//
// Two formats are supported:
//
//   - Newick: the interchange format most phylogenetics tools speak.
//     Import parses and age-normalizes the text; export serializes the
//     tree back to a single Newick statement.
//   - JSON: a flat record format for tools that would rather not parse
//     Newick. Each node is one record referencing its parent by number.
//
// # JSON Format
//
// The format has a single top-level "nodes" array:
//
//	{
//	  "nodes": [
//	    {"number": 5, "age": 2},
//	    {"number": 4, "parent": 5, "age": 1},
//	    {"number": 1, "parent": 4, "age": 0, "label": "A"},
//	    {"number": 2, "parent": 4, "age": 0, "label": "B"},
//	    {"number": 3, "parent": 5, "age": 0, "label": "C"}
//	  ]
//	}
//
// Records may appear in any order on import; export writes them in
// pre-order so sibling order survives a round trip.
//
// Required fields per record:
//   - number: Unique positive integer identifier within the file
//   - age: Time before present (leaves at or near 0, root oldest)
//
// Optional fields:
//   - parent: Number of the parent record; exactly one record omits it
//     (or sets it to 0) and becomes the root
//   - label: Display name
//   - annotations: Object with string key-value pairs
//
// Numbers are identifiers within the file only. The loaded tree assigns
// its own numbering (leaves first, then internal nodes), so a round trip
// preserves structure, ages, labels, and annotations but not necessarily
// the numbers themselves.
//
// # Import
//
// Use [ImportJSON] or [ImportNewick] to read from a file path, or
// [ReadJSON] and [ReadNewick] to read from any io.Reader:
//
//	t, err := treeio.ImportNewick("primates.nwk")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Import validates the structure: duplicate numbers, dangling parent
// references, multiple roots, unreachable records, and children older
// than their parents are all rejected with errors naming the offending
// record.
//
// # Export
//
// Use [ExportJSON] or [ExportNewick] to write to a file, or [WriteJSON]
// and [WriteNewick] to write to any io.Writer. Export includes every
// node with its age, label, and annotations, so a tree survives an
// export/import cycle intact.
package treeio
