// Package pkg provides the core libraries for Cladegram time tree visualization.
//
// # Overview
//
// Cladegram turns rooted phylogenetic time trees into diagrams. Trees enter as
// Newick strings, are normalized onto an age scale (leaves at age zero, the
// root oldest), and leave as ASCII art or Graphviz-backed images. The pkg
// directory is organized as follows:
//
//  1. [timetree] - Domain model (nodes, ages, traversal, ladderization)
//  2. [newick] - Newick parsing and serialization
//  3. [render] - Visualization (ASCII layout, node-link diagrams, conversion)
//  4. [treeio] - File import/export (JSON and Newick)
//  5. [pipeline] - Orchestration (parse → transform → render) with caching
//
// # Architecture
//
// The typical data flow through Cladegram:
//
//	Newick string
//	         ↓
//	    [newick] package (parse + age normalization)
//	         ↓
//	    [timetree] package (tree structure + ladderization)
//	         ↓
//	    [render/ascii] or [render/nodelink] (layout + rasterization)
//	         ↓
//	    text/DOT/SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Parse a tree and render it as ASCII art:
//
//	import (
//	    "fmt"
//	    "github.com/matzehuels/cladegram/pkg/newick"
//	    "github.com/matzehuels/cladegram/pkg/render/ascii"
//	)
//
//	t, _ := newick.Parse("((A:1,B:1):1,C:2):0;")
//	lines, _ := ascii.Render(t, ascii.WithWidth(40))
//	for _, line := range lines {
//	    fmt.Println(line)
//	}
//
// # Main Packages
//
// [timetree] - Rooted time trees. Nodes carry an age (distance to the leaf
// level), a label, and free-form annotations. The [timetree.Tree] wrapper
// caches traversal order and assigns stable node numbers.
//
// [newick] - Recursive descent parser for the Newick format, including
// [&key=value] annotation blocks, plus the inverse serializer. Branch lengths
// are converted to ages on parse.
//
// [render/ascii] - Character grid layout: leaves stacked on rows, internal
// nodes centered over their children, ages mapped linearly onto columns.
//
// [render/nodelink] - Directed graph diagrams via Graphviz (DOT, SVG, PNG).
//
// [render] - Format conversion helpers (SVG to PDF via rsvg-convert).
//
// [treeio] - Reading and writing trees as flat JSON documents or Newick files,
// with structural validation on import.
//
// [pipeline] - The parse → transform → render pipeline shared by the CLI and
// the HTTP API, with content-addressed caching of parse and render results.
//
// [cache] - Cache backends: filesystem, Redis, and a no-op null cache.
//
// [config] - TOML configuration with XDG-aware path resolution.
//
// [errors] - Structured error codes and input validation shared across
// surfaces.
//
// [buildinfo] - Version metadata injected at build time.
//
// [timetree]: https://pkg.go.dev/github.com/matzehuels/cladegram/pkg/timetree
// [newick]: https://pkg.go.dev/github.com/matzehuels/cladegram/pkg/newick
// [render]: https://pkg.go.dev/github.com/matzehuels/cladegram/pkg/render
// [render/ascii]: https://pkg.go.dev/github.com/matzehuels/cladegram/pkg/render/ascii
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/cladegram/pkg/render/nodelink
// [treeio]: https://pkg.go.dev/github.com/matzehuels/cladegram/pkg/treeio
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/cladegram/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/cladegram/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/cladegram/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/cladegram/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/cladegram/pkg/buildinfo
package pkg
