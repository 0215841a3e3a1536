// Package render provides visualization rendering for time trees.
//
// # Overview
//
// Two renderers live beneath this package:
//
//   - [ascii]: the ASCII chronogram, cladegram's primary output - one text
//     line per leaf, with topology, relative node ages and labels mapped
//     onto a character grid.
//   - [nodelink]: Graphviz node-link diagrams (DOT, SVG, PNG, PDF) for
//     publications and for trees too large to read in a terminal.
//
// # Format Conversion
//
// The [ToPDF] function converts any SVG to PDF using the external
// rsvg-convert tool (from librsvg). It is used by the nodelink renderer for
// PDF export:
//
//	dot := nodelink.ToDOT(tree, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//
// [ascii]: github.com/matzehuels/cladegram/pkg/render/ascii
// [nodelink]: github.com/matzehuels/cladegram/pkg/render/nodelink
package render
