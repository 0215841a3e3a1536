// Package nodelink exports time trees as Graphviz node-link diagrams.
//
// [ToDOT] converts a tree into DOT text with time flowing left to right, and
// [RenderSVG], [RenderPDF] and [RenderPNG] rasterize that DOT in-process via
// [github.com/goccy/go-graphviz] - no external graphviz installation is
// needed. The ASCII chronogram (package render/ascii) is the primary visual
// output of cladegram; node-link diagrams complement it for publications and
// for trees too large to read in a terminal.
package nodelink
