// Package pipeline provides the core visualization pipeline for cladegram.
//
// This package implements the complete parse → render pipeline that can be
// used by CLI and API components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read Newick text into an age-normalized time tree
//  2. Transform: Optionally ladderize (sort clades by size)
//  3. Render: Generate output in various formats (text, dot, SVG, PNG, PDF, JSON, Newick)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Newick:  "((A:1,B:1):1,C:2):0;",
//	    Formats: []string{"text"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(string(result.Artifacts["text"]))
//
// Run individual stages:
//
//	// Parse only
//	t, err := runner.Parse(ctx, opts)
//
//	// Render an existing tree
//	artifacts, err := runner.Render(ctx, t, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cladegram/pkg/errors"
	"github.com/matzehuels/cladegram/pkg/render/ascii"
	"github.com/matzehuels/cladegram/pkg/timetree"
)

// =============================================================================
// Constants
// =============================================================================

// DefaultWidth is the default text render width in columns.
const DefaultWidth = ascii.DefaultWidth

// Format constants for output formats.
const (
	FormatText   = "text"
	FormatDOT    = "dot"
	FormatSVG    = "svg"
	FormatPNG    = "png"
	FormatPDF    = "pdf"
	FormatJSON   = "json"
	FormatNewick = "nwk"
)

// Ladderize directions.
const (
	LadderizeOff        = ""
	LadderizeAscending  = "ascending"
	LadderizeDescending = "descending"
)

// ValidLadderize is the set of supported ladderize directions.
var ValidLadderize = map[string]bool{
	LadderizeOff:        true,
	LadderizeAscending:  true,
	LadderizeDescending: true,
}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Parse options
	Newick  string `json:"newick"`
	Refresh bool   `json:"refresh,omitempty"`

	// Transform options
	Ladderize string `json:"ladderize,omitempty"` // "", "ascending", "descending"

	// Render options
	Formats         []string `json:"formats,omitempty"`
	Width           int      `json:"width,omitempty"`
	NoLabels        bool     `json:"no_labels,omitempty"`
	NoDots          bool     `json:"no_dots,omitempty"`
	ShowAges        bool     `json:"show_ages,omitempty"`        // graphviz formats
	ShowAnnotations bool     `json:"show_annotations,omitempty"` // graphviz formats

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the parsed (and possibly ladderized) time tree.
	Tree *timetree.Tree

	// TreeHash is the content hash of the canonical Newick serialization.
	TreeHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LeafCount  int
	NodeCount  int
	Height     float64
	ParseTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ParseHit  bool // Whether the parsed tree came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLadderize checks that a ladderize direction is valid.
func ValidateLadderize(dir string) error {
	if !ValidLadderize[dir] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid ladderize direction %q (must be ascending or descending)", dir)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if err := errors.ValidateNewickText(o.Newick); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateWidth(o.Width); err != nil {
		return err
	}
	return ValidateLadderize(o.Ladderize)
}

// AsciiOptions converts the pipeline options into ascii render options.
func (o *Options) AsciiOptions() []ascii.Option {
	opts := []ascii.Option{ascii.WithWidth(o.Width)}
	if o.NoLabels {
		opts = append(opts, ascii.WithoutLabels())
	}
	if o.NoDots {
		opts = append(opts, ascii.WithoutDots())
	}
	return opts
}

// NeedsGraphviz reports whether any requested format goes through Graphviz.
func (o *Options) NeedsGraphviz() bool {
	for _, f := range o.Formats {
		switch f {
		case FormatDOT, FormatSVG, FormatPNG, FormatPDF:
			return true
		}
	}
	return false
}

// renderKeyParts returns the option values that affect rendered output, for
// use in cache keys.
func (o *Options) renderKeyParts(format string) []any {
	return []any{
		format,
		o.Width,
		o.NoLabels,
		o.NoDots,
		o.ShowAges,
		o.ShowAnnotations,
		o.Ladderize,
	}
}

// describe returns a short human-readable summary for logs.
func (o *Options) describe() string {
	return fmt.Sprintf("formats=%v width=%d ladderize=%q", o.Formats, o.Width, o.Ladderize)
}
