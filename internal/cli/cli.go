// Package cli implements the cladegram command-line interface.
//
// This package provides commands for parsing Newick trees, rendering them as
// terminal cladograms or Graphviz diagrams, sorting clades, browsing trees
// interactively, serving the HTTP API, and managing the render cache. The CLI
// is built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - parse: Parse a Newick tree and report its structure
//   - render: Draw a tree as text, DOT, SVG, PNG, PDF, JSON, or Newick
//   - sort: Ladderize a tree and print the sorted Newick
//   - view: Browse a tree interactively in the terminal
//   - serve: Run the HTTP API
//   - cache: Manage the render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/cladegram/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/cladegram/pkg/cache"
	"github.com/matzehuels/cladegram/pkg/config"
	"github.com/matzehuels/cladegram/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "cladegram"

// newRunner creates a pipeline runner for CLI use.
func newRunner(noCache bool) (*pipeline.Runner, error) {
	c, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(c, nil), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/cladegram/).
func cacheDir() (string, error) {
	return config.Default().CacheDir()
}

// readInput reads Newick text from the file at path, or from stdin when path
// is "-" or empty.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// parseFormats parses a comma-separated format string into a slice.
// If empty, defaults to ["text"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatText}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input (falling back to
// "tree" for stdin input). If output has a format extension, that extension
// is stripped. This is used when generating multiple files.
func basePath(output, input string) string {
	if output == "" {
		if input == "" || input == "-" {
			return "tree"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	for _, f := range []string{
		pipeline.FormatText, pipeline.FormatDOT, pipeline.FormatSVG,
		pipeline.FormatPNG, pipeline.FormatPDF, pipeline.FormatJSON,
		pipeline.FormatNewick, "txt",
	} {
		if ext == f {
			return strings.TrimSuffix(output, "."+ext)
		}
	}
	return output
}

// extension maps a format to its file extension.
func extension(format string) string {
	if format == pipeline.FormatText {
		return "txt"
	}
	return format
}
