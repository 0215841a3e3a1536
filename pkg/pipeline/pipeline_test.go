package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/cladegram/pkg/cache"
)

const sample = "((A:1,B:1):1,C:2):0;"

func TestExecuteText(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Newick:  sample,
		Formats: []string{FormatText},
		Width:   13,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Stats.LeafCount != 3 {
		t.Errorf("LeafCount = %d, want 3", result.Stats.LeafCount)
	}
	if result.Stats.NodeCount != 5 {
		t.Errorf("NodeCount = %d, want 5", result.Stats.NodeCount)
	}
	if result.Stats.Height != 2 {
		t.Errorf("Height = %g, want 2", result.Stats.Height)
	}
	if result.TreeHash == "" {
		t.Error("TreeHash is empty")
	}

	text := string(result.Artifacts[FormatText])
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), text)
	}
	for _, label := range []string{"A", "B", "C"} {
		if !strings.Contains(text, label) {
			t.Errorf("output missing label %s:\n%s", label, text)
		}
	}
}

func TestExecuteMultipleFormats(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Newick:  sample,
		Formats: []string{FormatText, FormatNewick, FormatJSON, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(result.Artifacts) != 4 {
		t.Fatalf("got %d artifacts, want 4", len(result.Artifacts))
	}
	if got := strings.TrimSpace(string(result.Artifacts[FormatNewick])); got != sample {
		t.Errorf("nwk artifact = %q, want %q", got, sample)
	}
	if !strings.Contains(string(result.Artifacts[FormatJSON]), `"nodes"`) {
		t.Error("json artifact missing nodes array")
	}
	if !strings.Contains(string(result.Artifacts[FormatDOT]), "digraph") {
		t.Error("dot artifact missing digraph header")
	}
}

func TestExecuteLadderize(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Newick:    sample,
		Formats:   []string{FormatNewick},
		Ladderize: LadderizeAscending,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// Ascending puts the single leaf C before the two-leaf clade.
	want := "(C:2,(A:1,B:1):1):0;"
	if got := strings.TrimSpace(string(result.Artifacts[FormatNewick])); got != want {
		t.Errorf("ladderized = %q, want %q", got, want)
	}
}

func TestExecuteCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil)
	defer runner.Close()

	opts := Options{Newick: sample, Formats: []string{FormatText}}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute failed: %v", err)
	}
	if first.CacheInfo.ParseHit || first.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if !second.CacheInfo.ParseHit {
		t.Error("second run should hit the parse cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the render cache")
	}
	if string(first.Artifacts[FormatText]) != string(second.Artifacts[FormatText]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	// Refresh bypasses the cache.
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("refresh Execute failed: %v", err)
	}
	if third.CacheInfo.ParseHit || third.CacheInfo.RenderHit {
		t.Error("refresh run should bypass the cache")
	}
}

func TestExecuteValidation(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil)
	defer runner.Close()

	cases := []struct {
		name string
		opts Options
	}{
		{"empty newick", Options{}},
		{"bad format", Options{Newick: sample, Formats: []string{"gif"}}},
		{"width too small", Options{Newick: sample, Width: 1}},
		{"bad ladderize", Options{Newick: sample, Ladderize: "sideways"}},
		{"syntax error", Options{Newick: "((A:1,B:1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := runner.Execute(context.Background(), tc.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTransformLeavesOriginal(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil)
	defer runner.Close()

	tree, err := runner.Parse(context.Background(), Options{Newick: sample})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sorted := runner.Transform(tree, Options{Ladderize: LadderizeAscending})
	if sorted == tree {
		t.Error("Transform should return a copy when sorting")
	}
	if runner.Transform(tree, Options{}) != tree {
		t.Error("Transform without ladderize should return the input")
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Newick: sample}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults failed: %v", err)
	}
	if opts.Width != DefaultWidth {
		t.Errorf("Width = %d, want %d", opts.Width, DefaultWidth)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatText {
		t.Errorf("Formats = %v, want [text]", opts.Formats)
	}
	// Idempotent.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call failed: %v", err)
	}
}
