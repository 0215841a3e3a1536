package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/cladegram/pkg/newick"
)

func TestToDOT(t *testing.T) {
	tree, err := newick.Parse("((A:1,B:1):1,C:2):0;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	dot := ToDOT(tree, Options{})

	if !strings.HasPrefix(dot, "digraph timetree {") {
		t.Errorf("DOT should open a digraph, got %q", dot[:30])
	}
	for _, label := range []string{`label="A"`, `label="B"`, `label="C"`} {
		if !strings.Contains(dot, label) {
			t.Errorf("DOT missing leaf %s", label)
		}
	}
	// 5 nodes, 4 edges.
	if got := strings.Count(dot, "->"); got != 4 {
		t.Errorf("DOT has %d edges, want 4", got)
	}
	if !strings.Contains(dot, "rankdir=LR") {
		t.Error("DOT should lay out left to right")
	}
}

func TestToDOTShowAges(t *testing.T) {
	tree, err := newick.Parse("((A:1,B:1):1,C:2):0;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	dot := ToDOT(tree, Options{ShowAges: true})

	// Edge from root to C has branch length 2.
	if !strings.Contains(dot, `[label="2"]`) {
		t.Errorf("DOT should label edges with branch lengths:\n%s", dot)
	}
	if strings.Contains(dot, "shape=point") {
		t.Error("internal nodes should show ages, not points")
	}
}

func TestToDOTAnnotations(t *testing.T) {
	tree, err := newick.Parse("(A[&rate=0.5]:1,B:1):0;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	plain := ToDOT(tree, Options{})
	if strings.Contains(plain, "rate=0.5") {
		t.Error("annotations should be hidden by default")
	}

	annotated := ToDOT(tree, Options{ShowAnnotations: true})
	if !strings.Contains(annotated, "rate=0.5") {
		t.Error("ShowAnnotations should surface annotations in labels")
	}
}

func TestToDOTDeterministic(t *testing.T) {
	tree, err := newick.Parse("(A[&b=2,a=1]:1,B:1):0;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	first := ToDOT(tree, Options{ShowAnnotations: true})
	second := ToDOT(tree, Options{ShowAnnotations: true})
	if first != second {
		t.Error("DOT output must be deterministic")
	}
}
