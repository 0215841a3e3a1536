package newick

import (
	"bytes"
	"strings"
	"testing"
)

func TestMarshalExample(t *testing.T) {
	tr, err := Parse("((A:1,B:1):1,C:2):0;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := string(Marshal(tr))
	want := "((A:1,B:1):1,C:2):0;"
	if got != want {
		t.Errorf("Marshal = %q, want %q", got, want)
	}
}

func TestMarshalQuoting(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"'my taxon':1;", "'my taxon':0;"},
		{`"it's fine":1;`, `"it's fine":0;`},
		{"plain:1;", "plain:0;"},
		{"'A-B':1;", "'A-B':0;"},
		{"'sp.nov':1;", "'sp.nov':0;"},
		{"'x/y':1;", "'x/y':0;"},
	}
	for _, c := range cases {
		tr, err := Parse(c.src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.src, err)
		}
		if got := string(Marshal(tr)); got != c.want {
			t.Errorf("Marshal(%q) = %q, want %q", c.src, got, c.want)
		}
	}
}

func TestMarshalAnnotationsSorted(t *testing.T) {
	tr, err := Parse("A[&z=1,a=2,m=3]:0;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := string(Marshal(tr))
	want := "A[&a=2,m=3,z=1]:0;"
	if got != want {
		t.Errorf("Marshal = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"((A:1,B:1):1,C:2):0;",
		"((A:1,B:2):1,C:1):0;",
		"(((a:0.5,b:0.5):0.25,c:1):2,(d:1.5,e:0.5):1.5):0;",
		"(A[&rate=0.5]:1,'b c':1)root:0;",
		"'A-B':1;",
		"('sp.nov':1,('a.b-c':0.5,d:0.5):0.5):0;",
		"A:0;",
	}
	for _, src := range sources {
		first, err := Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q): %v", src, err)
		}
		second, err := Parse(string(Marshal(first)))
		if err != nil {
			t.Fatalf("reparse of %q: %v", src, err)
		}

		if first.NodeCount() != second.NodeCount() || first.LeafCount() != second.LeafCount() {
			t.Errorf("%q: round trip changed shape", src)
			continue
		}
		a, b := first.Nodes(), second.Nodes()
		for i := range a {
			if a[i].Label != b[i].Label {
				t.Errorf("%q: node %d label %q != %q", src, i+1, a[i].Label, b[i].Label)
			}
			if !almostEqual(a[i].Age, b[i].Age) {
				t.Errorf("%q: node %d age %v != %v", src, i+1, a[i].Age, b[i].Age)
			}
			if len(a[i].Annotations) != len(b[i].Annotations) {
				t.Errorf("%q: node %d annotation count changed", src, i+1)
			}
		}
	}
}

func TestWrite(t *testing.T) {
	tr, err := Parse("(A:1,B:1):0;")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(tr, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.HasSuffix(buf.String(), ";\n") {
		t.Errorf("Write output %q should end with ';\\n'", buf.String())
	}
}
