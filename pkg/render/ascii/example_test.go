package ascii_test

import (
	"fmt"

	"github.com/matzehuels/cladegram/pkg/newick"
	"github.com/matzehuels/cladegram/pkg/render/ascii"
)

func ExampleRender() {
	tree, err := newick.Parse("((A:1,B:1):1,C:2):0;")
	if err != nil {
		panic(err)
	}

	lines, err := ascii.Render(tree, ascii.WithWidth(13))
	if err != nil {
		panic(err)
	}
	for _, line := range lines {
		fmt.Println(line)
	}
	// Output:
	// ⋅⋅⋅⋅⋅⋅/-----* A
	// +-----+-----* B
	// \-----------* C
}
