package newick_test

import (
	"fmt"

	"github.com/matzehuels/cladegram/pkg/newick"
)

func Example() {
	tree, err := newick.Parse("((A:1,B:1):1,C:2):0;")
	if err != nil {
		panic(err)
	}

	fmt.Printf("leaves: %d, height: %g\n", tree.LeafCount(), tree.Height())
	fmt.Println(string(newick.Marshal(tree)))
	// Output:
	// leaves: 3, height: 2
	// ((A:1,B:1):1,C:2):0;
}

func ExampleParse_syntaxError() {
	_, err := newick.Parse("(A:1,B:1")
	fmt.Println(err)
	// Output:
	// newick: offset 9: expected ',' or ')' in descendant list, found end of input
}
