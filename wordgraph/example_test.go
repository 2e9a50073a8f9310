package wordgraph_test

import (
	"fmt"

	"github.com/katalvlaran/quintet/letters"
	"github.com/katalvlaran/quintet/wordgraph"
)

// ExampleBuild builds the graph of three words where only the first two
// are letter-disjoint:
//
//	abcde ─── fghij      aghij
func ExampleBuild() {
	var words []letters.Word
	for _, s := range []string{"abcde", "fghij", "aghij"} {
		w, err := letters.NewWord(s)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		words = append(words, w)
	}

	g, err := wordgraph.Build(words)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("vertices:", g.Order(), "edges:", g.EdgeCount())
	for i := 0; i < g.Order(); i++ {
		fmt.Println(g.Word(i), g.Neighbors(i))
	}

	// Output:
	// vertices: 3 edges: 1
	// abcde [1]
	// fghij [0]
	// aghij []
}
