package clique_test

import (
	"fmt"

	"github.com/katalvlaran/quintet/clique"
	"github.com/katalvlaran/quintet/letters"
	"github.com/katalvlaran/quintet/wordgraph"
)

// ExampleFindAll finds the single quintet hidden among six words. "fjord"
// shares a letter with four of the others, so it is in no clique.
func ExampleFindAll() {
	var words []letters.Word
	for _, s := range []string{"abcde", "fghij", "fjord", "klmno", "pqrst", "uvwxy"} {
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

	res, err := clique.FindAll(g, clique.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range res.Cliques {
		fmt.Println(c.Words, c.Letters())
	}

	// Output:
	// [abcde fghij klmno pqrst uvwxy] abcdefghijklmnopqrstuvwxy
}

// ExampleFindFirst stops after the first quintet in index order.
func ExampleFindFirst() {
	var words []letters.Word
	for _, s := range []string{"vwxyz", "abcde", "fghij", "klmno", "pqrst", "uvwxy"} {
		w, _ := letters.NewWord(s)
		words = append(words, w)
	}
	g, _ := wordgraph.Build(words)

	c, ok, err := clique.FindFirst(g)
	fmt.Println(ok, err, c.Indices, c.Key())

	// Output:
	// true <nil> [0 1 2 3 4] abcde,fghij,klmno,pqrst,vwxyz
}
