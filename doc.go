// Package quintet finds sets of five five-letter words that together use
// twenty-five distinct letters.
//
// What is a quintet?
//
//	Five words, each of five distinct letters, no letter shared between any
//	two of them. Only one letter of the alphabet is left over.
//
// How it works:
//
//	wordlist/     reads a dictionary, keeps five-letter words without repeats
//	letters/      26-bit letter sets and letter frequency tables
//	wordgraph/    compatibility graph: an edge joins two words with no common letter
//	clique/       enumerates 5-cliques by narrowing bitset neighbor frames
//	report/       writes results and frequencies as TSV, CSV or YAML
//	config/       YAML configuration for the CLI
//	cmd/quintet/  the command-line tool
//
// Quick example:
//
//	words, _ := wordlist.ReadFile("words.txt")
//	g, _ := wordgraph.Build(words.Words)
//	res, _ := clique.FindAll(g, clique.WithWorkers(0))
//	_ = report.WriteCliques(os.Stdout, res.Cliques, report.TSV)
//
// Complexity:
//
//	Building the graph compares every pair of words once: O(N²) mask tests.
//	The search visits each clique prefix once in increasing index order and
//	narrows candidates with word-wise AND over N-bit rows.
package quintet
