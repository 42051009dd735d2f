// Package parser reads graphs and dictionaries from text files.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rhartert/pathfind/ladder"
	"github.com/rhartert/pathfind/sssp"
)

// ParseGraph reads the graph stored in the file at filepath. See ReadGraph
// for the expected format.
func ParseGraph(filepath string) (*sssp.Digraph, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("cannot open graph file: %w", err)
	}
	defer file.Close()

	g, err := ReadGraph(file)
	if err != nil {
		return nil, fmt.Errorf("invalid graph file %s: %w", filepath, err)
	}
	return g, nil
}

// ReadGraph reads a directed graph made of whitespace separated integers: the
// number of nodes n, the number of edges m, and then m triples "src dst
// weight" describing an edge from src to dst. Nodes must be in [0, n).
func ReadGraph(r io.Reader) (*sssp.Digraph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	nNodes, err := nextInt(scanner, "number of nodes")
	if err != nil {
		return nil, err
	}
	if nNodes < 0 {
		return nil, fmt.Errorf("invalid number of nodes: %d", nNodes)
	}
	nEdges, err := nextInt(scanner, "number of edges")
	if err != nil {
		return nil, err
	}
	if nEdges < 0 {
		return nil, fmt.Errorf("invalid number of edges: %d", nEdges)
	}

	edges := make([]sssp.Edge, 0, nEdges)
	for i := 0; i < nEdges; i++ {
		from, err := nextInt(scanner, "edge source")
		if err != nil {
			return nil, fmt.Errorf("invalid edge %d: %w", i, err)
		}
		to, err := nextInt(scanner, "edge destination")
		if err != nil {
			return nil, fmt.Errorf("invalid edge %d: %w", i, err)
		}
		w, err := nextInt(scanner, "edge weight")
		if err != nil {
			return nil, fmt.Errorf("invalid edge %d: %w", i, err)
		}
		if from < 0 || nNodes <= from || to < 0 || nNodes <= to {
			return nil, fmt.Errorf("invalid edge %d: node out of range [0, %d): %d -> %d", i, nNodes, from, to)
		}
		edges = append(edges, sssp.Edge{
			From:   from,
			To:     to,
			Weight: w,
		})
	}

	return sssp.NewDigraph(edges, nNodes), nil
}

func nextInt(scanner *bufio.Scanner, what string) (int, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("missing %s", what)
	}
	v, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", what, err)
	}
	return v, nil
}

// ParseDictionary reads the dictionary stored in the file at filepath. See
// ReadWords for the expected format.
func ParseDictionary(filepath string) (*ladder.Dictionary, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("cannot open dictionary file: %w", err)
	}
	defer file.Close()

	words, err := ReadWords(file)
	if err != nil {
		return nil, fmt.Errorf("invalid dictionary file %s: %w", filepath, err)
	}
	return ladder.NewDictionary(words), nil
}

// ReadWords returns the whitespace separated words of r in order of
// appearance. Words are returned as is; lowercasing and deduplication are left
// to ladder.NewDictionary.
func ReadWords(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	words := []string{}
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
