package sssp

// Edge represents a weighted edge between two nodes in a directed graph.
type Edge struct {
	From   int
	To     int
	Weight int
}

// Digraph represents a weighted directed graph whose nodes are identified by
// their index in [0, NumNodes()).
type Digraph struct {
	// Nexts[u] holds the indices (in Edges) of the edges leaving node u, in
	// the order they were given to NewDigraph.
	Nexts [][]int
	Edges []Edge
}

// NewDigraph creates a new directed graph with the specified edges and number
// of nodes. It is important to ensure that edges are only between nodes within
// the range [0, nNodes); otherwise, the function will panic.
func NewDigraph(edges []Edge, nNodes int) *Digraph {
	dg := &Digraph{
		Nexts: make([][]int, nNodes),
		Edges: make([]Edge, len(edges)),
	}
	for i, e := range edges {
		dg.Edges[i] = e
		dg.Nexts[e.From] = append(dg.Nexts[e.From], i)
	}
	return dg
}

// NumNodes returns the number of nodes in the graph.
func (dg *Digraph) NumNodes() int {
	return len(dg.Nexts)
}

// Outgoing returns the edges leaving node u in insertion order.
func (dg *Digraph) Outgoing(u int) []Edge {
	out := make([]Edge, len(dg.Nexts[u]))
	for i, e := range dg.Nexts[u] {
		out[i] = dg.Edges[e]
	}
	return out
}
