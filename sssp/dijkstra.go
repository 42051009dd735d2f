// Package sssp computes single-source shortest paths on weighted directed
// graphs with Dijkstra's algorithm.
//
// Distances are only guaranteed to be exact when all edge weights are
// non-negative. Negative weights are accepted but not checked: a node is never
// relaxed again once it has been extracted from the frontier, so a negative
// edge discovered late does not propagate.
package sssp

import (
	"math"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"
)

// Infinity is the distance of nodes that cannot be reached from the source.
const Infinity = math.MaxInt

// NoVertex is the predecessor of the source and of unreachable nodes.
const NoVertex = -1

// Frontier selects the priority queue used to order nodes by tentative
// distance.
type Frontier int8

const (
	// LazyFrontier inserts a node again each time its distance improves and
	// skips the outdated entries when they are extracted.
	LazyFrontier Frontier = iota

	// IndexedFrontier keeps at most one entry per node and decreases its key
	// in place.
	IndexedFrontier
)

func (f Frontier) String() string {
	switch f {
	case LazyFrontier:
		return "lazy"
	case IndexedFrontier:
		return "indexed"
	default:
		return "unknown"
	}
}

// Stats reports what happened during a single call to Solve.
type Stats struct {
	Pushes      int // entries inserted in the frontier
	Pops        int // entries extracted from the frontier
	StalePops   int // extracted entries of nodes that were already settled
	Relaxations int // edges that improved a tentative distance
	Reached     int // nodes settled, source included
}

// Config controls a call to Solve. The zero value is ready to use.
type Config struct {
	Frontier Frontier

	// If not nil, Stats is overwritten with the statistics of the run.
	Stats *Stats
}

// ShortestPaths computes the shortest distance from node src to every node of
// g using a lazy frontier. See Solve.
func ShortestPaths(g *Digraph, src int) ([]int, []int) {
	return Solve(g, src, Config{})
}

// Solve computes the shortest distance from node src to every node of g.
//
// It returns two slices of size g.NumNodes(): dist[v] is the cost of the
// shortest path from src to v (Infinity if v is unreachable) and prev[v] is
// the node preceding v on that path (NoVertex for src and unreachable nodes).
// Node src must be in [0, g.NumNodes()); otherwise the function panics. The
// graph is not modified.
func Solve(g *Digraph, src int, cfg Config) ([]int, []int) {
	nNodes := g.NumNodes()

	dist := make([]int, nNodes)
	prev := make([]int, nNodes)
	for i := range dist {
		dist[i] = Infinity
		prev[i] = NoVertex
	}

	st := Stats{}
	settled := sparsesets.New(nNodes)
	f := newFrontier(cfg.Frontier, g)

	dist[src] = 0
	f.push(src, 0)
	st.Pushes++

	for f.size() > 0 {
		u := f.pop()
		st.Pops++

		// Outdated entry of a node whose distance is already final.
		if settled.Contains(u) {
			st.StalePops++
			continue
		}
		settled.Insert(u)

		for _, e := range g.Nexts[u] {
			v := g.Edges[e].To
			if settled.Contains(v) {
				continue
			}

			newDist := dist[u] + g.Edges[e].Weight
			if dist[v] <= newDist {
				continue
			}

			dist[v] = newDist
			prev[v] = u
			f.push(v, newDist)
			st.Relaxations++
			st.Pushes++
		}
	}

	st.Reached = len(settled.Content())
	if cfg.Stats != nil {
		*cfg.Stats = st
	}

	return dist, prev
}

// frontier is a min-priority queue of nodes keyed by tentative distance.
type frontier interface {
	push(node int, dist int)
	pop() int
	size() int
}

func newFrontier(kind Frontier, g *Digraph) frontier {
	if kind == IndexedFrontier {
		return &indexedFrontier{heap: yagh.New[int](g.NumNodes())}
	}
	// Each edge is relaxed at most once (when its origin is settled) so the
	// frontier never holds more than len(g.Edges)+1 entries.
	return &lazyFrontier{
		heap:  yagh.New[int](len(g.Edges) + 1),
		nodes: make([]int, 0, len(g.Edges)+1),
	}
}

// lazyFrontier gives each inserted entry its own slot in the heap so that the
// same node can be present several times with different distances.
type lazyFrontier struct {
	heap  *yagh.IntMap[int]
	nodes []int // node of each entry, indexed by entry
}

func (lf *lazyFrontier) push(node int, dist int) {
	entry := len(lf.nodes)
	lf.nodes = append(lf.nodes, node)
	lf.heap.Put(entry, dist)
}

func (lf *lazyFrontier) pop() int {
	return lf.nodes[lf.heap.Pop().Elem]
}

func (lf *lazyFrontier) size() int {
	return lf.heap.Size()
}

// indexedFrontier uses the nodes themselves as heap elements. Putting a node
// that is already in the heap updates its distance.
type indexedFrontier struct {
	heap *yagh.IntMap[int]
}

func (xf *indexedFrontier) push(node int, dist int) {
	xf.heap.Put(node, dist)
}

func (xf *indexedFrontier) pop() int {
	return xf.heap.Pop().Elem
}

func (xf *indexedFrontier) size() int {
	return xf.heap.Size()
}
