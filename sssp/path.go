package sssp

import (
	"fmt"
	"strings"
)

// Path is a sequence of nodes from a source to a destination, both included.
// An empty Path means that the destination cannot be reached.
type Path []int

// ExtractPath returns the shortest path to node dst described by the dist and
// prev slices returned by Solve.
//
// The path is empty if dst is unreachable and contains dst alone if dst is the
// source. The slices must come from the same call to Solve; a predecessor
// chain that does not end at NoVertex results in undefined behavior.
func ExtractPath(dist []int, prev []int, dst int) Path {
	if dist[dst] == Infinity {
		return Path{}
	}
	if prev[dst] == NoVertex && dist[dst] == 0 {
		return Path{dst}
	}

	path := Path{}
	for at := dst; at != NoVertex; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Cost returns the sum of the weights of the cheapest edges between each pair
// of consecutive nodes in the path. It returns false if one of these pairs is
// not connected by an edge in g.
func (p Path) Cost(g *Digraph) (int, bool) {
	total := 0
	for i := 1; i < len(p); i++ {
		best, found := 0, false
		for _, edge := range g.Outgoing(p[i-1]) {
			if edge.To != p[i] {
				continue
			}
			if !found || edge.Weight < best {
				best, found = edge.Weight, true
			}
		}
		if !found {
			return 0, false
		}
		total += best
	}
	return total, true
}

// String returns a representation of the path as a sequence of nodes separated
// by " -> ". For example: "0 -> 2 -> 1 -> 3". The empty path is "<none>".
func (p Path) String() string {
	if len(p) == 0 {
		return "<none>"
	}
	sb := strings.Builder{}
	for i := 0; i < len(p)-1; i++ {
		sb.WriteString(fmt.Sprintf("%d -> ", p[i]))
	}
	sb.WriteString(fmt.Sprintf("%d", p[len(p)-1]))
	return sb.String()
}
