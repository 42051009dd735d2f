package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rhartert/pathfind/parser"
	"github.com/rhartert/pathfind/sssp"
)

func newDijkstraCmd(a *app) *cobra.Command {
	var (
		graphFile string
		source    int
		frontier  string
	)

	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Print the shortest path from a source vertex to every vertex of a graph",
		Args:  cobra.NoArgs,
		RunE: a.withMetrics(func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Graph
			if cmd.Flags().Changed("graph") {
				cfg.File = graphFile
			}
			if cmd.Flags().Changed("source") {
				cfg.Source = source
			}
			if cmd.Flags().Changed("frontier") {
				cfg.Frontier = frontier
			}
			if cfg.File == "" {
				return fmt.Errorf("missing graph file")
			}
			kind, err := cfg.FrontierKind()
			if err != nil {
				return err
			}

			g, err := parser.ParseGraph(cfg.File)
			if err != nil {
				return err
			}
			if cfg.Source < 0 || g.NumNodes() <= cfg.Source {
				return fmt.Errorf("source %d is not in the graph (%d vertices)", cfg.Source, g.NumNodes())
			}
			a.logger.Debug("graph loaded", "file", cfg.File, "vertices", g.NumNodes(), "edges", len(g.Edges))

			st := sssp.Stats{}
			dist, prev := sssp.Solve(g, cfg.Source, sssp.Config{Frontier: kind, Stats: &st})
			a.collector.ObserveShortestPaths(kind, st)
			a.logger.Debug("shortest paths computed",
				"source", cfg.Source,
				"frontier", kind.String(),
				"reached", st.Reached,
				"stale_pops", st.StalePops,
			)

			printShortestPaths(cmd.OutOrStdout(), cfg.Source, dist, prev)
			return nil
		}),
	}

	cmd.Flags().StringVar(&graphFile, "graph", "", "path to the graph file")
	cmd.Flags().IntVar(&source, "source", 0, "source vertex")
	cmd.Flags().StringVar(&frontier, "frontier", "lazy", "priority frontier (lazy, indexed)")

	return cmd
}

func printShortestPaths(w io.Writer, src int, dist []int, prev []int) {
	fmt.Fprintf(w, "Shortest paths from vertex %d:\n", src)
	for v := range dist {
		printPath(w, sssp.ExtractPath(dist, prev, v), dist[v])
	}
}

// printPath prints the nodes of the path separated by spaces followed by its
// total cost. Unreachable nodes have an empty path and an "inf" cost.
func printPath(w io.Writer, path sssp.Path, total int) {
	for _, v := range path {
		fmt.Fprintf(w, "%d ", v)
	}
	fmt.Fprintln(w)
	if total == sssp.Infinity {
		fmt.Fprintln(w, "Total cost is inf")
		return
	}
	fmt.Fprintf(w, "Total cost is %d\n", total)
}
