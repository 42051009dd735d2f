package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rhartert/pathfind/ladder"
	"github.com/rhartert/pathfind/parser"
)

func (a *app) dictionary(cmd *cobra.Command, flagValue string) (*ladder.Dictionary, error) {
	path := a.cfg.Ladder.Dictionary
	if cmd.Flags().Changed("dict") {
		path = flagValue
	}
	if path == "" {
		return nil, fmt.Errorf("missing dictionary file")
	}
	dict, err := parser.ParseDictionary(path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("dictionary loaded", "file", path, "words", dict.Len())
	return dict, nil
}

// search runs a ladder search, reporting rejections on the logger and the
// statistics to the collector.
func (a *app) search(start string, end string, dict *ladder.Dictionary) []string {
	st := ladder.Stats{}
	words := ladder.Search(start, end, dict, ladder.Config{
		Report: ladder.LogReporter(a.logger),
		Stats:  &st,
	})
	a.collector.ObserveLadder(st, len(words))
	a.logger.Debug("ladder search done",
		"start", start,
		"end", end,
		"outcome", st.Outcome.String(),
		"expanded", st.Expanded,
	)
	return words
}

func newLadderCmd(a *app) *cobra.Command {
	var dictFile string

	cmd := &cobra.Command{
		Use:   "ladder START END",
		Short: "Print a shortest word ladder between two words",
		Args:  cobra.ExactArgs(2),
		RunE: a.withMetrics(func(cmd *cobra.Command, args []string) error {
			dict, err := a.dictionary(cmd, dictFile)
			if err != nil {
				return err
			}
			printLadder(cmd.OutOrStdout(), a.search(args[0], args[1], dict))
			return nil
		}),
	}

	cmd.Flags().StringVar(&dictFile, "dict", "", "path to the dictionary file")

	return cmd
}

func printLadder(w io.Writer, words []string) {
	if len(words) == 0 {
		fmt.Fprintln(w, "No word ladder found.")
		return
	}
	fmt.Fprintln(w, strings.Join(words, " "))
}
