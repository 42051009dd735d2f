package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// verifyCases are known ladder lengths for a standard English dictionary.
var verifyCases = []struct {
	start, end string
	length     int
}{
	{"cat", "dog", 4},
	{"marty", "curls", 6},
	{"code", "data", 6},
	{"work", "play", 6},
	{"sleep", "awake", 8},
	{"car", "cheat", 4},
}

func newVerifyCmd(a *app) *cobra.Command {
	var dictFile string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check ladder lengths against known answers for an English dictionary",
		Args:  cobra.NoArgs,
		RunE: a.withMetrics(func(cmd *cobra.Command, args []string) error {
			dict, err := a.dictionary(cmd, dictFile)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			failed := 0
			for _, vc := range verifyCases {
				got := len(a.search(vc.start, vc.end, dict))
				status := "passed"
				if got != vc.length {
					status = "failed"
					failed++
				}
				fmt.Fprintf(w, "%s -> %s: want %d words, got %d: %s\n", vc.start, vc.end, vc.length, got, status)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(verifyCases))
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&dictFile, "dict", "", "path to the dictionary file")

	return cmd
}
