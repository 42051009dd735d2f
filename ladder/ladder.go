// Package ladder finds shortest word ladders: sequences of dictionary words
// going from a start word to an end word where each word is one edit (a
// substitution, an insertion or a deletion of a character) away from the
// previous one.
package ladder

import (
	"strings"

	"github.com/rhartert/sparsesets"
)

// Outcome summarizes how a search ended.
type Outcome int8

const (
	OutcomeFound Outcome = iota
	OutcomeNotFound
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Stats reports what happened during a single call to Search.
type Stats struct {
	Outcome  Outcome
	Expanded int // partial ladders taken out of the queue
	Compared int // adjacency tests against unvisited dictionary words
	Enqueued int // partial ladders added to the queue
}

// Config controls a call to Search. The zero value is ready to use.
type Config struct {
	// Report receives the reason of rejected inputs. Rejections are silent if
	// Report is nil.
	Report Reporter

	// If not nil, Stats is overwritten with the statistics of the search.
	Stats *Stats
}

// Generate returns a shortest ladder from start to end. See Search.
func Generate(start string, end string, dict *Dictionary, report Reporter) []string {
	return Search(start, end, dict, Config{Report: report})
}

// Search returns a shortest word ladder from start to end using the words of
// dict, or nil if there is none.
//
// Both words are lowercased first. The start word does not have to be in the
// dictionary but the end word does: if it is missing, or if both words are the
// same, the problem is reported to cfg.Report and nil is returned.
//
// The search is breadth-first. Candidates are tried in dictionary order and a
// word is marked as visited as soon as it is queued, so the first ladder
// reaching the end word is returned.
func Search(start string, end string, dict *Dictionary, cfg Config) []string {
	ladder, st := search(start, end, dict, cfg.Report)
	if cfg.Stats != nil {
		*cfg.Stats = st
	}
	return ladder
}

// step is a partial ladder: its last word and the step it extends.
type step struct {
	word   int // index in the dictionary, -1 for the start word
	parent int // index of the previous step, -1 for the first one
}

func search(start string, end string, dict *Dictionary, report Reporter) ([]string, Stats) {
	st := Stats{Outcome: OutcomeRejected}

	first := strings.ToLower(start)
	last := strings.ToLower(end)
	if first == last {
		report.report(start, end, ErrSameWord)
		return nil, st
	}
	target, ok := dict.Index(last)
	if !ok {
		report.report(start, end, ErrNotInDictionary)
		return nil, st
	}

	firstRunes := []rune(first)
	visited := sparsesets.New(dict.Len())
	if i, ok := dict.Index(first); ok {
		visited.Insert(i)
	}

	// The steps slice is also the BFS queue: steps[head:] are still to be
	// expanded.
	steps := []step{{word: -1, parent: -1}}
	for head := 0; head < len(steps); head++ {
		st.Expanded++

		lastRunes := firstRunes
		if w := steps[head].word; w >= 0 {
			lastRunes = dict.runes[w]
		}

		for i, candidate := range dict.runes {
			if visited.Contains(i) {
				continue
			}
			st.Compared++
			if !adjacent(lastRunes, candidate) {
				continue
			}

			visited.Insert(i)
			steps = append(steps, step{word: i, parent: head})
			st.Enqueued++

			if i == target {
				st.Outcome = OutcomeFound
				return unwind(steps, len(steps)-1, first, dict), st
			}
		}
	}

	st.Outcome = OutcomeNotFound
	return nil, st
}

// unwind rebuilds the ladder ending at steps[s].
func unwind(steps []step, s int, first string, dict *Dictionary) []string {
	words := []string{}
	for ; s >= 0; s = steps[s].parent {
		if w := steps[s].word; w >= 0 {
			words = append(words, dict.Word(w))
		} else {
			words = append(words, first)
		}
	}
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return words
}

// IsLadder returns true if every pair of consecutive words in ladder are
// adjacent. Ladders with less than two words are not valid.
func IsLadder(ladder []string) bool {
	if len(ladder) < 2 {
		return false
	}
	for i := 1; i < len(ladder); i++ {
		if !IsAdjacent(ladder[i-1], ladder[i]) {
			return false
		}
	}
	return true
}
