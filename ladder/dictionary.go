package ladder

import (
	"sort"
	"strings"
)

// Dictionary is an immutable set of distinct lowercase words.
//
// Words are kept in ascending lexicographic order, which is the order in which
// Search considers candidates. When several ladders of minimum length exist,
// this order decides which one is returned.
type Dictionary struct {
	words []string
	runes [][]rune // runes[i] is words[i] decoded once
	index map[string]int
}

// NewDictionary returns a dictionary made of the given words. Words are
// lowercased and trimmed; empty words and duplicates are ignored.
func NewDictionary(words []string) *Dictionary {
	index := make(map[string]int, len(words))
	unique := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := index[w]; ok {
			continue
		}
		index[w] = 0
		unique = append(unique, w)
	}
	sort.Strings(unique)

	d := &Dictionary{
		words: unique,
		runes: make([][]rune, len(unique)),
		index: index,
	}
	for i, w := range unique {
		d.index[w] = i
		d.runes[i] = []rune(w)
	}
	return d
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Contains returns true if word is in the dictionary. The lookup is case
// sensitive: the dictionary only holds lowercase words.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.index[word]
	return ok
}

// Index returns the position of word in the sorted dictionary.
func (d *Dictionary) Index(word string) (int, bool) {
	i, ok := d.index[word]
	return i, ok
}

// Word returns the word at position i.
func (d *Dictionary) Word(i int) string {
	return d.words[i]
}

// Words returns a copy of the words in ascending order.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.words...)
}
