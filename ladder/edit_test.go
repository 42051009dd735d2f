package ladder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdjacent(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"cat", "cot", true},
		{"cat", "cats", true},
		{"cat", "dog", false},
		{"cat", "cat", false},
		{"", "", false},
		{"", "a", true},
		{"a", "b", true},
		{"ab", "", false},
		{"cat", "scat", true},  // insertion at the start
		{"cat", "cact", true},  // insertion in the middle
		{"cat", "cata", true},  // insertion at the end
		{"cat", "at", true},    // deletion at the start
		{"cat", "ca", true},    // deletion at the end
		{"cat", "bat", true},   // substitution at the start
		{"cat", "cab", true},   // substitution at the end
		{"cat", "cast", true},  // insertion before the last letter
		{"cat", "acts", false}, // two edits
		{"cat", "tac", false},
		{"cat", "ct", true},
		{"cat", "c", false},
		{"cat", "catss", false},
		{"abc", "bca", false},
		{"aab", "abb", true},
		{"heat", "hat", true},
		{"heat", "eat", true},
		{"chat", "cheat", true},
		{"car", "chat", false},
		{"café", "cafe", true},
		{"café", "cafés", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAdjacent(tt.a, tt.b), "IsAdjacent(%q, %q)", tt.a, tt.b)
			assert.Equal(t, tt.want, IsAdjacent(tt.b, tt.a), "IsAdjacent(%q, %q)", tt.b, tt.a)
		})
	}
}

func TestWithinEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		d    int
		want bool
	}{
		{"cat", "cat", 0, true},
		{"cat", "cot", 0, false},
		{"cat", "cot", 1, true},
		{"kitten", "sitting", 2, false},
		{"kitten", "sitting", 3, true},
		{"flaw", "lawn", 1, false},
		{"flaw", "lawn", 2, true},
		{"", "abc", 2, false},
		{"", "abc", 3, true},
		{"abc", "abc", -1, false},
		{"sleep", "slept", 1, false},
		{"sleep", "slept", 2, true},
		{"sleep", "awake", 4, false},
		{"sleep", "awake", 5, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WithinEditDistance(tt.a, tt.b, tt.d), "WithinEditDistance(%q, %q, %d)", tt.a, tt.b, tt.d)
		assert.Equal(t, tt.want, WithinEditDistance(tt.b, tt.a, tt.d), "WithinEditDistance(%q, %q, %d)", tt.b, tt.a, tt.d)
	}
}

// allWords returns every word of length at most n over the alphabet.
func allWords(alphabet string, n int) []string {
	words := []string{""}
	level := []string{""}
	for i := 0; i < n; i++ {
		next := []string{}
		for _, w := range level {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		words = append(words, next...)
		level = next
	}
	return words
}

func TestIsAdjacent_agreesWithEditDistance(t *testing.T) {
	words := allWords("abc", 4)

	for _, a := range words {
		for _, b := range words {
			want := a != b && WithinEditDistance(a, b, 1)
			if got := IsAdjacent(a, b); got != want {
				t.Fatalf("IsAdjacent(%q, %q): want %t, got %t", a, b, want, got)
			}
			if IsAdjacent(a, b) != IsAdjacent(b, a) {
				t.Fatalf("IsAdjacent(%q, %q) is not symmetric", a, b)
			}
		}
	}
}
