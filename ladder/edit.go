package ladder

// IsAdjacent returns true if a and b are exactly one edit apart, that is if
// one can be obtained from the other by substituting, inserting or deleting a
// single character. Characters are runes. A word is not adjacent to itself.
func IsAdjacent(a string, b string) bool {
	return adjacent([]rune(a), []rune(b))
}

func adjacent(a []rune, b []rune) bool {
	if len(a) < len(b) {
		a, b = b, a
	}
	switch len(a) - len(b) {
	case 0:
		return oneSubstitution(a, b)
	case 1:
		return oneInsertion(a, b)
	default:
		return false
	}
}

// oneSubstitution assumes that a and b have the same length.
func oneSubstitution(a []rune, b []rune) bool {
	diffs := 0
	for i := range a {
		if a[i] != b[i] {
			diffs++
			if diffs > 1 {
				return false
			}
		}
	}
	return diffs == 1
}

// oneInsertion assumes that longer has exactly one more rune than shorter.
func oneInsertion(longer []rune, shorter []rune) bool {
	i := 0
	for i < len(shorter) && longer[i] == shorter[i] {
		i++
	}
	// longer[i] is the inserted rune, everything after it must be shifted.
	for ; i < len(shorter); i++ {
		if longer[i+1] != shorter[i] {
			return false
		}
	}
	return true
}

// WithinEditDistance returns true if the Levenshtein distance between a and b
// is at most d. The computation stops as soon as every alignment of a prefix
// of a costs more than d.
func WithinEditDistance(a string, b string, d int) bool {
	if d < 0 {
		return false
	}
	ra, rb := []rune(a), []rune(b)
	if diff := len(ra) - len(rb); diff > d || -diff > d {
		return false
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len(rb); j++ {
			sub := prev[j-1]
			if ra[i-1] != rb[j-1] {
				sub++
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, sub)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > d {
			return false
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)] <= d
}
