// Package suggest provides nearest-name matching for mistyped identifiers,
// used to build "did you mean" hints.
package suggest

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions and substitutions
// needed to turn one into the other.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Closest returns the candidate with the smallest edit distance from input.
// Earlier candidates win ties, so callers wanting determinism should pass a
// sorted slice. A candidate only qualifies when the distance is plausible
// for a typo; a wildly different name produces no suggestion.
func Closest(input string, candidates []string) (string, bool) {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := Distance(input, c)
		if bestDist < 0 || d < bestDist {
			best = c
			bestDist = d
		}
	}
	if bestDist < 0 || !plausible(input, bestDist) {
		return "", false
	}
	return best, true
}

// plausible reports whether dist is close enough to input's length to look
// like a typo rather than an unrelated name.
func plausible(input string, dist int) bool {
	if dist <= 2 {
		return true
	}
	return dist*2 <= len(input)
}
