// Package suggest ranks known names by their similarity to a misspelled one.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultThreshold is the minimum score Closest accepts.
const DefaultThreshold = 0.5

// Levenshtein computes the edit distance between a and b: the minimum number
// of single-byte insertions, deletions or substitutions turning one into the
// other.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	// Keep a the shorter string; only two rows of len(a)+1 are needed.
	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Normalize lowercases s and strips '-', '_' and spaces, so "Push_Front" and
// "push-front" compare equal.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}

		return r
	}, strings.ToLower(s))
}

// Score returns the similarity of the normalized forms of a and b, from 0 for
// nothing in common to 1 for identical.
func Score(a, b string) float64 {
	a, b = Normalize(a), Normalize(b)
	if a == b {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(max(len(a), len(b)))
}

// Closest returns the candidates scoring at least threshold against name,
// best first. Ties keep candidate order.
func Closest(name string, candidates []string, threshold float64) []string {
	type scored struct {
		name  string
		score float64
	}

	var hits []scored

	for _, c := range candidates {
		if s := Score(name, c); s >= threshold {
			hits = append(hits, scored{c, s})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}

	return out
}
