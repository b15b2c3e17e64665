// Package suggest ranks known names by how closely they resemble a mistyped one.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum score a candidate needs to be suggested.
const threshold = 0.5

type scored struct {
	name  string
	score float64
}

// Closest returns up to n candidates that resemble target, best match first. Ties are broken
// alphabetically. Duplicate candidates are reported once.
func Closest(target string, candidates []string, n int) []string {
	if target == "" || n <= 0 {
		return []string{}
	}

	seen := make(map[string]bool, len(candidates))
	matches := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if seen[name] {
			continue
		}
		seen[name] = true
		if s := similarity(target, name); s > threshold {
			matches = append(matches, scored{name: name, score: s})
		}
	}

	slices.SortFunc(matches, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	out := make([]string, 0, min(n, len(matches)))
	for _, m := range matches[:min(n, len(matches))] {
		out = append(out, m.name)
	}
	return out
}

// similarity scores a against b in [0, 1]. Equal strings score 1 and a prefix of b scores 0.9;
// otherwise the score is one minus the edit distance over the longer length.
func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	switch {
	case a == b:
		return 1.0
	case strings.HasPrefix(b, a):
		return 0.9
	}
	longest := max(len(a), len(b))
	return 1.0 - float64(distance(a, b))/float64(longest)
}

// distance is the Levenshtein distance between a and b, computed over bytes with two rows.
func distance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
