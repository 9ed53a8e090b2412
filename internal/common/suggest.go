package common

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// EditDistance is the Levenshtein distance between a and b counted in runes,
// ignoring case.
func EditDistance(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// two rows of the matrix, the shorter string across
	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// minAbbrev is the shortest name tried as an abbreviation of a candidate.
const minAbbrev = 3

// Closest returns the candidate nearest to name when it is a likely typo,
// at most a third of the longer string differing, or else an abbreviation:
// a candidate holding the letters of name in order, ignoring case.
func Closest(name string, candidates []string) (string, bool) {
	best, bestDist := "", -1

	for _, c := range candidates {
		d := EditDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}

	if bestDist == 0 {
		return "", false
	}

	longest := max(utf8.RuneCountInString(name), utf8.RuneCountInString(best))
	if bestDist > 0 && bestDist*3 <= longest {
		return best, true
	}

	if utf8.RuneCountInString(name) < minAbbrev {
		return "", false
	}

	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) == 0 {
		return "", false
	}

	sort.Stable(ranks)

	return ranks[0].Target, true
}
