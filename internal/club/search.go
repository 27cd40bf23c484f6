package club

import (
	"sort"
	"strings"
	"unicode"
)

const (
	minMatchConfidence = 0.4
	maxMatches         = 5
)

// MatchPlayers scores players against a free-text name query and returns
// the plausible ones, best first. An exact name match scores 1.
func MatchPlayers(query string, players []Player) []PlayerMatch {
	q := normalizeName(query)
	if q == "" {
		return nil
	}

	var matches []PlayerMatch
	for _, p := range players {
		score := nameSimilarity(q, normalizeName(p.Name))
		if score >= minMatchConfidence {
			matches = append(matches, PlayerMatch{Player: p, Confidence: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Confidence != matches[j].Confidence {
			return matches[i].Confidence > matches[j].Confidence
		}
		return matches[i].Player.ID < matches[j].Player.ID
	})
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}

func nameSimilarity(query, name string) float64 {
	if query == name {
		return 1
	}
	// "jordan" should find "michael jordan"
	if coversTokens(query, name) {
		return 0.9
	}
	return (stringSimilarity(query, name) + tokenSimilarity(query, name)) / 2
}

// normalizeName lowercases, drops everything but letters, digits and
// spaces, and collapses whitespace.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func coversTokens(query, name string) bool {
	nameTokens := strings.Fields(name)
	for _, qt := range strings.Fields(query) {
		found := false
		for _, nt := range nameTokens {
			if qt == nt {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func stringSimilarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

// tokenSimilarity is the share of tokens with a near match on the other side.
func tokenSimilarity(a, b string) float64 {
	ta, tb := strings.Fields(a), strings.Fields(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	matched := 0
	for _, x := range ta {
		for _, y := range tb {
			if stringSimilarity(x, y) > 0.8 {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(max(len(ta), len(tb)))
}

func levenshtein(a, b []rune) int {
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
