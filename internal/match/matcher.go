// Package match resolves a free-text candidate against a reference list
// using a token-set similarity score, with a substring fallback for when no
// similarity backend is configured.
package match

import (
	"strings"
	"unicode"
)

// SubstringScore is the fixed nominal score the fallback scorer assigns to
// a bidirectional substring hit.
const SubstringScore = 80

// Scorer computes a similarity score between two strings, scaled 0-100
type Scorer interface {
	// Name returns the scorer name
	Name() string

	// Score compares candidate and reference. Empty input scores 0.
	Score(candidate, reference string) float64
}

// NewScorer creates a scorer by name. Unknown names fall back to the
// token-set scorer.
func NewScorer(name string) Scorer {
	if strings.ToLower(name) == "substring" {
		return SubstringScorer{}
	}
	return TokenSetScorer{}
}

// Result is the best reference found for a candidate
type Result struct {
	Value string  // The matched reference string
	Index int     // Its position in the reference list
	Score float64 // Similarity score 0-100
}

// Matcher scores a candidate against every reference and keeps the best
type Matcher struct {
	scorer    Scorer
	threshold float64
}

// New creates a matcher. A nil scorer degrades to the substring fallback,
// which is a real runtime path, not a hypothetical.
func New(scorer Scorer, threshold float64) *Matcher {
	if scorer == nil {
		scorer = SubstringScorer{}
	}
	return &Matcher{scorer: scorer, threshold: threshold}
}

// Best returns the single highest-scoring reference at or above the
// threshold, or nil when nothing clears it. Ties among equal top scores
// break by reference-list order: the earlier entry wins.
func (m *Matcher) Best(candidate string, references []string) *Result {
	var best *Result
	for i, ref := range references {
		score := m.scorer.Score(candidate, ref)
		if score < m.threshold {
			continue
		}
		if best == nil || score > best.Score {
			best = &Result{Value: ref, Index: i, Score: score}
		}
	}
	return best
}

// TokenSetScorer scores by word-set overlap, insensitive to token order and
// duplication: the shared tokens are compared against each full token set
// and the best pairwise ratio wins. A candidate whose tokens are a subset of
// the reference scores 100.
type TokenSetScorer struct{}

// Name returns the scorer name
func (TokenSetScorer) Name() string { return "token_set" }

// Score compares candidate and reference
func (TokenSetScorer) Score(candidate, reference string) float64 {
	ta := tokenSet(candidate)
	tb := tokenSet(reference)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	inter, onlyA, onlyB := partition(ta, tb)

	joined := strings.Join(inter, " ")
	full1 := strings.TrimSpace(joined + " " + strings.Join(onlyA, " "))
	full2 := strings.TrimSpace(joined + " " + strings.Join(onlyB, " "))

	best := ratio(full1, full2)
	if len(inter) > 0 {
		if r := ratio(joined, full1); r > best {
			best = r
		}
		if r := ratio(joined, full2); r > best {
			best = r
		}
	}
	return best
}

// SubstringScorer is the degraded backend: case-insensitive bidirectional
// containment with a fixed nominal score.
type SubstringScorer struct{}

// Name returns the scorer name
func (SubstringScorer) Name() string { return "substring" }

// Score compares candidate and reference
func (SubstringScorer) Score(candidate, reference string) float64 {
	a := strings.ToLower(strings.TrimSpace(candidate))
	b := strings.ToLower(strings.TrimSpace(reference))
	if a == "" || b == "" {
		return 0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return SubstringScore
	}
	return 0
}

// tokenSet lowercases, strips non-alphanumeric runes, and returns the
// sorted unique tokens.
func tokenSet(s string) []string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)

	seen := make(map[string]bool)
	var tokens []string
	for _, w := range strings.Fields(mapped) {
		if !seen[w] {
			seen[w] = true
			tokens = append(tokens, w)
		}
	}
	sortTokens(tokens)
	return tokens
}

func sortTokens(tokens []string) {
	for i := 1; i < len(tokens); i++ {
		for j := i; j > 0 && tokens[j] < tokens[j-1]; j-- {
			tokens[j], tokens[j-1] = tokens[j-1], tokens[j]
		}
	}
}

// partition splits two sorted token sets into intersection and remainders.
func partition(a, b []string) (inter, onlyA, onlyB []string) {
	inB := make(map[string]bool, len(b))
	for _, t := range b {
		inB[t] = true
	}
	inA := make(map[string]bool, len(a))
	for _, t := range a {
		inA[t] = true
	}

	for _, t := range a {
		if inB[t] {
			inter = append(inter, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for _, t := range b {
		if !inA[t] {
			onlyB = append(onlyB, t)
		}
	}
	return inter, onlyA, onlyB
}

// ratio is a normalized Levenshtein similarity scaled 0-100.
func ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 0
	}
	ra := []rune(a)
	rb := []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	dist := levenshtein(ra, rb)
	return (1 - float64(dist)/float64(longest)) * 100
}

func levenshtein(a, b []rune) int {
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
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
