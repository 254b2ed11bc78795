// Package title provides title normalization and the lexical similarity
// primitives the bot uses to decide whether a parody post is about a
// source post: word-level edit distance, unique-word overlap, and the
// certainty score combining them.
package title

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ShortTitleMaxTokens is the token count at or below which Certainty
// drops the overlap multiplier. On very short titles the overlap ratio
// is too coarse a signal and would dominate the score.
const ShortTitleMaxTokens = 3

// Normalize canonicalizes a raw title into a comparable token sequence:
// lowercase, accents folded, punctuation stripped, split on whitespace.
// No stemming, no stop-word removal. An empty title yields an empty
// sequence.
func Normalize(raw string) []string {
	s := strings.ToLower(raw)
	s = removeAccents(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.Fields(b.String())
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// Distance returns the Levenshtein edit distance between two token
// sequences, treating each word as an atomic symbol. Insertions,
// deletions, and substitutions all cost 1; equal words carry the
// diagonal forward at no cost. O(|a|·|b|) time and space, fine for
// titles of tens of words.
func Distance(a, b []string) int {
	m := make([][]int, len(a)+1)
	for x := range m {
		m[x] = make([]int, len(b)+1)
		m[x][0] = x
	}
	for y := 0; y <= len(b); y++ {
		m[0][y] = y
	}
	for x := 1; x <= len(a); x++ {
		for y := 1; y <= len(b); y++ {
			if a[x-1] == b[y-1] {
				m[x][y] = min(m[x-1][y]+1, m[x-1][y-1], m[x][y-1]+1)
			} else {
				m[x][y] = min(m[x-1][y]+1, m[x-1][y-1]+1, m[x][y-1]+1)
			}
		}
	}
	return m[len(a)][len(b)]
}

// Overlap reports whether two token sequences share enough unique words
// to be considered similar, and the overlap ratio |a ∩ b| / max(|a|, |b|)
// over the unique-word sets. When the ratio does not exceed threshold
// the reported ratio is 0 and callers must not rely on it. Two empty
// sequences are never similar.
func Overlap(a, b []string, threshold float64) (bool, float64) {
	as := tokenSet(a)
	bs := tokenSet(b)
	larger := max(len(as), len(bs))
	if larger == 0 {
		return false, 0
	}

	shared := 0
	for t := range as {
		if _, ok := bs[t]; ok {
			shared++
		}
	}
	ratio := float64(shared) / float64(larger)
	if ratio > threshold {
		return true, ratio
	}
	return false, 0
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// Certainty scores how confident we are that two titles describe the
// same post. maxLen is the token count of the longer title. The base
// formula is overlap * (1 - distance/maxLen); at or below
// ShortTitleMaxTokens the overlap multiplier is dropped. Zero maxLen
// means both titles were empty and nothing is matchable.
func Certainty(overlap float64, distance, maxLen int) float64 {
	if maxLen == 0 {
		return 0
	}
	base := 1 - float64(distance)/float64(maxLen)
	if maxLen <= ShortTitleMaxTokens {
		return base
	}
	return overlap * base
}
