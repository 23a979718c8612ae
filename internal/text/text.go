// Package text provides the normalization and similarity primitives shared
// by the classifier and the memory manager.
package text

import "strings"

// stopWords are dropped before classification scoring. Pronouns, articles,
// and common prepositions carry no topic signal.
var stopWords = map[string]bool{
	"i": true, "me": true, "my": true, "you": true, "your": true,
	"he": true, "she": true, "it": true, "we": true, "they": true,
	"the": true, "a": true, "an": true, "of": true, "to": true,
	"in": true, "on": true, "at": true, "for": true, "with": true,
	"and": true, "or": true, "is": true, "are": true, "was": true,
}

// CleanLetters lower-cases s and strips everything outside the lowercase
// Latin alphabet and whitespace, collapsing runs of whitespace.
func CleanLetters(s string) string {
	return cleanKeeping(s, false)
}

// CleanAlnum lower-cases s and strips everything that is not a letter,
// digit, or whitespace. Used for similarity tokenization.
func CleanAlnum(s string) string {
	return cleanKeeping(s, true)
}

func cleanKeeping(s string, digits bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case digits && r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// RemoveStopWords filters the fixed stop-word set out of tokens, preserving order.
func RemoveStopWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !stopWords[t] {
			out = append(out, t)
		}
	}
	return out
}

// Clean produces the classifier's cleaned string: letters-only
// normalization, stop-word removal, tokens rejoined with single spaces.
func Clean(s string) string {
	return strings.Join(RemoveStopWords(strings.Fields(CleanLetters(s))), " ")
}

// TokenSet tokenizes the alnum-normalized form of s into a set of words.
func TokenSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, t := range strings.Fields(CleanAlnum(s)) {
		set[t] = true
	}
	return set
}

// Jaccard computes intersection-over-union of the token sets of a and b.
// Returns 0.0 if either set is empty. Symmetric and bounded to [0, 1].
func Jaccard(a, b string) float64 {
	sa, sb := TokenSet(a), TokenSet(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}
	inter := 0
	for t := range sa {
		if sb[t] {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}
