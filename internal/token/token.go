// Package token splits plain text into words and classifies them for the
// diff engine: normalisation, punctuation detection, and the closed
// stop-word list the rewrite-rule engine absorbs.
package token

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Word is a single tokenised unit of text: the word itself plus the raw
// slice (word + any trailing whitespace) it was cut from, so that
// concatenating Raw over a full tokenisation reproduces the source text.
type Word struct {
	Word string
	Raw  string
}

var caseFolder = cases.Fold()

// Tokenize splits text into a sequence of Words on non-whitespace runs,
// storing each run's trailing whitespace on the preceding Word so that
// Join(Tokenize(t)) == t.
func Tokenize(text string) []Word {
	var words []Word
	runes := []rune(text)
	i := 0
	n := len(runes)
	for i < n {
		start := i
		for i < n && !unicode.IsSpace(runes[i]) {
			i++
		}
		if i == start {
			// Leading whitespace with no preceding word: fold it onto a
			// zero-width word so the raw text still round-trips.
			wsStart := i
			for i < n && unicode.IsSpace(runes[i]) {
				i++
			}
			words = append(words, Word{Word: "", Raw: string(runes[wsStart:i])})
			continue
		}
		word := string(runes[start:i])
		wsStart := i
		for i < n && unicode.IsSpace(runes[i]) {
			i++
		}
		words = append(words, Word{Word: word, Raw: word + string(runes[wsStart:i])})
	}
	return words
}

// Join reconstructs the original text from a Tokenize result.
func Join(words []Word) string {
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(w.Raw)
	}
	return sb.String()
}

const trailingPunct = ".,;:!?'\")]}>”’"
const leadingPunct = "'\"([{“‘"

// NormalizeWord lowercases w (Unicode-aware) and strips a fixed set of
// leading quote/bracket characters and trailing punctuation.
func NormalizeWord(w string) string {
	w = caseFolder.String(w)
	w = strings.TrimLeft(w, leadingPunct)
	w = strings.TrimRight(w, trailingPunct)
	return w
}

// IsPurePunctuation reports whether s contains no letters or digits.
func IsPurePunctuation(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsMinorCaseVariant reports whether a and b are equal once lowercased but
// differ in their raw form (i.e. a pure case edit).
func IsMinorCaseVariant(a, b string) bool {
	if a == b {
		return false
	}
	return caseFolder.String(a) == caseFolder.String(b)
}

var stopWords = buildStopWords()

func buildStopWords() map[string]struct{} {
	list := []string{
		"a", "an", "the", "is", "are", "was", "were", "be", "been", "being",
		"to", "of", "in", "for", "on", "at", "by", "with", "from", "as",
		"and", "or", "but", "not", "no", "nor", "it", "its", "we", "he",
		"she", "they", "this", "that", "these", "those", "has", "have",
		"had", "do", "does", "did",
	}
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// IsStopWord reports whether the normalised form of w is in the closed
// stop-word list.
func IsStopWord(w string) bool {
	_, ok := stopWords[NormalizeWord(w)]
	return ok
}
