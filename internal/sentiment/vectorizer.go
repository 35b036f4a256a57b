package sentiment

import (
	"strings"
	"unicode"
)

// FeatureVector counts vocabulary-token occurrences in a text. Its length
// always equals the size of the vocabulary it was produced against.
type FeatureVector []int

// Vocabulary maps normalized tokens to dense, stable indices assigned in
// discovery order. A vocabulary and the classifier fit against it are
// inseparable; mixing them with anything else is undefined.
type Vocabulary struct {
	index map[string]int
}

// Tokenize lowercases text and splits it on non-alphanumeric boundaries.
// Empty tokens are discarded, so any input (including binary junk) yields a
// possibly empty token list, never an error.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// FitVocabulary learns a vocabulary from the corpus texts. Indices follow
// first-seen order, so refitting on the same ordered corpus reproduces the
// exact same assignment.
func FitVocabulary(texts []string) *Vocabulary {
	index := make(map[string]int)
	for _, text := range texts {
		for _, token := range Tokenize(text) {
			if _, seen := index[token]; !seen {
				index[token] = len(index)
			}
		}
	}
	return &Vocabulary{index: index}
}

// Size returns the number of known tokens.
func (v *Vocabulary) Size() int {
	return len(v.index)
}

// Index returns the dense index of a token, if known.
func (v *Vocabulary) Index(token string) (int, bool) {
	i, ok := v.index[token]
	return i, ok
}

// Transform converts text into a term-frequency vector. Tokens outside the
// vocabulary contribute nothing; a text with no known tokens produces an
// all-zero vector, which is still valid classifier input.
func (v *Vocabulary) Transform(text string) FeatureVector {
	vec := make(FeatureVector, len(v.index))
	for _, token := range Tokenize(text) {
		if i, ok := v.index[token]; ok {
			vec[i]++
		}
	}
	return vec
}
