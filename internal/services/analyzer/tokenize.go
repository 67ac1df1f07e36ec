package analyzer

import (
	"strings"
	"unicode"
)

// Token is one word of the transcript with its position
type Token struct {
	Text  string
	Index int
}

// Sentence is one sentence of the transcript with its token span
type Sentence struct {
	Text       string
	StartIndex int // index of the first token in the sentence
	TokenCount int
	Terminal   rune // terminating punctuation, 0 when the transcript ends without one
}

// tokenize splits a transcript into lowercase word tokens. Apostrophes and
// hyphens inside a word are kept so contractions stay single tokens.
func tokenize(transcript string) []Token {
	fields := strings.FieldsFunc(transcript, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '-'
	})

	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(strings.ToLower(f), "'-")
		if f == "" {
			continue
		}
		tokens = append(tokens, Token{Text: f, Index: len(tokens)})
	}
	return tokens
}

// splitSentences breaks a transcript at terminal punctuation. A transcript
// with no terminal punctuation counts as one sentence spanning all tokens.
func splitSentences(transcript string) []Sentence {
	var sentences []Sentence
	var current strings.Builder
	tokenCursor := 0

	flush := func(terminal rune) {
		text := strings.TrimSpace(current.String())
		current.Reset()
		if text == "" {
			return
		}
		count := len(tokenize(text))
		if count == 0 {
			return
		}
		sentences = append(sentences, Sentence{
			Text:       text,
			StartIndex: tokenCursor,
			TokenCount: count,
			Terminal:   terminal,
		})
		tokenCursor += count
	}

	for _, r := range transcript {
		switch r {
		case '.', '!', '?':
			flush(r)
		default:
			current.WriteRune(r)
		}
	}
	flush(0)

	if len(sentences) == 0 {
		sentences = append(sentences, Sentence{Text: strings.TrimSpace(transcript)})
	}
	return sentences
}

// countOccurrences finds every occurrence of a lowercase word or phrase in
// the token stream and returns the token index of each match start. Phrases
// match as consecutive token n-grams so "you know" never matches across a
// sentence's worth of intervening words.
func countOccurrences(tokens []Token, phrase string) []int {
	parts := strings.Fields(phrase)
	if len(parts) == 0 || len(tokens) < len(parts) {
		return nil
	}

	var positions []int
	for i := 0; i+len(parts) <= len(tokens); i++ {
		matched := true
		for j, p := range parts {
			if tokens[i+j].Text != p {
				matched = false
				break
			}
		}
		if matched {
			positions = append(positions, i)
		}
	}
	return positions
}

// contextWindow returns the words around a match for use as a quote,
// bounded to a few words on each side.
func contextWindow(tokens []Token, start, matchLen int) string {
	const radius = 4

	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := start + matchLen + radius
	if hi > len(tokens) {
		hi = len(tokens)
	}

	words := make([]string, 0, hi-lo)
	for _, t := range tokens[lo:hi] {
		words = append(words, t.Text)
	}
	return strings.Join(words, " ")
}
