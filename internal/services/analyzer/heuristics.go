package analyzer

import (
	"math"
	"strings"
)

// Auxiliary verbs that can head a passive construction
var passiveAuxiliaries = map[string]bool{
	"is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "am": true,
	"get": true, "gets": true, "got": true,
}

// Irregular past participles not ending in -ed or -en
var irregularParticiples = map[string]bool{
	"done": true, "made": true, "said": true, "told": true,
	"built": true, "bought": true, "brought": true, "caught": true,
	"found": true, "held": true, "kept": true, "led": true,
	"left": true, "lost": true, "put": true, "sent": true,
	"set": true, "shown": true, "sold": true, "thought": true,
	"understood": true, "won": true,
}

// isPassiveSentence applies an auxiliary + past-participle heuristic over a
// sentence's tokens. This is deliberately shallow; false positives and
// negatives are acceptable.
func isPassiveSentence(tokens []Token) bool {
	for i, t := range tokens {
		if !passiveAuxiliaries[t.Text] {
			continue
		}
		// Look up to two tokens ahead so adverbs don't hide the participle
		// ("was quickly taken").
		for j := i + 1; j <= i+2 && j < len(tokens); j++ {
			if isPastParticiple(tokens[j].Text) {
				return true
			}
		}
	}
	return false
}

func isPastParticiple(word string) bool {
	if irregularParticiples[word] {
		return true
	}
	if len(word) < 4 {
		return false
	}
	return strings.HasSuffix(word, "ed") || strings.HasSuffix(word, "en")
}

// wordDiversity computes the normalized Shannon entropy of the word
// frequency distribution, scaled to [0,100]. A transcript repeating one
// word scores 0; maximally varied vocabulary approaches 100.
func wordDiversity(tokens []Token) float64 {
	if len(tokens) == 0 {
		return 0
	}

	freq := make(map[string]int, len(tokens))
	for _, t := range tokens {
		freq[t.Text]++
	}
	if len(freq) <= 1 {
		return 0
	}

	total := float64(len(tokens))
	entropy := 0.0
	for _, count := range freq {
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}

	maxEntropy := math.Log2(float64(len(freq)))
	score := entropy / maxEntropy * 100
	// Float error can push a fully unique distribution a hair past 100
	if score > 100 {
		score = 100
	}
	return score
}

// jargonOveruse maps jargon density (matches per 100 words) onto [0,100].
// The penalty grows quickly so a handful of buzzwords in a short answer
// registers, then saturates.
func jargonOveruse(jargonTotal, wordCount int) float64 {
	if wordCount == 0 || jargonTotal == 0 {
		return 0
	}
	per100 := float64(jargonTotal) / float64(wordCount) * 100
	score := per100 * 12.5
	if score > 100 {
		score = 100
	}
	return score
}

// Narrative markers grouped by the structural role they signal. Story
// coherence rewards transcripts that touch several distinct roles.
var narrativeMarkerGroups = [][]string{
	{"first", "to begin", "initially", "once"},
	{"then", "next", "after that", "later"},
	{"because", "so", "therefore", "as a result", "which means"},
	{"for example", "for instance", "such as", "imagine"},
	{"finally", "in conclusion", "in the end", "ultimately", "to summarize"},
}

// storyCoherence estimates narrative structure from marker coverage.
// A transcript with no structural markers scores a flat baseline; each
// distinct marker role covered raises the score.
func storyCoherence(tokens []Token) float64 {
	covered := 0
	for _, group := range narrativeMarkerGroups {
		for _, marker := range group {
			if len(countOccurrences(tokens, marker)) > 0 {
				covered++
				break
			}
		}
	}

	score := 40.0 + 12.0*float64(covered)
	if score > 100 {
		score = 100
	}
	return score
}

// paceMetrics derives pause and pace-variance estimates from per-word
// timings. Without timings both degrade to zero and the caller falls back
// to whole-transcript WPM.
func paceMetrics(timings []WordTiming) (avgPause, paceVariance float64) {
	if len(timings) < 2 {
		return 0, 0
	}

	var pauses []float64
	for i := 1; i < len(timings); i++ {
		gap := timings[i].Start - timings[i-1].End
		if gap > 0 {
			pauses = append(pauses, gap)
		}
	}
	if len(pauses) > 0 {
		sum := 0.0
		for _, p := range pauses {
			sum += p
		}
		avgPause = sum / float64(len(pauses))
	}

	// Instantaneous pace per 10-word window, variance across windows
	const window = 10
	var rates []float64
	for i := 0; i+window <= len(timings); i += window {
		span := timings[i+window-1].End - timings[i].Start
		if span <= 0 {
			continue
		}
		rates = append(rates, float64(window)/span*60)
	}
	if len(rates) >= 2 {
		mean := 0.0
		for _, r := range rates {
			mean += r
		}
		mean /= float64(len(rates))

		variance := 0.0
		for _, r := range rates {
			variance += (r - mean) * (r - mean)
		}
		paceVariance = variance / float64(len(rates))
	}

	return avgPause, paceVariance
}
