// Package analyzer converts one transcript plus audio metadata into the raw
// linguistic and vocal metrics the scoring engine consumes. Analysis is a
// pure function of its inputs and the active lexicon; it performs no I/O.
package analyzer

import (
	"sort"
	"strings"

	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/pkg/errors"
	"github.com/speechmastery/coach-api/pkg/lexicon"
)

// Pattern family names used in matches and per-recording summaries
const (
	FamilyFillerWords  = "filler_words"
	FamilyHedging      = "hedging"
	FamilyUpspeak      = "upspeak"
	FamilyPassiveVoice = "passive_voice"
	FamilyJargon       = "jargon"
	FamilyPacing       = "pacing"
	FamilyPersuasion   = "persuasion_keywords"
)

// WordTiming is an optional per-word timing hint from the capture layer
type WordTiming struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// AudioMetadata describes the recording the transcript came from
type AudioMetadata struct {
	DurationSeconds float64      `json:"duration_seconds"`
	SampleRate      int          `json:"sample_rate,omitempty"`
	Channels        int          `json:"channels,omitempty"`
	WordTimings     []WordTiming `json:"word_timings,omitempty"`
}

// Match is one lexicon hit with enough position information for the scoring
// engine to build a critical moment from it.
type Match struct {
	Term      string
	Family    string
	Category  string
	Weight    int
	WordIndex int
	Timestamp float64
	Quote     string
}

// Metrics is the raw-metrics bundle produced for one recording
type Metrics struct {
	Transcript      string
	DurationSeconds float64
	WordCount       int
	SentenceCount   int

	FillerWords          map[string]int
	FillerWordsTotal     int
	FillerWordsPerMinute float64
	HedgingPhrases       map[string]int
	HedgingTotal         int
	UpspeakIndicators    int

	PassiveVoiceCount     int
	ActiveVoiceCount      int
	PassiveVoiceRatio     float64
	AverageSentenceLength float64
	WordDiversityScore    float64
	JargonOveruseScore    float64
	JargonTerms           []string

	WordsPerMinute       float64
	AveragePauseDuration float64
	PaceVariance         float64

	StoryCoherenceScore float64
	PersuasionKeywords  map[string]int

	// Ordered by word index; the scoring engine derives moments from these
	Matches []Match
}

// Analyzer computes raw metrics from transcripts using the active lexicon
type Analyzer struct {
	lexicons *lexicon.Store
}

// New creates an analyzer backed by the given lexicon store
func New(lexicons *lexicon.Store) *Analyzer {
	return &Analyzer{lexicons: lexicons}
}

// Analyze computes the raw-metrics bundle for one transcript.
// Returns an invalid input error for an empty transcript or non-positive
// duration; everything else degrades gracefully.
func (a *Analyzer) Analyze(transcript string, audio AudioMetadata) (*Metrics, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "transcript must not be empty")
	}
	if audio.DurationSeconds <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "duration_seconds must be positive")
	}

	lex := a.lexicons.Active()
	tokens := tokenize(transcript)
	sentences := splitSentences(transcript)
	durationMinutes := audio.DurationSeconds / 60

	m := &Metrics{
		Transcript:         transcript,
		DurationSeconds:    audio.DurationSeconds,
		WordCount:          len(tokens),
		SentenceCount:      len(sentences),
		FillerWords:        make(map[string]int),
		HedgingPhrases:     make(map[string]int),
		PersuasionKeywords: make(map[string]int),
	}

	// Lexicon matching. Weighted families feed critical-moment extraction,
	// so each hit is recorded with its position.
	for term, weight := range lex.FillerWords {
		a.recordMatches(m, audio, tokens, term, weight, FamilyFillerWords, models.CategoryPowerDynamics, m.FillerWords)
	}
	for phrase, weight := range lex.HedgingPhrases {
		a.recordMatches(m, audio, tokens, phrase, weight, FamilyHedging, models.CategoryPowerDynamics, m.HedgingPhrases)
	}
	for _, term := range lex.JargonTerms {
		positions := countOccurrences(tokens, term)
		if len(positions) == 0 {
			continue
		}
		m.JargonTerms = append(m.JargonTerms, term)
		for _, pos := range positions {
			m.Matches = append(m.Matches, a.newMatch(audio, tokens, term, 1, pos, FamilyJargon, models.CategoryLinguisticAuthority))
		}
	}
	for _, keyword := range allPersuasionKeywords(lex) {
		positions := countOccurrences(tokens, keyword)
		if len(positions) > 0 {
			m.PersuasionKeywords[keyword] = len(positions)
		}
	}

	m.FillerWordsTotal = sumCounts(m.FillerWords)
	m.HedgingTotal = sumCounts(m.HedgingPhrases)
	m.FillerWordsPerMinute = safeRate(float64(m.FillerWordsTotal), durationMinutes)

	// Sentence-level heuristics. Upspeak and passive constructions are
	// recorded as matches too so moments can quote the offending sentence.
	passive := 0
	upspeak := 0
	for _, s := range sentences {
		if s.Terminal == '?' {
			upspeak++
			m.Matches = append(m.Matches, Match{
				Term:      "?",
				Family:    FamilyUpspeak,
				Category:  models.CategoryPowerDynamics,
				Weight:    1,
				WordIndex: s.StartIndex,
				Timestamp: estimateTimestamp(audio, len(tokens), s.StartIndex),
				Quote:     s.Text,
			})
		}
		start := s.StartIndex
		end := start + s.TokenCount
		if end > len(tokens) {
			end = len(tokens)
		}
		if start < end && isPassiveSentence(tokens[start:end]) {
			passive++
			m.Matches = append(m.Matches, Match{
				Term:      "passive construction",
				Family:    FamilyPassiveVoice,
				Category:  models.CategoryLinguisticAuthority,
				Weight:    1,
				WordIndex: s.StartIndex,
				Timestamp: estimateTimestamp(audio, len(tokens), s.StartIndex),
				Quote:     s.Text,
			})
		}
	}
	sortMatchesByPosition(m.Matches)
	m.UpspeakIndicators = upspeak
	m.PassiveVoiceCount = passive
	m.ActiveVoiceCount = len(sentences) - passive
	if total := m.PassiveVoiceCount + m.ActiveVoiceCount; total > 0 {
		m.PassiveVoiceRatio = float64(m.PassiveVoiceCount) / float64(total)
	}
	m.AverageSentenceLength = float64(m.WordCount) / float64(len(sentences))

	m.WordDiversityScore = wordDiversity(tokens)
	jargonMatches := 0
	for _, match := range m.Matches {
		if match.Family == FamilyJargon {
			jargonMatches++
		}
	}
	m.JargonOveruseScore = jargonOveruse(jargonMatches, m.WordCount)

	m.WordsPerMinute = safeRate(float64(m.WordCount), durationMinutes)
	m.AveragePauseDuration, m.PaceVariance = paceMetrics(audio.WordTimings)

	m.StoryCoherenceScore = storyCoherence(tokens)

	return m, nil
}

// recordMatches counts a weighted lexicon term and records each hit
func (a *Analyzer) recordMatches(m *Metrics, audio AudioMetadata, tokens []Token, term string, weight int, family, category string, counts map[string]int) {
	positions := countOccurrences(tokens, term)
	if len(positions) == 0 {
		return
	}
	counts[term] = len(positions)
	for _, pos := range positions {
		m.Matches = append(m.Matches, a.newMatch(audio, tokens, term, weight, pos, family, category))
	}
}

func (a *Analyzer) newMatch(audio AudioMetadata, tokens []Token, term string, weight, pos int, family, category string) Match {
	matchLen := len(strings.Fields(term))
	return Match{
		Term:      term,
		Family:    family,
		Category:  category,
		Weight:    weight,
		WordIndex: pos,
		Timestamp: estimateTimestamp(audio, len(tokens), pos),
		Quote:     contextWindow(tokens, pos, matchLen),
	}
}

// estimateTimestamp places a token on the recording timeline. Real timings
// win when supplied; otherwise the token's fractional position in the
// transcript is projected onto the duration.
func estimateTimestamp(audio AudioMetadata, tokenCount, wordIndex int) float64 {
	if wordIndex < len(audio.WordTimings) {
		return audio.WordTimings[wordIndex].Start
	}
	if tokenCount == 0 {
		return 0
	}
	return float64(wordIndex) / float64(tokenCount) * audio.DurationSeconds
}

func allPersuasionKeywords(lex *lexicon.Lexicon) []string {
	var keywords []string
	keywords = append(keywords, lex.Persuasion.CallToAction...)
	keywords = append(keywords, lex.Persuasion.PowerWords...)
	keywords = append(keywords, lex.Persuasion.EvidenceIndicators...)
	return keywords
}

func sumCounts(counts map[string]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

func safeRate(count, minutes float64) float64 {
	if minutes <= 0 {
		return 0
	}
	return count / minutes
}

// sortMatchesByPosition orders matches by word index, then family and term
// for identical positions, so the moment list is deterministic regardless
// of map iteration order.
func sortMatchesByPosition(matches []Match) {
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.WordIndex != b.WordIndex {
			return a.WordIndex < b.WordIndex
		}
		if a.Family != b.Family {
			return a.Family < b.Family
		}
		return a.Term < b.Term
	})
}
