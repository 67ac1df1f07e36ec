package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speechmastery/coach-api/pkg/lexicon"
)

func newTestAnalyzer() *Analyzer {
	return New(lexicon.NewStore(lexicon.Default()))
}

func TestAnalyzeRejectsInvalidInput(t *testing.T) {
	a := newTestAnalyzer()

	_, err := a.Analyze("", AudioMetadata{DurationSeconds: 10})
	require.Error(t, err)

	_, err = a.Analyze("   \n  ", AudioMetadata{DurationSeconds: 10})
	require.Error(t, err)

	_, err = a.Analyze("hello world", AudioMetadata{DurationSeconds: 0})
	require.Error(t, err)

	_, err = a.Analyze("hello world", AudioMetadata{DurationSeconds: -3})
	require.Error(t, err)
}

func TestAnalyzeDetectsHedging(t *testing.T) {
	a := newTestAnalyzer()

	m, err := a.Analyze("I think maybe we should consider this option.", AudioMetadata{DurationSeconds: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, m.HedgingPhrases["i think"])
	assert.Equal(t, 1, m.HedgingPhrases["maybe"])
	assert.Equal(t, 2, m.HedgingTotal)

	found := false
	for _, match := range m.Matches {
		if match.Family == FamilyHedging {
			found = true
			assert.NotEmpty(t, match.Quote)
			assert.GreaterOrEqual(t, match.Timestamp, 0.0)
		}
	}
	assert.True(t, found, "expected hedging matches")
}

func TestAnalyzeWordsPerMinute(t *testing.T) {
	a := newTestAnalyzer()

	transcript := strings.TrimSpace(strings.Repeat("alpha ", 300))
	m, err := a.Analyze(transcript, AudioMetadata{DurationSeconds: 120})
	require.NoError(t, err)

	assert.Equal(t, 300, m.WordCount)
	assert.Equal(t, 150.0, m.WordsPerMinute)
}

func TestAnalyzeFillerTotalsMatchMapping(t *testing.T) {
	a := newTestAnalyzer()

	m, err := a.Analyze("Um, so like we should um try this.", AudioMetadata{DurationSeconds: 30})
	require.NoError(t, err)

	sum := 0
	for _, c := range m.FillerWords {
		sum += c
	}
	assert.Equal(t, sum, m.FillerWordsTotal)
	assert.Equal(t, 2, m.FillerWords["um"])
	assert.InDelta(t, float64(m.FillerWordsTotal)/0.5, m.FillerWordsPerMinute, 1e-9)
}

func TestAnalyzePassiveVoiceRatio(t *testing.T) {
	a := newTestAnalyzer()

	m, err := a.Analyze("The report was written by the team.", AudioMetadata{DurationSeconds: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, m.PassiveVoiceCount)
	assert.Equal(t, 0, m.ActiveVoiceCount)
	assert.Equal(t, 1.0, m.PassiveVoiceRatio)

	m, err = a.Analyze("We built the product. Customers love it.", AudioMetadata{DurationSeconds: 10})
	require.NoError(t, err)
	assert.Equal(t, 0, m.PassiveVoiceCount)
	assert.Equal(t, 2, m.ActiveVoiceCount)
	assert.Equal(t, 0.0, m.PassiveVoiceRatio)
}

func TestAnalyzeUpspeakIndicators(t *testing.T) {
	a := newTestAnalyzer()

	m, err := a.Analyze("We shipped the feature? It works now. Great?", AudioMetadata{DurationSeconds: 15})
	require.NoError(t, err)
	assert.Equal(t, 2, m.UpspeakIndicators)
}

func TestAnalyzeNoTerminalPunctuation(t *testing.T) {
	a := newTestAnalyzer()

	m, err := a.Analyze("this transcript has no punctuation at all", AudioMetadata{DurationSeconds: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, m.SentenceCount)
	assert.Equal(t, float64(m.WordCount), m.AverageSentenceLength)
}

func TestAnalyzeWordDiversityBounds(t *testing.T) {
	a := newTestAnalyzer()

	repetitive, err := a.Analyze(strings.TrimSpace(strings.Repeat("word ", 50)), AudioMetadata{DurationSeconds: 30})
	require.NoError(t, err)
	assert.Equal(t, 0.0, repetitive.WordDiversityScore)

	varied, err := a.Analyze("every single token here differs from all other tokens present today", AudioMetadata{DurationSeconds: 30})
	require.NoError(t, err)
	assert.Greater(t, varied.WordDiversityScore, 90.0)
	assert.LessOrEqual(t, varied.WordDiversityScore, 100.0)
}

func TestAnalyzePersuasionKeywords(t *testing.T) {
	a := newTestAnalyzer()

	m, err := a.Analyze("Studies show this proven approach works. Start today.", AudioMetadata{DurationSeconds: 20})
	require.NoError(t, err)

	assert.Equal(t, 1, m.PersuasionKeywords["studies show"])
	assert.Equal(t, 1, m.PersuasionKeywords["proven"])
	assert.Equal(t, 1, m.PersuasionKeywords["start"])
	assert.Equal(t, 1, m.PersuasionKeywords["today"])
}

func TestAnalyzePaceMetricsFromTimings(t *testing.T) {
	a := newTestAnalyzer()

	timings := make([]WordTiming, 0, 20)
	for i := 0; i < 20; i++ {
		start := float64(i) * 0.5
		timings = append(timings, WordTiming{Start: start, End: start + 0.3})
	}

	transcript := strings.TrimSpace(strings.Repeat("steady pace here now ", 5))
	m, err := a.Analyze(transcript, AudioMetadata{DurationSeconds: 10, WordTimings: timings})
	require.NoError(t, err)

	assert.InDelta(t, 0.2, m.AveragePauseDuration, 1e-9)
	assert.GreaterOrEqual(t, m.PaceVariance, 0.0)
}

func TestAnalyzeNoTimingsDegradesGracefully(t *testing.T) {
	a := newTestAnalyzer()

	m, err := a.Analyze("no timing hints were supplied for this recording.", AudioMetadata{DurationSeconds: 12})
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.AveragePauseDuration)
	assert.Equal(t, 0.0, m.PaceVariance)
	assert.Greater(t, m.WordsPerMinute, 0.0)
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := newTestAnalyzer()
	transcript := "I think maybe we should leverage synergy. Um, studies show it was proven to work? Start today."
	audio := AudioMetadata{DurationSeconds: 25}

	first, err := a.Analyze(transcript, audio)
	require.NoError(t, err)
	second, err := a.Analyze(transcript, audio)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCountOccurrencesPhrases(t *testing.T) {
	tokens := tokenize("you know what you know is you knowing")
	positions := countOccurrences(tokens, "you know")
	assert.Equal(t, []int{0, 3}, positions)
}

func TestContextWindowBounds(t *testing.T) {
	tokens := tokenize("one two three four five")
	assert.Equal(t, "one two three four five", contextWindow(tokens, 0, 1))
	assert.Equal(t, "one two three four five", contextWindow(tokens, 4, 1))
}
