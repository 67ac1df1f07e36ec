// Package scoring maps raw transcript metrics onto the four category scores,
// the weighted overall score, and the list of critical moments. Scoring is a
// deterministic pure function: identical metrics always produce identical
// scores and an identical ordered moment list.
package scoring

import (
	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/analyzer"
	"github.com/speechmastery/coach-api/pkg/config"
)

// Scores is the scoring engine output for one recording
type Scores struct {
	Overall             float64
	PowerDynamics       float64
	LinguisticAuthority float64
	VocalCommand        float64
	PersuasionInfluence float64
	CriticalMoments     []models.CriticalMoment
}

// Engine computes category scores from raw metrics. Weights and the ideal
// words-per-minute band are fixed at construction.
type Engine struct {
	weights     config.ScoreWeights
	idealWPMMin float64
	idealWPMMax float64
}

// NewEngine creates a scoring engine from analysis configuration
func NewEngine(cfg config.AnalysisConfig) *Engine {
	return &Engine{
		weights:     cfg.Weights,
		idealWPMMin: cfg.IdealWPMMin,
		idealWPMMax: cfg.IdealWPMMax,
	}
}

// Score computes all category scores, the overall score, and the critical
// moments for one recording's metrics.
func (e *Engine) Score(m *analyzer.Metrics) Scores {
	power := e.powerDynamics(m)
	linguistic := e.linguisticAuthority(m)
	vocal := e.vocalCommand(m)
	persuasion := e.persuasionInfluence(m)

	overall := power*e.weights.PowerDynamics +
		linguistic*e.weights.LinguisticAuthority +
		vocal*e.weights.VocalCommand +
		persuasion*e.weights.PersuasionInfluence

	return Scores{
		Overall:             clampScore(overall),
		PowerDynamics:       power,
		LinguisticAuthority: linguistic,
		VocalCommand:        vocal,
		PersuasionInfluence: persuasion,
		CriticalMoments:     extractMoments(m),
	}
}

// powerDynamics penalizes hesitation signals: filler density, hedging
// density, and upspeak. Each penalty saturates so one terrible habit cannot
// drive the score below what the clamp allows.
func (e *Engine) powerDynamics(m *analyzer.Metrics) float64 {
	fillerPenalty := capAt(m.FillerWordsPerMinute*4, 40)

	hedgingPer100 := per100Words(m.HedgingTotal, m.WordCount)
	hedgingPenalty := capAt(hedgingPer100*8, 40)

	upspeakPenalty := capAt(float64(m.UpspeakIndicators)*5, 20)

	return clampScore(100 - fillerPenalty - hedgingPenalty - upspeakPenalty)
}

// linguisticAuthority penalizes passive constructions and jargon, with a
// bounded bonus for lexical diversity.
func (e *Engine) linguisticAuthority(m *analyzer.Metrics) float64 {
	passivePenalty := capAt(m.PassiveVoiceRatio*90, 45)
	jargonPenalty := capAt(m.JargonOveruseScore*0.25, 25)
	diversityBonus := capAt(m.WordDiversityScore*0.1, 10)

	return clampScore(90 - passivePenalty - jargonPenalty + diversityBonus)
}

// vocalCommand penalizes deviation from the ideal pace band and unstable
// pace. Without timing hints pace variance is zero and only the band
// deviation applies.
func (e *Engine) vocalCommand(m *analyzer.Metrics) float64 {
	deviation := 0.0
	switch {
	case m.WordsPerMinute < e.idealWPMMin:
		deviation = e.idealWPMMin - m.WordsPerMinute
	case m.WordsPerMinute > e.idealWPMMax:
		deviation = m.WordsPerMinute - e.idealWPMMax
	}
	pacePenalty := capAt(deviation*0.8, 50)
	variancePenalty := capAt(m.PaceVariance*0.02, 20)

	return clampScore(100 - pacePenalty - variancePenalty)
}

// persuasionInfluence blends story coherence with persuasion keyword
// density. Density rewards up to a saturation point; there is no penalty
// for plain speech beyond the missing bonus.
func (e *Engine) persuasionInfluence(m *analyzer.Metrics) float64 {
	keywordTotal := 0
	for _, count := range m.PersuasionKeywords {
		keywordTotal += count
	}
	densityBonus := capAt(per100Words(keywordTotal, m.WordCount)*10, 40)

	return clampScore(m.StoryCoherenceScore*0.6 + densityBonus)
}

func per100Words(count, wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	return float64(count) / float64(wordCount) * 100
}

func capAt(value, ceiling float64) float64 {
	if value > ceiling {
		return ceiling
	}
	return value
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
