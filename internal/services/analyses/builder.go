package analyses

import (
	"math"
	"time"

	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/analyzer"
	"github.com/speechmastery/coach-api/internal/services/scoring"
	"github.com/speechmastery/coach-api/pkg/config"
	"github.com/speechmastery/coach-api/pkg/errors"
)

// Impact tiers for pattern summaries
const (
	TierLow    = "low"
	TierMedium = "medium"
	TierHigh   = "high"
)

// Builder validates scoring output and assembles the persisted record.
// The range and consistency checks should never trigger when the scoring
// engine is correct; they exist to turn an engine defect into a hard
// failure instead of a corrupt row.
type Builder struct {
	cfg config.AnalysisConfig
}

// NewBuilder creates a result builder
func NewBuilder(cfg config.AnalysisConfig) *Builder {
	return &Builder{cfg: cfg}
}

// Build assembles the immutable AnalysisResult from raw metrics and scores
func (b *Builder) Build(recordingID, userID string, recordedAt time.Time, m *analyzer.Metrics, scores scoring.Scores) (*models.AnalysisResult, error) {
	if err := checkScoreRanges(scores); err != nil {
		return nil, err
	}
	if err := checkConsistency(m); err != nil {
		return nil, err
	}

	result := &models.AnalysisResult{
		RecordingID: recordingID,
		UserID:      userID,
		RecordedAt:  recordedAt.UTC(),

		OverallScore:             round2(scores.Overall),
		PowerDynamicsScore:       round2(scores.PowerDynamics),
		LinguisticAuthorityScore: round2(scores.LinguisticAuthority),
		VocalCommandScore:        round2(scores.VocalCommand),
		PersuasionInfluenceScore: round2(scores.PersuasionInfluence),

		Transcript:      m.Transcript,
		WordCount:       m.WordCount,
		DurationSeconds: m.DurationSeconds,

		FillerWords:          models.StringCountMap(m.FillerWords),
		FillerWordsTotal:     m.FillerWordsTotal,
		FillerWordsPerMinute: round2(m.FillerWordsPerMinute),
		HedgingPhrases:       models.StringCountMap(m.HedgingPhrases),
		HedgingTotal:         m.HedgingTotal,
		UpspeakIndicators:    m.UpspeakIndicators,

		PassiveVoiceCount:     m.PassiveVoiceCount,
		ActiveVoiceCount:      m.ActiveVoiceCount,
		PassiveVoiceRatio:     round3(m.PassiveVoiceRatio),
		AverageSentenceLength: round2(m.AverageSentenceLength),
		WordDiversityScore:    round2(m.WordDiversityScore),
		JargonOveruseScore:    round2(m.JargonOveruseScore),
		JargonTerms:           models.StringList(m.JargonTerms),

		WordsPerMinute:       round2(m.WordsPerMinute),
		AveragePauseDuration: round2(m.AveragePauseDuration),
		PaceVariance:         round2(m.PaceVariance),

		StoryCoherenceScore: round2(m.StoryCoherenceScore),
		PersuasionKeywords:  models.StringCountMap(m.PersuasionKeywords),

		CriticalMoments:      roundMoments(scores.CriticalMoments),
		CriticalMomentsCount: len(scores.CriticalMoments),
		PatternsDetected:     b.buildPatternSummaries(m),
	}

	return result, nil
}

// checkScoreRanges verifies every score sits in [0,100]
func checkScoreRanges(scores scoring.Scores) error {
	checks := map[string]float64{
		"overall_score":              scores.Overall,
		"power_dynamics_score":       scores.PowerDynamics,
		"linguistic_authority_score": scores.LinguisticAuthority,
		"vocal_command_score":        scores.VocalCommand,
		"persuasion_influence_score": scores.PersuasionInfluence,
	}
	for name, score := range checks {
		if score < 0 || score > 100 {
			return errors.New(errors.ErrCodeScoreRange, "score out of range").
				WithDetail("field", name).
				WithDetail("value", score)
		}
	}
	return nil
}

// checkConsistency verifies the analyzer's reported totals match their
// mappings
func checkConsistency(m *analyzer.Metrics) error {
	fillerSum := 0
	for _, c := range m.FillerWords {
		fillerSum += c
	}
	if fillerSum != m.FillerWordsTotal {
		return errors.New(errors.ErrCodeScoreRange, "filler_words_total does not match mapping sum").
			WithDetail("reported", m.FillerWordsTotal).
			WithDetail("computed", fillerSum)
	}

	hedgingSum := 0
	for _, c := range m.HedgingPhrases {
		hedgingSum += c
	}
	if hedgingSum != m.HedgingTotal {
		return errors.New(errors.ErrCodeScoreRange, "hedging_total does not match mapping sum").
			WithDetail("reported", m.HedgingTotal).
			WithDetail("computed", hedgingSum)
	}
	return nil
}

// buildPatternSummaries produces the compact per-family rollup the report
// aggregator consumes. Families with no occurrences are absent.
func (b *Builder) buildPatternSummaries(m *analyzer.Metrics) models.PatternSummaryMap {
	summaries := make(models.PatternSummaryMap)
	minutes := m.DurationSeconds / 60

	if m.FillerWordsTotal > 0 {
		rate := m.FillerWordsPerMinute
		summaries[analyzer.FamilyFillerWords] = models.PatternSummary{
			Count:      m.FillerWordsTotal,
			Rate:       round3(rate),
			ImpactTier: tierByThresholds(rate, 2, 5),
			Category:   models.CategoryPowerDynamics,
		}
	}
	if m.HedgingTotal > 0 {
		rate := per100(m.HedgingTotal, m.WordCount)
		summaries[analyzer.FamilyHedging] = models.PatternSummary{
			Count:      m.HedgingTotal,
			Rate:       round3(rate),
			ImpactTier: tierByThresholds(rate, 2, 5),
			Category:   models.CategoryPowerDynamics,
		}
	}
	if m.UpspeakIndicators > 0 {
		rate := perMinute(m.UpspeakIndicators, minutes)
		summaries[analyzer.FamilyUpspeak] = models.PatternSummary{
			Count:      m.UpspeakIndicators,
			Rate:       round3(rate),
			ImpactTier: tierByThresholds(float64(m.UpspeakIndicators), 2, 4),
			Category:   models.CategoryPowerDynamics,
		}
	}
	if m.PassiveVoiceCount > 0 {
		summaries[analyzer.FamilyPassiveVoice] = models.PatternSummary{
			Count:      m.PassiveVoiceCount,
			Rate:       round3(m.PassiveVoiceRatio),
			ImpactTier: tierByThresholds(m.PassiveVoiceRatio, 0.25, 0.5),
			Category:   models.CategoryLinguisticAuthority,
		}
	}
	if len(m.JargonTerms) > 0 {
		count := 0
		for _, match := range m.Matches {
			if match.Family == analyzer.FamilyJargon {
				count++
			}
		}
		summaries[analyzer.FamilyJargon] = models.PatternSummary{
			Count:      count,
			Rate:       round3(per100(count, m.WordCount)),
			ImpactTier: tierByThresholds(m.JargonOveruseScore, 25, 60),
			Category:   models.CategoryLinguisticAuthority,
		}
	}
	if deviation := b.wpmDeviation(m.WordsPerMinute); deviation > 0 {
		summaries[analyzer.FamilyPacing] = models.PatternSummary{
			Count:      1,
			Rate:       round3(m.WordsPerMinute),
			ImpactTier: tierByThresholds(deviation, 20, 40),
			Category:   models.CategoryVocalCommand,
		}
	}
	if total := countMapTotal(m.PersuasionKeywords); total > 0 {
		summaries[analyzer.FamilyPersuasion] = models.PatternSummary{
			Count:      total,
			Rate:       round3(per100(total, m.WordCount)),
			ImpactTier: tierByThresholds(float64(total), 2, 5),
			Category:   models.CategoryPersuasionInfluence,
		}
	}

	return summaries
}

// wpmDeviation returns the distance from the ideal pace band, 0 when inside
func (b *Builder) wpmDeviation(wpm float64) float64 {
	switch {
	case wpm < b.cfg.IdealWPMMin:
		return b.cfg.IdealWPMMin - wpm
	case wpm > b.cfg.IdealWPMMax:
		return wpm - b.cfg.IdealWPMMax
	default:
		return 0
	}
}

// tierByThresholds maps a magnitude onto low/medium/high
func tierByThresholds(value, medium, high float64) string {
	switch {
	case value >= high:
		return TierHigh
	case value >= medium:
		return TierMedium
	default:
		return TierLow
	}
}

func roundMoments(moments []models.CriticalMoment) models.CriticalMomentList {
	out := make(models.CriticalMomentList, len(moments))
	for i, moment := range moments {
		moment.Timestamp = round2(moment.Timestamp)
		out[i] = moment
	}
	return out
}

func per100(count, wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	return float64(count) / float64(wordCount) * 100
}

func perMinute(count int, minutes float64) float64 {
	if minutes <= 0 {
		return 0
	}
	return float64(count) / minutes
}

func countMapTotal(counts map[string]int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
