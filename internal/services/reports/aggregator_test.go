package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/analyzer"
)

func resultWithScores(recordingID string, overall, power, linguistic, vocal, persuasion float64) models.AnalysisResult {
	return models.AnalysisResult{
		RecordingID:              recordingID,
		UserID:                   "user-1",
		OverallScore:             overall,
		PowerDynamicsScore:       power,
		LinguisticAuthorityScore: linguistic,
		VocalCommandScore:        vocal,
		PersuasionInfluenceScore: persuasion,
		DurationSeconds:          60,
	}
}

func TestAggregateEmptyDayFails(t *testing.T) {
	agg := NewAggregator(DefaultOptions())

	_, err := agg.Aggregate("user-1", time.Now(), nil, nil, nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAggregateMeansScores(t *testing.T) {
	agg := NewAggregator(DefaultOptions())
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	results := []models.AnalysisResult{
		resultWithScores("rec-a", 70, 60, 65, 80, 75),
		resultWithScores("rec-b", 80, 70, 75, 90, 85),
	}

	report, err := agg.Aggregate("user-1", date, results, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 75.0, report.OverallScore)
	assert.Equal(t, 65.0, report.PowerDynamicsScore)
	assert.Equal(t, 70.0, report.LinguisticAuthorityScore)
	assert.Equal(t, 85.0, report.VocalCommandScore)
	assert.Equal(t, 80.0, report.PersuasionInfluenceScore)
	assert.Equal(t, 2, report.RecordingsAnalyzed)
	assert.Equal(t, 120.0, report.TotalDuration)
	assert.Nil(t, report.ScoreChange24h)
	assert.Nil(t, report.ScoreChange7d)
}

func TestAggregateTrendDeltas(t *testing.T) {
	agg := NewAggregator(DefaultOptions())
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	results := []models.AnalysisResult{resultWithScores("rec-a", 80, 80, 80, 80, 80)}
	prevDay := &models.Report{OverallScore: 75}
	prevWeek := &models.Report{OverallScore: 82}

	report, err := agg.Aggregate("user-1", date, results, prevDay, prevWeek)
	require.NoError(t, err)

	require.NotNil(t, report.ScoreChange24h)
	assert.Equal(t, 5.0, *report.ScoreChange24h)
	require.NotNil(t, report.ScoreChange7d)
	assert.Equal(t, -2.0, *report.ScoreChange7d)
}

func TestAggregateMergesAndRanksPatterns(t *testing.T) {
	agg := NewAggregator(DefaultOptions())

	first := resultWithScores("rec-a", 70, 70, 70, 70, 70)
	first.PatternsDetected = models.PatternSummaryMap{
		analyzer.FamilyFillerWords: {Count: 4, Category: models.CategoryPowerDynamics},
		analyzer.FamilyHedging:     {Count: 2, Category: models.CategoryPowerDynamics},
	}
	second := resultWithScores("rec-b", 80, 80, 80, 80, 80)
	second.PatternsDetected = models.PatternSummaryMap{
		analyzer.FamilyFillerWords:  {Count: 3, Category: models.CategoryPowerDynamics},
		analyzer.FamilyPassiveVoice: {Count: 2, Category: models.CategoryLinguisticAuthority},
	}

	report, err := agg.Aggregate("user-1", time.Now(), []models.AnalysisResult{first, second}, nil, nil)
	require.NoError(t, err)

	require.Len(t, report.TopPatterns, 3)
	assert.Equal(t, analyzer.FamilyFillerWords, report.TopPatterns[0].PatternType)
	assert.Equal(t, 7, report.TopPatterns[0].Occurrences)

	// hedging and passive_voice tie at 2; linguistic_authority sorts before
	// power_dynamics
	assert.Equal(t, analyzer.FamilyPassiveVoice, report.TopPatterns[1].PatternType)
	assert.Equal(t, analyzer.FamilyHedging, report.TopPatterns[2].PatternType)

	for _, p := range report.TopPatterns {
		assert.NotEmpty(t, p.Recommendation)
		assert.Less(t, p.ImpactScore, 0.0)
	}
}

func TestAggregateSuggestionsFollowPatternRank(t *testing.T) {
	agg := NewAggregator(Options{MaxCriticalMoments: 10, MaxSuggestions: 2})

	result := resultWithScores("rec-a", 70, 70, 70, 70, 70)
	result.PatternsDetected = models.PatternSummaryMap{
		analyzer.FamilyFillerWords: {Count: 5, Category: models.CategoryPowerDynamics},
		analyzer.FamilyHedging:     {Count: 3, Category: models.CategoryPowerDynamics},
		analyzer.FamilyJargon:      {Count: 1, Category: models.CategoryLinguisticAuthority},
	}

	report, err := agg.Aggregate("user-1", time.Now(), []models.AnalysisResult{result}, nil, nil)
	require.NoError(t, err)

	require.Len(t, report.ImprovementSuggestions, 2)
	assert.Equal(t, recommendationFor(analyzer.FamilyFillerWords), report.ImprovementSuggestions[0])
	assert.Equal(t, recommendationFor(analyzer.FamilyHedging), report.ImprovementSuggestions[1])
}

func TestAggregateMomentsSortedAndBounded(t *testing.T) {
	agg := NewAggregator(Options{MaxCriticalMoments: 3, MaxSuggestions: 3})

	first := resultWithScores("rec-a", 70, 70, 70, 70, 70)
	first.CriticalMoments = models.CriticalMomentList{
		{Timestamp: 5, Severity: models.SeverityLow, Issue: "a"},
		{Timestamp: 1, Severity: models.SeverityHigh, Issue: "b"},
	}
	second := resultWithScores("rec-b", 80, 80, 80, 80, 80)
	second.CriticalMoments = models.CriticalMomentList{
		{Timestamp: 3, Severity: models.SeverityMedium, Issue: "c"},
		{Timestamp: 2, Severity: models.SeverityHigh, Issue: "d"},
		{Timestamp: 9, Severity: models.SeverityLow, Issue: "e"},
	}

	report, err := agg.Aggregate("user-1", time.Now(), []models.AnalysisResult{first, second}, nil, nil)
	require.NoError(t, err)

	require.Len(t, report.CriticalMoments, 3)
	assert.Equal(t, "b", report.CriticalMoments[0].Issue)
	assert.Equal(t, "d", report.CriticalMoments[1].Issue)
	assert.Equal(t, "c", report.CriticalMoments[2].Issue)
}

func TestAggregateIdempotent(t *testing.T) {
	agg := NewAggregator(DefaultOptions())
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	result := resultWithScores("rec-a", 72.5, 70, 71, 74, 75)
	result.PatternsDetected = models.PatternSummaryMap{
		analyzer.FamilyHedging: {Count: 3, Category: models.CategoryPowerDynamics},
	}
	result.CriticalMoments = models.CriticalMomentList{
		{Timestamp: 2, Severity: models.SeverityMedium, Issue: "hedge"},
	}

	firstRun, err := agg.Aggregate("user-1", date, []models.AnalysisResult{result}, nil, nil)
	require.NoError(t, err)
	secondRun, err := agg.Aggregate("user-1", date, []models.AnalysisResult{result}, nil, nil)
	require.NoError(t, err)

	firstRun.GeneratedAt = secondRun.GeneratedAt
	assert.Equal(t, firstRun, secondRun)
}
