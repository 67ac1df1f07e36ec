package analyses

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/analyzer"
	"github.com/speechmastery/coach-api/internal/services/scoring"
	"github.com/speechmastery/coach-api/pkg/config"
	"github.com/speechmastery/coach-api/pkg/errors"
	"github.com/speechmastery/coach-api/pkg/lexicon"
)

func testConfig() config.AnalysisConfig {
	return config.AnalysisConfig{
		Weights: config.ScoreWeights{
			PowerDynamics:       0.30,
			LinguisticAuthority: 0.25,
			VocalCommand:        0.20,
			PersuasionInfluence: 0.25,
		},
		IdealWPMMin: 140,
		IdealWPMMax: 160,
	}
}

func analyzeAndScore(t *testing.T, transcript string, duration float64) (*analyzer.Metrics, scoring.Scores) {
	t.Helper()
	a := analyzer.New(lexicon.NewStore(lexicon.Default()))
	m, err := a.Analyze(transcript, analyzer.AudioMetadata{DurationSeconds: duration})
	require.NoError(t, err)
	return m, scoring.NewEngine(testConfig()).Score(m)
}

func TestBuildAssemblesResult(t *testing.T) {
	builder := NewBuilder(testConfig())
	m, scores := analyzeAndScore(t, "I think maybe we should consider this option.", 10)

	recordedAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	result, err := builder.Build("rec-1", "user-1", recordedAt, m, scores)
	require.NoError(t, err)

	assert.Equal(t, "rec-1", result.RecordingID)
	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, recordedAt, result.RecordedAt)
	assert.Equal(t, 2, result.HedgingTotal)
	assert.Equal(t, result.CriticalMomentsCount, len(result.CriticalMoments))
	assert.Contains(t, result.PatternsDetected, analyzer.FamilyHedging)

	hedging := result.PatternsDetected[analyzer.FamilyHedging]
	assert.Equal(t, 2, hedging.Count)
	assert.Equal(t, models.CategoryPowerDynamics, hedging.Category)
	assert.NotEmpty(t, hedging.ImpactTier)
}

func TestBuildRejectsOutOfRangeScore(t *testing.T) {
	builder := NewBuilder(testConfig())
	m, scores := analyzeAndScore(t, "A perfectly fine sentence.", 10)

	scores.Overall = 101
	_, err := builder.Build("rec-1", "user-1", time.Now(), m, scores)
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeScoreRange, appErr.Code)
}

func TestBuildRejectsInconsistentTotals(t *testing.T) {
	builder := NewBuilder(testConfig())
	m, scores := analyzeAndScore(t, "Um, this has um some fillers.", 10)

	m.FillerWordsTotal++
	_, err := builder.Build("rec-1", "user-1", time.Now(), m, scores)
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeScoreRange, appErr.Code)
}

func TestBuildRoundsScoresAndRatios(t *testing.T) {
	builder := NewBuilder(testConfig())
	m, scores := analyzeAndScore(t, "The plan was approved. We execute it now. Everything works.", 13)

	result, err := builder.Build("rec-1", "user-1", time.Now(), m, scores)
	require.NoError(t, err)

	assert.InDelta(t, result.OverallScore, scores.Overall, 0.005)
	for _, score := range []float64{
		result.OverallScore,
		result.PowerDynamicsScore,
		result.LinguisticAuthorityScore,
		result.VocalCommandScore,
		result.PersuasionInfluenceScore,
		result.WordsPerMinute,
	} {
		assert.Equal(t, score, round2(score), "expected 2-decimal rounding")
	}
	assert.Equal(t, result.PassiveVoiceRatio, round3(result.PassiveVoiceRatio))
	assert.GreaterOrEqual(t, result.PassiveVoiceRatio, 0.0)
	assert.LessOrEqual(t, result.PassiveVoiceRatio, 1.0)
}

func TestBuildPacingPatternOnlyOutsideBand(t *testing.T) {
	builder := NewBuilder(testConfig())

	// 30 words in 12 seconds is 150 WPM, inside the band
	inBand, scores := analyzeAndScore(t, "alpha beta gamma delta epsilon zeta eta theta iota kappa "+
		"lambda mu nu xi omicron pi rho sigma tau upsilon "+
		"phi chi psi omega one two three four five six", 12)
	result, err := builder.Build("rec-1", "user-1", time.Now(), inBand, scores)
	require.NoError(t, err)
	assert.NotContains(t, result.PatternsDetected, analyzer.FamilyPacing)

	// The same words over 60 seconds is 30 WPM, far below the band
	slow, slowScores := analyzeAndScore(t, "alpha beta gamma delta epsilon zeta eta theta iota kappa "+
		"lambda mu nu xi omicron pi rho sigma tau upsilon "+
		"phi chi psi omega one two three four five six", 60)
	result, err = builder.Build("rec-2", "user-1", time.Now(), slow, slowScores)
	require.NoError(t, err)
	require.Contains(t, result.PatternsDetected, analyzer.FamilyPacing)
	assert.Equal(t, TierHigh, result.PatternsDetected[analyzer.FamilyPacing].ImpactTier)
}
