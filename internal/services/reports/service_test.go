package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/analyses"
	"github.com/speechmastery/coach-api/internal/services/analyzer"
	"github.com/speechmastery/coach-api/internal/services/scoring"
	"github.com/speechmastery/coach-api/pkg/config"
	"github.com/speechmastery/coach-api/pkg/lexicon"
)

type testStack struct {
	analyses analyses.AnalysisService
	reports  ReportService
}

func setupStack(t *testing.T) *testStack {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AnalysisResult{}, &models.Report{}))

	cfg := config.AnalysisConfig{
		Weights: config.ScoreWeights{
			PowerDynamics:       0.30,
			LinguisticAuthority: 0.25,
			VocalCommand:        0.20,
			PersuasionInfluence: 0.25,
		},
		IdealWPMMin: 140,
		IdealWPMMax: 160,
	}

	analysisService := analyses.NewService(
		analyzer.New(lexicon.NewStore(lexicon.Default())),
		scoring.NewEngine(cfg),
		analyses.NewBuilder(cfg),
		analyses.NewRepository(db),
	)
	reportService := NewService(analysisService, NewRepository(db), NewAggregator(DefaultOptions()), time.UTC)

	return &testStack{analyses: analysisService, reports: reportService}
}

func (s *testStack) analyzeAt(t *testing.T, recordingID, transcript string, at time.Time) *models.AnalysisResult {
	t.Helper()
	result, err := s.analyses.AnalyzeRecording(context.Background(), analyses.AnalyzeRequest{
		RecordingID: recordingID,
		UserID:      "user-1",
		Transcript:  transcript,
		Audio:       analyzer.AudioMetadata{DurationSeconds: 30},
		RecordedAt:  at,
	})
	require.NoError(t, err)
	return result
}

func TestGenerateReportEmptyDay(t *testing.T) {
	stack := setupStack(t)

	_, err := stack.reports.GenerateReport(context.Background(), "user-1", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNoData)
}

func TestGenerateReportAveragesDay(t *testing.T) {
	stack := setupStack(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	first := stack.analyzeAt(t, "rec-a", "We delivered the feature on schedule and customers adopted it.", day.Add(9*time.Hour))
	second := stack.analyzeAt(t, "rec-b", "I think maybe it was sort of finished? Um, probably.", day.Add(15*time.Hour))

	report, err := stack.reports.GenerateReport(ctx, "user-1", day)
	require.NoError(t, err)

	assert.Equal(t, 2, report.RecordingsAnalyzed)
	assert.Equal(t, 60.0, report.TotalDuration)
	expected := round2((first.OverallScore + second.OverallScore) / 2)
	assert.Equal(t, expected, report.OverallScore)
	assert.NotEmpty(t, report.TopPatterns)
	assert.NotEmpty(t, report.ImprovementSuggestions)
}

func TestGenerateReportUpsertIsIdempotent(t *testing.T) {
	stack := setupStack(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	stack.analyzeAt(t, "rec-a", "Um, I think maybe this demo was sort of ready?", day.Add(10*time.Hour))

	first, err := stack.reports.GenerateReport(ctx, "user-1", day)
	require.NoError(t, err)
	second, err := stack.reports.GenerateReport(ctx, "user-1", day)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "regeneration must replace, not duplicate")
	assert.Equal(t, first.OverallScore, second.OverallScore)
	assert.Equal(t, first.TopPatterns, second.TopPatterns)
	assert.Equal(t, first.CriticalMoments, second.CriticalMoments)
	assert.Equal(t, first.ImprovementSuggestions, second.ImprovementSuggestions)

	stored, err := stack.reports.GetReport(ctx, "user-1", day)
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
}

func TestGenerateReportComputesDeltas(t *testing.T) {
	stack := setupStack(t)
	ctx := context.Background()
	dayOne := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	dayTwo := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	stack.analyzeAt(t, "rec-a", "Um, I think maybe it was sort of okay? I guess.", dayOne.Add(12*time.Hour))
	baseline, err := stack.reports.GenerateReport(ctx, "user-1", dayOne)
	require.NoError(t, err)

	stack.analyzeAt(t, "rec-b", "We shipped the release. Customers adopted it because the team executed.", dayTwo.Add(12*time.Hour))
	report, err := stack.reports.GenerateReport(ctx, "user-1", dayTwo)
	require.NoError(t, err)

	require.NotNil(t, report.ScoreChange24h)
	assert.Equal(t, round2(report.OverallScore-baseline.OverallScore), *report.ScoreChange24h)
	assert.Nil(t, report.ScoreChange7d)
}

func TestGetReportNotFound(t *testing.T) {
	stack := setupStack(t)

	_, err := stack.reports.GetReport(context.Background(), "user-1", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrReportNotFound)
}
