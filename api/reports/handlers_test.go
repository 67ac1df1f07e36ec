package reports_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apireports "github.com/speechmastery/coach-api/api/reports"
	"github.com/speechmastery/coach-api/api/types"
	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/analyses"
	"github.com/speechmastery/coach-api/internal/services/analyzer"
	"github.com/speechmastery/coach-api/internal/services/jobs"
	"github.com/speechmastery/coach-api/internal/services/reports"
	"github.com/speechmastery/coach-api/internal/services/scoring"
	"github.com/speechmastery/coach-api/pkg/config"
	"github.com/speechmastery/coach-api/pkg/lexicon"
)

type reportsTestSuite struct {
	t               *testing.T
	analysisService analyses.AnalysisService
	router          *gin.Engine
}

func setupReportsTestSuite(t *testing.T) *reportsTestSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.AutoMigrate(&models.AnalysisResult{}, &models.Report{}, &models.Job{}))

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

	deps := &types.Dependencies{
		AnalysisService: analysisService,
		ReportService: reports.NewService(analysisService, reports.NewRepository(db),
			reports.NewAggregator(reports.DefaultOptions()), time.UTC),
		JobService: jobs.NewService(jobs.NewRepository(db)),
	}

	router := gin.New()
	group := router.Group("/api/v1/reports")
	apireports.RegisterRoutes(group, deps)

	return &reportsTestSuite{t: t, analysisService: analysisService, router: router}
}

func (suite *reportsTestSuite) analyze(recordingID, transcript string, recordedAt time.Time) {
	_, err := suite.analysisService.AnalyzeRecording(context.Background(), analyses.AnalyzeRequest{
		RecordingID: recordingID,
		UserID:      "user-1",
		Transcript:  transcript,
		Audio:       analyzer.AudioMetadata{DurationSeconds: 30},
		RecordedAt:  recordedAt,
	})
	require.NoError(suite.t, err)
}

func (suite *reportsTestSuite) post(payload map[string]interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(suite.t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *reportsTestSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	suite.router.ServeHTTP(w, req)
	return w
}

func TestPostReport(t *testing.T) {
	suite := setupReportsTestSuite(t)
	day := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	suite.analyze("rec-1", "I think maybe we should consider this option.", day)
	suite.analyze("rec-2", "We will deliver the results on schedule because the data is solid.", day.Add(2*time.Hour))

	tests := []struct {
		name           string
		payload        map[string]interface{}
		expectedStatus int
		validateFunc   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful generation",
			payload: map[string]interface{}{
				"user_id": "user-1",
				"date":    "2026-03-14",
			},
			expectedStatus: http.StatusOK,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var report models.Report
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
				assert.Equal(t, "user-1", report.UserID)
				assert.Equal(t, 2, report.RecordingsAnalyzed)
				assert.GreaterOrEqual(t, report.OverallScore, 0.0)
				assert.LessOrEqual(t, report.OverallScore, 100.0)
				assert.NotEmpty(t, report.ImprovementSuggestions)
			},
		},
		{
			name: "empty day",
			payload: map[string]interface{}{
				"user_id": "user-1",
				"date":    "2026-03-20",
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "bad date",
			payload: map[string]interface{}{
				"user_id": "user-1",
				"date":    "14-03-2026",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing user",
			payload: map[string]interface{}{
				"date": "2026-03-14",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := suite.post(tt.payload)
			assert.Equal(t, tt.expectedStatus, w.Code, "body: %s", w.Body.String())
			if tt.validateFunc != nil {
				tt.validateFunc(t, w)
			}
		})
	}
}

func TestPostReportAsyncQueuesJob(t *testing.T) {
	suite := setupReportsTestSuite(t)

	payload := map[string]interface{}{
		"user_id": "user-1",
		"date":    "2026-03-14",
		"async":   true,
	}

	w := suite.post(payload)
	require.Equal(t, http.StatusAccepted, w.Code, "body: %s", w.Body.String())

	var queued types.QueuedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &queued))
	assert.Equal(t, types.StatusQueued, queued.Status)
	assert.NotZero(t, queued.JobID)

	// Same user-date reuses the active job
	w = suite.post(payload)
	require.Equal(t, http.StatusAccepted, w.Code)
	var repeat types.QueuedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &repeat))
	assert.Equal(t, queued.JobID, repeat.JobID)
}

func TestGetReport(t *testing.T) {
	suite := setupReportsTestSuite(t)
	day := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	suite.analyze("rec-1", "I think maybe we should consider this option.", day)

	w := suite.post(map[string]interface{}{"user_id": "user-1", "date": "2026-03-14"})
	require.Equal(t, http.StatusOK, w.Code)

	w = suite.get("/api/v1/reports/user-1/2026-03-14")
	require.Equal(t, http.StatusOK, w.Code)
	var report models.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "user-1", report.UserID)
	assert.Equal(t, 1, report.RecordingsAnalyzed)

	w = suite.get("/api/v1/reports/user-1/2026-03-15")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = suite.get("/api/v1/reports/user-1/tomorrow")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
