package analyses

import (
	"context"
	"time"

	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/analyzer"
)

// AnalyzeRequest carries everything needed to analyze one recording
type AnalyzeRequest struct {
	RecordingID string
	UserID      string
	Transcript  string
	Audio       analyzer.AudioMetadata
	RecordedAt  time.Time
}

// AnalysisService defines the interface for analysis operations
type AnalysisService interface {
	// AnalyzeRecording runs the full pipeline for one recording and persists
	// the result. A recording can only be analyzed once.
	AnalyzeRecording(ctx context.Context, req AnalyzeRequest) (*models.AnalysisResult, error)

	// GetByRecordingID retrieves the analysis for a recording
	GetByRecordingID(ctx context.Context, recordingID string) (*models.AnalysisResult, error)

	// ListForDay retrieves all analyses recorded by a user on a calendar
	// date in the given timezone
	ListForDay(ctx context.Context, userID string, date time.Time, loc *time.Location) ([]models.AnalysisResult, error)

	// DeleteByRecordingID removes the analysis for a recording
	DeleteByRecordingID(ctx context.Context, recordingID string) error
}

// AnalysisRepository defines the interface for analysis data access
type AnalysisRepository interface {
	// Create saves a new analysis result
	Create(ctx context.Context, result *models.AnalysisResult) error

	// GetByRecordingID retrieves a result by recording ID
	GetByRecordingID(ctx context.Context, recordingID string) (*models.AnalysisResult, error)

	// ListByUserBetween retrieves a user's results recorded in [start, end),
	// ordered by recording time then recording ID
	ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]models.AnalysisResult, error)

	// Delete removes a result by recording ID
	Delete(ctx context.Context, recordingID string) error

	// Exists checks if a result exists for a recording
	Exists(ctx context.Context, recordingID string) (bool, error)
}
