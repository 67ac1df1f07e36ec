package analyses

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/analyzer"
	"github.com/speechmastery/coach-api/internal/services/scoring"
)

// service implements AnalysisService
type service struct {
	analyzer *analyzer.Analyzer
	engine   *scoring.Engine
	builder  *Builder
	repo     AnalysisRepository
}

// NewService creates a new analysis service
func NewService(a *analyzer.Analyzer, engine *scoring.Engine, builder *Builder, repo AnalysisRepository) AnalysisService {
	return &service{
		analyzer: a,
		engine:   engine,
		builder:  builder,
		repo:     repo,
	}
}

// AnalyzeRecording runs the analyze pipeline for one recording.
// Analysis is rejected with ErrAlreadyAnalyzed when a result already exists;
// results are immutable once written.
func (s *service) AnalyzeRecording(ctx context.Context, req AnalyzeRequest) (*models.AnalysisResult, error) {
	if req.RecordingID == "" {
		return nil, ErrInvalidRecordingID
	}
	if req.UserID == "" {
		return nil, ErrInvalidUserID
	}

	exists, err := s.repo.Exists(ctx, req.RecordingID)
	if err != nil {
		return nil, err
	}
	if exists {
		log.Printf("[DEBUG] Recording %s already analyzed, rejecting", req.RecordingID)
		return nil, ErrAlreadyAnalyzed
	}

	metrics, err := s.analyzer.Analyze(req.Transcript, req.Audio)
	if err != nil {
		return nil, err
	}

	scores := s.engine.Score(metrics)

	recordedAt := req.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	result, err := s.builder.Build(req.RecordingID, req.UserID, recordedAt, metrics, scores)
	if err != nil {
		log.Printf("[ERROR] Building analysis result for recording %s: %v", req.RecordingID, err)
		return nil, err
	}

	if err := s.repo.Create(ctx, result); err != nil {
		// Another analysis for the same recording won the race
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			log.Printf("[DEBUG] UNIQUE constraint failed for recording %s, concurrent analysis exists", req.RecordingID)
			return nil, ErrAlreadyAnalyzed
		}
		return nil, err
	}

	log.Printf("[INFO] Analyzed recording %s for user %s: overall=%.2f, moments=%d",
		req.RecordingID, req.UserID, result.OverallScore, result.CriticalMomentsCount)

	return result, nil
}

// GetByRecordingID retrieves the analysis for a recording
func (s *service) GetByRecordingID(ctx context.Context, recordingID string) (*models.AnalysisResult, error) {
	if recordingID == "" {
		return nil, ErrInvalidRecordingID
	}
	return s.repo.GetByRecordingID(ctx, recordingID)
}

// ListForDay retrieves all analyses recorded by a user on a calendar date.
// The date's year/month/day are interpreted in loc.
func (s *service) ListForDay(ctx context.Context, userID string, date time.Time, loc *time.Location) ([]models.AnalysisResult, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if loc == nil {
		loc = time.UTC
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)

	return s.repo.ListByUserBetween(ctx, userID, start, end)
}

// DeleteByRecordingID removes the analysis for a recording
func (s *service) DeleteByRecordingID(ctx context.Context, recordingID string) error {
	if recordingID == "" {
		return ErrInvalidRecordingID
	}

	log.Printf("[DEBUG] Deleting analysis for recording %s", recordingID)
	return s.repo.Delete(ctx, recordingID)
}
