package analyses

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/speechmastery/coach-api/internal/models"
)

// repository implements AnalysisRepository
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new analysis repository
func NewRepository(db *gorm.DB) AnalysisRepository {
	return &repository{db: db}
}

// Create saves a new analysis result
func (r *repository) Create(ctx context.Context, result *models.AnalysisResult) error {
	return r.db.WithContext(ctx).Create(result).Error
}

// GetByRecordingID retrieves a result by recording ID
func (r *repository) GetByRecordingID(ctx context.Context, recordingID string) (*models.AnalysisResult, error) {
	var result models.AnalysisResult
	err := r.db.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		First(&result).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}

	return &result, nil
}

// ListByUserBetween retrieves a user's results recorded in [start, end).
// The fixed ordering keeps downstream aggregation deterministic.
func (r *repository) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]models.AnalysisResult, error) {
	var results []models.AnalysisResult
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recorded_at >= ? AND recorded_at < ?", userID, start.UTC(), end.UTC()).
		Order("recorded_at ASC, recording_id ASC").
		Find(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

// Delete removes a result by recording ID. The delete is unscoped so the
// unique recording_id slot is freed for a later re-analysis.
func (r *repository) Delete(ctx context.Context, recordingID string) error {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("recording_id = ?", recordingID).
		Delete(&models.AnalysisResult{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrAnalysisNotFound
	}

	return nil
}

// Exists checks if a result exists for a recording
func (r *repository) Exists(ctx context.Context, recordingID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AnalysisResult{}).
		Where("recording_id = ?", recordingID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
