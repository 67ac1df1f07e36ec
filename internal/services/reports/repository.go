package reports

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/speechmastery/coach-api/internal/models"
)

// repository implements ReportRepository
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new report repository
func NewRepository(db *gorm.DB) ReportRepository {
	return &repository{db: db}
}

// Upsert inserts or replaces the report for its (user, date) key.
// Concurrent generation for the same key is resolved by the UNIQUE
// constraint: the loser retries as an update.
func (r *repository) Upsert(ctx context.Context, report *models.Report) error {
	var existing models.Report
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND report_date = ?", report.UserID, report.ReportDate).
		First(&existing).Error

	if err == nil {
		report.ID = existing.ID
		report.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(report).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	err = r.db.WithContext(ctx).Create(report).Error
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		// Another generation run won the race; replace its row
		if findErr := r.db.WithContext(ctx).
			Where("user_id = ? AND report_date = ?", report.UserID, report.ReportDate).
			First(&existing).Error; findErr != nil {
			return findErr
		}
		report.ID = existing.ID
		report.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(report).Error
	}
	return err
}

// GetByUserDate retrieves a report by user and calendar date
func (r *repository) GetByUserDate(ctx context.Context, userID string, date time.Time) (*models.Report, error) {
	var report models.Report
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND report_date = ?", userID, dateOnly(date)).
		First(&report).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	return &report, nil
}
