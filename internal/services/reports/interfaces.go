package reports

import (
	"context"
	"time"

	"github.com/speechmastery/coach-api/internal/models"
)

// ReportService defines the interface for daily report operations
type ReportService interface {
	// GenerateReport aggregates the day's analyses into a report and
	// persists it, replacing any previous report for the same user-date.
	// Fails with ErrNoData when the day has no analyses.
	GenerateReport(ctx context.Context, userID string, date time.Time) (*models.Report, error)

	// GetReport retrieves a previously generated report
	GetReport(ctx context.Context, userID string, date time.Time) (*models.Report, error)
}

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// Upsert inserts or replaces the report for its (user, date) key
	Upsert(ctx context.Context, report *models.Report) error

	// GetByUserDate retrieves a report by user and calendar date
	GetByUserDate(ctx context.Context, userID string, date time.Time) (*models.Report, error)
}
