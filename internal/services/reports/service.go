package reports

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/analyses"
)

// service implements ReportService
type service struct {
	analyses   analyses.AnalysisService
	repo       ReportRepository
	aggregator *Aggregator
	location   *time.Location
}

// NewService creates a new report service. Reporting-day boundaries are
// computed in loc.
func NewService(analysisService analyses.AnalysisService, repo ReportRepository, aggregator *Aggregator, loc *time.Location) ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		analyses:   analysisService,
		repo:       repo,
		aggregator: aggregator,
		location:   loc,
	}
}

// GenerateReport aggregates the day's analyses and upserts the report.
// Regenerating for the same underlying analyses replaces the stored row
// with identical content aside from GeneratedAt.
func (s *service) GenerateReport(ctx context.Context, userID string, date time.Time) (*models.Report, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	results, err := s.analyses.ListForDay(ctx, userID, date, s.location)
	if err != nil {
		return nil, err
	}

	prevDay := s.baseline(ctx, userID, date.AddDate(0, 0, -1))
	prevWeek := s.baseline(ctx, userID, date.AddDate(0, 0, -7))

	report, err := s.aggregator.Aggregate(userID, date, results, prevDay, prevWeek)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			log.Printf("[DEBUG] No analyses for user %s on %s, no report generated", userID, date.Format("2006-01-02"))
		}
		return nil, err
	}

	if err := s.repo.Upsert(ctx, report); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Generated report for user %s on %s: overall=%.2f, recordings=%d",
		userID, date.Format("2006-01-02"), report.OverallScore, report.RecordingsAnalyzed)

	return report, nil
}

// GetReport retrieves a previously generated report
func (s *service) GetReport(ctx context.Context, userID string, date time.Time) (*models.Report, error) {
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return s.repo.GetByUserDate(ctx, userID, date)
}

// baseline fetches a prior report for delta computation; a missing baseline
// is expected and returns nil
func (s *service) baseline(ctx context.Context, userID string, date time.Time) *models.Report {
	report, err := s.repo.GetByUserDate(ctx, userID, date)
	if err != nil {
		if !errors.Is(err, ErrReportNotFound) {
			log.Printf("[WARN] Failed to load baseline report for user %s on %s: %v",
				userID, date.Format("2006-01-02"), err)
		}
		return nil
	}
	return report
}
