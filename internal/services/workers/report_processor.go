package workers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/jobs"
	"github.com/speechmastery/coach-api/internal/services/reports"
)

// ReportProcessor processes daily report generation jobs
type ReportProcessor struct {
	jobService    jobs.Service
	reportService reports.ReportService
}

// NewReportProcessor creates a new report processor
func NewReportProcessor(jobService jobs.Service, reportService reports.ReportService) *ReportProcessor {
	return &ReportProcessor{
		jobService:    jobService,
		reportService: reportService,
	}
}

// CanProcess returns true if this processor can handle the job type
func (p *ReportProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeReportGeneration
}

// ProcessJob processes a report generation job
func (p *ReportProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	if !p.CanProcess(job.Type) {
		return fmt.Errorf("unsupported job type: %s", job.Type)
	}

	log.Printf("Processing report generation job %d", job.ID)

	userID, ok := job.GetPayloadString(jobs.PayloadUserID)
	if !ok || userID == "" {
		return models.NewInputError("bad_payload", "user_id not found in payload", "", nil)
	}
	dateStr, ok := job.GetPayloadString(jobs.PayloadReportDate)
	if !ok || dateStr == "" {
		return models.NewInputError("bad_payload", "report_date not found in payload", "", nil)
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return models.NewInputError("bad_payload", "report_date must be YYYY-MM-DD", err.Error(), err)
	}

	report, err := p.reportService.GenerateReport(ctx, userID, date)
	if err != nil {
		// An empty day is deterministic; retrying cannot produce a report
		if errors.Is(err, reports.ErrNoData) {
			return models.NewInputError("no_data", "no analyses for this date", "", err)
		}
		return models.NewProcessingError("report_failed", "report generation failed", err.Error(), err)
	}

	result := models.JobResult{
		"user_id":             report.UserID,
		"report_date":         dateStr,
		"overall_score":       report.OverallScore,
		"recordings_analyzed": report.RecordingsAnalyzed,
	}
	if err := p.jobService.CompleteJob(ctx, job.ID, result); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	log.Printf("Report generation completed for user %s on %s (overall %.2f)",
		userID, dateStr, report.OverallScore)
	return nil
}
