package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/analyses"
	"github.com/speechmastery/coach-api/internal/services/jobs"
	apperrors "github.com/speechmastery/coach-api/pkg/errors"
)

// AnalysisProcessor processes transcript analysis jobs
type AnalysisProcessor struct {
	jobService      jobs.Service
	analysisService analyses.AnalysisService
}

// NewAnalysisProcessor creates a new analysis processor
func NewAnalysisProcessor(jobService jobs.Service, analysisService analyses.AnalysisService) *AnalysisProcessor {
	return &AnalysisProcessor{
		jobService:      jobService,
		analysisService: analysisService,
	}
}

// CanProcess returns true if this processor can handle the job type
func (p *AnalysisProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeTranscriptAnalysis
}

// ProcessJob processes a transcript analysis job
func (p *AnalysisProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	if !p.CanProcess(job.Type) {
		return fmt.Errorf("unsupported job type: %s", job.Type)
	}

	log.Printf("Processing transcript analysis job %d", job.ID)

	req, err := p.parseRequest(job)
	if err != nil {
		return models.NewInputError("bad_payload", "invalid analysis job payload", err.Error(), err)
	}

	result, err := p.analysisService.AnalyzeRecording(ctx, req)
	if err != nil {
		// A concurrent or duplicate enqueue already produced the result;
		// the job's work is done
		if errors.Is(err, analyses.ErrAlreadyAnalyzed) {
			log.Printf("Recording %s already analyzed, completing job %d", req.RecordingID, job.ID)
			existing, getErr := p.analysisService.GetByRecordingID(ctx, req.RecordingID)
			if getErr != nil {
				return models.NewSystemError("fetch_existing", "failed to load existing analysis", getErr.Error(), getErr)
			}
			return p.complete(ctx, job, existing)
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Code == apperrors.ErrCodeInvalidInput {
			return models.NewInputError("invalid_input", appErr.Message, "", err)
		}
		return models.NewProcessingError("analysis_failed", "transcript analysis failed", err.Error(), err)
	}

	return p.complete(ctx, job, result)
}

func (p *AnalysisProcessor) complete(ctx context.Context, job *models.Job, result *models.AnalysisResult) error {
	jobResult := models.JobResult{
		"recording_id":           result.RecordingID,
		"overall_score":          result.OverallScore,
		"critical_moments_count": result.CriticalMomentsCount,
	}
	if err := p.jobService.CompleteJob(ctx, job.ID, jobResult); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	log.Printf("Transcript analysis completed for recording %s (overall %.2f)",
		result.RecordingID, result.OverallScore)
	return nil
}

// parseRequest extracts the analyze request from the job payload
func (p *AnalysisProcessor) parseRequest(job *models.Job) (analyses.AnalyzeRequest, error) {
	var req analyses.AnalyzeRequest

	recordingID, ok := job.GetPayloadString(jobs.PayloadRecordingID)
	if !ok || recordingID == "" {
		return req, fmt.Errorf("recording_id not found in payload")
	}
	userID, ok := job.GetPayloadString(jobs.PayloadUserID)
	if !ok || userID == "" {
		return req, fmt.Errorf("user_id not found in payload")
	}
	transcript, ok := job.GetPayloadString(jobs.PayloadTranscript)
	if !ok {
		return req, fmt.Errorf("transcript not found in payload")
	}

	req.RecordingID = recordingID
	req.UserID = userID
	req.Transcript = transcript

	// Audio metadata rides as a nested object; round-trip through JSON to
	// decode it into the typed struct
	if raw, ok := job.Payload[jobs.PayloadAudio]; ok {
		encoded, err := json.Marshal(raw)
		if err != nil {
			return req, fmt.Errorf("encoding audio_metadata: %w", err)
		}
		if err := json.Unmarshal(encoded, &req.Audio); err != nil {
			return req, fmt.Errorf("decoding audio_metadata: %w", err)
		}
	}

	if recordedAt, ok := job.GetPayloadString(jobs.PayloadRecordedAt); ok && recordedAt != "" {
		parsed, err := time.Parse(time.RFC3339, recordedAt)
		if err != nil {
			return req, fmt.Errorf("parsing recorded_at: %w", err)
		}
		req.RecordedAt = parsed
	}

	return req, nil
}
