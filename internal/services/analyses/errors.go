package analyses

import "errors"

var (
	// ErrAnalysisNotFound is returned when no analysis exists for a recording
	ErrAnalysisNotFound = errors.New("analysis not found")

	// ErrAlreadyAnalyzed is returned when a recording already has an analysis.
	// Results are immutable; re-analysis is rejected rather than versioned.
	ErrAlreadyAnalyzed = errors.New("recording already analyzed")

	// ErrInvalidRecordingID is returned for an empty recording identifier
	ErrInvalidRecordingID = errors.New("recording ID is required")

	// ErrInvalidUserID is returned for an empty user identifier
	ErrInvalidUserID = errors.New("user ID is required")
)
