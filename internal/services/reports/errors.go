package reports

import "errors"

var (
	// ErrNoData is returned when a day has no analyzed recordings.
	// A report only exists for days with at least one analysis.
	ErrNoData = errors.New("no analyses for this date")

	// ErrReportNotFound is returned when no report exists for a user-date
	ErrReportNotFound = errors.New("report not found")

	// ErrInvalidUserID is returned for an empty user identifier
	ErrInvalidUserID = errors.New("user ID is required")
)
