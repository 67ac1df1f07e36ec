package types

// Status constants for API responses
const (
	StatusOK         = "ok"
	StatusError      = "error"
	StatusProcessing = "processing"
	StatusQueued     = "queued"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}

// JobStatusResponse for async job status
type JobStatusResponse struct {
	BaseResponse
	JobID      uint        `json:"job_id"`
	JobType    string      `json:"job_type"`
	JobStatus  string      `json:"job_status"`
	RetryCount int         `json:"retry_count"`
	Error      string      `json:"error,omitempty"`
	Result     interface{} `json:"result,omitempty"`
}

// QueuedResponse acknowledges an accepted asynchronous request
type QueuedResponse struct {
	BaseResponse
	JobID uint `json:"job_id"`
}
