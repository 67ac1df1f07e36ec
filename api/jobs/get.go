package jobs

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/speechmastery/coach-api/api/types"
	"github.com/speechmastery/coach-api/internal/services/jobs"
)

// @Summary Get job status
// @Description Retrieves the status and result of a background job
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} types.JobStatusResponse "Job status"
// @Failure 400 {object} types.ErrorResponse "Invalid job ID"
// @Failure 404 {object} types.ErrorResponse "Job not found"
// @Failure 500 {object} types.ErrorResponse "Lookup failed"
// @Router /api/v1/jobs/{id} [get]
func GetJob(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		idParam, ok := types.RequireParam(c, "id")
		if !ok {
			return
		}

		jobID, err := strconv.ParseUint(idParam, 10, 32)
		if err != nil {
			types.SendBadRequest(c, "Job ID must be a positive integer")
			return
		}

		job, err := deps.JobService.GetJob(c.Request.Context(), uint(jobID))
		if err != nil {
			if errors.Is(err, jobs.ErrJobNotFound) {
				types.SendNotFound(c, "Job "+idParam+" not found")
				return
			}
			log.Printf("[ERROR] Failed to load job %s: %v", idParam, err)
			types.SendInternalError(c, "Failed to load job")
			return
		}

		response := types.JobStatusResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			JobID:        job.ID,
			JobType:      string(job.Type),
			JobStatus:    string(job.Status),
			RetryCount:   job.RetryCount,
			Error:        job.Error,
		}
		if job.Result != nil {
			response.Result = job.Result
		}

		types.SendSuccess(c, response)
	}
}
