package types

import (
	"github.com/speechmastery/coach-api/internal/database"
	"github.com/speechmastery/coach-api/internal/services/analyses"
	"github.com/speechmastery/coach-api/internal/services/jobs"
	"github.com/speechmastery/coach-api/internal/services/reports"
	"github.com/speechmastery/coach-api/internal/services/workers"
	"github.com/speechmastery/coach-api/pkg/lexicon"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	AnalysisService analyses.AnalysisService
	ReportService   reports.ReportService
	JobService      jobs.Service
	WorkerPool      *workers.WorkerPool
	Lexicons        *lexicon.Store
}
