package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/speechmastery/coach-api/api"
	"github.com/speechmastery/coach-api/api/types"
	"github.com/speechmastery/coach-api/internal/database"
	"github.com/speechmastery/coach-api/internal/models"
	"github.com/speechmastery/coach-api/internal/services/analyses"
	"github.com/speechmastery/coach-api/internal/services/analyzer"
	"github.com/speechmastery/coach-api/internal/services/jobs"
	"github.com/speechmastery/coach-api/internal/services/reports"
	"github.com/speechmastery/coach-api/internal/services/scoring"
	"github.com/speechmastery/coach-api/internal/services/workers"
	"github.com/speechmastery/coach-api/pkg/config"
	"github.com/speechmastery/coach-api/pkg/lexicon"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Speech Mastery API server with the configured settings.

The server accepts recording transcripts for analysis, serves stored
analysis results and daily reports, and runs background workers for
queued analysis and report generation jobs.

Example:
  coach-api serve
  coach-api serve --port 9090
  coach-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("[WARN] Error closing database: %v", err)
		}
	}()

	if err := db.AutoMigrate(&models.AnalysisResult{}, &models.Report{}, &models.Job{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	deps, lexicons, pool, err := buildDependencies(db, cfg)
	if err != nil {
		return err
	}
	defer lexicons.Stop()

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	if err := pool.Start(workerCtx); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}
	defer pool.Stop()

	startJobCleanup(workerCtx, deps.JobService, cfg.Processing.JobRetentionDays)

	server := api.NewServer(fmt.Sprintf("%s:%d", serverHost, serverPort))
	server.SetDatabase(db)
	server.SetDependencies(deps)
	server.SetConfig(cfg)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Printf("[INFO] Speech Mastery API listening on %s:%d", serverHost, serverPort)

	select {
	case <-stop:
		log.Printf("[INFO] Shutting down server...")
	case err := <-serverErr:
		log.Printf("[ERROR] %v", err)
		log.Printf("[INFO] Shutting down server...")
	}

	cancelWorkers()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] Server forced to shutdown: %v", err)
		return err
	}

	log.Printf("[INFO] Server gracefully stopped")
	return nil
}

// buildDependencies wires the service stack behind the HTTP handlers
func buildDependencies(db *database.DB, cfg *config.Config) (*types.Dependencies, *lexicon.Store, *workers.WorkerPool, error) {
	lexicons := lexicon.NewStoreFromFile(cfg.Analysis.LexiconPath)
	if cfg.Analysis.WatchLexicon {
		if err := lexicons.Watch(); err != nil {
			log.Printf("[WARN] Lexicon watching disabled: %v", err)
		}
	}

	loc, err := time.LoadLocation(cfg.Reports.Timezone)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid reports timezone %q: %w", cfg.Reports.Timezone, err)
	}

	analysisService := analyses.NewService(
		analyzer.New(lexicons),
		scoring.NewEngine(cfg.Analysis),
		analyses.NewBuilder(cfg.Analysis),
		analyses.NewRepository(db.DB),
	)
	reportService := reports.NewService(
		analysisService,
		reports.NewRepository(db.DB),
		reports.NewAggregator(reports.Options{
			MaxCriticalMoments: cfg.Reports.MaxCriticalMoments,
			MaxSuggestions:     cfg.Reports.MaxSuggestions,
		}),
		loc,
	)
	jobService := jobs.NewService(jobs.NewRepository(db.DB),
		jobs.WithDefaultMaxRetries(cfg.Processing.RetryAttempts))

	pool := workers.NewWorkerPool(jobService, cfg.Processing.Workers,
		cfg.Processing.PollInterval, cfg.Processing.JobTimeout)
	pool.RegisterProcessor(workers.NewAnalysisProcessor(jobService, analysisService))
	pool.RegisterProcessor(workers.NewReportProcessor(jobService, reportService))

	deps := &types.Dependencies{
		DB:              db,
		AnalysisService: analysisService,
		ReportService:   reportService,
		JobService:      jobService,
		WorkerPool:      pool,
		Lexicons:        lexicons,
	}

	return deps, lexicons, pool, nil
}

// startJobCleanup deletes terminal jobs past the retention window once a day
func startJobCleanup(ctx context.Context, jobService jobs.Service, retentionDays int) {
	if retentionDays <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deleted, err := jobService.CleanupOldJobs(ctx, retentionDays)
				if err != nil {
					log.Printf("[WARN] Job cleanup failed: %v", err)
					continue
				}
				if deleted > 0 {
					log.Printf("[INFO] Job cleanup removed %d old jobs", deleted)
				}
			}
		}
	}()
}
