// Package jobs provides the scheduled background tasks of the marketplace,
// built on github.com/robfig/cron/v3.
//
// The only job today is StalePaymentJob, which sweeps orders whose payment
// has been pending longer than the configured window and cancels them. Jobs
// are coordinated through JobManager:
//
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, paymentWindow, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"localcrust/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stalePaymentJob *StalePaymentJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	cancelStaleOrdersHandler commands.CancelStaleOrdersCommandHandler,
	paymentWindow time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stalePaymentJob: NewStalePaymentJob(cancelStaleOrdersHandler, paymentWindow, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stalePaymentJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale payment job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePaymentJob.Stop()
}
