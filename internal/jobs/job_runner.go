// Package jobs holds the time-based collaborators of the booking engine.
// The engine itself never scans the clock; these run from the cron binary.
package jobs

import (
	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentalRepo   repository.RentalRepository
	customerRepo repository.CustomerRepository
	vehicleRepo  repository.VehicleRepository
	rentalSvc    service.RentalService
	notifier     service.Notifier
	clock        service.Clock
	config       *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	rentalRepo repository.RentalRepository,
	customerRepo repository.CustomerRepository,
	vehicleRepo repository.VehicleRepository,
	rentalSvc service.RentalService,
	notifier service.Notifier,
	clock service.Clock,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		rentalSvc:    rentalSvc,
		notifier:     notifier,
		clock:        clock,
		config:       cfg,
	}
}

// Config exposes the loaded configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
