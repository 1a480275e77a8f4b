package jobs

import (
	"toolrental-pos/internal/config"
	"toolrental-pos/internal/logger"
	"toolrental-pos/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	archive repository.AgreementRepository
	config  *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(archive repository.AgreementRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		archive: archive,
		config:  cfg,
	}
}

// Config exposes the configuration to the scheduler
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

// RunAll runs every job once (for manual execution)
func (jr *JobRunner) RunAll() {
	jr.PurgeOldAgreements()
	jr.LogDailySummary()
}
