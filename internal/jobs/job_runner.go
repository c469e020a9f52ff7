package jobs

import (
	"context"

	"church-inventory-backend/internal/config"
	"church-inventory-backend/internal/logger"
	"church-inventory-backend/internal/service"
)

// JobRunner coordinates the scheduled jobs
type JobRunner struct {
	checkouts service.CheckoutService
	email     service.EmailSender
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(checkouts service.CheckoutService, email service.EmailSender, cfg *config.Config) *JobRunner {
	return &JobRunner{
		checkouts: checkouts,
		email:     email,
		config:    cfg,
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

// SendOverdueSummary mails the configured admin a digest of every open
// checkout whose expected return date has passed. Overdue is computed at
// read time, never written back.
func (jr *JobRunner) SendOverdueSummary() {
	jr.runWithRecovery("SendOverdueSummary", func() {
		ctx := context.Background()

		overdue, err := jr.checkouts.ListOverdue(ctx)
		if err != nil {
			logger.Error("Failed to list overdue checkouts", "error", err)
			return
		}
		if len(overdue) == 0 {
			logger.Info("No overdue checkouts")
			return
		}

		adminEmail := jr.config.Scheduler.AdminEmail
		if adminEmail == "" {
			logger.Warn("No admin email configured, skipping overdue summary", "overdue_count", len(overdue))
			return
		}
		if err := jr.email.SendOverdueSummary(ctx, adminEmail, overdue); err != nil {
			logger.Error("Failed to send overdue summary", "error", err, "to", adminEmail)
			return
		}
		logger.Info("Sent overdue summary", "to", adminEmail, "overdue_count", len(overdue))
	})
}
