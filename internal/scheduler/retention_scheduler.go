package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"billed-fe-svc/internal/repository"
	"billed-fe-svc/pkg/logger"
)

// RetentionScheduler periodically purges old submission audit rows
type RetentionScheduler struct {
	logs           repository.SubmissionLogRepository
	logger         *logger.Logger
	cron           *cron.Cron
	cronExpression string
	retention      time.Duration
	now            func() time.Time
}

// NewRetentionScheduler creates a new retention scheduler keeping rows for
// retentionDays days
func NewRetentionScheduler(logs repository.SubmissionLogRepository, logger *logger.Logger, cronExpression string, retentionDays int) *RetentionScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &RetentionScheduler{
		logs:           logs,
		logger:         logger,
		cron:           c,
		cronExpression: cronExpression,
		retention:      time.Duration(retentionDays) * 24 * time.Hour,
		now:            time.Now,
	}
}

// Start schedules the purge job and starts the cron runner
func (s *RetentionScheduler) Start() error {
	if s.retention <= 0 {
		return fmt.Errorf("retention must be positive, got %s", s.retention)
	}

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	s.logger.WithField("cron_expression", s.cronExpression).Info("Scheduling submission log retention job")
	_, err := s.cron.AddFunc(s.cronExpression, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		_, _ = s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule retention job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Retention scheduler started successfully")
	return nil
}

// Stop waits for a running job and stops the scheduler
func (s *RetentionScheduler) Stop() {
	s.logger.Info("Stopping retention scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Retention scheduler stopped successfully")
}

// RunOnce deletes the rows older than the retention window
func (s *RetentionScheduler) RunOnce(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.retention)

	deleted, err := s.logs.DeleteSubmissionLogsBefore(ctx, cutoff)
	if err != nil {
		s.logger.WithError(err).WithField("cutoff", cutoff).Error("Failed to purge submission logs")
		return 0, err
	}

	s.logger.WithFields(map[string]interface{}{
		"cutoff":  cutoff,
		"deleted": deleted,
	}).Info("Submission logs purged")
	return deleted, nil
}
