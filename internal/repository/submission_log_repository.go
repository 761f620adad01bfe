package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"billed-fe-svc/internal/models"
)

// SubmissionLogRepository defines the data operations on the submission audit log
type SubmissionLogRepository interface {
	CreateSubmissionLog(ctx context.Context, log *models.SubmissionLog) error
	ListSubmissionLogsByEmail(ctx context.Context, email string, limit int) ([]*models.SubmissionLog, error)
	DeleteSubmissionLogsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// submissionLogRepository implements SubmissionLogRepository
type submissionLogRepository struct {
	db *gorm.DB
}

// NewSubmissionLogRepository creates a new instance of SubmissionLogRepository
func NewSubmissionLogRepository(db *gorm.DB) SubmissionLogRepository {
	return &submissionLogRepository{
		db: db,
	}
}

// CreateSubmissionLog inserts one audit row
func (r *submissionLogRepository) CreateSubmissionLog(ctx context.Context, log *models.SubmissionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListSubmissionLogsByEmail returns the most recent attempts of one employee
func (r *submissionLogRepository) ListSubmissionLogsByEmail(ctx context.Context, email string, limit int) ([]*models.SubmissionLog, error) {
	var logs []*models.SubmissionLog
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// DeleteSubmissionLogsBefore removes rows created before cutoff
func (r *submissionLogRepository) DeleteSubmissionLogsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.SubmissionLog{})
	return result.RowsAffected, result.Error
}

// noopSubmissionLogRepository is used when no database is configured
type noopSubmissionLogRepository struct{}

// NewNoopSubmissionLogRepository returns a repository that stores nothing
func NewNoopSubmissionLogRepository() SubmissionLogRepository {
	return noopSubmissionLogRepository{}
}

func (noopSubmissionLogRepository) CreateSubmissionLog(context.Context, *models.SubmissionLog) error {
	return nil
}

func (noopSubmissionLogRepository) ListSubmissionLogsByEmail(context.Context, string, int) ([]*models.SubmissionLog, error) {
	return []*models.SubmissionLog{}, nil
}

func (noopSubmissionLogRepository) DeleteSubmissionLogsBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}
