package models

import (
	"time"
)

// Submission outcomes stored in SubmissionLog.Status
const (
	SubmissionStatusSuccess = "SUCCESS"
	SubmissionStatusFailed  = "FAILED"
)

// SubmissionLog represents the bill_submission_logs table, one row per
// new bill submission attempt
type SubmissionLog struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	DocumentID string     `json:"document_id" gorm:"column:document_id;size:36;uniqueIndex"`
	Email      string     `json:"email" gorm:"column:email;index"`
	BillName   string     `json:"bill_name" gorm:"column:bill_name"`
	FileName   string     `json:"file_name" gorm:"column:file_name"`
	Status     string     `json:"status" gorm:"column:status;size:16"`
	Message    string     `json:"message" gorm:"column:message"`
	CreatedAt  *time.Time `json:"created_at" gorm:"index"`
}

// TableName sets the insert table name for SubmissionLog
func (SubmissionLog) TableName() string {
	return "bill_submission_logs"
}
