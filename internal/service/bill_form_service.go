package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"billed-fe-svc/internal/models"
	"billed-fe-svc/internal/repository"
	"billed-fe-svc/internal/session"
	"billed-fe-svc/internal/store"
	"billed-fe-svc/pkg/logger"
)

// FormState tracks where a new bill form is in its lifecycle
type FormState int

const (
	StateEmpty FormState = iota
	StateFileSelected
	StateSubmitting
	StateNavigatedAway
	StateErrorLogged
)

func (s FormState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFileSelected:
		return "file_selected"
	case StateSubmitting:
		return "submitting"
	case StateNavigatedAway:
		return "navigated_away"
	case StateErrorLogged:
		return "error_logged"
	default:
		return "unknown"
	}
}

// Alerter shows a blocking message to the employee
type Alerter func(message string)

// BillForm drives the new bill form. One instance serves one draft.
type BillForm struct {
	store      store.Store
	session    session.Provider
	onNavigate Navigator
	alert      Alerter
	logs       repository.SubmissionLogRepository
	logger     *logger.Logger

	state FormState
	file  *models.ReceiptFile
}

// NewBillForm creates a form bound to its collaborators. logs may be nil.
func NewBillForm(
	store store.Store,
	provider session.Provider,
	onNavigate Navigator,
	alert Alerter,
	logs repository.SubmissionLogRepository,
	logger *logger.Logger,
) *BillForm {
	if logs == nil {
		logs = repository.NewNoopSubmissionLogRepository()
	}
	return &BillForm{
		store:      store,
		session:    provider,
		onNavigate: onNavigate,
		alert:      alert,
		logs:       logs,
		logger:     logger,
		state:      StateEmpty,
	}
}

// State returns the current lifecycle state
func (f *BillForm) State() FormState {
	return f.state
}

// File returns the retained receipt, nil when none was accepted
func (f *BillForm) File() *models.ReceiptFile {
	return f.file
}

// HandleChangeFile validates a newly selected receipt. A rejected file is
// alerted and dropped; a nil file clears the selection.
func (f *BillForm) HandleChangeFile(file *models.ReceiptFile) error {
	if file == nil {
		f.clear()
		return nil
	}

	if err := ValidateReceipt(file.Name); err != nil {
		f.clear()
		f.alert(InvalidFileFormatMessage)
		f.logger.WithField("file_name", file.Name).Info("Receipt rejected")
		return err
	}

	file.ContentType = receiptContentType(file)
	f.file = file
	f.state = StateFileSelected
	return nil
}

// HandleSubmit sends the draft to the bills API. On success the employee is
// navigated to the bills page; on failure the error is only logged.
func (f *BillForm) HandleSubmit(ctx context.Context, draft models.NewBillDraft) error {
	f.state = StateSubmitting
	if draft.File == nil {
		draft.File = f.file
	}
	defer f.clear()

	docID := uuid.New().String()
	email := ""

	err := func() error {
		sess, err := f.session.CurrentUser()
		if err != nil {
			return fmt.Errorf("failed to read session: %w", err)
		}
		email = sess.Email

		_, err = f.store.Bills().Create(ctx, store.CreateRequest{
			Data:    BuildBillFormData(draft, email),
			Headers: store.Headers{NoContentType: true},
		})
		if err != nil {
			return fmt.Errorf("failed to create bill: %w", err)
		}
		return nil
	}()

	f.record(ctx, docID, email, draft, err)

	if err != nil {
		f.state = StateErrorLogged
		f.logger.WithError(err).WithFields(map[string]interface{}{
			"document_id": docID,
			"email":       email,
		}).Error("Bill submission failed")
		return err
	}

	f.state = StateNavigatedAway
	f.logger.WithFields(map[string]interface{}{
		"document_id": docID,
		"email":       email,
	}).Info("Bill submitted")
	f.onNavigate(models.RouteBills)
	return nil
}

func (f *BillForm) clear() {
	f.file = nil
	if f.state != StateNavigatedAway && f.state != StateErrorLogged {
		f.state = StateEmpty
	}
}

func (f *BillForm) record(ctx context.Context, docID, email string, draft models.NewBillDraft, submitErr error) {
	now := time.Now()
	entry := &models.SubmissionLog{
		DocumentID: docID,
		Email:      email,
		BillName:   draft.Name,
		Status:     models.SubmissionStatusSuccess,
		Message:    "bill created",
		CreatedAt:  &now,
	}
	if draft.File != nil {
		entry.FileName = draft.File.Name
	}
	if submitErr != nil {
		entry.Status = models.SubmissionStatusFailed
		entry.Message = submitErr.Error()
	}

	if err := f.logs.CreateSubmissionLog(ctx, entry); err != nil {
		f.logger.WithError(err).WithField("document_id", docID).Warn("Failed to record bill submission")
	}
}

// BuildBillFormData assembles the multipart body of a new bill: every form
// field, the submitter email, the initial status and the receipt under "file"
func BuildBillFormData(draft models.NewBillDraft, email string) *store.FormData {
	data := store.NewFormData()
	data.Append("email", email)
	data.Append("type", draft.Type)
	data.Append("name", draft.Name)
	data.Append("amount", strings.TrimSpace(draft.Amount))
	data.Append("date", draft.Date)
	data.Append("vat", draft.VAT)
	data.Append("pct", strconv.Itoa(parsePct(draft.Pct)))
	data.Append("commentary", draft.Commentary)
	data.Append("status", string(models.BillStatusPending))
	if draft.File != nil {
		data.Append("fileName", draft.File.Name)
		data.AppendFile("file", draft.File)
	}
	return data
}

func parsePct(raw string) int {
	pct, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || pct <= 0 {
		return models.DefaultPct
	}
	return pct
}
