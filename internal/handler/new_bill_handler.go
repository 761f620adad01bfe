package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"billed-fe-svc/internal/middleware"
	"billed-fe-svc/internal/models"
	"billed-fe-svc/internal/repository"
	"billed-fe-svc/internal/service"
	"billed-fe-svc/internal/session"
	"billed-fe-svc/pkg/logger"
)

// NewBillHandler serves the new bill form
type NewBillHandler struct {
	newStore       StoreFactory
	submissionLogs repository.SubmissionLogRepository
	maxUploadBytes int64
	logger         *logger.Logger
}

// NewNewBillHandler creates a new NewBillHandler instance
func NewNewBillHandler(
	newStore StoreFactory,
	submissionLogs repository.SubmissionLogRepository,
	maxUploadBytes int64,
	logger *logger.Logger,
) *NewBillHandler {
	return &NewBillHandler{
		newStore:       newStore,
		submissionLogs: submissionLogs,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// GetNewBillPage renders an empty form
func (h *NewBillHandler) GetNewBillPage(c *gin.Context) {
	renderNewBill(c, http.StatusOK, models.NewBillDraft{}, "")
}

// SubmitNewBill validates the receipt and creates the bill. A rejected
// receipt re-renders the form with an alert and the typed fields; a failed
// creation re-renders it empty and silently; a created bill redirects to the
// bills page.
func (h *NewBillHandler) SubmitNewBill(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	var alert string
	form := service.NewBillForm(
		h.newStore(sessionToken(c)),
		session.Static{Session: sess},
		redirectTo(c),
		func(message string) { alert = message },
		h.submissionLogs,
		h.logger,
	)

	receipt, err := readReceipt(c, h.maxUploadBytes)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to read receipt upload")
		if errors.Is(err, errReceiptTooLarge) {
			renderNewBill(c, http.StatusRequestEntityTooLarge, models.NewBillDraft{}, "Fichier trop volumineux")
			return
		}
		renderNewBill(c, http.StatusBadRequest, models.NewBillDraft{}, "Impossible de lire le justificatif")
		return
	}

	var draft models.NewBillDraft
	if err := c.ShouldBind(&draft); err != nil {
		h.logger.WithError(err).Warn("Invalid new bill form")
		renderNewBill(c, http.StatusBadRequest, draft, "Formulaire invalide")
		return
	}

	if err := form.HandleChangeFile(receipt); err != nil {
		renderNewBill(c, http.StatusUnprocessableEntity, draft, alert)
		return
	}

	if err := form.HandleSubmit(c.Request.Context(), draft); err != nil {
		// already logged by the form; the employee stays on the page
		renderNewBill(c, http.StatusOK, models.NewBillDraft{}, "")
		return
	}
}

// renderNewBill renders the form with the given field values. The file input
// is always empty.
func renderNewBill(c *gin.Context, status int, draft models.NewBillDraft, alert string) {
	c.HTML(status, "new_bill.html", gin.H{
		"Draft": draft,
		"Alert": alert,
	})
}
