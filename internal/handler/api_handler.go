package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"billed-fe-svc/internal/middleware"
	"billed-fe-svc/internal/models/response"
	"billed-fe-svc/internal/repository"
	"billed-fe-svc/internal/service"
	"billed-fe-svc/internal/session"
	"billed-fe-svc/internal/store"
	"billed-fe-svc/pkg/logger"
	"billed-fe-svc/pkg/utils"
)

const (
	defaultSubmissionLimit = 50
	maxSubmissionLimit     = 200
)

// APIHandler handles the JSON endpoints used by the pages' scripts
type APIHandler struct {
	newStore       StoreFactory
	submissionLogs repository.SubmissionLogRepository
	maxUploadBytes int64
	logger         *logger.Logger
}

// NewAPIHandler creates a new APIHandler instance
func NewAPIHandler(
	newStore StoreFactory,
	submissionLogs repository.SubmissionLogRepository,
	maxUploadBytes int64,
	logger *logger.Logger,
) *APIHandler {
	return &APIHandler{
		newStore:       newStore,
		submissionLogs: submissionLogs,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// GetBills returns the bills of the signed-in employee
// @Summary List bills
// @Description Bills of the signed-in employee, latest first, with display date and status label
// @Tags bills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]response.BillView} "Bills retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 502 {object} utils.APIResponse "Bills API error"
// @Router /api/v1/bills [get]
func (h *APIHandler) GetBills(c *gin.Context) {
	container := service.NewBillsContainer(h.newStore(sessionToken(c)), func(string) {}, h.logger)

	bills, err := container.GetBills(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load bills")
		utils.ErrorResponse(c, store.StatusCode(err), "Failed to load bills", err)
		return
	}

	if bills == nil {
		bills = []response.BillView{}
	}
	utils.SuccessResponse(c, "Bills retrieved successfully", bills)
}

// ValidateReceipt checks a receipt before the form is sent
// @Summary Validate a receipt
// @Description Accepts jpg, jpeg and png receipts
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Receipt image"
// @Success 200 {object} utils.APIResponse{data=response.ReceiptValidationResponse} "Receipt accepted"
// @Failure 400 {object} utils.APIResponse "Missing file"
// @Failure 413 {object} utils.APIResponse "Receipt too large"
// @Failure 422 {object} utils.APIResponse "Invalid file format"
// @Router /api/v1/receipts/validate [post]
func (h *APIHandler) ValidateReceipt(c *gin.Context) {
	receipt, err := readReceipt(c, h.maxUploadBytes)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to read receipt upload")
		if errors.Is(err, errReceiptTooLarge) {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "Receipt too large", err)
			return
		}
		utils.BadRequestResponse(c, "Invalid receipt upload", err)
		return
	}
	if receipt == nil {
		utils.BadRequestResponse(c, "file is required", nil)
		return
	}

	sess, _ := middleware.SessionFromContext(c)
	var alert string
	form := service.NewBillForm(nil, session.Static{Session: sess}, func(string) {}, func(m string) { alert = m }, nil, h.logger)
	if err := form.HandleChangeFile(receipt); err != nil {
		utils.UnprocessableEntityResponse(c, alert, err)
		return
	}

	utils.SuccessResponse(c, "Receipt accepted", response.ReceiptValidationResponse{
		FileName:    form.File().Name,
		ContentType: form.File().ContentType,
		Accepted:    true,
	})
}

// GetSubmissions returns the latest bill submission attempts of the employee
// @Summary List submission attempts
// @Tags bills
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows (default 50, max 200)"
// @Success 200 {object} utils.APIResponse{data=[]models.SubmissionLog} "Submissions retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid limit"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/submissions [get]
func (h *APIHandler) GetSubmissions(c *gin.Context) {
	limit := defaultSubmissionLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.BadRequestResponse(c, "limit must be a positive integer", err)
			return
		}
		limit = min(parsed, maxSubmissionLimit)
	}

	sess, _ := middleware.SessionFromContext(c)
	logs, err := h.submissionLogs.ListSubmissionLogsByEmail(c.Request.Context(), sess.Email, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list submissions")
		utils.InternalServerErrorResponse(c, "Failed to list submissions", err)
		return
	}

	utils.SuccessResponse(c, "Submissions retrieved successfully", logs)
}
