package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billed-fe-svc/internal/models/response"
	"billed-fe-svc/internal/service"
	"billed-fe-svc/internal/store"
	"billed-fe-svc/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BillsHandler serves the employee bills page
type BillsHandler struct {
	newStore      StoreFactory
	exportService service.ExportService
	logger        *logger.Logger
}

// NewBillsHandler creates a new BillsHandler instance
func NewBillsHandler(newStore StoreFactory, exportService service.ExportService, logger *logger.Logger) *BillsHandler {
	return &BillsHandler{
		newStore:      newStore,
		exportService: exportService,
		logger:        logger,
	}
}

// GetBillsPage renders the bills of the signed-in employee, latest first.
// ?preview=<id> opens the receipt modal of that bill.
func (h *BillsHandler) GetBillsPage(c *gin.Context) {
	container := h.container(c)

	bills, err := container.GetBills(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load bills")
		c.HTML(store.StatusCode(err), "error.html", gin.H{"Error": err.Error()})
		return
	}

	var modal *response.ReceiptModal
	if id := c.Query("preview"); id != "" {
		bill, err := service.FindBill(bills, id)
		if err != nil {
			h.logger.WithField("bill_id", id).Debug("Preview requested for unknown bill")
		} else {
			m := container.HandleClickIconEye(bill)
			modal = &m
		}
	}

	c.HTML(http.StatusOK, "bills.html", gin.H{
		"Bills": bills,
		"Modal": modal,
	})
}

// ClickNewBill sends the employee to the new bill form
func (h *BillsHandler) ClickNewBill(c *gin.Context) {
	h.container(c).HandleClickNewBill()
}

// ExportBills downloads the employee bills as a spreadsheet
func (h *BillsHandler) ExportBills(c *gin.Context) {
	bills, err := h.container(c).GetBills(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load bills for export")
		c.HTML(store.StatusCode(err), "error.html", gin.H{"Error": err.Error()})
		return
	}

	content, fileName, err := h.exportService.ExportBillsToExcel(bills)
	if err != nil {
		h.logger.WithError(err).Error("Failed to export bills")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Error": "Erreur 500"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, xlsxContentType, content)
}

func (h *BillsHandler) container(c *gin.Context) *service.BillsContainer {
	return service.NewBillsContainer(h.newStore(sessionToken(c)), redirectTo(c), h.logger)
}
