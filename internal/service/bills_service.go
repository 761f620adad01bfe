package service

import (
	"context"
	"fmt"
	"sort"

	"billed-fe-svc/internal/models"
	"billed-fe-svc/internal/models/response"
	"billed-fe-svc/internal/store"
	"billed-fe-svc/pkg/logger"
	"billed-fe-svc/pkg/utils"
)

// Navigator moves the employee to another page route
type Navigator func(route string)

// receiptModalWidth is the preview width in pixels
const receiptModalWidth = 400

// BillsContainer drives the bills page
type BillsContainer struct {
	store      store.Store
	onNavigate Navigator
	logger     *logger.Logger
}

// NewBillsContainer creates the bills page container
func NewBillsContainer(store store.Store, onNavigate Navigator, logger *logger.Logger) *BillsContainer {
	return &BillsContainer{
		store:      store,
		onNavigate: onNavigate,
		logger:     logger,
	}
}

// GetBills fetches the bills, most recent first, ready for display.
// Store errors are returned as is so the page can show their message.
func (b *BillsContainer) GetBills(ctx context.Context) ([]response.BillView, error) {
	if b.store == nil {
		return nil, nil
	}

	bills, err := b.store.Bills().List(ctx)
	if err != nil {
		return nil, err
	}

	SortBillsByDateDesc(bills)

	views := make([]response.BillView, 0, len(bills))
	for _, bill := range bills {
		views = append(views, b.toView(bill))
	}
	return views, nil
}

func (b *BillsContainer) toView(bill models.Bill) response.BillView {
	display, err := utils.FormatDate(bill.Date)
	if err != nil {
		// corrupted data: show the raw date
		b.logger.WithError(err).WithField("bill_id", bill.ID).Warn("Failed to format bill date")
		display = bill.Date
	}
	return response.BillView{
		Bill:        bill,
		DisplayDate: display,
		StatusLabel: utils.FormatStatus(string(bill.Status)),
	}
}

// HandleClickNewBill sends the employee to the new bill form
func (b *BillsContainer) HandleClickNewBill() {
	b.onNavigate(models.RouteNewBill)
}

// HandleClickIconEye opens the receipt preview of a bill
func (b *BillsContainer) HandleClickIconEye(bill models.Bill) response.ReceiptModal {
	return response.ReceiptModal{
		BillURL:  bill.FileURL,
		FileName: bill.FileName,
		ImgWidth: receiptModalWidth,
	}
}

// FindBill returns the bill with the given id from an already loaded list
func FindBill(views []response.BillView, id string) (models.Bill, error) {
	for _, v := range views {
		if v.ID == id {
			return v.Bill, nil
		}
	}
	return models.Bill{}, fmt.Errorf("bill %s not found", id)
}

// SortBillsByDateDesc orders bills by their date string, latest first.
// The comparison is lexicographic, which is chronological for YYYY-MM-DD.
func SortBillsByDateDesc(bills []models.Bill) {
	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].Date > bills[j].Date
	})
}
