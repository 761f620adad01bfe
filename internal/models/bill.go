package models

import (
	"github.com/shopspring/decimal"
)

// BillStatus is the review state of a bill, set by the remote API
type BillStatus string

const (
	BillStatusPending  BillStatus = "pending"
	BillStatusAccepted BillStatus = "accepted"
	BillStatusRefused  BillStatus = "refused"
)

// Bill is an expense record as returned by the bills API
type Bill struct {
	ID           string          `json:"id" example:"47qAXb6fIm2zOKkLzMro"`
	Email        string          `json:"email" example:"employee@test.tld"`
	Type         string          `json:"type" example:"Hôtel et logement"`
	Name         string          `json:"name" example:"encore"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"number" example:"400"`
	Date         string          `json:"date" example:"2004-04-04"`
	VAT          string          `json:"vat" example:"80"`
	Pct          int             `json:"pct" example:"20"`
	Commentary   string          `json:"commentary" example:"séminaire billed"`
	CommentAdmin string          `json:"commentAdmin,omitempty" example:"ok"`
	FileURL      string          `json:"fileUrl" example:"https://test.storage.tld/v0/b/billable/preview-facture.jpg"`
	FileName     string          `json:"fileName" example:"preview-facture-free-201801-pdf-1.jpg"`
	Status       BillStatus      `json:"status" example:"pending"`
}
