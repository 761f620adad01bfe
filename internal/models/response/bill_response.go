package response

import "billed-fe-svc/internal/models"

// BillView is one row of the bills page
type BillView struct {
	models.Bill
	DisplayDate string `json:"displayDate" example:"4 Avr. 04"`
	StatusLabel string `json:"statusLabel" example:"En attente"`
}

// ReceiptModal is the receipt preview opened from a bill's eye icon
type ReceiptModal struct {
	BillURL  string `json:"billUrl"`
	FileName string `json:"fileName"`
	ImgWidth int    `json:"imgWidth"`
}

// ReceiptValidationResponse is returned by the receipt pre-validation endpoint
type ReceiptValidationResponse struct {
	FileName    string `json:"fileName" example:"facturefreemobile.jpg"`
	ContentType string `json:"contentType" example:"image/jpeg"`
	Accepted    bool   `json:"accepted" example:"true"`
}
