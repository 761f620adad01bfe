package models

// ReceiptFile is the receipt image attached to a new bill
type ReceiptFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// NewBillDraft holds the fields of the new bill form. It lives for one
// submission only.
type NewBillDraft struct {
	Type       string `form:"expense-type" json:"type"`
	Name       string `form:"expense-name" json:"name"`
	Amount     string `form:"amount" json:"amount" binding:"omitempty,numeric"`
	Date       string `form:"datepicker" json:"date"`
	VAT        string `form:"vat" json:"vat" binding:"omitempty,numeric"`
	Pct        string `form:"pct" json:"pct" binding:"omitempty,numeric"`
	Commentary string `form:"commentary" json:"commentary"`

	File *ReceiptFile `form:"-" json:"-"`
}

// DefaultPct is applied when the form leaves the VAT percentage empty
const DefaultPct = 20
