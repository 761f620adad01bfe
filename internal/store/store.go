package store

import (
	"context"

	"billed-fe-svc/internal/models"
)

// Store gives access to the remote API resources
type Store interface {
	Bills() BillsAPI
}

// BillsAPI is the bills resource of the remote API
type BillsAPI interface {
	List(ctx context.Context) ([]models.Bill, error)
	Create(ctx context.Context, req CreateRequest) (*models.Bill, error)
	Update(ctx context.Context, req UpdateRequest) (*models.Bill, error)
}

// Headers carries transport hints for a request
type Headers struct {
	// NoContentType leaves the content type to the body encoder, so a
	// multipart body gets its generated boundary.
	NoContentType bool
}

// CreateRequest is the payload of BillsAPI.Create
type CreateRequest struct {
	Data    *FormData
	Headers Headers
}

// UpdateRequest is the payload of BillsAPI.Update. Selector is the bill id.
type UpdateRequest struct {
	Selector string
	Bill     *models.Bill
}
