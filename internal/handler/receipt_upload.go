package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"billed-fe-svc/internal/models"
)

const receiptField = "file"

var errReceiptTooLarge = errors.New("receipt exceeds the upload limit")

// readReceipt loads the uploaded receipt. A request without a file yields nil.
func readReceipt(c *gin.Context, maxBytes int64) (*models.ReceiptFile, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	header, err := c.FormFile(receiptField)
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return nil, nil
		case errors.As(err, &maxErr):
			return nil, errReceiptTooLarge
		default:
			return nil, fmt.Errorf("failed to read receipt: %w", err)
		}
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open receipt: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read receipt: %w", err)
	}

	return &models.ReceiptFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
