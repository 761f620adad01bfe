package service

import (
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"billed-fe-svc/internal/models"
)

// InvalidFileFormatMessage is shown to the employee when a receipt is rejected
const InvalidFileFormatMessage = "Format de fichier invalide, merci de charger uniquement des fichiers jpeg, jpg ou png"

// ErrInvalidFileFormat is returned for receipts outside the allowed extensions
var ErrInvalidFileFormat = errors.New(InvalidFileFormatMessage)

var allowedReceiptExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// ReceiptExtension returns the lower-cased extension of a file name, without
// the dot. Both / and \ are treated as path separators.
func ReceiptExtension(fileName string) string {
	base := fileName
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	dot := strings.LastIndex(base, ".")
	if dot < 0 {
		return ""
	}
	return strings.ToLower(base[dot+1:])
}

// ValidateReceipt accepts jpg, jpeg and png files, case-insensitively
func ValidateReceipt(fileName string) error {
	if _, ok := allowedReceiptExtensions[ReceiptExtension(fileName)]; !ok {
		return ErrInvalidFileFormat
	}
	return nil
}

// receiptContentType keeps the declared MIME type and sniffs one from the
// content when the browser sent none
func receiptContentType(file *models.ReceiptFile) string {
	if file.ContentType != "" && file.ContentType != "application/octet-stream" {
		return file.ContentType
	}
	return mimetype.Detect(file.Content).String()
}
