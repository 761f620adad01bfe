package store

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"

	"billed-fe-svc/internal/models"
)

type formField struct {
	name  string
	value string
}

type formFile struct {
	field string
	file  *models.ReceiptFile
}

// FormData is an ordered multipart body under construction
type FormData struct {
	fields []formField
	files  []formFile
}

// NewFormData returns an empty FormData
func NewFormData() *FormData {
	return &FormData{}
}

// Append adds a text field
func (f *FormData) Append(name, value string) {
	f.fields = append(f.fields, formField{name: name, value: value})
}

// AppendFile adds a file part under the given field name
func (f *FormData) AppendFile(field string, file *models.ReceiptFile) {
	if file == nil {
		return
	}
	f.files = append(f.files, formFile{field: field, file: file})
}

// Get returns the first value of a text field
func (f *FormData) Get(name string) (string, bool) {
	for _, field := range f.fields {
		if field.name == name {
			return field.value, true
		}
	}
	return "", false
}

// File returns the first file appended under field
func (f *FormData) File(field string) (*models.ReceiptFile, bool) {
	for _, ff := range f.files {
		if ff.field == field {
			return ff.file, true
		}
	}
	return nil, false
}

// Encode writes the multipart body and returns it with its content type
func (f *FormData) Encode() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", field.name, err)
		}
	}

	for _, ff := range f.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, ff.field, ff.file.Name))
		contentType := ff.file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := part.Write(ff.file.Content); err != nil {
			return nil, "", fmt.Errorf("failed to write file part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return body, w.FormDataContentType(), nil
}
