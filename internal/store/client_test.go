package store

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billed-fe-svc/internal/models"
)

func TestClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bills", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"id":"a","date":"2004-04-04","status":"pending","amount":400,"fileUrl":"https://x/a.jpg"},
			{"id":"b","date":"2003-03-03","status":"accepted","amount":"100.5"}
		]`)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL + "/"}).WithToken("token-123")
	bills, err := client.Bills().List(context.Background())
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, "a", bills[0].ID)
	assert.Equal(t, models.BillStatusPending, bills[0].Status)
	assert.True(t, decimal.NewFromInt(400).Equal(bills[0].Amount))
	assert.True(t, decimal.RequireFromString("100.5").Equal(bills[1].Amount))
}

func TestClient_ListErrors(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{name: "not_found_empty_body", status: http.StatusNotFound, expected: "Erreur 404"},
		{name: "server_error_json_message", status: http.StatusInternalServerError, body: `{"message":"boom"}`, expected: "Erreur 500: boom"},
		{name: "unauthorized_text", status: http.StatusUnauthorized, body: "jwt expired\n", expected: "Erreur 401: jwt expired"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			bills, err := NewClient(ClientConfig{BaseURL: srv.URL}).Bills().List(context.Background())
			assert.Nil(t, bills)
			require.Error(t, err)
			assert.Equal(t, tc.expected, err.Error())
			assert.Equal(t, tc.status, StatusCode(err))
		})
	}
}

func TestClient_CreateMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "employee@test.tld", r.FormValue("email"))
		assert.Equal(t, "Transports", r.FormValue("type"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)
		assert.Equal(t, "facture.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		assert.Equal(t, "png-bytes", string(content))

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"fileUrl":"https://localhost:3456/images/test.jpg","key":"1234"}`)
	}))
	defer srv.Close()

	data := NewFormData()
	data.Append("email", "employee@test.tld")
	data.Append("type", "Transports")
	data.AppendFile("file", &models.ReceiptFile{Name: "facture.png", ContentType: "image/png", Content: []byte("png-bytes")})

	bill, err := NewClient(ClientConfig{BaseURL: srv.URL}).Bills().Create(context.Background(), CreateRequest{
		Data:    data,
		Headers: Headers{NoContentType: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "1234", bill.ID)
	assert.Equal(t, "https://localhost:3456/images/test.jpg", bill.FileURL)
}

func TestClient_CreateJSONWithoutNoContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var fields map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.Equal(t, "encore", fields["name"])
		_, _ = io.WriteString(w, `{"id":"x1","name":"encore"}`)
	}))
	defer srv.Close()

	data := NewFormData()
	data.Append("name", "encore")

	bill, err := NewClient(ClientConfig{BaseURL: srv.URL}).Bills().Create(context.Background(), CreateRequest{Data: data})
	require.NoError(t, err)
	assert.Equal(t, "x1", bill.ID)
}

func TestClient_CreateWithoutData(t *testing.T) {
	_, err := NewClient(ClientConfig{BaseURL: "http://unused"}).Bills().Create(context.Background(), CreateRequest{})
	assert.Error(t, err)
}

func TestClient_Update(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/bills/47qAXb6fIm2zOKkLzMro", r.URL.Path)
		var bill models.Bill
		require.NoError(t, json.NewDecoder(r.Body).Decode(&bill))
		bill.Status = models.BillStatusAccepted
		_ = json.NewEncoder(w).Encode(bill)
	}))
	defer srv.Close()

	updated, err := NewClient(ClientConfig{BaseURL: srv.URL}).Bills().Update(context.Background(), UpdateRequest{
		Selector: "47qAXb6fIm2zOKkLzMro",
		Bill:     &models.Bill{ID: "47qAXb6fIm2zOKkLzMro", Name: "encore", Status: models.BillStatusPending},
	})
	require.NoError(t, err)
	assert.Equal(t, models.BillStatusAccepted, updated.Status)
	assert.Equal(t, "encore", updated.Name)

	_, err = NewClient(ClientConfig{BaseURL: srv.URL}).Bills().Update(context.Background(), UpdateRequest{Bill: &models.Bill{}})
	assert.Error(t, err)
}

func TestStatusCode_NonAPIError(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, StatusCode(io.ErrUnexpectedEOF))
}
