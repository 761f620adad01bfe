package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"billed-fe-svc/internal/models"
)

// HTTPDoer is the subset of *http.Client used by Client
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// ClientConfig holds the bills API connection settings
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration // Default: 30 seconds
}

// Client talks to the bills API over HTTP
type Client struct {
	baseURL string
	token   string
	http    HTTPDoer
}

// NewClient creates a bills API client
func NewClient(config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return NewClientWithDoer(config.BaseURL, &http.Client{Timeout: timeout})
}

// NewClientWithDoer creates a client on top of a custom HTTP doer
func NewClientWithDoer(baseURL string, doer HTTPDoer) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
	}
}

// WithToken returns a copy of the client that authenticates as the given
// bearer token
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Bills implements Store
func (c *Client) Bills() BillsAPI {
	return &billsAPI{client: c}
}

type billsAPI struct {
	client *Client
}

// List fetches every bill visible to the current user
func (b *billsAPI) List(ctx context.Context) ([]models.Bill, error) {
	var bills []models.Bill
	if err := b.client.do(ctx, http.MethodGet, "/bills", nil, "", &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// Create posts a new bill. With NoContentType set the multipart encoder
// decides the content type (and boundary); otherwise the form fields are
// sent as a JSON object.
func (b *billsAPI) Create(ctx context.Context, req CreateRequest) (*models.Bill, error) {
	if req.Data == nil {
		return nil, fmt.Errorf("create bill: missing form data")
	}

	var (
		body        io.Reader
		contentType string
	)
	if req.Headers.NoContentType {
		buf, ct, err := req.Data.Encode()
		if err != nil {
			return nil, fmt.Errorf("create bill: %w", err)
		}
		body, contentType = buf, ct
	} else {
		fields := make(map[string]string, len(req.Data.fields))
		for _, f := range req.Data.fields {
			fields[f.name] = f.value
		}
		raw, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("create bill: failed to marshal fields: %w", err)
		}
		body, contentType = bytes.NewReader(raw), "application/json"
	}

	var created createdBill
	if err := b.client.do(ctx, http.MethodPost, "/bills", body, contentType, &created); err != nil {
		return nil, err
	}
	bill := created.Bill
	if bill.ID == "" {
		bill.ID = created.Key
	}
	return &bill, nil
}

// Update patches the bill identified by req.Selector
func (b *billsAPI) Update(ctx context.Context, req UpdateRequest) (*models.Bill, error) {
	if req.Selector == "" {
		return nil, fmt.Errorf("update bill: missing selector")
	}
	if req.Bill == nil {
		return nil, fmt.Errorf("update bill: missing bill")
	}

	raw, err := json.Marshal(req.Bill)
	if err != nil {
		return nil, fmt.Errorf("update bill: failed to marshal bill: %w", err)
	}

	var updated models.Bill
	path := "/bills/" + url.PathEscape(req.Selector)
	if err := b.client.do(ctx, http.MethodPatch, path, bytes.NewReader(raw), "application/json", &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// createdBill accepts both a full bill and the {fileUrl, key} answer some
// API versions return
type createdBill struct {
	models.Bill
	Key string `json:"key"`
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

const maxErrorMessage = 200

func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorMessage {
		msg = msg[:maxErrorMessage]
	}
	return msg
}
