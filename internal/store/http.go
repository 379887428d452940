package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/djibh/billed/internal/bill"
)

// HTTPStore talks to the remote record store over HTTP: JSON for
// records, multipart for the receipt file upload.
type HTTPStore struct {
	client  *http.Client
	baseURL *url.URL
}

// NewHTTPStore creates an HTTPStore rooted at baseURL. A nil client
// falls back to a default http.Client.
func NewHTTPStore(client *http.Client, baseURL string) (*HTTPStore, error) {
	if client == nil {
		client = &http.Client{}
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing store base URL %q: %w", baseURL, err)
	}
	return &HTTPStore{client: client, baseURL: u}, nil
}

func (s *HTTPStore) endpoint(parts ...string) string {
	return s.baseURL.JoinPath(parts...).String()
}

// List fetches all bill records for the current user.
func (s *HTTPStore) List(ctx context.Context) ([]bill.Bill, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint("bills"), nil)
	if err != nil {
		return nil, fmt.Errorf("building list request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing bills: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var bills []bill.Bill
	if err := json.NewDecoder(resp.Body).Decode(&bills); err != nil {
		return nil, fmt.Errorf("decoding bills: %w", err)
	}
	return bills, nil
}

// CreateFile uploads a receipt file and returns the stored-file
// descriptor. The owner's email travels alongside the file in the
// multipart form.
func (s *HTTPStore) CreateFile(ctx context.Context, name string, data []byte, email string) (FileRef, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return FileRef{}, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return FileRef{}, fmt.Errorf("writing file data: %w", err)
	}
	if err := writer.WriteField("email", email); err != nil {
		return FileRef{}, fmt.Errorf("writing email field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return FileRef{}, fmt.Errorf("closing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint("bills"), &body)
	if err != nil {
		return FileRef{}, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return FileRef{}, fmt.Errorf("uploading file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return FileRef{}, &StatusError{Code: resp.StatusCode}
	}

	var ref FileRef
	if err := json.NewDecoder(resp.Body).Decode(&ref); err != nil {
		return FileRef{}, fmt.Errorf("decoding file descriptor: %w", err)
	}
	return ref, nil
}

// Update writes the bill record identified by id and returns the
// updated record.
func (s *HTTPStore) Update(ctx context.Context, id string, b bill.Bill) (bill.Bill, error) {
	payload, err := json.Marshal(b)
	if err != nil {
		return bill.Bill{}, fmt.Errorf("marshaling bill: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, s.endpoint("bills", id), bytes.NewReader(payload))
	if err != nil {
		return bill.Bill{}, fmt.Errorf("building update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return bill.Bill{}, fmt.Errorf("updating bill: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return bill.Bill{}, &StatusError{Code: resp.StatusCode}
	}

	var updated bill.Bill
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		return bill.Bill{}, fmt.Errorf("decoding updated bill: %w", err)
	}
	return updated, nil
}
