package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/djibh/billed/internal/bill"
)

// FileRef identifies a receipt file after a successful upload.
type FileRef struct {
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
	Key      string `json:"key"`
}

// Store is the remote record store the controllers talk to.
type Store interface {
	// List returns all bill records for the current user, in store order
	List(ctx context.Context) ([]bill.Bill, error)

	// CreateFile uploads a receipt file on behalf of email and returns
	// the stored-file descriptor
	CreateFile(ctx context.Context, name string, data []byte, email string) (FileRef, error)

	// Update writes the bill record identified by id
	Update(ctx context.Context, id string, b bill.Bill) (bill.Bill, error)
}

// StatusError is a failed HTTP exchange with the record store. Its
// message is the user-facing error text ("Erreur 404", "Erreur 500")
// rendered verbatim on the error page.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Erreur %d", e.Code)
}

// NotFound reports whether the store answered 404.
func (e *StatusError) NotFound() bool {
	return e.Code == http.StatusNotFound
}

// ServerError reports whether the store answered with a 5xx status.
func (e *StatusError) ServerError() bool {
	return e.Code >= http.StatusInternalServerError
}
