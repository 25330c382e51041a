package repository

import (
	"context"

	"hrapi/internal/model"
)

// DocumentRepository defines data access for employee document pointers.
// Rows hold only the "<employeeId>/<filename>" reference; the file bytes stay
// on the remote store and are managed independently.
type DocumentRepository interface {
	// Create inserts a new document pointer and returns the stored record.
	Create(ctx context.Context, d *model.EmployeeDocument) (*model.EmployeeDocument, error)

	// FindByID returns a document pointer by its ID.
	FindByID(ctx context.Context, id string) (*model.EmployeeDocument, error)

	// ListByEmployee returns all document pointers of one employee, newest
	// first.
	ListByEmployee(ctx context.Context, employeeID string) ([]model.EmployeeDocument, error)

	// Delete removes a document pointer by ID. Returns nil if the row did
	// not exist.
	Delete(ctx context.Context, id string) error
}
