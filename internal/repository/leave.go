package repository

import (
	"context"

	"hrapi/internal/model"
)

// LeaveRepository defines data access for leave requests. The application
// keeps at most one open leave request per employee, so lookups are keyed by
// employee rather than by request ID.
type LeaveRepository interface {
	// Create inserts a new leave request and returns the stored record.
	Create(ctx context.Context, l *model.LeaveRequest) (*model.LeaveRequest, error)

	// FindByEmployee returns the employee's leave request, or sql.ErrNoRows.
	FindByEmployee(ctx context.Context, employeeID string) (*model.LeaveRequest, error)

	// Update rewrites the mutable fields of a leave request.
	Update(ctx context.Context, l *model.LeaveRequest) error

	// Delete removes the employee's leave request. Returns nil if absent.
	Delete(ctx context.Context, employeeID string) error
}
