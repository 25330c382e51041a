package repository

import (
	"context"

	"hrapi/internal/model"
)

// EmployeeFilter narrows an employee listing. Query matches name and emp_id
// case-insensitively; the slice filters are OR within a field, AND between
// fields, mirroring the admin list screen this backs.
type EmployeeFilter struct {
	Query         string
	Statuses      []model.EmploymentStatus
	Contracts     []model.ContractType
	DepartmentID  string
	DesignationID string
	Page          PageQuery
}

// EmployeeRepository defines data access for employee records.
// No business logic here — strictly persistence operations.
type EmployeeRepository interface {
	// Create inserts a new employee and returns the stored record.
	Create(ctx context.Context, e *model.Employee) (*model.Employee, error)

	// FindByID returns an employee by its ID.
	FindByID(ctx context.Context, id string) (*model.Employee, error)

	// Update rewrites the mutable fields of an employee.
	Update(ctx context.Context, e *model.Employee) error

	// UpdateStatus changes only the employment status.
	UpdateStatus(ctx context.Context, id string, status model.EmploymentStatus) error

	// List returns a filtered, paginated page of employees plus the total
	// count matching the filter.
	List(ctx context.Context, f EmployeeFilter) (*PageResult[model.Employee], error)

	// Delete removes an employee by ID. Returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}
