package repository

import (
	"context"

	"hrapi/internal/model"
)

// DepartmentRepository defines data access for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, name string) (*model.Department, error)
	Rename(ctx context.Context, id, name string) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
	Delete(ctx context.Context, id string) error
}

// DesignationRepository defines data access for designations.
type DesignationRepository interface {
	Create(ctx context.Context, name string) (*model.Designation, error)
	Rename(ctx context.Context, id, name string) (*model.Designation, error)
	List(ctx context.Context) ([]model.Designation, error)
	Delete(ctx context.Context, id string) error
}
