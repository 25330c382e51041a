package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hrapi/internal/model"
	"hrapi/internal/repository"
)

// OrgService covers the department and designation lookup tables.
type OrgService interface {
	CreateDepartment(ctx context.Context, name string) (*model.Department, error)
	RenameDepartment(ctx context.Context, id, name string) (*model.Department, error)
	ListDepartments(ctx context.Context) ([]model.Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreateDesignation(ctx context.Context, name string) (*model.Designation, error)
	RenameDesignation(ctx context.Context, id, name string) (*model.Designation, error)
	ListDesignations(ctx context.Context) ([]model.Designation, error)
	DeleteDesignation(ctx context.Context, id string) error
}

type orgService struct {
	departments  repository.DepartmentRepository
	designations repository.DesignationRepository
}

// NewOrgService constructs a new OrgService.
func NewOrgService(departments repository.DepartmentRepository, designations repository.DesignationRepository) OrgService {
	return &orgService{departments: departments, designations: designations}
}

func orgName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return name, nil
}

func (s *orgService) CreateDepartment(ctx context.Context, name string) (*model.Department, error) {
	name, err := orgName(name)
	if err != nil {
		return nil, err
	}
	return s.departments.Create(ctx, name)
}

func (s *orgService) RenameDepartment(ctx context.Context, id, name string) (*model.Department, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	name, err := orgName(name)
	if err != nil {
		return nil, err
	}
	d, err := s.departments.Rename(ctx, id, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *orgService) ListDepartments(ctx context.Context) ([]model.Department, error) {
	return s.departments.List(ctx)
}

func (s *orgService) DeleteDepartment(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.departments.Delete(ctx, id)
}

func (s *orgService) CreateDesignation(ctx context.Context, name string) (*model.Designation, error) {
	name, err := orgName(name)
	if err != nil {
		return nil, err
	}
	return s.designations.Create(ctx, name)
}

func (s *orgService) RenameDesignation(ctx context.Context, id, name string) (*model.Designation, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	name, err := orgName(name)
	if err != nil {
		return nil, err
	}
	d, err := s.designations.Rename(ctx, id, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *orgService) ListDesignations(ctx context.Context) ([]model.Designation, error) {
	return s.designations.List(ctx)
}

func (s *orgService) DeleteDesignation(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.designations.Delete(ctx, id)
}
