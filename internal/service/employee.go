package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hrapi/internal/model"
	"hrapi/internal/repository"
)

// EmployeeInput carries the writable fields of an employee record.
type EmployeeInput struct {
	Name          string             `json:"name"`
	EmpID         string             `json:"emp_id"`
	JoiningDate   *time.Time         `json:"joining_date,omitempty"`
	ContractType  model.ContractType `json:"contract_type"`
	DepartmentID  *string            `json:"department_id,omitempty"`
	DesignationID *string            `json:"designation_id,omitempty"`
}

// EmployeeListQuery is the service-level shape of the list screen's filters.
type EmployeeListQuery struct {
	Page          int
	PageSize      int
	Query         string
	Statuses      []model.EmploymentStatus
	Contracts     []model.ContractType
	DepartmentID  string
	DesignationID string
}

// EmployeeListResult is the paginated employee listing DTO.
type EmployeeListResult struct {
	Items    []model.Employee `json:"data"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// EmployeeService defines the use cases for the employee directory.
type EmployeeService interface {
	Create(ctx context.Context, in EmployeeInput) (*model.Employee, error)
	Get(ctx context.Context, id string) (*model.Employee, error)
	Update(ctx context.Context, id string, in EmployeeInput) (*model.Employee, error)
	UpdateStatus(ctx context.Context, id string, status model.EmploymentStatus) error
	List(ctx context.Context, q EmployeeListQuery) (*EmployeeListResult, error)
	Delete(ctx context.Context, id string) error
}

type employeeService struct {
	repo repository.EmployeeRepository
}

// NewEmployeeService constructs a new EmployeeService.
func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func validateEmployeeInput(in EmployeeInput) error {
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 || len(name) > 120 {
		return fmt.Errorf("%w: name must be 2-120 characters", ErrInvalidInput)
	}
	empID := strings.TrimSpace(in.EmpID)
	if len(empID) < 2 || len(empID) > 50 {
		return fmt.Errorf("%w: emp_id must be 2-50 characters", ErrInvalidInput)
	}
	if !model.ValidContractType(in.ContractType) {
		return fmt.Errorf("%w: unknown contract type %q", ErrInvalidInput, in.ContractType)
	}
	return nil
}

func (s *employeeService) Create(ctx context.Context, in EmployeeInput) (*model.Employee, error) {
	if err := validateEmployeeInput(in); err != nil {
		return nil, err
	}
	e := &model.Employee{
		ID:            uuid.New().String(),
		Name:          strings.TrimSpace(in.Name),
		EmpID:         strings.TrimSpace(in.EmpID),
		JoiningDate:   in.JoiningDate,
		ContractType:  in.ContractType,
		Status:        model.StatusActive,
		DepartmentID:  in.DepartmentID,
		DesignationID: in.DesignationID,
	}
	return s.repo.Create(ctx, e)
}

func (s *employeeService) Get(ctx context.Context, id string) (*model.Employee, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *employeeService) Update(ctx context.Context, id string, in EmployeeInput) (*model.Employee, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validateEmployeeInput(in); err != nil {
		return nil, err
	}
	e := &model.Employee{
		ID:            id,
		Name:          strings.TrimSpace(in.Name),
		EmpID:         strings.TrimSpace(in.EmpID),
		JoiningDate:   in.JoiningDate,
		ContractType:  in.ContractType,
		DepartmentID:  in.DepartmentID,
		DesignationID: in.DesignationID,
	}
	if err := s.repo.Update(ctx, e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *employeeService) UpdateStatus(ctx context.Context, id string, status model.EmploymentStatus) error {
	if id == "" {
		return ErrIDRequired
	}
	if !model.ValidEmploymentStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *employeeService) List(ctx context.Context, q EmployeeListQuery) (*EmployeeListResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 10
	}
	for _, st := range q.Statuses {
		if !model.ValidEmploymentStatus(st) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, st)
		}
	}
	for _, c := range q.Contracts {
		if !model.ValidContractType(c) {
			return nil, fmt.Errorf("%w: unknown contract type %q", ErrInvalidInput, c)
		}
	}

	res, err := s.repo.List(ctx, repository.EmployeeFilter{
		Query:         q.Query,
		Statuses:      q.Statuses,
		Contracts:     q.Contracts,
		DepartmentID:  q.DepartmentID,
		DesignationID: q.DesignationID,
		Page: repository.PageQuery{
			Limit:  q.PageSize,
			Offset: (q.Page - 1) * q.PageSize,
		},
	})
	if err != nil {
		return nil, err
	}
	return &EmployeeListResult{
		Items:    res.Items,
		Total:    res.Total,
		Page:     q.Page,
		PageSize: q.PageSize,
	}, nil
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
