package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hrapi/internal/model"
	"hrapi/internal/repository"
)

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, e *model.Employee) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateStatus(ctx context.Context, id string, status model.EmploymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockEmployeeRepository) List(ctx context.Context, f repository.EmployeeFilter) (*repository.PageResult[model.Employee], error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Employee]), args.Error(1)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
