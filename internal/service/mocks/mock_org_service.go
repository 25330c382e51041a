package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hrapi/internal/model"
)

type MockOrgService struct {
	mock.Mock
}

func (m *MockOrgService) CreateDepartment(ctx context.Context, name string) (*model.Department, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Department), args.Error(1)
}

func (m *MockOrgService) RenameDepartment(ctx context.Context, id, name string) (*model.Department, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Department), args.Error(1)
}

func (m *MockOrgService) ListDepartments(ctx context.Context) ([]model.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Department), args.Error(1)
}

func (m *MockOrgService) DeleteDepartment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrgService) CreateDesignation(ctx context.Context, name string) (*model.Designation, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Designation), args.Error(1)
}

func (m *MockOrgService) RenameDesignation(ctx context.Context, id, name string) (*model.Designation, error) {
	args := m.Called(ctx, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Designation), args.Error(1)
}

func (m *MockOrgService) ListDesignations(ctx context.Context) ([]model.Designation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Designation), args.Error(1)
}

func (m *MockOrgService) DeleteDesignation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
