package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hrapi/internal/model"
)

type MockLeaveRepository struct {
	mock.Mock
}

func (m *MockLeaveRepository) Create(ctx context.Context, l *model.LeaveRequest) (*model.LeaveRequest, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) FindByEmployee(ctx context.Context, employeeID string) (*model.LeaveRequest, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRepository) Update(ctx context.Context, l *model.LeaveRequest) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeaveRepository) Delete(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}
