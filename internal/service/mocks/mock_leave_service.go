package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hrapi/internal/model"
	"hrapi/internal/service"
)

type MockLeaveService struct {
	mock.Mock
}

func (m *MockLeaveService) Upsert(ctx context.Context, employeeID string, in service.LeaveUpsertInput) (*model.LeaveRequest, error) {
	args := m.Called(ctx, employeeID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LeaveRequest), args.Error(1)
}

func (m *MockLeaveService) Get(ctx context.Context, employeeID string) (*model.LeaveRequest, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LeaveRequest), args.Error(1)
}

func (m *MockLeaveService) Delete(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}
