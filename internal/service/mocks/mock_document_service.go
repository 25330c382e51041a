package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hrapi/internal/model"
	"hrapi/internal/service"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, employeeID, documentName, originalFilename string, data []byte) (*service.UploadResult, error) {
	args := m.Called(ctx, employeeID, documentName, originalFilename, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, employeeID, filename string) error {
	args := m.Called(ctx, employeeID, filename)
	return args.Error(0)
}

func (m *MockDocumentService) Attach(ctx context.Context, employeeID, name, src string, format model.DocumentFormat) (*model.EmployeeDocument, error) {
	args := m.Called(ctx, employeeID, name, src, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EmployeeDocument), args.Error(1)
}

func (m *MockDocumentService) ListByEmployee(ctx context.Context, employeeID string) ([]service.DocumentView, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.DocumentView), args.Error(1)
}

func (m *MockDocumentService) Detach(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
