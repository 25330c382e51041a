package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hrapi/internal/model"
	repoMocks "hrapi/internal/repository/mocks"
)

func strPtr(s string) *string { return &s }

func TestLeaveService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("create defaults to pending without status timestamp", func(t *testing.T) {
		mLeaves := new(repoMocks.MockLeaveRepository)
		mDocs := new(repoMocks.MockDocumentRepository)
		svc := NewLeaveService(mLeaves, mDocs)

		mLeaves.On("FindByEmployee", ctx, "emp123").Return(nil, sql.ErrNoRows)
		mLeaves.On("Create", ctx, mock.MatchedBy(func(l *model.LeaveRequest) bool {
			return l.EmployeeID == "emp123" && l.Status == model.RequestPending &&
				l.StatusAt == nil && l.ApplicationDocID == nil && l.StatusDocID == nil
		})).Return(&model.LeaveRequest{ID: "leave-1"}, nil)

		got, err := svc.Upsert(ctx, "emp123", LeaveUpsertInput{Subject: strPtr("Annual leave")})

		assert.NoError(t, err)
		assert.Equal(t, "leave-1", got.ID)
		mLeaves.AssertExpectations(t)
		mDocs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("create with attachment writes a pointer row", func(t *testing.T) {
		mLeaves := new(repoMocks.MockLeaveRepository)
		mDocs := new(repoMocks.MockDocumentRepository)
		svc := NewLeaveService(mLeaves, mDocs)

		mLeaves.On("FindByEmployee", ctx, "emp123").Return(nil, sql.ErrNoRows)
		mDocs.On("Create", ctx, mock.MatchedBy(func(d *model.EmployeeDocument) bool {
			return d.EmployeeID == "emp123" && d.Name == model.DocLeaveApplication &&
				d.Src == "emp123/leave-application.pdf" && d.Format == model.FormatPDF
		})).Return(&model.EmployeeDocument{ID: "doc-1"}, nil)
		mLeaves.On("Create", ctx, mock.MatchedBy(func(l *model.LeaveRequest) bool {
			return l.ApplicationDocID != nil && *l.ApplicationDocID == "doc-1"
		})).Return(&model.LeaveRequest{ID: "leave-1"}, nil)

		_, err := svc.Upsert(ctx, "emp123", LeaveUpsertInput{
			ApplicationDoc: &DocRefInput{Src: "emp123/leave-application.pdf", Format: model.FormatPDF},
		})

		assert.NoError(t, err)
		mDocs.AssertExpectations(t)
	})

	t.Run("non-pending status stamps status_at", func(t *testing.T) {
		mLeaves := new(repoMocks.MockLeaveRepository)
		svc := NewLeaveService(mLeaves, new(repoMocks.MockDocumentRepository))

		approved := model.RequestApproved
		mLeaves.On("FindByEmployee", ctx, "emp123").Return(nil, sql.ErrNoRows)
		mLeaves.On("Create", ctx, mock.MatchedBy(func(l *model.LeaveRequest) bool {
			return l.Status == model.RequestApproved && l.StatusAt != nil
		})).Return(&model.LeaveRequest{ID: "leave-1"}, nil)

		_, err := svc.Upsert(ctx, "emp123", LeaveUpsertInput{Status: &approved})
		assert.NoError(t, err)
		mLeaves.AssertExpectations(t)
	})

	t.Run("update replaces the attachment pointer wholesale", func(t *testing.T) {
		mLeaves := new(repoMocks.MockLeaveRepository)
		mDocs := new(repoMocks.MockDocumentRepository)
		svc := NewLeaveService(mLeaves, mDocs)

		oldID := "doc-old"
		mLeaves.On("FindByEmployee", ctx, "emp123").Return(&model.LeaveRequest{
			ID:               "leave-1",
			EmployeeID:       "emp123",
			ApplicationDocID: &oldID,
		}, nil)
		mDocs.On("Create", ctx, mock.Anything).Return(&model.EmployeeDocument{ID: "doc-new"}, nil)
		mDocs.On("Delete", ctx, "doc-old").Return(nil)
		mLeaves.On("Update", ctx, mock.MatchedBy(func(l *model.LeaveRequest) bool {
			return l.ApplicationDocID != nil && *l.ApplicationDocID == "doc-new"
		})).Return(nil)

		got, err := svc.Upsert(ctx, "emp123", LeaveUpsertInput{
			ApplicationDoc: &DocRefInput{Src: "emp123/leave-application1.pdf", Format: model.FormatPDF},
		})

		assert.NoError(t, err)
		assert.Equal(t, "doc-new", *got.ApplicationDocID)
		mDocs.AssertExpectations(t)
	})

	t.Run("update with no attachment clears the pointer", func(t *testing.T) {
		mLeaves := new(repoMocks.MockLeaveRepository)
		mDocs := new(repoMocks.MockDocumentRepository)
		svc := NewLeaveService(mLeaves, mDocs)

		oldID := "doc-old"
		mLeaves.On("FindByEmployee", ctx, "emp123").Return(&model.LeaveRequest{
			ID:               "leave-1",
			EmployeeID:       "emp123",
			ApplicationDocID: &oldID,
		}, nil)
		mDocs.On("Delete", ctx, "doc-old").Return(nil)
		mLeaves.On("Update", ctx, mock.MatchedBy(func(l *model.LeaveRequest) bool {
			return l.ApplicationDocID == nil
		})).Return(nil)

		got, err := svc.Upsert(ctx, "emp123", LeaveUpsertInput{})

		assert.NoError(t, err)
		assert.Nil(t, got.ApplicationDocID)
		mDocs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		svc := NewLeaveService(new(repoMocks.MockLeaveRepository), new(repoMocks.MockDocumentRepository))

		bogus := model.RequestStatus("CANCELLED")
		_, err := svc.Upsert(ctx, "emp123", LeaveUpsertInput{Status: &bogus})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("attachment with unknown format is rejected", func(t *testing.T) {
		mLeaves := new(repoMocks.MockLeaveRepository)
		mDocs := new(repoMocks.MockDocumentRepository)
		svc := NewLeaveService(mLeaves, mDocs)

		mLeaves.On("FindByEmployee", ctx, "emp123").Return(nil, sql.ErrNoRows)

		_, err := svc.Upsert(ctx, "emp123", LeaveUpsertInput{
			ApplicationDoc: &DocRefInput{Src: "emp123/app.exe", Format: "exe"},
		})

		assert.ErrorIs(t, err, ErrInvalidFormat)
		mDocs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mLeaves.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestLeaveService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("missing request maps to not found", func(t *testing.T) {
		mLeaves := new(repoMocks.MockLeaveRepository)
		svc := NewLeaveService(mLeaves, new(repoMocks.MockDocumentRepository))

		mLeaves.On("FindByEmployee", ctx, "emp123").Return(nil, sql.ErrNoRows)

		_, err := svc.Get(ctx, "emp123")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty employee id", func(t *testing.T) {
		svc := NewLeaveService(new(repoMocks.MockLeaveRepository), new(repoMocks.MockDocumentRepository))
		_, err := svc.Get(ctx, "")
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}
