package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hrapi/internal/model"
	"hrapi/internal/repository"
)

// DocRefInput names an already-uploaded file for attachment to a leave
// request. Src is the "<employeeId>/<filename>" reference returned by the
// upload endpoint.
type DocRefInput struct {
	Src    string               `json:"src"`
	Format model.DocumentFormat `json:"format"`
}

// LeaveUpsertInput carries the writable fields of a leave request. A nil
// ApplicationDoc or StatusDoc on an existing request disconnects that
// pointer; the remote file is not deleted here.
type LeaveUpsertInput struct {
	Subject        *string              `json:"subject,omitempty"`
	Body           *string              `json:"body,omitempty"`
	Status         *model.RequestStatus `json:"status,omitempty"`
	ApplicationDoc *DocRefInput         `json:"application_doc,omitempty"`
	StatusDoc      *DocRefInput         `json:"status_doc,omitempty"`
}

// LeaveService defines the leave-request workflow: one request per employee,
// upserted as a whole from the manage screen.
type LeaveService interface {
	Upsert(ctx context.Context, employeeID string, in LeaveUpsertInput) (*model.LeaveRequest, error)
	Get(ctx context.Context, employeeID string) (*model.LeaveRequest, error)
	Delete(ctx context.Context, employeeID string) error
}

type leaveService struct {
	leaves repository.LeaveRepository
	docs   repository.DocumentRepository
}

// NewLeaveService constructs a new LeaveService.
func NewLeaveService(leaves repository.LeaveRepository, docs repository.DocumentRepository) LeaveService {
	return &leaveService{leaves: leaves, docs: docs}
}

func (s *leaveService) Upsert(ctx context.Context, employeeID string, in LeaveUpsertInput) (*model.LeaveRequest, error) {
	if employeeID == "" {
		return nil, ErrIDRequired
	}

	status := model.RequestPending
	if in.Status != nil {
		if !model.ValidRequestStatus(*in.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *in.Status)
		}
		status = *in.Status
	}
	var statusAt *time.Time
	if status != model.RequestPending {
		now := time.Now().UTC()
		statusAt = &now
	}

	existing, err := s.leaves.FindByEmployee(ctx, employeeID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if existing == nil {
		l := &model.LeaveRequest{
			ID:         uuid.New().String(),
			EmployeeID: employeeID,
			Subject:    in.Subject,
			Body:       in.Body,
			Status:     status,
			StatusAt:   statusAt,
		}
		if l.ApplicationDocID, err = s.createDoc(ctx, employeeID, model.DocLeaveApplication, in.ApplicationDoc); err != nil {
			return nil, err
		}
		if l.StatusDocID, err = s.createDoc(ctx, employeeID, model.DocLeaveStatus, in.StatusDoc); err != nil {
			return nil, err
		}
		return s.leaves.Create(ctx, l)
	}

	existing.Subject = in.Subject
	existing.Body = in.Body
	existing.Status = status
	existing.StatusAt = statusAt
	if existing.ApplicationDocID, err = s.replaceDoc(ctx, employeeID, model.DocLeaveApplication, existing.ApplicationDocID, in.ApplicationDoc); err != nil {
		return nil, err
	}
	if existing.StatusDocID, err = s.replaceDoc(ctx, employeeID, model.DocLeaveStatus, existing.StatusDocID, in.StatusDoc); err != nil {
		return nil, err
	}
	if err := s.leaves.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// createDoc writes a pointer row for an attachment, or returns nil when no
// attachment was supplied.
func (s *leaveService) createDoc(ctx context.Context, employeeID, name string, in *DocRefInput) (*string, error) {
	if in == nil || in.Src == "" || in.Format == "" {
		return nil, nil
	}
	if _, ok := model.ParseFormat(string(in.Format)); !ok {
		return nil, fmt.Errorf("%w: allowed: %s", ErrInvalidFormat, model.AcceptedFormatList())
	}
	doc, err := s.docs.Create(ctx, &model.EmployeeDocument{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Name:       name,
		Src:        in.Src,
		Format:     in.Format,
	})
	if err != nil {
		return nil, err
	}
	return &doc.ID, nil
}

// replaceDoc swaps an attachment pointer wholesale: the old row is removed
// and a new one created, or the pointer is cleared when no attachment is
// supplied. Remote files are never touched from here.
func (s *leaveService) replaceDoc(ctx context.Context, employeeID, name string, currentID *string, in *DocRefInput) (*string, error) {
	newID, err := s.createDoc(ctx, employeeID, name, in)
	if err != nil {
		return nil, err
	}
	if currentID != nil {
		if err := s.docs.Delete(ctx, *currentID); err != nil {
			return nil, err
		}
	}
	return newID, nil
}

func (s *leaveService) Get(ctx context.Context, employeeID string) (*model.LeaveRequest, error) {
	if employeeID == "" {
		return nil, ErrIDRequired
	}
	l, err := s.leaves.FindByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (s *leaveService) Delete(ctx context.Context, employeeID string) error {
	if employeeID == "" {
		return ErrIDRequired
	}
	return s.leaves.Delete(ctx, employeeID)
}
