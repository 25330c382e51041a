package model

import "time"

// RequestStatus enumerates the states of a leave request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

// ValidRequestStatus reports whether s is a member of the closed set.
func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}
	return false
}

// LeaveRequest is an employee's leave application. ApplicationDoc and
// StatusDoc point at employee_documents rows holding the uploaded application
// letter and the signed decision; either can be nil. StatusAt records when
// the request left PENDING and is nil while it is still pending.
type LeaveRequest struct {
	ID               string        `json:"id"`
	EmployeeID       string        `json:"employee_id"`
	Subject          *string       `json:"subject,omitempty"`
	Body             *string       `json:"body,omitempty"`
	Status           RequestStatus `json:"status"`
	StatusAt         *time.Time    `json:"status_at,omitempty"`
	ApplicationDocID *string       `json:"application_doc_id,omitempty"`
	StatusDocID      *string       `json:"status_doc_id,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
