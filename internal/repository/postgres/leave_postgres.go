package postgres

import (
	"context"
	"database/sql"

	"hrapi/internal/model"
	"hrapi/internal/repository"
)

// LeavePostgres is a PostgreSQL implementation of repository.LeaveRepository.
type LeavePostgres struct {
	db *sql.DB
}

// NewLeavePostgres creates a new LeavePostgres repository.
func NewLeavePostgres(db *sql.DB) *LeavePostgres {
	return &LeavePostgres{db: db}
}

var _ repository.LeaveRepository = (*LeavePostgres)(nil)

const leaveColumns = `id, employee_id, subject, body, status, status_at, application_doc_id, status_doc_id, created_at, updated_at`

func scanLeave(row interface{ Scan(...any) error }) (*model.LeaveRequest, error) {
	var l model.LeaveRequest
	if err := row.Scan(
		&l.ID,
		&l.EmployeeID,
		&l.Subject,
		&l.Body,
		&l.Status,
		&l.StatusAt,
		&l.ApplicationDocID,
		&l.StatusDocID,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

// Create inserts a new leave request row and returns the stored record.
func (r *LeavePostgres) Create(ctx context.Context, l *model.LeaveRequest) (*model.LeaveRequest, error) {
	const q = `
		INSERT INTO leave_requests (id, employee_id, subject, body, status, status_at, application_doc_id, status_doc_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + leaveColumns
	row := r.db.QueryRowContext(ctx, q,
		l.ID,
		l.EmployeeID,
		l.Subject,
		l.Body,
		l.Status,
		l.StatusAt,
		l.ApplicationDocID,
		l.StatusDocID,
	)
	return scanLeave(row)
}

// FindByEmployee fetches the employee's leave request.
func (r *LeavePostgres) FindByEmployee(ctx context.Context, employeeID string) (*model.LeaveRequest, error) {
	const q = `SELECT ` + leaveColumns + ` FROM leave_requests WHERE employee_id = $1`
	return scanLeave(r.db.QueryRowContext(ctx, q, employeeID))
}

// Update rewrites the mutable fields of a leave request row.
func (r *LeavePostgres) Update(ctx context.Context, l *model.LeaveRequest) error {
	const q = `
		UPDATE leave_requests
		SET subject = $2, body = $3, status = $4, status_at = $5,
		    application_doc_id = $6, status_doc_id = $7, updated_at = now()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, q,
		l.ID,
		l.Subject,
		l.Body,
		l.Status,
		l.StatusAt,
		l.ApplicationDocID,
		l.StatusDocID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the employee's leave request. It does not return an error
// if the row does not exist.
func (r *LeavePostgres) Delete(ctx context.Context, employeeID string) error {
	const q = `DELETE FROM leave_requests WHERE employee_id = $1`
	res, err := r.db.ExecContext(ctx, q, employeeID)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
