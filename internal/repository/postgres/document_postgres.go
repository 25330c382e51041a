package postgres

import (
	"context"
	"database/sql"

	"hrapi/internal/model"
	"hrapi/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, employee_id, name, src, format, created_at`

func scanDocument(row interface{ Scan(...any) error }) (*model.EmployeeDocument, error) {
	var d model.EmployeeDocument
	if err := row.Scan(
		&d.ID,
		&d.EmployeeID,
		&d.Name,
		&d.Src,
		&d.Format,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document pointer row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, d *model.EmployeeDocument) (*model.EmployeeDocument, error) {
	const q = `
		INSERT INTO employee_documents (id, employee_id, name, src, format)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		d.ID,
		d.EmployeeID,
		d.Name,
		d.Src,
		d.Format,
	)
	return scanDocument(row)
}

// FindByID fetches a single document pointer by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id string) (*model.EmployeeDocument, error) {
	const q = `SELECT ` + documentColumns + ` FROM employee_documents WHERE id = $1`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// ListByEmployee returns all document pointers of one employee, newest first.
func (r *DocumentPostgres) ListByEmployee(ctx context.Context, employeeID string) ([]model.EmployeeDocument, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM employee_documents
		WHERE employee_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.EmployeeDocument, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a document pointer by ID. It does not return an error if
// the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM employee_documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
