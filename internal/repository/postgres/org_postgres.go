package postgres

import (
	"context"
	"database/sql"

	"hrapi/internal/model"
	"hrapi/internal/repository"
)

// DepartmentPostgres is a PostgreSQL implementation of repository.DepartmentRepository.
type DepartmentPostgres struct {
	db *sql.DB
}

// NewDepartmentPostgres creates a new DepartmentPostgres repository.
func NewDepartmentPostgres(db *sql.DB) *DepartmentPostgres {
	return &DepartmentPostgres{db: db}
}

var _ repository.DepartmentRepository = (*DepartmentPostgres)(nil)

func (r *DepartmentPostgres) Create(ctx context.Context, name string) (*model.Department, error) {
	const q = `
		INSERT INTO departments (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`
	var d model.Department
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentPostgres) Rename(ctx context.Context, id, name string) (*model.Department, error) {
	const q = `
		UPDATE departments SET name = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, name, created_at, updated_at
	`
	var d model.Department
	if err := r.db.QueryRowContext(ctx, q, id, name).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentPostgres) List(ctx context.Context) ([]model.Department, error) {
	const q = `SELECT id, name, created_at, updated_at FROM departments ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Department, 0)
	for rows.Next() {
		var d model.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *DepartmentPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM departments WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// DesignationPostgres is a PostgreSQL implementation of repository.DesignationRepository.
type DesignationPostgres struct {
	db *sql.DB
}

// NewDesignationPostgres creates a new DesignationPostgres repository.
func NewDesignationPostgres(db *sql.DB) *DesignationPostgres {
	return &DesignationPostgres{db: db}
}

var _ repository.DesignationRepository = (*DesignationPostgres)(nil)

func (r *DesignationPostgres) Create(ctx context.Context, name string) (*model.Designation, error) {
	const q = `
		INSERT INTO designations (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`
	var d model.Designation
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DesignationPostgres) Rename(ctx context.Context, id, name string) (*model.Designation, error) {
	const q = `
		UPDATE designations SET name = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, name, created_at, updated_at
	`
	var d model.Designation
	if err := r.db.QueryRowContext(ctx, q, id, name).Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DesignationPostgres) List(ctx context.Context) ([]model.Designation, error) {
	const q = `SELECT id, name, created_at, updated_at FROM designations ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Designation, 0)
	for rows.Next() {
		var d model.Designation
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *DesignationPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM designations WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
