package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"hrapi/internal/model"
	"hrapi/internal/repository"
)

// EmployeePostgres is a PostgreSQL implementation of repository.EmployeeRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type EmployeePostgres struct {
	db *sql.DB
}

// NewEmployeePostgres creates a new EmployeePostgres repository.
func NewEmployeePostgres(db *sql.DB) *EmployeePostgres {
	return &EmployeePostgres{db: db}
}

var _ repository.EmployeeRepository = (*EmployeePostgres)(nil)

const employeeColumns = `id, name, emp_id, joining_date, contract_type, status, department_id, designation_id, created_at, updated_at`

func scanEmployee(row interface{ Scan(...any) error }) (*model.Employee, error) {
	var e model.Employee
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.EmpID,
		&e.JoiningDate,
		&e.ContractType,
		&e.Status,
		&e.DepartmentID,
		&e.DesignationID,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new employee row and returns the stored record.
func (r *EmployeePostgres) Create(ctx context.Context, e *model.Employee) (*model.Employee, error) {
	const q = `
		INSERT INTO employees (id, name, emp_id, joining_date, contract_type, status, department_id, designation_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + employeeColumns
	row := r.db.QueryRowContext(ctx, q,
		e.ID,
		e.Name,
		e.EmpID,
		e.JoiningDate,
		e.ContractType,
		e.Status,
		e.DepartmentID,
		e.DesignationID,
	)
	return scanEmployee(row)
}

// FindByID fetches a single employee by its ID.
func (r *EmployeePostgres) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	const q = `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(r.db.QueryRowContext(ctx, q, id))
}

// Update rewrites the mutable fields of an employee row.
func (r *EmployeePostgres) Update(ctx context.Context, e *model.Employee) error {
	const q = `
		UPDATE employees
		SET name = $2, emp_id = $3, joining_date = $4, contract_type = $5,
		    department_id = $6, designation_id = $7, updated_at = now()
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, q,
		e.ID,
		e.Name,
		e.EmpID,
		e.JoiningDate,
		e.ContractType,
		e.DepartmentID,
		e.DesignationID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateStatus changes only the employment status.
func (r *EmployeePostgres) UpdateStatus(ctx context.Context, id string, status model.EmploymentStatus) error {
	const q = `UPDATE employees SET status = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, status)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// List returns a filtered page of employees and the total count for the
// filter. The WHERE clause is built dynamically but every value goes through
// a placeholder.
func (r *EmployeePostgres) List(ctx context.Context, f repository.EmployeeFilter) (*repository.PageResult[model.Employee], error) {
	where, args := buildEmployeeWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`+where, args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + employeeColumns + ` FROM employees` + where +
		fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, f.Page.Limit, f.Page.Offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Employee]{Items: items, Total: total}, nil
}

func buildEmployeeWhere(f repository.EmployeeFilter) (string, []any) {
	var conds []string
	var args []any

	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		p := next("%" + q + "%")
		conds = append(conds, fmt.Sprintf("(name ILIKE %s OR emp_id ILIKE %s)", p, p))
	}
	if len(f.Statuses) > 0 {
		ps := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			ps[i] = next(s)
		}
		conds = append(conds, fmt.Sprintf("status IN (%s)", strings.Join(ps, ", ")))
	}
	if len(f.Contracts) > 0 {
		ps := make([]string, len(f.Contracts))
		for i, c := range f.Contracts {
			ps[i] = next(c)
		}
		conds = append(conds, fmt.Sprintf("contract_type IN (%s)", strings.Join(ps, ", ")))
	}
	if f.DepartmentID != "" {
		conds = append(conds, "department_id = "+next(f.DepartmentID))
	}
	if f.DesignationID != "" {
		conds = append(conds, "designation_id = "+next(f.DesignationID))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Delete removes an employee by ID. It does not return an error if the row
// does not exist.
func (r *EmployeePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM employees WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
