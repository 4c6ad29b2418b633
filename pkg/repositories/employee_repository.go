package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ekaya-inc/statusboard/pkg/apperrors"
	"github.com/ekaya-inc/statusboard/pkg/database"
	"github.com/ekaya-inc/statusboard/pkg/models"
)

// EmployeeRepository defines the interface for employee data access.
type EmployeeRepository interface {
	// Create inserts a new employee and assigns its ID. Returns
	// apperrors.ErrConflict when the name already exists.
	Create(ctx context.Context, employee *models.Employee) error

	// List retrieves all employees sorted by name ascending.
	List(ctx context.Context) ([]*models.Employee, error)

	// Delete removes an employee by id. Deleting an id that does not
	// exist is a no-op, not an error.
	Delete(ctx context.Context, id int64) error
}

// employeeRepository implements EmployeeRepository using PostgreSQL.
type employeeRepository struct {
	db *database.DB
}

// NewEmployeeRepository creates a new employee repository.
func NewEmployeeRepository(db *database.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create inserts a new employee.
func (r *employeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (name)
		VALUES ($1)
		RETURNING id`

	err := r.db.Pool.QueryRow(ctx, query, employee.Name).Scan(&employee.ID)
	if err != nil {
		// Check for unique constraint violation (PostgreSQL error code 23505)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrConflict
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// List retrieves all employees sorted by name.
func (r *employeeRepository) List(ctx context.Context) ([]*models.Employee, error) {
	query := `SELECT id, name FROM employees ORDER BY name ASC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(&employee.ID, &employee.Name); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, &employee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// Delete removes an employee by id.
func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM employees WHERE id = $1`

	if _, err := r.db.Pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}

// Ensure employeeRepository implements EmployeeRepository at compile time.
var _ EmployeeRepository = (*employeeRepository)(nil)
