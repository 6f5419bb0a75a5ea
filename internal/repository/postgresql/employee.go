package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, full_name, email, department, created_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeID, newEmployee.FullName, newEmployee.Email, newEmployee.Department,
	).Scan(
		&created.ID, &created.EmployeeID, &created.FullName, &created.Email,
		&created.Department, &created.CreatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, full_name, email, department, created_at
		FROM employees
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EmployeeID, &emp.FullName, &emp.Email,
			&emp.Department, &emp.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, employee_id, full_name, email, department, created_at
		FROM employees
		WHERE employee_id = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&found.ID, &found.EmployeeID, &found.FullName, &found.Email,
		&found.Department, &found.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return found, nil
}

// ExistsByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE employee_id = $1)`,
		employeeID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	query := `
		DELETE FROM employees
		WHERE id = $1
		RETURNING id
	`

	var deletedID int64
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
