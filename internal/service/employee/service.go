package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/domain/employee"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/pkg/database"
	"github.com/hrms-lite/hrms-lite-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type EmployeeServiceImpl struct {
	db             *database.DB
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Pre-checks give deterministic error ordering; the unique
	// constraints remain the authority under concurrent requests.
	exists, err := s.employeeRepo.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee ID: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeIDExists
	}

	exists, err = s.employeeRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			// A concurrent request won the check-then-insert race.
			switch pgErr.ConstraintName {
			case "employees_employee_id_key":
				return employee.EmployeeResponse{}, employee.ErrEmployeeIDExists
			case "employees_email_key":
				return employee.EmployeeResponse{}, employee.ErrEmailExists
			}
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// DeleteEmployee implements employee.EmployeeService. The employee row
// and its attendance records go in one transaction; either both are
// removed or neither is.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.attendanceRepo.DeleteByEmployee(txCtx, id); err != nil {
			return err
		}
		return s.employeeRepo.Delete(txCtx, id)
	})
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         emp.ID,
		EmployeeID: emp.EmployeeID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Department: emp.Department,
	}
}
