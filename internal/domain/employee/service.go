package employee

import "context"

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id int64) error
}
