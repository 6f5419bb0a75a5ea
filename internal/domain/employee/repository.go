package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id int64) error
}
