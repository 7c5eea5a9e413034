package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	// List returns the whole directory ordered by identifier.
	List(ctx context.Context) ([]Employee, error)
}
