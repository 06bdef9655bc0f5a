package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, e Employee) error
	UpdateEmbedding(ctx context.Context, id int64, photoPath *string, embedding []byte) error
	SetLocked(ctx context.Context, id int64, locked bool) (Employee, error)
	Delete(ctx context.Context, id int64) error
}
