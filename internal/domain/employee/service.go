package employee

import "context"

// EmployeeService implements the console's employee management flows.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResult, error)
	Get(ctx context.Context, id int64) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (UpdateEmployeeResult, error)
	Delete(ctx context.Context, id int64) error
	SetLocked(ctx context.Context, id int64, locked bool) (EmployeeResponse, error)
}
