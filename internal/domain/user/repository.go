package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmployeeID(ctx context.Context, employeeID int64) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
	DeleteByEmployeeID(ctx context.Context, employeeID int64) error
}
