package user

import "context"

// UserService drives the console's user administration screens.
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Get(ctx context.Context, id int64) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	Update(ctx context.Context, id int64, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id int64) error
	ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error
}
