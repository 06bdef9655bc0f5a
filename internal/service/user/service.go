package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		UserRepository: userRepository,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	role, _ := user.ParseRole(req.Role)

	if req.EmployeeID != nil {
		_, err := s.UserRepository.GetByEmployeeID(ctx, *req.EmployeeID)
		if err == nil {
			return user.UserResponse{}, user.ErrEmployeeAlreadyLinked
		}
		if !errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, fmt.Errorf("failed to check employee link: %w", err)
		}
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		EmployeeID:   req.EmployeeID,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id int64) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, id int64, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	role, _ := user.ParseRole(req.Role)
	existing.Username = req.Username
	existing.Role = role

	if err := s.UserRepository.Update(ctx, existing); err != nil {
		return user.UserResponse{}, err
	}

	// Optional administrative password reset.
	if req.NewPassword != "" {
		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			return user.UserResponse{}, err
		}
		if err := s.UserRepository.UpdatePassword(ctx, id, hash); err != nil {
			return user.UserResponse{}, err
		}
	}

	updated, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(updated), nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.UserRepository.Delete(ctx, id)
}

// ChangePassword implements user.UserService.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID int64, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.ConfirmPassword != "" && req.NewPassword != req.ConfirmPassword {
		return user.ErrPasswordMismatch
	}

	existing, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrWrongCurrentPassword
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.UserRepository.UpdatePassword(ctx, userID, hash)
}
