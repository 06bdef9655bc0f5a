package employee

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/domain/user"
	"github.com/facetrack/attendance-backend-go/internal/pkg/email"
	"github.com/facetrack/attendance-backend-go/internal/pkg/faceid"
	"github.com/facetrack/attendance-backend-go/internal/service/file"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the initial password of auto-created accounts. The
// welcome email tells the employee to change it on first login.
const DefaultPassword = "123456"

const defaultEmployeeRole = "Employee"

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	user.UserRepository
	fileService  file.FileService
	faceClient   *faceid.Client
	emailService email.EmailService
}

func NewEmployeeService(
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
	fileService file.FileService,
	faceClient *faceid.Client,
	emailService email.EmailService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		UserRepository:     userRepository,
		fileService:        fileService,
		faceClient:         faceClient,
		emailService:       emailService,
	}
}

// Create implements employee.EmployeeService.
//
// The employee row is the source of truth: once it is written the create
// has succeeded. Face enrollment, account creation and the welcome email
// are attempted afterwards and reported back as warnings when they fail.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResult, error) {
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResult{}, err
	}

	// The phone number doubles as the login username, so it must be free
	// before anything is written.
	if req.Phone != nil && *req.Phone != "" {
		_, err := s.UserRepository.GetByUsername(ctx, *req.Phone)
		if err == nil {
			return employee.CreateEmployeeResult{}, employee.ErrPhoneUsedAsUsername
		}
		if !errors.Is(err, user.ErrUserNotFound) {
			return employee.CreateEmployeeResult{}, fmt.Errorf("failed to check phone as username: %w", err)
		}
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		Name:       req.Name,
		Department: req.Department,
		Role:       defaultEmployeeRole,
		Phone:      req.Phone,
		Email:      req.Email,
	})
	if err != nil {
		return employee.CreateEmployeeResult{}, err
	}

	var warnings []string

	if req.File != nil && req.FileHeader != nil {
		if warning := s.enrollFace(ctx, &created, req.File, req.FileHeader.Filename); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	if req.Phone != nil && *req.Phone != "" {
		if warning := s.createAccount(ctx, created); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return employee.CreateEmployeeResult{
		Employee: employee.ToResponse(created),
		Warnings: warnings,
	}, nil
}

// enrollFace uploads the photo and asks the face service for an embedding.
// Returns a human-readable warning on any failure; the employee row itself
// is already committed at this point.
func (s *EmployeeServiceImpl) enrollFace(ctx context.Context, e *employee.Employee, photo io.Reader, filename string) string {
	image, err := io.ReadAll(photo)
	if err != nil {
		slog.Error("Failed to read face photo", "employee_id", e.ID, "error", err)
		return "face photo could not be read; Face ID not enrolled"
	}

	photoPath, err := s.fileService.UploadFacePhoto(ctx, e.ID, bytes.NewReader(image), filename)
	if err != nil {
		slog.Error("Failed to store face photo", "employee_id", e.ID, "error", err)
		return "face photo could not be stored; Face ID not enrolled"
	}

	embedding, err := s.faceClient.AddFace(ctx, image, filename, e.Name)
	if err != nil {
		slog.Warn("Face service unreachable", "employee_id", e.ID, "error", err)
		// Keep the photo so enrollment can be retried via update.
		if updErr := s.EmployeeRepository.UpdateEmbedding(ctx, e.ID, &photoPath, nil); updErr == nil {
			e.PhotoPath = &photoPath
		}
		return "face service unreachable; Face ID not enrolled"
	}

	if err := s.EmployeeRepository.UpdateEmbedding(ctx, e.ID, &photoPath, embedding); err != nil {
		slog.Error("Failed to save face embedding", "employee_id", e.ID, "error", err)
		return "face embedding could not be saved; Face ID not enrolled"
	}

	e.PhotoPath = &photoPath
	e.FaceEmbedding = embedding

	if embedding == nil {
		return "face service returned no embedding; Face ID not enrolled"
	}
	return ""
}

// createAccount makes the login account for a freshly created employee and
// sends the welcome email when an address is known.
func (s *EmployeeServiceImpl) createAccount(ctx context.Context, e employee.Employee) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("Failed to hash default password", "employee_id", e.ID, "error", err)
		return "login account could not be created"
	}

	_, err = s.UserRepository.Create(ctx, user.User{
		Username:     *e.Phone,
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
		EmployeeID:   &e.ID,
	})
	if err != nil {
		slog.Error("Failed to create login account", "employee_id", e.ID, "error", err)
		return "login account could not be created"
	}

	if e.Email != nil && *e.Email != "" {
		if err := s.emailService.SendAccountCreated(*e.Email, e.Name, *e.Phone, DefaultPassword); err != nil {
			return "account email could not be sent"
		}
	}

	return ""
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
// Without a new photo the existing photo and embedding are untouched; with
// one, re-enrollment is attempted best-effort.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.UpdateEmployeeResult, error) {
	if err := req.Validate(); err != nil {
		return employee.UpdateEmployeeResult{}, err
	}

	existing, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.UpdateEmployeeResult{}, err
	}

	phoneChanged := req.Phone != nil && *req.Phone != "" &&
		(existing.Phone == nil || *existing.Phone != *req.Phone)

	// A changed phone means a changed login username; it must be free
	// before the row is touched.
	if phoneChanged {
		other, err := s.UserRepository.GetByUsername(ctx, *req.Phone)
		if err == nil {
			if other.EmployeeID == nil || *other.EmployeeID != id {
				return employee.UpdateEmployeeResult{}, employee.ErrPhoneUsedAsUsername
			}
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return employee.UpdateEmployeeResult{}, fmt.Errorf("failed to check phone as username: %w", err)
		}
	}

	existing.Name = req.Name
	existing.Department = req.Department
	existing.Phone = req.Phone
	existing.Email = req.Email

	if err := s.EmployeeRepository.Update(ctx, existing); err != nil {
		return employee.UpdateEmployeeResult{}, err
	}

	var warnings []string

	if phoneChanged {
		if warning := s.syncAccountUsername(ctx, existing); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	if req.File != nil && req.FileHeader != nil {
		if warning := s.enrollFace(ctx, &existing, req.File, req.FileHeader.Filename); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	return employee.UpdateEmployeeResult{
		Employee: employee.ToResponse(existing),
		Warnings: warnings,
	}, nil
}

// syncAccountUsername follows a phone change. The linked account logs in
// with the phone number, so it is renamed, or created when the employee
// never had one.
func (s *EmployeeServiceImpl) syncAccountUsername(ctx context.Context, e employee.Employee) string {
	account, err := s.UserRepository.GetByEmployeeID(ctx, e.ID)
	if errors.Is(err, user.ErrUserNotFound) {
		return s.createAccount(ctx, e)
	}
	if err != nil {
		slog.Error("Failed to load login account", "employee_id", e.ID, "error", err)
		return "login username could not be updated"
	}

	account.Username = *e.Phone
	if err := s.UserRepository.Update(ctx, account); err != nil {
		slog.Error("Failed to update login username", "employee_id", e.ID, "error", err)
		return "login username could not be updated"
	}

	return ""
}

// Delete implements employee.EmployeeService.
// The linked login account goes away with the employee.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.UserRepository.DeleteByEmployeeID(ctx, id); err != nil {
		return err
	}

	return s.EmployeeRepository.Delete(ctx, id)
}

// SetLocked implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetLocked(ctx context.Context, id int64, locked bool) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.SetLocked(ctx, id, locked)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}
