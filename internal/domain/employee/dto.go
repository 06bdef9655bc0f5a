package employee

import (
	"mime/multipart"
	"strings"

	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	Department *string `json:"department,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`

	// Optional face photo, multipart only.
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if err := validatePhoto(r.FileHeader); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	Name       string  `json:"name"`
	Department *string `json:"department,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}

	if err := validatePhoto(r.FileHeader); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePhoto(fh *multipart.FileHeader) *validator.ValidationError {
	if fh == nil {
		return nil
	}
	idx := strings.LastIndex(fh.Filename, ".")
	if idx < 0 {
		return &validator.ValidationError{
			Field:   "face_image",
			Message: "invalid file type: only jpg, jpeg, png allowed",
		}
	}
	ext := strings.ToLower(fh.Filename[idx:])
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return &validator.ValidationError{
			Field:   "face_image",
			Message: "invalid file type: only jpg, jpeg, png allowed",
		}
	}
	if fh.Size > 10<<20 { // 10MB
		return &validator.ValidationError{
			Field:   "face_image",
			Message: "face photo size must not exceed 10MB",
		}
	}
	return nil
}

type EmployeeResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Department *string `json:"department,omitempty"`
	Role       string  `json:"role"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	PhotoPath  *string `json:"photo_path,omitempty"`
	HasFaceID  bool    `json:"has_face_id"`
	IsLocked   bool    `json:"is_locked"`
	CreatedAt  string  `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Department: e.Department,
		Role:       e.Role,
		Phone:      e.Phone,
		Email:      e.Email,
		PhotoPath:  e.PhotoPath,
		HasFaceID:  e.HasFaceID(),
		IsLocked:   e.IsLocked,
		CreatedAt:  e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// CreateEmployeeResult carries the created employee together with the
// outcomes of best-effort side effects (face embedding, account email).
// Warnings never indicate a failed create.
type CreateEmployeeResult struct {
	Employee EmployeeResponse `json:"employee"`
	Warnings []string         `json:"warnings,omitempty"`
}

type UpdateEmployeeResult struct {
	Employee EmployeeResponse `json:"employee"`
	Warnings []string         `json:"warnings,omitempty"`
}
