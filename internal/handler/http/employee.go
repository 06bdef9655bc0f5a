package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/facetrack/attendance-backend-go/internal/domain/employee"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	LockEmployee(w http.ResponseWriter, r *http.Request)
	UnlockEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// optionalFormValue returns nil for absent or empty form fields.
func optionalFormValue(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.FormValue(key))
	if v == "" {
		return nil
	}
	return &v
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
// Accepts multipart form data (with an optional face_image part) or plain
// JSON when no photo is attached.
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			response.BadRequest(w, "Failed to parse multipart form", nil)
			return
		}

		req.Name = strings.TrimSpace(r.FormValue("name"))
		req.Department = optionalFormValue(r, "department")
		req.Phone = optionalFormValue(r, "phone")
		req.Email = optionalFormValue(r, "email")

		if file, header, err := r.FormFile("face_image"); err == nil {
			defer file.Close()
			req.File = file
			req.FileHeader = header
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.CreatedWithWarnings(w, "Employee created", result.Employee, result.Warnings)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req employee.UpdateEmployeeRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			response.BadRequest(w, "Failed to parse multipart form", nil)
			return
		}

		req.Name = strings.TrimSpace(r.FormValue("name"))
		req.Department = optionalFormValue(r, "department")
		req.Phone = optionalFormValue(r, "phone")
		req.Email = optionalFormValue(r, "email")

		if file, header, err := r.FormFile("face_image"); err == nil {
			defer file.Close()
			req.File = file
			req.FileHeader = header
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.employeeService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithWarnings(w, result.Employee, result.Warnings)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// LockEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) LockEmployee(w http.ResponseWriter, r *http.Request) {
	h.setLocked(w, r, true)
}

// UnlockEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UnlockEmployee(w http.ResponseWriter, r *http.Request) {
	h.setLocked(w, r, false)
}

func (h *employeeHandlerImpl) setLocked(w http.ResponseWriter, r *http.Request, locked bool) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.employeeService.SetLocked(r.Context(), id, locked)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
