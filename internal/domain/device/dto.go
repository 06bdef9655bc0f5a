package device

import (
	"time"

	"github.com/facetrack/attendance-backend-go/internal/pkg/validator"
)

type CreateDeviceRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
}

func (r *CreateDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeviceRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
}

func (r *UpdateDeviceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeviceResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location,omitempty"`
	APIKey   string  `json:"api_key"`
	LastSeen *string `json:"last_seen,omitempty"`
}

func ToResponse(d Device) DeviceResponse {
	resp := DeviceResponse{
		ID:       d.ID,
		Name:     d.Name,
		Location: d.Location,
		APIKey:   d.APIKey,
	}
	if d.LastSeen != nil {
		ts := d.LastSeen.Format(time.RFC3339)
		resp.LastSeen = &ts
	}
	return resp
}
