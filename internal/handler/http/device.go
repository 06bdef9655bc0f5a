package http

import (
	"encoding/json"
	"net/http"

	"github.com/facetrack/attendance-backend-go/internal/domain/device"
	"github.com/facetrack/attendance-backend-go/internal/handler/http/response"
)

type DeviceHandler interface {
	ListDevices(w http.ResponseWriter, r *http.Request)
	GetDevice(w http.ResponseWriter, r *http.Request)
	CreateDevice(w http.ResponseWriter, r *http.Request)
	UpdateDevice(w http.ResponseWriter, r *http.Request)
	DeleteDevice(w http.ResponseWriter, r *http.Request)
}

type deviceHandlerImpl struct {
	deviceService device.DeviceService
}

func NewDeviceHandler(deviceService device.DeviceService) DeviceHandler {
	return &deviceHandlerImpl{
		deviceService: deviceService,
	}
}

// ListDevices implements DeviceHandler
func (h *deviceHandlerImpl) ListDevices(w http.ResponseWriter, r *http.Request) {
	result, err := h.deviceService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDevice implements DeviceHandler
func (h *deviceHandlerImpl) GetDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Device ID is required", nil)
		return
	}

	result, err := h.deviceService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateDevice implements DeviceHandler
func (h *deviceHandlerImpl) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req device.CreateDeviceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.deviceService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Device registered", result)
}

// UpdateDevice implements DeviceHandler
func (h *deviceHandlerImpl) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Device ID is required", nil)
		return
	}

	var req device.UpdateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.deviceService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteDevice implements DeviceHandler
func (h *deviceHandlerImpl) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		response.BadRequest(w, "Device ID is required", nil)
		return
	}

	if err := h.deviceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Device deleted", nil)
}
