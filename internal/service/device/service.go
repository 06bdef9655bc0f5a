package device

import (
	"context"

	"github.com/facetrack/attendance-backend-go/internal/domain/device"
	"github.com/google/uuid"
)

type DeviceServiceImpl struct {
	device.DeviceRepository
}

func NewDeviceService(deviceRepository device.DeviceRepository) device.DeviceService {
	return &DeviceServiceImpl{
		DeviceRepository: deviceRepository,
	}
}

// Create implements device.DeviceService.
// Every device gets a fresh random API key at registration time.
func (s *DeviceServiceImpl) Create(ctx context.Context, req device.CreateDeviceRequest) (device.DeviceResponse, error) {
	if err := req.Validate(); err != nil {
		return device.DeviceResponse{}, err
	}

	created, err := s.DeviceRepository.Create(ctx, device.Device{
		Name:     req.Name,
		Location: req.Location,
		APIKey:   uuid.NewString(),
	})
	if err != nil {
		return device.DeviceResponse{}, err
	}

	return device.ToResponse(created), nil
}

// Get implements device.DeviceService.
func (s *DeviceServiceImpl) Get(ctx context.Context, id int64) (device.DeviceResponse, error) {
	d, err := s.DeviceRepository.GetByID(ctx, id)
	if err != nil {
		return device.DeviceResponse{}, err
	}
	return device.ToResponse(d), nil
}

// List implements device.DeviceService.
func (s *DeviceServiceImpl) List(ctx context.Context) ([]device.DeviceResponse, error) {
	devices, err := s.DeviceRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]device.DeviceResponse, 0, len(devices))
	for _, d := range devices {
		responses = append(responses, device.ToResponse(d))
	}
	return responses, nil
}

// Update implements device.DeviceService.
// The API key is never rotated here; name and location only.
func (s *DeviceServiceImpl) Update(ctx context.Context, id int64, req device.UpdateDeviceRequest) (device.DeviceResponse, error) {
	if err := req.Validate(); err != nil {
		return device.DeviceResponse{}, err
	}

	existing, err := s.DeviceRepository.GetByID(ctx, id)
	if err != nil {
		return device.DeviceResponse{}, err
	}

	existing.Name = req.Name
	existing.Location = req.Location

	if err := s.DeviceRepository.Update(ctx, existing); err != nil {
		return device.DeviceResponse{}, err
	}

	return device.ToResponse(existing), nil
}

// Delete implements device.DeviceService.
func (s *DeviceServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.DeviceRepository.Delete(ctx, id)
}

// Authenticate implements device.DeviceService.
func (s *DeviceServiceImpl) Authenticate(ctx context.Context, apiKey string) (device.Device, error) {
	if apiKey == "" {
		return device.Device{}, device.ErrInvalidAPIKey
	}

	d, err := s.DeviceRepository.GetByAPIKey(ctx, apiKey)
	if err != nil {
		if err == device.ErrDeviceNotFound {
			return device.Device{}, device.ErrInvalidAPIKey
		}
		return device.Device{}, err
	}

	if err := s.DeviceRepository.TouchLastSeen(ctx, d.ID); err != nil {
		return device.Device{}, err
	}

	return d, nil
}
