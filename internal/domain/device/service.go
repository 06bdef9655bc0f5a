package device

import "context"

type DeviceService interface {
	Create(ctx context.Context, req CreateDeviceRequest) (DeviceResponse, error)
	Get(ctx context.Context, id int64) (DeviceResponse, error)
	List(ctx context.Context) ([]DeviceResponse, error)
	Update(ctx context.Context, id int64, req UpdateDeviceRequest) (DeviceResponse, error)
	Delete(ctx context.Context, id int64) error

	// Authenticate resolves an api key to its device and stamps last_seen.
	Authenticate(ctx context.Context, apiKey string) (Device, error)
}
