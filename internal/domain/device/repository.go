package device

import "context"

// DeviceRepository defines data access methods for attendance devices.
type DeviceRepository interface {
	Create(ctx context.Context, d Device) (Device, error)
	GetByID(ctx context.Context, id int64) (Device, error)
	GetByAPIKey(ctx context.Context, apiKey string) (Device, error)
	List(ctx context.Context) ([]Device, error)
	Update(ctx context.Context, d Device) error
	TouchLastSeen(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
