package postgresql

import (
	"context"
	"fmt"

	"github.com/facetrack/attendance-backend-go/internal/domain/device"
	"github.com/facetrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type deviceRepository struct {
	db *database.DB
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepository{db: db}
}

const deviceColumns = `id, name, location, api_key, last_seen`

func scanDevice(row pgx.Row) (device.Device, error) {
	var d device.Device
	err := row.Scan(&d.ID, &d.Name, &d.Location, &d.APIKey, &d.LastSeen)
	return d, err
}

// Create implements device.DeviceRepository.
func (r *deviceRepository) Create(ctx context.Context, d device.Device) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO devices (name, location, api_key)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := q.QueryRow(ctx, query, d.Name, d.Location, d.APIKey).Scan(&d.ID); err != nil {
		return device.Device{}, fmt.Errorf("failed to create device: %w", err)
	}

	return d, nil
}

// GetByID implements device.DeviceRepository.
func (r *deviceRepository) GetByID(ctx context.Context, id int64) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`

	d, err := scanDevice(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return device.Device{}, device.ErrDeviceNotFound
		}
		return device.Device{}, fmt.Errorf("failed to get device by ID: %w", err)
	}

	return d, nil
}

// GetByAPIKey implements device.DeviceRepository.
func (r *deviceRepository) GetByAPIKey(ctx context.Context, apiKey string) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deviceColumns + ` FROM devices WHERE api_key = $1`

	d, err := scanDevice(q.QueryRow(ctx, query, apiKey))
	if err != nil {
		if err == pgx.ErrNoRows {
			return device.Device{}, device.ErrDeviceNotFound
		}
		return device.Device{}, fmt.Errorf("failed to get device by API key: %w", err)
	}

	return d, nil
}

// List implements device.DeviceRepository.
func (r *deviceRepository) List(ctx context.Context) ([]device.Device, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+deviceColumns+` FROM devices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	var devices []device.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return devices, nil
}

// Update implements device.DeviceRepository.
func (r *deviceRepository) Update(ctx context.Context, d device.Device) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE devices SET name = $2, location = $3 WHERE id = $1`

	tag, err := q.Exec(ctx, query, d.ID, d.Name, d.Location)
	if err != nil {
		return fmt.Errorf("failed to update device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}

	return nil
}

// TouchLastSeen implements device.DeviceRepository.
func (r *deviceRepository) TouchLastSeen(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `UPDATE devices SET last_seen = NOW() WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to touch device last_seen: %w", err)
	}

	return nil
}

// Delete implements device.DeviceRepository.
func (r *deviceRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}

	return nil
}
