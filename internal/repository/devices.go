package repository

import (
	"context"
	"time"

	"github.com/nexplant/production-manager/backend/internal/domain"
)

func (r *Repository) CreateDevice(device *domain.Device) error {
	query := `
		INSERT INTO devices (id, company_id, name, type, location, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{device.ID, device.CompanyID, device.Name, device.Type, device.Location, device.Description}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&device.CreatedAt); err != nil {
		return err
	}

	return nil
}

// GetDevices lists devices of one company, or every device when companyID is nil.
func (r *Repository) GetDevices(companyID *string) ([]*domain.Device, error) {
	query := `
		SELECT id, company_id, name, type, location, description, created_at
		FROM devices
		WHERE ($1::varchar IS NULL OR company_id = $1)
		ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	devices := make([]*domain.Device, 0)
	for rows.Next() {
		device := &domain.Device{}
		dst := []any{&device.ID, &device.CompanyID, &device.Name, &device.Type, &device.Location, &device.Description, &device.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		devices = append(devices, device)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return devices, nil
}

func (r *Repository) GetDevice(companyID string, id string) (*domain.Device, error) {
	query := `
		SELECT name, type, location, description, created_at
		FROM devices WHERE company_id = $1 AND id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	device := &domain.Device{
		ID:        id,
		CompanyID: companyID,
	}

	dst := []any{&device.Name, &device.Type, &device.Location, &device.Description, &device.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, companyID, id).Scan(dst...); err != nil {
		return nil, err
	}

	return device, nil
}
