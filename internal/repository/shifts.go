package repository

import (
	"context"
	"time"

	"github.com/nexplant/production-manager/backend/internal/domain"
	"github.com/nexplant/production-manager/backend/internal/shiftwindow"
)

func (r *Repository) CreateShift(shift *domain.Shift) error {
	query := `
		INSERT INTO shifts (company_id, name, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{shift.CompanyID, shift.Name, shift.StartTime.String(), shift.EndTime.String()}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&shift.ID, &shift.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetShifts(companyID string) ([]*domain.Shift, error) {
	query := `
		SELECT id, name, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), created_at
		FROM shifts WHERE company_id = $1
		ORDER BY start_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		var row struct {
			ID        int64
			Name      string
			StartTime string
			EndTime   string
			CreatedAt time.Time
		}
		if err := rows.Scan(&row.ID, &row.Name, &row.StartTime, &row.EndTime, &row.CreatedAt); err != nil {
			return nil, err
		}

		shift := &domain.Shift{
			ID:        row.ID,
			CompanyID: companyID,
			Name:      row.Name,
			CreatedAt: row.CreatedAt,
		}
		if shift.StartTime, err = shiftwindow.ParseTimeOfDay(row.StartTime); err != nil {
			return nil, err
		}
		if shift.EndTime, err = shiftwindow.ParseTimeOfDay(row.EndTime); err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) GetShift(companyID string, id int64) (*domain.Shift, error) {
	query := `
		SELECT name, to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'), created_at
		FROM shifts WHERE company_id = $1 AND id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shift := &domain.Shift{
		ID:        id,
		CompanyID: companyID,
	}

	var startTime, endTime string
	dst := []any{&shift.Name, &startTime, &endTime, &shift.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, companyID, id).Scan(dst...); err != nil {
		return nil, err
	}

	var err error
	if shift.StartTime, err = shiftwindow.ParseTimeOfDay(startTime); err != nil {
		return nil, err
	}
	if shift.EndTime, err = shiftwindow.ParseTimeOfDay(endTime); err != nil {
		return nil, err
	}

	return shift, nil
}
