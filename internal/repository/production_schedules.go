package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/nexplant/production-manager/backend/internal/domain"
	"github.com/nexplant/production-manager/backend/internal/shiftwindow"
)

// CreateProductionSchedules inserts all occurrences of one request atomically.
func (r *Repository) CreateProductionSchedules(schedules []*domain.ProductionSchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO production_schedules (
			company_id, name, device_id, product_id, shift_id, scheduled_date,
			start_time, end_time, start_at, end_at, rated_speed, recurrence_start, recurrence_end
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`

	for _, ps := range schedules {
		var recurrenceStart, recurrenceEnd sql.NullString
		if ps.Recurrence != nil {
			recurrenceStart = sql.NullString{String: ps.Recurrence.StartDate.Format(time.DateOnly), Valid: true}
			recurrenceEnd = sql.NullString{String: ps.Recurrence.EndDate.Format(time.DateOnly), Valid: true}
		}

		args := []any{
			ps.CompanyID,
			ps.Name,
			ps.DeviceID,
			ps.ProductID,
			ps.ShiftID,
			ps.ScheduledDate.Format(time.DateOnly),
			ps.StartTime.String(),
			ps.EndTime.String(),
			ps.StartAt,
			ps.EndAt,
			ps.RatedSpeed,
			recurrenceStart,
			recurrenceEnd,
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&ps.ID, &ps.CreatedAt); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// GetProductionSchedules returns the company's schedules ordered by start.
// Dates are returned at midnight in loc.
func (r *Repository) GetProductionSchedules(companyID string, loc *time.Location) ([]*domain.ProductionSchedule, error) {
	query := `
		SELECT
			ps.id,
			ps.name,
			ps.device_id,
			ps.product_id,
			ps.shift_id,
			to_char(ps.scheduled_date, 'YYYY-MM-DD'),
			to_char(ps.start_time, 'HH24:MI'),
			to_char(ps.end_time, 'HH24:MI'),
			ps.start_at,
			ps.end_at,
			ps.rated_speed,
			to_char(ps.recurrence_start, 'YYYY-MM-DD'),
			to_char(ps.recurrence_end, 'YYYY-MM-DD'),
			ps.created_at,
			COALESCE(d.name, ''),
			COALESCE(p.name, ''),
			COALESCE(s.name, '')
		FROM production_schedules ps
		LEFT JOIN devices d ON ps.device_id = d.id
		LEFT JOIN products p ON ps.product_id = p.id
		LEFT JOIN shifts s ON ps.shift_id = s.id
		WHERE ps.company_id = $1
		ORDER BY ps.start_at, ps.id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]*domain.ProductionSchedule, 0)
	for rows.Next() {
		var row struct {
			ScheduledDate   string
			StartTime       string
			EndTime         string
			RecurrenceStart sql.NullString
			RecurrenceEnd   sql.NullString
		}
		ps := &domain.ProductionSchedule{CompanyID: companyID}

		dst := []any{
			&ps.ID,
			&ps.Name,
			&ps.DeviceID,
			&ps.ProductID,
			&ps.ShiftID,
			&row.ScheduledDate,
			&row.StartTime,
			&row.EndTime,
			&ps.StartAt,
			&ps.EndAt,
			&ps.RatedSpeed,
			&row.RecurrenceStart,
			&row.RecurrenceEnd,
			&ps.CreatedAt,
			&ps.DeviceName,
			&ps.ProductName,
			&ps.ShiftName,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if ps.ScheduledDate, err = time.ParseInLocation(time.DateOnly, row.ScheduledDate, loc); err != nil {
			return nil, err
		}
		if ps.StartTime, err = shiftwindow.ParseTimeOfDay(row.StartTime); err != nil {
			return nil, err
		}
		if ps.EndTime, err = shiftwindow.ParseTimeOfDay(row.EndTime); err != nil {
			return nil, err
		}

		// every occurrence of a recurring schedule carries the same range
		if row.RecurrenceStart.Valid && row.RecurrenceEnd.Valid {
			recurrence := &domain.Recurrence{}
			if recurrence.StartDate, err = time.ParseInLocation(time.DateOnly, row.RecurrenceStart.String, loc); err != nil {
				return nil, err
			}
			if recurrence.EndDate, err = time.ParseInLocation(time.DateOnly, row.RecurrenceEnd.String, loc); err != nil {
				return nil, err
			}
			ps.Recurrence = recurrence
		}

		schedules = append(schedules, ps)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *Repository) DeleteProductionSchedule(companyID string, id int64) error {
	query := `DELETE FROM production_schedules WHERE company_id = $1 AND id = $2`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, query, companyID, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// DeleteProductionSchedulesEndedBefore removes schedules of every company
// whose window closed before t and reports how many were removed.
func (r *Repository) DeleteProductionSchedulesEndedBefore(t time.Time) (int64, error) {
	query := `DELETE FROM production_schedules WHERE end_at < $1`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, query, t)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
