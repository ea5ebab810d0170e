package domain

import (
	"time"

	"github.com/nexplant/production-manager/backend/internal/shiftwindow"
)

type Recurrence struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// ProductionSchedule is one concrete production run. A recurring request is
// stored as one schedule per day sharing the same Recurrence.
type ProductionSchedule struct {
	ID            int64                 `json:"id"`
	CompanyID     string                `json:"companyID"`
	Name          string                `json:"name"`
	DeviceID      string                `json:"deviceID"`
	ProductID     int64                 `json:"productID"`
	ShiftID       int64                 `json:"shiftID"`
	ScheduledDate time.Time             `json:"scheduledDate"`
	StartTime     shiftwindow.TimeOfDay `json:"startTime"`
	EndTime       shiftwindow.TimeOfDay `json:"endTime"`
	StartAt       time.Time             `json:"startAt"`
	EndAt         time.Time             `json:"endAt"`
	RatedSpeed    float64               `json:"ratedSpeed"`
	Recurrence    *Recurrence           `json:"recurrence"`
	CreatedAt     time.Time             `json:"createdAt"`

	// filled on read only
	DeviceName  string             `json:"deviceName,omitempty"`
	ProductName string             `json:"productName,omitempty"`
	ShiftName   string             `json:"shiftName,omitempty"`
	Status      shiftwindow.Status `json:"status,omitempty"`
}

func (ps *ProductionSchedule) Window() shiftwindow.Interval {
	return shiftwindow.NewInterval(ps.StartTime, ps.EndTime)
}

func (ps *ProductionSchedule) Slot() shiftwindow.Slot {
	return shiftwindow.Slot{
		ID:     ps.ID,
		Date:   ps.ScheduledDate,
		Window: ps.Window(),
	}
}
