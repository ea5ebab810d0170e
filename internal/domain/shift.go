package domain

import (
	"time"

	"github.com/nexplant/production-manager/backend/internal/shiftwindow"
)

type Shift struct {
	ID        int64                 `json:"id"`
	CompanyID string                `json:"companyID"`
	Name      string                `json:"name"`
	StartTime shiftwindow.TimeOfDay `json:"startTime"`
	EndTime   shiftwindow.TimeOfDay `json:"endTime"`
	CreatedAt time.Time             `json:"createdAt"`
}

func (s *Shift) Window() shiftwindow.Interval {
	return shiftwindow.NewInterval(s.StartTime, s.EndTime)
}
