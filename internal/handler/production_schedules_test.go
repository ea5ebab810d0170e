package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/nexplant/production-manager/backend/internal/domain"
	"github.com/nexplant/production-manager/backend/internal/shiftwindow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduleListResponse struct {
	Success bool                         `json:"success"`
	Message string                       `json:"message"`
	Data    []*domain.ProductionSchedule `json:"data"`
}

func mustInterval(start, end string) shiftwindow.Interval {
	return shiftwindow.NewInterval(shiftwindow.MustParseTimeOfDay(start), shiftwindow.MustParseTimeOfDay(end))
}

// withPlant adds a night shift, a product and a device to the test company.
func withPlant(store *fakeStore) {
	night := mustInterval("22:00", "06:00")
	store.shifts[1] = &domain.Shift{ID: 1, CompanyID: testCompanyID, Name: "Night", StartTime: night.Start, EndTime: night.End}
	store.products[1] = &domain.Product{ID: 1, CompanyID: testCompanyID, Name: "Bracket A", RatedSpeed: 42}
	store.devices["PRS-001"] = &domain.Device{ID: "PRS-001", CompanyID: testCompanyID, Name: "Press Line 1"}
}

func TestCreateProductionSchedule(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		success bool
		message string
		rows    int
	}{
		{
			name:    "starts before the shift",
			body:    `{"name":"Run","deviceID":"PRS-001","productID":1,"shiftID":1,"scheduledDate":"2025-06-30","startTime":"21:00","endTime":"23:00"}`,
			message: "production times must be within shift hours (22:00 - 06:00)",
		},
		{
			name:    "ends after the shift",
			body:    `{"name":"Run","deviceID":"PRS-001","productID":1,"shiftID":1,"scheduledDate":"2025-06-30","startTime":"05:00","endTime":"07:00"}`,
			message: "production times must be within shift hours (22:00 - 06:00)",
		},
		{
			name:    "unknown shift",
			body:    `{"name":"Run","deviceID":"PRS-001","productID":1,"shiftID":9,"scheduledDate":"2025-06-30","useEntireShift":true}`,
			message: "shift not found",
		},
		{
			name:    "unknown device",
			body:    `{"name":"Run","deviceID":"CNC-101","productID":1,"shiftID":1,"scheduledDate":"2025-06-30","useEntireShift":true}`,
			message: "device not found",
		},
		{
			name:    "inside an overnight shift",
			body:    `{"name":"Run","deviceID":"PRS-001","productID":1,"shiftID":1,"scheduledDate":"2025-06-30","startTime":"23:00","endTime":"02:00"}`,
			success: true,
			message: "production schedule created",
			rows:    1,
		},
		{
			name:    "recurring entire shift",
			body:    `{"name":"Run","deviceID":"PRS-001","productID":1,"shiftID":1,"useEntireShift":true,"isRecurring":true,"recurrenceStart":"2025-06-29","recurrenceEnd":"2025-07-01"}`,
			success: true,
			message: "production schedule created",
			rows:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store := newTestHandler(t)
			withPlant(store)
			h.RegisterRoutes()

			rec := serve(t, h, http.MethodPost, "/production-schedules", tt.body, adminToken(t, adminID))

			resp := decodeResponse(t, rec)
			assert.Equal(t, tt.success, resp.Success, resp.Message)
			assert.Equal(t, tt.message, resp.Message)
			assert.Len(t, store.schedules, tt.rows)
		})
	}
}

func TestCreateProductionScheduleOvernightTimestamps(t *testing.T) {
	h, store := newTestHandler(t)
	withPlant(store)
	h.RegisterRoutes()

	body := `{"name":"Run","deviceID":"PRS-001","productID":1,"shiftID":1,"scheduledDate":"2025-06-30","startTime":"23:00","endTime":"02:00"}`
	rec := serve(t, h, http.MethodPost, "/production-schedules", body, adminToken(t, adminID))
	require.True(t, decodeResponse(t, rec).Success)

	require.Len(t, store.schedules, 1)
	ps := store.schedules[0]
	assert.True(t, ps.StartAt.Equal(time.Date(2025, time.June, 30, 23, 0, 0, 0, time.UTC)), "start = %v", ps.StartAt)
	assert.True(t, ps.EndAt.Equal(time.Date(2025, time.July, 1, 2, 0, 0, 0, time.UTC)), "end = %v", ps.EndAt)
	assert.Equal(t, 42.0, ps.RatedSpeed)
	assert.Nil(t, ps.Recurrence)
}

func TestGetProductionSchedulesStatus(t *testing.T) {
	h, store := newTestHandler(t)
	h.now = func() time.Time { return time.Date(2025, time.June, 30, 23, 30, 0, 0, time.UTC) }
	h.RegisterRoutes()

	today := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	schedule := func(id int64, date time.Time, start, end string) *domain.ProductionSchedule {
		w := mustInterval(start, end)
		return &domain.ProductionSchedule{ID: id, CompanyID: testCompanyID, ScheduledDate: date, StartTime: w.Start, EndTime: w.End}
	}
	store.schedules = []*domain.ProductionSchedule{
		schedule(1, today, "22:00", "02:00"),
		schedule(2, today, "23:45", "23:55"),
		schedule(3, today, "23:40", "23:50"),
		schedule(4, today.AddDate(0, 0, 1), "22:00", "06:00"),
		schedule(5, today, "08:00", "12:00"),
	}

	rec := serve(t, h, http.MethodGet, "/production-schedules", "", adminToken(t, viewerID))

	var resp scheduleListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success, resp.Message)
	require.Len(t, resp.Data, 5)

	got := make(map[int64]shiftwindow.Status)
	for _, ps := range resp.Data {
		got[ps.ID] = ps.Status
	}
	assert.Equal(t, map[int64]shiftwindow.Status{
		1: shiftwindow.StatusCurrent,
		2: shiftwindow.StatusNormal,
		3: shiftwindow.StatusNext,
		4: shiftwindow.StatusNormal,
		5: shiftwindow.StatusNormal,
	}, got)
}
