package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nexplant/production-manager/backend/internal/domain"
	"github.com/nexplant/production-manager/backend/internal/shiftwindow"
	"github.com/nexplant/production-manager/backend/internal/utils"
)

type createProductionScheduleRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	DeviceID        string `json:"deviceID" validate:"required"`
	ProductID       int64  `json:"productID" validate:"required,gt=0"`
	ShiftID         int64  `json:"shiftID" validate:"required,gt=0"`
	ScheduledDate   string `json:"scheduledDate" validate:"required_without=IsRecurring,omitempty,datetime=2006-01-02"`
	StartTime       string `json:"startTime" validate:"required_without=UseEntireShift,omitempty,timeofday"`
	EndTime         string `json:"endTime" validate:"required_without=UseEntireShift,omitempty,timeofday"`
	UseEntireShift  bool   `json:"useEntireShift"`
	IsRecurring     bool   `json:"isRecurring"`
	RecurrenceStart string `json:"recurrenceStart" validate:"required_if=IsRecurring true,omitempty,datetime=2006-01-02"`
	RecurrenceEnd   string `json:"recurrenceEnd" validate:"required_if=IsRecurring true,omitempty,datetime=2006-01-02"`
}

// dates resolves the calendar days the request covers, at midnight in loc.
func (req *createProductionScheduleRequest) dates(loc *time.Location) ([]time.Time, *domain.Recurrence, error) {
	if !req.IsRecurring {
		date, err := time.ParseInLocation(time.DateOnly, req.ScheduledDate, loc)
		if err != nil {
			return nil, nil, err
		}
		return []time.Time{date}, nil, nil
	}

	from, err := time.ParseInLocation(time.DateOnly, req.RecurrenceStart, loc)
	if err != nil {
		return nil, nil, err
	}
	to, err := time.ParseInLocation(time.DateOnly, req.RecurrenceEnd, loc)
	if err != nil {
		return nil, nil, err
	}

	dates, err := shiftwindow.ExpandDates(from, to)
	if err != nil {
		return nil, nil, err
	}
	return dates, &domain.Recurrence{StartDate: from, EndDate: to}, nil
}

func (h *Handler) CreateProductionSchedule(w http.ResponseWriter, r *http.Request) {
	var req createProductionScheduleRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	company := r.Context().Value(CompanyCtx).(*domain.Company)

	shift, err := h.repository.GetShift(company.ID, req.ShiftID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "shift not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	var production shiftwindow.Interval
	if !req.UseEntireShift {
		production, err = shiftwindow.ParseInterval(req.StartTime, req.EndTime)
		if err != nil {
			h.errorResponse(w, r, err.Error())
			return
		}
	}

	window, err := shiftwindow.ResolveProduction(shift.Window(), production, req.UseEntireShift)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	product, err := h.repository.GetProduct(company.ID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "product not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	device, err := h.repository.GetDevice(company.ID, req.DeviceID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "device not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	dates, recurrence, err := req.dates(h.location)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	base := &domain.ProductionSchedule{
		CompanyID:  company.ID,
		Name:       req.Name,
		DeviceID:   device.ID,
		ProductID:  product.ID,
		ShiftID:    shift.ID,
		StartTime:  window.Start,
		EndTime:    window.End,
		RatedSpeed: product.RatedSpeed,
		Recurrence: recurrence,
	}
	schedules := utils.BuildScheduleOccurrences(base, dates)

	if err := h.repository.CreateProductionSchedules(schedules); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	for _, ps := range schedules {
		ps.DeviceName = device.Name
		ps.ProductName = product.Name
		ps.ShiftName = shift.Name
	}

	h.successResponse(w, r, "production schedule created", schedules)
}

// GetProductionSchedules returns the company's schedules, each tagged as
// current, next or normal relative to now.
func (h *Handler) GetProductionSchedules(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	schedules, err := h.repository.GetProductionSchedules(company.ID, h.location)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	slots := make([]shiftwindow.Slot, len(schedules))
	for i, ps := range schedules {
		slots[i] = ps.Slot()
	}

	statuses := shiftwindow.Classify(slots, h.now().In(h.location))
	for _, ps := range schedules {
		ps.Status = statuses[ps.ID]
	}

	h.successResponse(w, r, "production schedules fetched", schedules)
}

func (h *Handler) DeleteProductionSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid production schedule id")
		return
	}

	company := r.Context().Value(CompanyCtx).(*domain.Company)

	if err := h.repository.DeleteProductionSchedule(company.ID, id); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "production schedule not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "production schedule deleted", nil)
}
