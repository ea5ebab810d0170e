package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nexplant/production-manager/backend/internal/domain"
	"github.com/nexplant/production-manager/backend/internal/shiftwindow"
	"github.com/nexplant/production-manager/backend/internal/utils"
)

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name" validate:"required,max=50"`
		StartTime string `json:"startTime" validate:"required,timeofday"`
		EndTime   string `json:"endTime" validate:"required,timeofday"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	window, err := shiftwindow.ParseInterval(req.StartTime, req.EndTime)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	company := r.Context().Value(CompanyCtx).(*domain.Company)

	existing, err := h.repository.GetShifts(company.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := utils.ValidateShiftAgainstExisting(window, existing); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	shift := &domain.Shift{
		CompanyID: company.ID,
		Name:      req.Name,
		StartTime: window.Start,
		EndTime:   window.End,
	}

	if err := h.repository.CreateShift(shift); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "shifts_company_name_key":
			h.errorResponse(w, r, "shift name already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "shift created", shift)
}

func (h *Handler) GetShifts(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	shifts, err := h.repository.GetShifts(company.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "shifts fetched", shifts)
}

// GetCurrentShift reports the shift running now with its concrete start and
// end timestamps. Data is null between shifts.
func (h *Handler) GetCurrentShift(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	shifts, err := h.repository.GetShifts(company.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	windows := make([]shiftwindow.NamedWindow, len(shifts))
	for i, shift := range shifts {
		windows[i] = shiftwindow.NamedWindow{ID: shift.ID, Name: shift.Name, Window: shift.Window()}
	}

	boundary, ok := shiftwindow.CurrentShift(windows, h.now().In(h.location))
	if !ok {
		h.successResponse(w, r, "no shift is running", nil)
		return
	}

	h.successResponse(w, r, "current shift fetched", boundary)
}
