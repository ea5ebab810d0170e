package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nexplant/production-manager/backend/internal/domain"
)

func (h *Handler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID          string `json:"id" validate:"required,max=64"`
		CompanyID   string `json:"companyID" validate:"required"`
		Name        string `json:"name" validate:"required,max=100"`
		Type        string `json:"type" validate:"max=50"`
		Location    string `json:"location" validate:"max=100"`
		Description string `json:"description" validate:"max=500"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	company, err := h.repository.GetCompanyByID(req.CompanyID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "company not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if company.Status != domain.CompanyActive {
		h.errorResponse(w, r, "company is disabled")
		return
	}

	device := &domain.Device{
		ID:          req.ID,
		CompanyID:   company.ID,
		Name:        req.Name,
		Type:        req.Type,
		Location:    req.Location,
		Description: req.Description,
	}

	if err := h.repository.CreateDevice(device); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "devices_pkey":
			h.errorResponse(w, r, "device is already registered")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "device registered", device)
}

// GetDevices lists every device for the global admin and the caller's
// company devices for everyone else.
func (h *Handler) GetDevices(w http.ResponseWriter, r *http.Request) {
	var companyID *string
	if me := currentUser(r); me.Role != domain.RoleGlobalAdmin {
		id := companyIDOf(me)
		if id == "" {
			h.errorResponse(w, r, "this operation requires a company account")
			return
		}
		companyID = &id
	}

	devices, err := h.repository.GetDevices(companyID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "devices fetched", devices)
}
