package handler

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nexplant/production-manager/backend/internal/domain"
)

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string  `json:"name" validate:"required,max=100"`
		Description string  `json:"description" validate:"max=500"`
		RatedSpeed  float64 `json:"ratedSpeed" validate:"gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	company := r.Context().Value(CompanyCtx).(*domain.Company)

	product := &domain.Product{
		CompanyID:   company.ID,
		Name:        req.Name,
		Description: req.Description,
		RatedSpeed:  req.RatedSpeed,
	}

	if err := h.repository.CreateProduct(product); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr) && pgErr.ConstraintName == "products_company_name_key":
			h.errorResponse(w, r, "product name already exists")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "product created", product)
}

func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	products, err := h.repository.GetProducts(company.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "products fetched", products)
}
