package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nexplant/production-manager/backend/internal/domain"
	"github.com/nexplant/production-manager/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// attempts at drawing an unused company id before giving up
const companyIDAttempts = 5

func (h *Handler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string `json:"name" validate:"required,max=100"`
		Description   string `json:"description" validate:"max=500"`
		CountryCode   string `json:"countryCode" validate:"required,iso3166_1_alpha2"`
		AdminUsername string `json:"adminUsername" validate:"required,email"`
		AdminFullName string `json:"adminFullName" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	req.CountryCode = strings.ToUpper(req.CountryCode)
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	password := utils.GenerateRandomPassword(h.config.NewUser.PasswordLength)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	company := &domain.Company{
		Name:        req.Name,
		Description: req.Description,
		CountryCode: req.CountryCode,
	}
	admin := &domain.User{
		Username:     req.AdminUsername,
		PasswordHash: string(hashedPassword),
		FullName:     req.AdminFullName,
		Email:        req.AdminUsername,
		Role:         domain.RoleCompanyAdmin,
	}

	for attempt := 1; ; attempt++ {
		company.ID = utils.GenerateCompanyID(company.CountryCode)
		err = h.repository.CreateCompany(company, admin)

		var pgErr *pgconn.PgError
		if attempt < companyIDAttempts && errors.As(err, &pgErr) && pgErr.ConstraintName == "companies_pkey" {
			slog.Warn("company id already taken, drawing another", "id", company.ID)
			continue
		}
		break
	}

	if err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "companies_name_key":
				h.errorResponse(w, r, "company name already exists")
			case "users_username_key":
				h.errorResponse(w, r, "username already exists")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := h.publishMail(domain.MailMessage{
		Type: domain.MailWelcomeCompany,
		To:   admin.Email,
		Data: domain.WelcomeCompanyMailData{
			CompanyName: company.Name,
			CompanyID:   company.ID,
			Username:    admin.Username,
			Password:    password,
		},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "company created", map[string]any{
		"company": company,
		"admin":   admin,
	})
}

func (h *Handler) GetAllCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.repository.GetAllCompanies()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "companies fetched", companies)
}

func (h *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)
	h.successResponse(w, r, "company fetched", company)
}

func (h *Handler) DisableCompany(w http.ResponseWriter, r *http.Request) {
	company := r.Context().Value(CompanyCtx).(*domain.Company)

	if company.Status == domain.CompanyDisabled {
		h.errorResponse(w, r, "company is already disabled")
		return
	}

	if err := h.repository.DisableCompany(company); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "company was modified concurrently, please try again")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "company disabled", company)
}
