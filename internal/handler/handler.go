package handler

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/nexplant/production-manager/backend/internal/config"
	"github.com/nexplant/production-manager/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  Store
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	location    *time.Location
	now         func() time.Time

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo Store, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// report json field names in messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}
	if err := registerTimeOfDayValidation(validate, trans); err != nil {
		return nil, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		location:    loc,
		now:         time.Now,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           h.config.CORS.MaxAge,
	}))

	globalAdmin := h.RequiredRole([]domain.Role{domain.RoleGlobalAdmin})
	companyAdmin := h.RequiredRole([]domain.Role{domain.RoleCompanyAdmin})

	// authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Use(httprate.LimitByIP(h.config.Server.AuthRateLimit, time.Minute))
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.With(h.auth, h.myInfo).Get("/check", h.CheckSession)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below needs a session of an active user
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth, h.myInfo)

		r.Route("/my-info", func(r chi.Router) {
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/companies", func(r chi.Router) {
			r.Use(globalAdmin)
			r.Post("/", h.CreateCompany)
			r.Get("/", h.GetAllCompanies)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.company)
				r.Get("/", h.GetCompany)
				r.Delete("/", h.DisableCompany)
			})
		})

		r.With(globalAdmin).Post("/devices", h.RegisterDevice)
		r.Get("/devices", h.GetDevices)
		r.Get("/users", h.GetUsers)

		// company data is only reachable by members of an active company
		r.Group(func(r chi.Router) {
			r.Use(h.companyMember)

			r.With(companyAdmin).Post("/users", h.CreateUser)
			r.Route("/users/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(companyAdmin).Patch("/", h.UpdateUser)
				r.With(companyAdmin).Delete("/", h.DeleteUser)
			})

			r.Route("/products", func(r chi.Router) {
				r.With(companyAdmin).Post("/", h.CreateProduct)
				r.Get("/", h.GetProducts)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.With(companyAdmin).Post("/", h.CreateShift)
				r.Get("/", h.GetShifts)
				r.Get("/current", h.GetCurrentShift)
			})

			r.Route("/production-schedules", func(r chi.Router) {
				r.With(companyAdmin).Post("/", h.CreateProductionSchedule)
				r.Get("/", h.GetProductionSchedules)
				r.With(companyAdmin).Delete("/{id}", h.DeleteProductionSchedule)
			})
		})
	})
}
