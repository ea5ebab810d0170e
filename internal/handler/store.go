package handler

import (
	"time"

	"github.com/nexplant/production-manager/backend/internal/domain"
)

// Store is the persistence the handlers use. *repository.Repository
// implements it.
type Store interface {
	CreateCompany(company *domain.Company, admin *domain.User) error
	GetAllCompanies() ([]*domain.Company, error)
	GetCompanyByID(id string) (*domain.Company, error)
	DisableCompany(company *domain.Company) error

	CreateUser(user *domain.User) error
	GetUserByID(id int64) (*domain.User, error)
	GetUserByUsername(username string) (*domain.User, error)
	GetUsers(companyID *string) ([]*domain.User, error)
	UpdateUser(user *domain.User) error
	TouchLastLogin(id int64) (time.Time, error)
	DeleteUser(id int64) error

	CreateDevice(device *domain.Device) error
	GetDevices(companyID *string) ([]*domain.Device, error)
	GetDevice(companyID string, id string) (*domain.Device, error)

	CreateProduct(product *domain.Product) error
	GetProducts(companyID string) ([]*domain.Product, error)
	GetProduct(companyID string, id int64) (*domain.Product, error)

	CreateShift(shift *domain.Shift) error
	GetShifts(companyID string) ([]*domain.Shift, error)
	GetShift(companyID string, id int64) (*domain.Shift, error)

	CreateProductionSchedules(schedules []*domain.ProductionSchedule) error
	GetProductionSchedules(companyID string, loc *time.Location) ([]*domain.ProductionSchedule, error)
	DeleteProductionSchedule(companyID string, id int64) error
}
