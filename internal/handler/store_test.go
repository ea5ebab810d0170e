package handler

import (
	"database/sql"
	"time"

	"github.com/nexplant/production-manager/backend/internal/domain"
)

// fakeStore keeps just enough state in memory for the handlers under test.
// Methods it does not override panic through the nil embedded Store.
type fakeStore struct {
	Store

	users     map[int64]*domain.User
	companies map[string]*domain.Company
	shifts    map[int64]*domain.Shift
	products  map[int64]*domain.Product
	devices   map[string]*domain.Device
	schedules []*domain.ProductionSchedule
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     make(map[int64]*domain.User),
		companies: make(map[string]*domain.Company),
		shifts:    make(map[int64]*domain.Shift),
		products:  make(map[int64]*domain.Product),
		devices:   make(map[string]*domain.Device),
	}
}

func (f *fakeStore) GetUserByID(id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeStore) GetCompanyByID(id string) (*domain.Company, error) {
	company, ok := f.companies[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return company, nil
}

func (f *fakeStore) GetShift(companyID string, id int64) (*domain.Shift, error) {
	shift, ok := f.shifts[id]
	if !ok || shift.CompanyID != companyID {
		return nil, sql.ErrNoRows
	}
	return shift, nil
}

func (f *fakeStore) GetProduct(companyID string, id int64) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok || product.CompanyID != companyID {
		return nil, sql.ErrNoRows
	}
	return product, nil
}

func (f *fakeStore) GetDevice(companyID string, id string) (*domain.Device, error) {
	device, ok := f.devices[id]
	if !ok || device.CompanyID != companyID {
		return nil, sql.ErrNoRows
	}
	return device, nil
}

func (f *fakeStore) CreateProductionSchedules(schedules []*domain.ProductionSchedule) error {
	for _, ps := range schedules {
		ps.ID = int64(len(f.schedules) + 1)
		f.schedules = append(f.schedules, ps)
	}
	return nil
}

func (f *fakeStore) GetProductionSchedules(companyID string, loc *time.Location) ([]*domain.ProductionSchedule, error) {
	var schedules []*domain.ProductionSchedule
	for _, ps := range f.schedules {
		if ps.CompanyID == companyID {
			copied := *ps
			schedules = append(schedules, &copied)
		}
	}
	return schedules, nil
}
