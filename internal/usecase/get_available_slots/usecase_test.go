package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	catalogRepo "github.com/kalathiyadhruv74-afk/BookMyCut/internal/infra/storage/catalog"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetByShopAndDate(_ context.Context, _ domain.ShopDayFilter) ([]*domain.Appointment, error) {
	return f.appointments, f.err
}

type fakeCatalogRepo struct {
	shop     *domain.Shop
	shopErr  error
	services []*domain.Service
	svcErr   error
}

func (f *fakeCatalogRepo) GetShop(_ context.Context, _ int64) (*domain.Shop, error) {
	return f.shop, f.shopErr
}

func (f *fakeCatalogRepo) GetServicesByIDs(_ context.Context, _ []int64) ([]*domain.Service, error) {
	return f.services, f.svcErr
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(apptRepo AppointmentRepository, catRepo CatalogRepository, now time.Time) *UseCase {
	uc := NewUseCase(apptRepo, catRepo, nopLogger{})
	uc.timeProvider = &fakeClock{now: now}
	return uc
}

func TestExecute_FlagsBookedSlots(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation)

	apptRepo := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{StartTime: "10:00", TotalDuration: 45, Status: domain.StatusConfirmed},
		},
	}
	catRepo := &fakeCatalogRepo{
		shop: &domain.Shop{ID: 1, OwnerID: 7},
		services: []*domain.Service{
			{ID: 11, ShopID: 1, Price: 20, DurationMinutes: 30},
		},
	}

	uc := newTestUseCase(apptRepo, catRepo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ShopID:     1,
		ServiceIDs: []int64{11},
		Date:       date,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.TotalDuration)
	assert.Equal(t, 20.0, resp.TotalPrice)
	require.Len(t, resp.Slots, 22)

	unavailable := 0
	for _, s := range resp.Slots {
		if !s.Available {
			unavailable++
			assert.Equal(t, domain.SlotReasonBooked, s.Reason)
		}
	}
	assert.Equal(t, 2, unavailable, "10:00 and 10:30 overlap the 45-minute appointment")
}

func TestExecute_ShopNotFound(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeCatalogRepo{shopErr: catalogRepo.ErrShopNotFound},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		ShopID:     99,
		ServiceIDs: []int64{1},
		Date:       now.AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestExecute_ServiceFromAnotherShop(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeCatalogRepo{
			shop: &domain.Shop{ID: 1},
			services: []*domain.Service{
				{ID: 11, ShopID: 2, Price: 20, DurationMinutes: 30},
			},
		},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		ShopID:     1,
		ServiceIDs: []int64{11},
		Date:       now.AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_MissingService(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeCatalogRepo{
			shop:     &domain.Shop{ID: 1},
			services: []*domain.Service{},
		},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		ShopID:     1,
		ServiceIDs: []int64{11, 12},
		Date:       now.AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_PastDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)

	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalogRepo{shop: &domain.Shop{ID: 1}}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ShopID:     1,
		ServiceIDs: []int64{11},
		Date:       now.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalogRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ShopID:     1,
		ServiceIDs: nil,
		Date:       now.AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
