package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/notifier"
)

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  []*domain.Appointment
	nextID   int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	stored := *appt
	stored.ID = f.nextID
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeAppointmentRepo) GetByShopAndDate(_ context.Context, _ domain.ShopDayFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
}

type fakeCatalogRepo struct {
	shop     *domain.Shop
	shopErr  error
	services []*domain.Service
}

func (f *fakeCatalogRepo) GetShop(_ context.Context, _ int64) (*domain.Shop, error) {
	return f.shop, f.shopErr
}

func (f *fakeCatalogRepo) GetServicesByIDs(_ context.Context, ids []int64) ([]*domain.Service, error) {
	matched := make([]*domain.Service, 0, len(ids))
	for _, svc := range f.services {
		for _, id := range ids {
			if svc.ID == id {
				matched = append(matched, svc)
				break
			}
		}
	}
	return matched, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordedNotification struct {
	kind   string
	userID int64
	title  string
}

type fakeNotifier struct {
	sent []recordedNotification
}

func (f *fakeNotifier) Notify(kind string, userID int64, title, _ string, _ *int64) {
	f.sent = append(f.sent, recordedNotification{kind: kind, userID: userID, title: title})
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testShopAndServices() (*domain.Shop, []*domain.Service) {
	shop := &domain.Shop{ID: 1, OwnerID: 7, Name: "Classic Cuts"}
	services := []*domain.Service{
		{ID: 11, ShopID: 1, Name: "Haircut", Price: 25, DurationMinutes: 30},
		{ID: 12, ShopID: 1, Name: "Beard Trim", Price: 15, DurationMinutes: 20},
	}
	return shop, services
}

func newTestUseCase(apptRepo *fakeAppointmentRepo, catRepo *fakeCatalogRepo, notify *fakeNotifier, now time.Time) *UseCase {
	uc := NewUseCase(apptRepo, catRepo, fakeTxManager{}, notify, nopLogger{})
	uc.timeProvider = &fakeClock{now: now}
	return uc
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)
	shop, services := testShopAndServices()

	apptRepo := &fakeAppointmentRepo{}
	notify := &fakeNotifier{}
	uc := newTestUseCase(apptRepo, &fakeCatalogRepo{shop: shop, services: services}, notify, now)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		ShopID:     1,
		ServiceIDs: []int64{11, 12},
		Date:       time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation),
		StartTime:  "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, string(domain.PaymentUnpaid), resp.PaymentStatus)
	assert.Equal(t, 50, resp.TotalDuration)
	assert.Equal(t, 40.0, resp.TotalPrice)

	require.Len(t, apptRepo.created, 1)
	require.Len(t, notify.sent, 1)
	assert.Equal(t, notifier.KindBookingInitiated, notify.sent[0].kind)
	assert.Equal(t, int64(42), notify.sent[0].userID)
}

func TestExecute_SlotConflict(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)
	shop, services := testShopAndServices()

	// Existing appointment at 14:30; the 50-minute request from 14:00
	// runs into it
	apptRepo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{ID: 5, StartTime: "14:30", TotalDuration: 30, Status: domain.StatusConfirmed},
		},
	}
	notify := &fakeNotifier{}
	uc := newTestUseCase(apptRepo, &fakeCatalogRepo{shop: shop, services: services}, notify, now)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		ShopID:     1,
		ServiceIDs: []int64{11, 12},
		Date:       time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation),
		StartTime:  "14:00",
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, apptRepo.created, "conflicting request must not write anything")
	assert.Empty(t, notify.sent)
}

func TestExecute_ConflictWithAppointmentRunningPastMidnight(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)
	shop, services := testShopAndServices()

	// The existing 19:30 appointment runs five hours, ending past
	// midnight; a second booking at the same start must still conflict
	apptRepo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{ID: 5, StartTime: "19:30", TotalDuration: 300, Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(apptRepo, &fakeCatalogRepo{shop: shop, services: services}, &fakeNotifier{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		ShopID:     1,
		ServiceIDs: []int64{11},
		Date:       time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation),
		StartTime:  "19:30",
	})

	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, apptRepo.created)
}

func TestExecute_CancelledAppointmentDoesNotConflict(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)
	shop, services := testShopAndServices()

	apptRepo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{ID: 5, StartTime: "14:00", TotalDuration: 60, Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(apptRepo, &fakeCatalogRepo{shop: shop, services: services}, &fakeNotifier{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		ShopID:     1,
		ServiceIDs: []int64{11},
		Date:       time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation),
		StartTime:  "14:00",
	})

	require.NoError(t, err)
	require.Len(t, apptRepo.created, 1)
}

func TestExecute_BackToBackDoesNotConflict(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)
	shop, services := testShopAndServices()

	apptRepo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{ID: 5, StartTime: "10:00", TotalDuration: 30, Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(apptRepo, &fakeCatalogRepo{shop: shop, services: services}, &fakeNotifier{}, now)

	// 10:30 starts exactly where the existing appointment ends
	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		ShopID:     1,
		ServiceIDs: []int64{11},
		Date:       time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation),
		StartTime:  "10:30",
	})

	require.NoError(t, err)
}

func TestExecute_PastDateToday(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)
	shop, services := testShopAndServices()

	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeCatalogRepo{shop: shop, services: services}, &fakeNotifier{}, now)

	// Today, but 11:30 is already behind 12:00
	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		ShopID:     1,
		ServiceIDs: []int64{11},
		Date:       domain.Today(now),
		StartTime:  "11:30",
	})
	assert.ErrorIs(t, err, ErrPastDate)

	// Yesterday is always rejected
	_, err = uc.Execute(context.Background(), &Request{
		CustomerID: 42,
		ShopID:     1,
		ServiceIDs: []int64{11},
		Date:       domain.Today(now).AddDate(0, 0, -1),
		StartTime:  "18:00",
	})
	assert.ErrorIs(t, err, ErrPastDate)
}
