package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/notifier"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/appointments/models"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appt          *domain.Appointment
	byCustomer    []*domain.Appointment
	byShop        []*domain.Appointment
	statusUpdates []domain.AppointmentStatus
	statusFilter  *domain.AppointmentStatus
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return f.appt, nil
}

func (f *fakeAppointmentRepo) GetByCustomerID(_ context.Context, _ int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	f.statusFilter = status
	return f.byCustomer, nil
}

func (f *fakeAppointmentRepo) GetByShopID(_ context.Context, _ int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	f.statusFilter = status
	return f.byShop, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ int64, status domain.AppointmentStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}

type fakeCatalogRepo struct {
	shop *domain.Shop
}

func (f *fakeCatalogRepo) GetShop(_ context.Context, _ int64) (*domain.Shop, error) {
	return f.shop, nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	customer = domain.Actor{UserID: 42, Role: domain.RoleCustomer}
	owner    = domain.Actor{UserID: 7, Role: domain.RoleShopOwner}
	stranger = domain.Actor{UserID: 99, Role: domain.RoleCustomer}
)

func bookedAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:            9,
		CustomerID:    42,
		ShopID:        1,
		Date:          time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation),
		StartTime:     "10:00",
		TotalDuration: 30,
		TotalPrice:    25.0,
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPaid,
	}
}

func newTestService(apptRepo *fakeAppointmentRepo, notify *fakeNotifier) *Service {
	catRepo := &fakeCatalogRepo{shop: &domain.Shop{ID: 1, OwnerID: 7, Name: "Classic Cuts"}}
	return NewService(apptRepo, catRepo, notify, nopLogger{})
}

func TestGetByID_Access(t *testing.T) {
	svc := newTestService(&fakeAppointmentRepo{appt: bookedAppointment()}, &fakeNotifier{})

	resp, err := svc.GetByID(context.Background(), 9, customer)
	require.NoError(t, err)
	assert.Equal(t, int64(9), resp.ID)

	_, err = svc.GetByID(context.Background(), 9, owner)
	assert.NoError(t, err, "shop owner may view bookings at their shop")

	_, err = svc.GetByID(context.Background(), 9, stranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_ByCustomerNotifiesOwner(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{appt: bookedAppointment()}
	notify := &fakeNotifier{}
	svc := newTestService(apptRepo, notify)

	require.NoError(t, svc.Cancel(context.Background(), 9, customer))

	require.Len(t, apptRepo.statusUpdates, 1)
	assert.Equal(t, domain.StatusCancelled, apptRepo.statusUpdates[0])

	require.Len(t, notify.sent, 1)
	assert.Equal(t, notifier.KindBookingCancelled, notify.sent[0].kind)
	assert.Equal(t, int64(7), notify.sent[0].userID)
}

func TestCancel_ByOwnerNotifiesCustomer(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{appt: bookedAppointment()}
	notify := &fakeNotifier{}
	svc := newTestService(apptRepo, notify)

	require.NoError(t, svc.Cancel(context.Background(), 9, owner))

	require.Len(t, notify.sent, 1)
	assert.Equal(t, int64(42), notify.sent[0].userID)
	assert.Equal(t, "Appointment Cancelled by Shop", notify.sent[0].title)
}

func TestCancel_StrangerDenied(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{appt: bookedAppointment()}
	svc := newTestService(apptRepo, &fakeNotifier{})

	err := svc.Cancel(context.Background(), 9, stranger)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, apptRepo.statusUpdates)
}

func TestComplete_OwnerOnly(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{appt: bookedAppointment()}
	notify := &fakeNotifier{}
	svc := newTestService(apptRepo, notify)

	err := svc.Complete(context.Background(), 9, customer)
	assert.ErrorIs(t, err, ErrAccessDenied)

	require.NoError(t, svc.Complete(context.Background(), 9, owner))
	require.Len(t, apptRepo.statusUpdates, 1)
	assert.Equal(t, domain.StatusCompleted, apptRepo.statusUpdates[0])

	require.Len(t, notify.sent, 1)
	assert.Equal(t, notifier.KindBookingCompleted, notify.sent[0].kind)
	assert.Equal(t, int64(42), notify.sent[0].userID)
}

func TestGetShopAppointments_OwnerOnly(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{byShop: []*domain.Appointment{bookedAppointment()}}
	svc := newTestService(apptRepo, &fakeNotifier{})

	resp, err := svc.GetShopAppointments(context.Background(), &models.GetShopAppointmentsRequest{
		UserID: 7,
		ShopID: 1,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	_, err = svc.GetShopAppointments(context.Background(), &models.GetShopAppointmentsRequest{
		UserID: 42,
		ShopID: 1,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserAppointments_StatusFilter(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{byCustomer: []*domain.Appointment{bookedAppointment()}}
	svc := newTestService(apptRepo, &fakeNotifier{})

	_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: 42,
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	require.NotNil(t, apptRepo.statusFilter)
	assert.Equal(t, domain.StatusConfirmed, *apptRepo.statusFilter)

	_, err = svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: 42,
		Status: ptr.Ptr("bogus"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
