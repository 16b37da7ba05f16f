package record_payment

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
	appt          *domain.Appointment
	statusUpdates []domain.PaymentStatus
	confirmCalls  int
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return f.appt, nil
}

func (f *fakeAppointmentRepo) UpdatePaymentStatus(_ context.Context, _ int64, status domain.PaymentStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	f.appt.PaymentStatus = status
	return nil
}

func (f *fakeAppointmentRepo) ConfirmIfPending(_ context.Context, _ int64) (bool, error) {
	f.confirmCalls++
	if f.appt.Status == domain.StatusPending {
		f.appt.Status = domain.StatusConfirmed
		return true, nil
	}
	return false, nil
}

type fakePaymentRepo struct {
	created []*domain.Payment
	nextID  int64
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *domain.Payment) (*domain.Payment, error) {
	f.nextID++
	stored := *payment
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.created = append(f.created, &stored)
	return &stored, nil
}

type fakeCatalogRepo struct {
	shop *domain.Shop
}

func (f *fakeCatalogRepo) GetShop(_ context.Context, _ int64) (*domain.Shop, error) {
	return f.shop, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordedNotification struct {
	kind   string
	userID int64
}

type fakeNotifier struct {
	sent []recordedNotification
}

func (f *fakeNotifier) Notify(kind string, userID int64, _, _ string, _ *int64) {
	f.sent = append(f.sent, recordedNotification{kind: kind, userID: userID})
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:            9,
		CustomerID:    42,
		ShopID:        1,
		Date:          time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation),
		StartTime:     "10:00",
		TotalDuration: 50,
		TotalPrice:    40.0,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentUnpaid,
	}
}

type fixture struct {
	uc       *UseCase
	apptRepo *fakeAppointmentRepo
	payRepo  *fakePaymentRepo
	notify   *fakeNotifier
}

func newFixture(appt *domain.Appointment) *fixture {
	apptRepo := &fakeAppointmentRepo{appt: appt}
	payRepo := &fakePaymentRepo{}
	notify := &fakeNotifier{}
	catRepo := &fakeCatalogRepo{shop: &domain.Shop{ID: 1, OwnerID: 7, Name: "Classic Cuts"}}

	return &fixture{
		uc:       NewUseCase(apptRepo, payRepo, catRepo, fakeTxManager{}, notify, nopLogger{}),
		apptRepo: apptRepo,
		payRepo:  payRepo,
		notify:   notify,
	}
}

func TestExecute_HalfPlanConfirms(t *testing.T) {
	f := newFixture(pendingAppointment())

	resp, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 9,
		CustomerID:    42,
		Amount:        20.0,
		Method:        "upi",
		Plan:          domain.PlanHalf,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.PaymentPartiallyPaid), resp.PaymentStatus)
	assert.Equal(t, string(domain.StatusConfirmed), resp.AppointmentStatus)
	assert.NotEmpty(t, resp.TransactionRef)

	require.Len(t, f.payRepo.created, 1)
	assert.Equal(t, domain.PaymentStatusCompleted, f.payRepo.created[0].Status)
	assert.Equal(t, 20.0, f.payRepo.created[0].Amount)

	// Customer payment receipt plus owner confirmation
	require.Len(t, f.notify.sent, 2)
	assert.Equal(t, notifier.KindPaymentRecorded, f.notify.sent[0].kind)
	assert.Equal(t, int64(42), f.notify.sent[0].userID)
	assert.Equal(t, notifier.KindBookingConfirmed, f.notify.sent[1].kind)
	assert.Equal(t, int64(7), f.notify.sent[1].userID)
}

func TestExecute_FullPlanPaysInFull(t *testing.T) {
	f := newFixture(pendingAppointment())

	resp, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 9,
		CustomerID:    42,
		Amount:        40.0,
		Method:        "card",
		Plan:          domain.PlanFull,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)
	assert.Equal(t, string(domain.StatusConfirmed), resp.AppointmentStatus)
}

func TestExecute_AmountMismatch(t *testing.T) {
	f := newFixture(pendingAppointment())

	_, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 9,
		CustomerID:    42,
		Amount:        25.0,
		Method:        "card",
		Plan:          domain.PlanHalf,
	})

	assert.ErrorIs(t, err, ErrAmountMismatch)
	assert.Empty(t, f.payRepo.created, "mismatched payment must not be written")
	assert.Empty(t, f.apptRepo.statusUpdates)
	assert.Empty(t, f.notify.sent)
}

func TestExecute_AmountWithinEpsilon(t *testing.T) {
	f := newFixture(pendingAppointment())

	_, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 9,
		CustomerID:    42,
		Amount:        19.995,
		Method:        "card",
		Plan:          domain.PlanHalf,
	})

	require.NoError(t, err)
}

func TestExecute_WrongCustomer(t *testing.T) {
	f := newFixture(pendingAppointment())

	_, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 9,
		CustomerID:    99,
		Amount:        40.0,
		Method:        "card",
		Plan:          domain.PlanFull,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, f.payRepo.created)
}

func TestPayRemaining_SettlesHalfPaid(t *testing.T) {
	appt := pendingAppointment()
	appt.Status = domain.StatusConfirmed
	appt.PaymentStatus = domain.PaymentPartiallyPaid
	f := newFixture(appt)

	resp, err := f.uc.PayRemaining(context.Background(), &RemainingRequest{
		AppointmentID: 9,
		CustomerID:    42,
	})
	require.NoError(t, err)

	assert.Equal(t, 20.0, resp.Amount)
	assert.Equal(t, "card", resp.Method)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)

	// Both parties hear about the settlement
	require.Len(t, f.notify.sent, 2)
	assert.Equal(t, notifier.KindPaymentRecorded, f.notify.sent[0].kind)
	assert.Equal(t, int64(42), f.notify.sent[0].userID)
	assert.Equal(t, notifier.KindBookingConfirmed, f.notify.sent[1].kind)
	assert.Equal(t, int64(7), f.notify.sent[1].userID)
}

func TestPayRemaining_NoBalance(t *testing.T) {
	tests := []struct {
		name   string
		status domain.PaymentStatus
	}{
		{"unpaid", domain.PaymentUnpaid},
		{"already paid", domain.PaymentPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appt := pendingAppointment()
			appt.PaymentStatus = tt.status
			f := newFixture(appt)

			_, err := f.uc.PayRemaining(context.Background(), &RemainingRequest{
				AppointmentID: 9,
				CustomerID:    42,
			})

			assert.ErrorIs(t, err, ErrNoBalance)
			assert.Empty(t, f.payRepo.created)
		})
	}
}
