package record_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	apptRepo "github.com/kalathiyadhruv74-afk/BookMyCut/internal/infra/storage/appointment"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/notifier"
)

// UseCase use case for recording payments against an appointment
type UseCase struct {
	appointmentRepo AppointmentRepository
	paymentRepo     PaymentRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	notifier        Notifier
	logger          Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(
	appointmentRepo AppointmentRepository,
	paymentRepo PaymentRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	notify Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		paymentRepo:     paymentRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		notifier:        notify,
		logger:          logger,
	}
}

// Execute records a payment and advances the appointment state.
// The payment row, the payment status transition and the one-shot
// pending-to-confirmed transition are written in one transaction.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecordPayment: appointment=%d, customer=%d, amount=%.2f, plan=%s, final=%t",
		req.AppointmentID, req.CustomerID, req.Amount, req.Plan, req.IsFinalSettlement)

	// 1. Validate input data
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RecordPayment: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the appointment
	appt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("RecordPayment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RecordPayment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 3. Only the customer who booked may pay
	if appt.CustomerID != req.CustomerID {
		uc.logger.Warn("RecordPayment: customer id=%d is not the owner of appointment id=%d",
			req.CustomerID, req.AppointmentID)
		return nil, ErrAccessDenied
	}

	// 4. The submitted amount must match the plan exactly, up to the
	// rounding epsilon
	expected := expectedAmount(appt, req.Plan, req.IsFinalSettlement)
	if !domain.AmountMatches(req.Amount, expected) {
		uc.logger.Warn("RecordPayment: amount mismatch for appointment id=%d: got %.2f, expected %.2f",
			req.AppointmentID, req.Amount, expected)
		return nil, fmt.Errorf("%w: expected %.2f", ErrAmountMismatch, expected)
	}

	// Paid in full when this is the full plan or the final settlement
	newPaymentStatus := domain.PaymentPartiallyPaid
	if req.IsFinalSettlement || req.Plan == domain.PlanFull {
		newPaymentStatus = domain.PaymentPaid
	}

	var (
		created   *domain.Payment
		confirmed bool
	)

	// 5. Write the payment and the state transitions atomically
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		payment := &domain.Payment{
			AppointmentID:  req.AppointmentID,
			Amount:         req.Amount,
			Method:         req.Method,
			Status:         domain.PaymentStatusCompleted,
			TransactionRef: uuid.NewString(),
		}

		created, err = uc.paymentRepo.Create(txCtx, payment)
		if err != nil {
			uc.logger.Error("RecordPayment: failed to create payment: %v", err)
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		if err := uc.appointmentRepo.UpdatePaymentStatus(txCtx, req.AppointmentID, newPaymentStatus); err != nil {
			uc.logger.Error("RecordPayment: failed to update payment status: %v", err)
			return fmt.Errorf("%w: failed to update payment status: %v", ErrInternal, err)
		}

		// Confirms at most once: the conditional update only fires
		// while the appointment is still pending
		confirmed, err = uc.appointmentRepo.ConfirmIfPending(txCtx, req.AppointmentID)
		if err != nil {
			uc.logger.Error("RecordPayment: failed to confirm appointment: %v", err)
			return fmt.Errorf("%w: failed to confirm appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RecordPayment: payment id=%d recorded for appointment id=%d, payment_status=%s, confirmed=%t",
		created.ID, req.AppointmentID, newPaymentStatus, confirmed)

	// 6. Best-effort notifications, outside the transaction
	uc.notifier.Notify(
		notifier.KindPaymentRecorded,
		appt.CustomerID,
		"Payment Successful",
		fmt.Sprintf("Payment of %.2f received for your appointment on %s at %s.",
			req.Amount, appt.Date.Format(domain.DateFormat), appt.StartTime),
		&appt.ID,
	)

	uc.notifyShopOwner(ctx, appt, req.Amount)

	apptStatus := appt.Status
	if confirmed {
		apptStatus = domain.StatusConfirmed
	}

	return &Response{
		PaymentID:         created.ID,
		AppointmentID:     req.AppointmentID,
		Amount:            created.Amount,
		Method:            created.Method,
		TransactionRef:    created.TransactionRef,
		PaymentStatus:     string(newPaymentStatus),
		AppointmentStatus: string(apptStatus),
		CreatedAt:         created.CreatedAt,
	}, nil
}

// PayRemaining settles the second half of a half-paid appointment.
// Only appointments that are currently partially paid carry a balance.
func (uc *UseCase) PayRemaining(ctx context.Context, req *RemainingRequest) (*Response, error) {
	uc.logger.Info("PayRemaining: appointment=%d, customer=%d", req.AppointmentID, req.CustomerID)

	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointment_id must be positive", ErrInvalidInput)
	}
	if req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customer_id must be positive", ErrInvalidInput)
	}

	appt, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("PayRemaining: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("PayRemaining: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	if appt.CustomerID != req.CustomerID {
		uc.logger.Warn("PayRemaining: customer id=%d is not the owner of appointment id=%d",
			req.CustomerID, req.AppointmentID)
		return nil, ErrAccessDenied
	}

	if appt.PaymentStatus != domain.PaymentPartiallyPaid {
		uc.logger.Warn("PayRemaining: appointment id=%d has payment_status=%s, nothing to settle",
			req.AppointmentID, appt.PaymentStatus)
		return nil, ErrNoBalance
	}

	method := req.Method
	if method == "" {
		method = "card"
	}

	return uc.Execute(ctx, &Request{
		AppointmentID:     req.AppointmentID,
		CustomerID:        req.CustomerID,
		Amount:            appt.HalfAmount(),
		Method:            method,
		Plan:              domain.PlanHalf,
		IsFinalSettlement: true,
	})
}

// notifyShopOwner tells the owner a paid booking landed at their shop
func (uc *UseCase) notifyShopOwner(ctx context.Context, appt *domain.Appointment, amount float64) {
	shop, err := uc.catalogRepo.GetShop(ctx, appt.ShopID)
	if err != nil {
		uc.logger.Warn("RecordPayment: failed to resolve shop id=%d for owner notification: %v",
			appt.ShopID, err)
		return
	}

	uc.notifier.Notify(
		notifier.KindBookingConfirmed,
		shop.OwnerID,
		"New Booking Confirmed",
		fmt.Sprintf("New booking for %s at %s, paid %.2f.",
			appt.Date.Format(domain.DateFormat), appt.StartTime, amount),
		&appt.ID,
	)
}
