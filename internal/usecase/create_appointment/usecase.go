package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	catalogRepo "github.com/kalathiyadhruv74-afk/BookMyCut/internal/infra/storage/catalog"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/notifier"
)

// UseCase use case for creating an appointment
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	notify Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		txManager:       txManager,
		notifier:        notify,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the create appointment use case.
// The conflict check and the insert run inside one serializable
// transaction so two customers racing for the same interval cannot
// both succeed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%d, shop=%d, services=%v, date=%s, time=%s",
		req.CustomerID, req.ShopID, req.ServiceIDs, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Validate input data
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Get the current time in the shop timezone
	now := uc.timeProvider.Now().In(domain.ShopLocation)

	// 3. Reject dates and start times already in the past
	if err := validateNotInPast(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 4. Resolve the shop
	shop, err := uc.catalogRepo.GetShop(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			uc.logger.Warn("CreateAppointment: shop id=%d not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get shop id=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	// 5. Resolve the selected services and make sure they all belong to
	// this shop
	services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}
	if err := validateServicesBelongToShop(services, req.ServiceIDs, req.ShopID); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	// 6. Totals are the sum over the selected services
	totalDuration, totalPrice := domain.SumServices(services)

	var result *domain.Appointment

	// 7. Check-and-reserve inside a serializable transaction
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Load the active shop-day appointments with a row lock
		filter := domain.ShopDayFilter{
			ShopID: req.ShopID,
			Date:   req.Date,
		}

		appointments, err := uc.appointmentRepo.GetByShopAndDate(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 7.2. Check the requested interval against every active
		// appointment of the day
		overlaps, err := hasOverlappingAppointment(req.StartTime, totalDuration, appointments)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check overlap: %v", err)
			return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}
		if overlaps {
			uc.logger.Warn("CreateAppointment: slot %s on %s already booked for shop=%d",
				req.StartTime, req.Date.Format(domain.DateFormat), req.ShopID)
			return ErrSlotConflict
		}

		// 7.3. Reserve: the appointment starts pending and unpaid until
		// the first payment lands
		appt := &domain.Appointment{
			CustomerID:    req.CustomerID,
			ShopID:        req.ShopID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			TotalDuration: totalDuration,
			TotalPrice:    totalPrice,
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentUnpaid,
			ServiceIDs:    req.ServiceIDs,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 8. Best-effort notification, outside the transaction
	uc.notifier.Notify(
		notifier.KindBookingInitiated,
		req.CustomerID,
		"Booking Initiated",
		fmt.Sprintf("Your appointment at %s on %s at %s is awaiting payment.",
			shop.Name, result.Date.Format(domain.DateFormat), result.StartTime),
		&result.ID,
	)

	return &Response{
		ID:            result.ID,
		CustomerID:    result.CustomerID,
		ShopID:        result.ShopID,
		ServiceIDs:    result.ServiceIDs,
		Date:          result.Date,
		StartTime:     result.StartTime,
		TotalDuration: result.TotalDuration,
		TotalPrice:    result.TotalPrice,
		Status:        string(result.Status),
		PaymentStatus: string(result.PaymentStatus),
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// validateServicesBelongToShop checks that every requested service id
// resolved to a service owned by the shop
func validateServicesBelongToShop(services []*domain.Service, requestedIDs []int64, shopID int64) error {
	if len(services) != len(requestedIDs) {
		return fmt.Errorf("%w: %d of %d requested services exist", ErrServiceNotFound, len(services), len(requestedIDs))
	}
	for _, svc := range services {
		if svc.ShopID != shopID {
			return fmt.Errorf("%w: service id=%d belongs to another shop", ErrServiceNotFound, svc.ID)
		}
	}
	return nil
}
