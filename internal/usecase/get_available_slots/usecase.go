package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	catalogRepo "github.com/kalathiyadhruv74-afk/BookMyCut/internal/infra/storage/catalog"
)

// UseCase computes the availability grid for one shop day
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the available slots use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: shop=%d, services=%v, date=%s",
		req.ShopID, req.ServiceIDs, req.Date.Format(domain.DateFormat))

	// 1. Validate input data
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Get the current time in the shop timezone
	now := uc.timeProvider.Now().In(domain.ShopLocation)

	// 3. Reject dates before today
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Resolve the shop
	if _, err := uc.catalogRepo.GetShop(ctx, req.ShopID); err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			uc.logger.Warn("GetAvailableSlots: shop id=%d not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get shop id=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	// 5. Resolve the selected services and make sure they all belong to
	// this shop
	services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}
	if err := validateServicesBelongToShop(services, req.ServiceIDs, req.ShopID); err != nil {
		uc.logger.Warn("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 6. The requested services determine how long a booking would run
	// from each slot
	totalDuration, totalPrice := domain.SumServices(services)

	// 7. Load the active appointments for this shop day
	filter := domain.ShopDayFilter{
		ShopID: req.ShopID,
		Date:   req.Date,
	}

	appointments, err := uc.appointmentRepo.GetByShopAndDate(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 8. Build the fixed grid and flag each slot
	gridSlots, err := generateGridSlots()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate grid: %v", err)
		return nil, fmt.Errorf("%w: failed to generate grid: %v", ErrInternal, err)
	}

	slots := flagSlots(gridSlots, totalDuration, appointments, req.Date, now)

	uc.logger.Info("GetAvailableSlots: generated %d slots for shop=%d, date=%s",
		len(slots), req.ShopID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:          req.Date,
		ShopID:        req.ShopID,
		TotalDuration: totalDuration,
		TotalPrice:    totalPrice,
		Slots:         slots,
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
