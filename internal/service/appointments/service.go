package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	apptRepo "github.com/kalathiyadhruv74-afk/BookMyCut/internal/infra/storage/appointment"
	catalogRepo "github.com/kalathiyadhruv74-afk/BookMyCut/internal/infra/storage/catalog"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/notifier"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/appointments/models"
)

// Service manages the appointment lifecycle after booking
type Service struct {
	appointmentRepo AppointmentRepository
	catalogRepo     CatalogRepository
	notifier        Notifier
	logger          Logger
}

// NewService creates a new appointments service instance
func NewService(
	appointmentRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	notify Notifier,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		catalogRepo:     catalogRepo,
		notifier:        notify,
		logger:          logger,
	}
}

// GetByID fetches one appointment.
// Visible only to the customer who booked it and the owner of the shop
// it was booked at.
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, actor.UserID)

	appt, shop, err := s.getWithShop(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	if !s.canAccess(appt, shop, actor) {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetUserAppointments fetches the appointment history of one customer,
// optionally filtered by status
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d, status=%v", req.UserID, req.Status)

	status, err := toStatusFilter(req.Status)
	if err != nil {
		s.logger.Warn("GetUserAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	list, err := s.appointmentRepo.GetByCustomerID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for user=%d", len(list), req.UserID)
	return models.FromDomainAppointmentList(list), nil
}

// GetShopAppointments fetches the appointments of one shop,
// optionally filtered by status. Owner only.
func (s *Service) GetShopAppointments(ctx context.Context, req *models.GetShopAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetShopAppointments: fetching appointments for shop=%d, user=%d, status=%v",
		req.ShopID, req.UserID, req.Status)

	if err := s.checkShopOwner(ctx, req.ShopID, req.UserID, "GetShopAppointments"); err != nil {
		return nil, err
	}

	status, err := toStatusFilter(req.Status)
	if err != nil {
		s.logger.Warn("GetShopAppointments: invalid status=%s for shop=%d", *req.Status, req.ShopID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	list, err := s.appointmentRepo.GetByShopID(ctx, req.ShopID, status)
	if err != nil {
		s.logger.Error("GetShopAppointments: repository error for shop=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: GetShopAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetShopAppointments: successfully fetched %d appointments for shop=%d", len(list), req.ShopID)
	return models.FromDomainAppointmentList(list), nil
}

// Cancel cancels an appointment.
// Allowed to the customer who booked it and to the shop owner. The slot
// interval is freed immediately and the other party is notified.
func (s *Service) Cancel(ctx context.Context, id int64, actor domain.Actor) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", id, actor.UserID)

	appt, shop, err := s.getWithShop(ctx, id, "Cancel")
	if err != nil {
		return err
	}

	byCustomer := appt.CustomerID == actor.UserID
	byOwner := shop.OwnerID == actor.UserID

	if !byCustomer && !byOwner {
		s.logger.Warn("Cancel: access denied for user=%d to appointment id=%d", actor.UserID, id)
		return ErrAccessDenied
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)

	// The other party learns about the cancellation
	message := fmt.Sprintf("Appointment on %s at %s was cancelled.",
		appt.Date.Format(domain.DateFormat), appt.StartTime)
	if byCustomer {
		s.notifier.Notify(notifier.KindBookingCancelled, shop.OwnerID,
			"Booking Cancelled", message, &appt.ID)
	} else {
		s.notifier.Notify(notifier.KindBookingCancelled, appt.CustomerID,
			"Appointment Cancelled by Shop", message, &appt.ID)
	}

	return nil
}

// Complete marks an appointment as completed. Owner only.
func (s *Service) Complete(ctx context.Context, id int64, actor domain.Actor) error {
	s.logger.Info("Complete: completing appointment id=%d by user=%d", id, actor.UserID)

	appt, shop, err := s.getWithShop(ctx, id, "Complete")
	if err != nil {
		return err
	}

	if shop.OwnerID != actor.UserID {
		s.logger.Warn("Complete: access denied for user=%d to appointment id=%d", actor.UserID, id)
		return ErrAccessDenied
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed appointment id=%d", id)

	s.notifier.Notify(notifier.KindBookingCompleted, appt.CustomerID,
		"Service Completed",
		fmt.Sprintf("Your appointment at %s on %s was marked completed.",
			shop.Name, appt.Date.Format(domain.DateFormat)),
		&appt.ID)

	return nil
}

// getWithShop loads the appointment together with its shop
func (s *Service) getWithShop(ctx context.Context, id int64, method string) (*domain.Appointment, *domain.Shop, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", method, id)
			return nil, nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", method, id, err)
		return nil, nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	shop, err := s.catalogRepo.GetShop(ctx, appt.ShopID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			s.logger.Warn("%s: shop id=%d not found for appointment id=%d", method, appt.ShopID, id)
			return nil, nil, ErrShopNotFound
		}
		s.logger.Error("%s: repository error for shop id=%d: %v", method, appt.ShopID, err)
		return nil, nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	return appt, shop, nil
}

// checkShopOwner verifies that the user owns the shop
func (s *Service) checkShopOwner(ctx context.Context, shopID, userID int64, method string) error {
	shop, err := s.catalogRepo.GetShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrShopNotFound) {
			s.logger.Warn("%s: shop id=%d not found", method, shopID)
			return ErrShopNotFound
		}
		s.logger.Error("%s: repository error for shop id=%d: %v", method, shopID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}

	if shop.OwnerID != userID {
		s.logger.Warn("%s: user=%d is not the owner of shop=%d", method, userID, shopID)
		return ErrAccessDenied
	}

	return nil
}

func (s *Service) canAccess(appt *domain.Appointment, shop *domain.Shop, actor domain.Actor) bool {
	return appt.CustomerID == actor.UserID || shop.OwnerID == actor.UserID
}

func toStatusFilter(s *string) (*domain.AppointmentStatus, error) {
	if s == nil {
		return nil, nil
	}
	status, err := models.ToDomainAppointmentStatus(*s)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
