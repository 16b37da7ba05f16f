package create_appointment

import (
	"errors"
	"net/http"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/middleware"
	createAppointment "github.com/kalathiyadhruv74-afk/BookMyCut/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgUnauthorized       = "authentication required"
	msgSlotConflict       = "the selected time slot is already booked"
	msgShopNotFound       = "shop not found"
	msgServiceNotFound    = "service not found for this shop"
	msgPastDate           = "the selected date or time has already passed"
	msgInvalidInput       = "invalid appointment data"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor.UserID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotConflict):
			h.logger.Warn("POST /appointments - Slot conflict: user_id=%d, shop_id=%d, time=%s",
				actor.UserID, req.ShopID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createAppointment.ErrShopNotFound):
			h.logger.Warn("POST /appointments - Shop not found: shop_id=%d", req.ShopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: user_id=%d, shop_id=%d", actor.UserID, req.ShopID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrPastDate):
			h.logger.Warn("POST /appointments - Past date: user_id=%d, date=%s, time=%s",
				actor.UserID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d: %v", actor.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, shop_id=%d, error=%v",
				actor.UserID, req.ShopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d, shop_id=%d",
		result.ID, actor.UserID, req.ShopID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
