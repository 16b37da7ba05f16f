package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/middleware"
	appointmentsService "github.com/kalathiyadhruv74-afk/BookMyCut/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgUnauthorized         = "authentication required"
	msgAppointmentNotFound  = "appointment not found"
	msgAccessDenied         = "only the booking customer or the shop owner may cancel"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{appointmentId}/cancel - Invalid appointment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Cancel(r.Context(), appointmentID, actor); err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/%d/cancel - Appointment not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/%d/cancel - Access denied: user_id=%d", appointmentID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("PATCH /appointments/%d/cancel - Failed: user_id=%d, error=%v",
				appointmentID, actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/%d/cancel - Appointment cancelled by user_id=%d", appointmentID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}
