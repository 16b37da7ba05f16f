package record_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/handlers"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/api/middleware"
	recordPayment "github.com/kalathiyadhruv74-afk/BookMyCut/internal/usecase/record_payment"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidAppointmentID = "invalid appointment id"
	msgUnauthorized         = "authentication required"
	msgAppointmentNotFound  = "appointment not found"
	msgAccessDenied         = "only the booking customer may pay for this appointment"
	msgAmountMismatch       = "payment amount does not match the selected plan"
	msgInvalidInput         = "invalid payment data"
)

type Handler struct {
	useCase RecordPaymentUseCase
	logger  Logger
}

func NewHandler(useCase RecordPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{appointmentId}/payments - Invalid appointment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req RecordPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/%d/payments - Invalid request body: %v", appointmentID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(appointmentID, actor.UserID))
	if err != nil {
		switch {
		case errors.Is(err, recordPayment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/%d/payments - Appointment not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, recordPayment.ErrAccessDenied):
			h.logger.Warn("POST /appointments/%d/payments - Access denied: user_id=%d", appointmentID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, recordPayment.ErrAmountMismatch):
			h.logger.Warn("POST /appointments/%d/payments - Amount mismatch: amount=%.2f, plan=%s",
				appointmentID, req.Amount, req.Plan)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgAmountMismatch)

		case errors.Is(err, recordPayment.ErrInvalidInput):
			h.logger.Warn("POST /appointments/%d/payments - Invalid input: %v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments/%d/payments - Failed to record payment: user_id=%d, error=%v",
				appointmentID, actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/%d/payments - Payment recorded: payment_id=%d, user_id=%d, status=%s",
		appointmentID, result.PaymentID, actor.UserID, result.PaymentStatus)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
