package pay_remaining_balance

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
	msgNoBalance            = "this appointment has no remaining balance"
	msgInvalidInput         = "invalid payment data"
)

// PayRemainingRequest HTTP request model. The body is optional.
type PayRemainingRequest struct {
	Method string `json:"method,omitempty"`
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	PaymentID         int64   `json:"paymentId"`
	AppointmentID     int64   `json:"appointmentId"`
	Amount            float64 `json:"amount"`
	Method            string  `json:"method"`
	TransactionRef    string  `json:"transactionRef"`
	PaymentStatus     string  `json:"paymentStatus"`
	AppointmentStatus string  `json:"appointmentStatus"`
	CreatedAt         string  `json:"createdAt"`
}

type Handler struct {
	useCase PayRemainingUseCase
	logger  Logger
}

func NewHandler(useCase PayRemainingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/payments/remaining
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{appointmentId}/payments/remaining - Invalid appointment id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req PayRemainingRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /appointments/%d/payments/remaining - Invalid request body: %v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.PayRemaining(r.Context(), &recordPayment.RemainingRequest{
		AppointmentID: appointmentID,
		CustomerID:    actor.UserID,
		Method:        req.Method,
	})
	if err != nil {
		switch {
		case errors.Is(err, recordPayment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/%d/payments/remaining - Appointment not found", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, recordPayment.ErrAccessDenied):
			h.logger.Warn("POST /appointments/%d/payments/remaining - Access denied: user_id=%d",
				appointmentID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, recordPayment.ErrNoBalance):
			h.logger.Warn("POST /appointments/%d/payments/remaining - No remaining balance", appointmentID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoBalance)

		case errors.Is(err, recordPayment.ErrInvalidInput):
			h.logger.Warn("POST /appointments/%d/payments/remaining - Invalid input: %v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments/%d/payments/remaining - Failed: user_id=%d, error=%v",
				appointmentID, actor.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/%d/payments/remaining - Balance settled: payment_id=%d, user_id=%d",
		appointmentID, result.PaymentID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, &PaymentResponse{
		PaymentID:         result.PaymentID,
		AppointmentID:     result.AppointmentID,
		Amount:            result.Amount,
		Method:            result.Method,
		TransactionRef:    result.TransactionRef,
		PaymentStatus:     result.PaymentStatus,
		AppointmentStatus: result.AppointmentStatus,
		CreatedAt:         result.CreatedAt.Format(time.RFC3339),
	})
}
