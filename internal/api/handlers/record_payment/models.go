package record_payment

import (
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	recordPayment "github.com/kalathiyadhruv74-afk/BookMyCut/internal/usecase/record_payment"
)

// RecordPaymentRequest HTTP request model
type RecordPaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Plan   string  `json:"plan"` // "half" or "full"
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

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *RecordPaymentRequest) ToUseCaseRequest(appointmentID, customerID int64) *recordPayment.Request {
	return &recordPayment.Request{
		AppointmentID: appointmentID,
		CustomerID:    customerID,
		Amount:        r.Amount,
		Method:        r.Method,
		Plan:          domain.PaymentPlan(r.Plan),
	}
}

// FromUseCaseResponse converts the use case response into the HTTP model
func FromUseCaseResponse(resp *recordPayment.Response) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:         resp.PaymentID,
		AppointmentID:     resp.AppointmentID,
		Amount:            resp.Amount,
		Method:            resp.Method,
		TransactionRef:    resp.TransactionRef,
		PaymentStatus:     resp.PaymentStatus,
		AppointmentStatus: resp.AppointmentStatus,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}
