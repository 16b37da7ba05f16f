package record_payment

import (
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

// Request input data for recording a payment
type Request struct {
	AppointmentID     int64
	CustomerID        int64
	Amount            float64
	Method            string
	Plan              domain.PaymentPlan
	IsFinalSettlement bool
}

// RemainingRequest input data for settling the remaining balance of a
// half-paid appointment
type RemainingRequest struct {
	AppointmentID int64
	CustomerID    int64
	Method        string
}

// Response recorded payment with the resulting appointment state
type Response struct {
	PaymentID         int64
	AppointmentID     int64
	Amount            float64
	Method            string
	TransactionRef    string
	PaymentStatus     string
	AppointmentStatus string
	CreatedAt         time.Time
}
