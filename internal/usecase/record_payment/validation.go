package record_payment

import (
	"fmt"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

// validateRequest validates the structural validity of the request
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointment_id must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer_id must be positive", ErrInvalidInput)
	}

	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	if req.Method == "" {
		return fmt.Errorf("%w: payment method is required", ErrInvalidInput)
	}

	if !domain.ValidPaymentPlan(string(req.Plan)) {
		return fmt.Errorf("%w: unknown payment plan %q", ErrInvalidInput, req.Plan)
	}

	return nil
}

// expectedAmount computes the amount the customer must submit.
// The full plan settles the whole price. The half plan and the final
// settlement of a half-paid appointment each cover exactly half.
func expectedAmount(appt *domain.Appointment, plan domain.PaymentPlan, isFinal bool) float64 {
	if isFinal || plan == domain.PlanHalf {
		return appt.HalfAmount()
	}
	return appt.TotalPrice
}
