package domain

import (
	"math"
	"time"
)

// PaymentPlan is the customer's choice of paying 50% or 100% upfront.
type PaymentPlan string

const (
	PlanHalf PaymentPlan = "half"
	PlanFull PaymentPlan = "full"
)

// ValidPaymentPlan reports whether p is a known plan value.
func ValidPaymentPlan(p string) bool {
	return PaymentPlan(p) == PlanHalf || PaymentPlan(p) == PlanFull
}

// Payment is one append-only ledger entry against an appointment.
// A payment row is only ever inserted as completed; a half plan
// produces two rows over the appointment's lifetime.
type Payment struct {
	ID             int64
	AppointmentID  int64
	Amount         float64
	Method         string
	Status         string // always "completed" once inserted
	TransactionRef string
	CreatedAt      time.Time
}

const PaymentStatusCompleted = "completed"

// AmountMatches reports whether got equals want within the
// reconciliation epsilon.
func AmountMatches(got, want float64) bool {
	return math.Abs(got-want) <= AmountEpsilon
}
