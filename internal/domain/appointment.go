package domain

import (
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// PaymentStatus tracks how much of the appointment total has been paid.
type PaymentStatus string

const (
	PaymentUnpaid        PaymentStatus = "unpaid"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
)

// Appointment is a customer's reservation of a time interval at a
// shop for one or more services. TotalDuration and TotalPrice are the
// sums over the selected services, denormalized at booking time.
type Appointment struct {
	ID            int64
	CustomerID    int64
	ShopID        int64
	Date          time.Time // calendar date, midnight in ShopLocation
	StartTime     types.TimeString
	TotalDuration int // minutes
	TotalPrice    float64
	Status        AppointmentStatus
	PaymentStatus PaymentStatus

	// ServiceIDs are the selected services, written atomically with
	// the appointment and never mutated afterwards.
	ServiceIDs []int64

	// ServiceNames is filled on reads that aggregate the join table.
	ServiceNames []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the appointment still occupies its time
// interval. Cancelled appointments are excluded from overlap checks.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsTerminal reports whether the appointment reached a final state.
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted
}

// EndTime returns the exclusive end of the occupied interval.
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.TotalDuration)
}

// HalfAmount returns the half-plan installment for this appointment.
func (a *Appointment) HalfAmount() float64 {
	return a.TotalPrice / 2
}

// ShopDayFilter selects a shop's appointments on one calendar date.
type ShopDayFilter struct {
	ShopID          int64
	Date            time.Time
	IncludeInactive bool // include cancelled appointments
}

// ValidAppointmentStatus reports whether s is a known status value.
func ValidAppointmentStatus(s string) bool {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}
