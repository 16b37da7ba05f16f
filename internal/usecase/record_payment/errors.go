package record_payment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("record_payment: appointment not found")

	// ErrAccessDenied is returned when the actor is not the customer who
	// booked the appointment
	ErrAccessDenied = errors.New("record_payment: access denied")

	// ErrAmountMismatch is returned when the submitted amount does not
	// match the expected amount for the chosen plan
	ErrAmountMismatch = errors.New("record_payment: amount does not match expected value")

	// ErrNoBalance is returned when there is no remaining balance to settle
	ErrNoBalance = errors.New("record_payment: no remaining balance to pay")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("record_payment: invalid input data")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("record_payment: internal error")
)
