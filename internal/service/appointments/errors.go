package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment is not found
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrShopNotFound is returned when the shop is not found
	ErrShopNotFound = errors.New("shop not found")

	// ErrAccessDenied is returned when the actor has no rights to the appointment
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus is returned on an unknown status filter value
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
