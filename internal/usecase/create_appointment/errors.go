package create_appointment

import "errors"

var (
	// ErrShopNotFound is returned when the shop does not exist
	ErrShopNotFound = errors.New("create_appointment: shop not found")

	// ErrServiceNotFound is returned when a selected service does not
	// exist or does not belong to the shop
	ErrServiceNotFound = errors.New("create_appointment: service not found for this shop")

	// ErrPastDate is returned when the requested date or start time is
	// already in the past
	ErrPastDate = errors.New("create_appointment: date is in the past")

	// ErrSlotConflict is returned when the requested interval overlaps
	// an existing active appointment
	ErrSlotConflict = errors.New("create_appointment: slot already booked")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("create_appointment: internal error")
)
