package get_available_slots

import "errors"

var (
	// ErrShopNotFound is returned when the shop does not exist
	ErrShopNotFound = errors.New("get_available_slots: shop not found")

	// ErrServiceNotFound is returned when a selected service does not
	// exist or does not belong to the shop
	ErrServiceNotFound = errors.New("get_available_slots: service not found for this shop")

	// ErrPastDate is returned when the requested date is before today
	ErrPastDate = errors.New("get_available_slots: date is in the past")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned on internal use case failures
	ErrInternal = errors.New("get_available_slots: internal error")
)
