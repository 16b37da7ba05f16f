package catalog

import "errors"

var (
	// ErrShopNotFound is returned when the shop is not found
	ErrShopNotFound = errors.New("shop not found")

	// ErrServiceNotFound is returned when the service is not found
	ErrServiceNotFound = errors.New("service not found")

	// ErrShopAlreadyExists is returned when the owner already has a shop
	ErrShopAlreadyExists = errors.New("owner already has a shop")

	// ErrAccessDenied is returned when the actor does not own the shop
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service failures
	ErrInternal = errors.New("service: internal error")
)
