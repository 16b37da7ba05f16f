package catalog

import "errors"

var (
	// ErrShopNotFound is returned when the shop does not exist
	ErrShopNotFound = errors.New("catalog.repository: shop not found")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
