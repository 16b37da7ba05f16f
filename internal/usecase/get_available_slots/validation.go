package get_available_slots

import (
	"fmt"
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

// validateRequest checks the structural validity of the request
func validateRequest(req *Request) error {
	if req.ShopID <= 0 {
		return fmt.Errorf("%w: shop_id must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service must be selected", ErrInvalidInput)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: service ids must be positive", ErrInvalidInput)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate rejects dates strictly before today in the shop timezone
func validateDate(date, now time.Time) error {
	if isDateInPast(date, now) {
		return fmt.Errorf("%w: %s", ErrPastDate, date.Format(domain.DateFormat))
	}
	return nil
}
