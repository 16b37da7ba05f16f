package create_appointment

import (
	"fmt"
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/types"
)

// validateRequest validates the structural validity of the request
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customer_id must be positive", ErrInvalidInput)
	}

	if req.ShopID <= 0 {
		return fmt.Errorf("%w: shop_id must be positive", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service must be selected", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: service ids must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate service id=%d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start_time format: %v", ErrInvalidInput, err)
	}

	return validateStartTimeOnGrid(req.StartTime)
}

// validateStartTimeOnGrid checks that the start time lands on the fixed
// booking grid: within working hours and aligned to the slot step
func validateStartTimeOnGrid(startTime types.TimeString) error {
	if startTime.IsBefore(types.TimeString(domain.OpeningTime)) ||
		!startTime.IsBefore(types.TimeString(domain.ClosingTime)) {
		return fmt.Errorf("%w: start_time %s is outside working hours %s-%s",
			ErrInvalidInput, startTime, domain.OpeningTime, domain.ClosingTime)
	}

	minutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid start_time: %v", ErrInvalidInput, err)
	}
	if minutes%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: start_time %s is not aligned to %d-minute slots",
			ErrInvalidInput, startTime, domain.SlotStepMinutes)
	}

	return nil
}

// validateNotInPast rejects dates strictly before today and, for today,
// start times that are not strictly after the current time
func validateNotInPast(date time.Time, startTime types.TimeString, now time.Time) error {
	if isDateInPast(date, now) {
		return fmt.Errorf("%w: %s", ErrPastDate, date.Format(domain.DateFormat))
	}

	if isSameDay(date, now) {
		currentTime := types.NewTimeString(now)
		if !startTime.IsAfter(currentTime) {
			return fmt.Errorf("%w: start_time %s has already passed", ErrPastDate, startTime)
		}
	}

	return nil
}

// hasOverlappingAppointment reports whether any active appointment
// overlaps the interval [startTime, startTime+totalDuration).
// Strict inequalities keep back-to-back appointments from conflicting.
// Intervals are compared in minutes from the start of the day, so an
// appointment whose end runs past midnight still blocks its interval.
func hasOverlappingAppointment(
	startTime types.TimeString,
	totalDuration int,
	appointments []*domain.Appointment,
) (bool, error) {
	requestStartMin, err := startTime.Minutes()
	if err != nil {
		return false, err
	}
	requestEndMin := requestStartMin + totalDuration

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		apptStartMin, err := appt.StartTime.Minutes()
		if err != nil {
			continue
		}
		apptEndMin := apptStartMin + appt.TotalDuration

		if apptStartMin < requestEndMin && apptEndMin > requestStartMin {
			return true, nil
		}
	}

	return false, nil
}

// isSameDay reports whether two instants fall on the same calendar day
// in the shop timezone
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.In(domain.ShopLocation).Date()
	y2, m2, d2 := date2.In(domain.ShopLocation).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether the date is strictly before today in the
// shop timezone
func isDateInPast(date, now time.Time) bool {
	return domain.Today(date).Before(domain.Today(now))
}
