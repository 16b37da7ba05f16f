package get_available_slots

import (
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/types"
)

// generateGridSlots builds the fixed daily grid of slot start times.
// Slots run from opening time up to, but not including, closing time
// with a fixed step. The last start of the day is therefore one step
// before closing regardless of how long the selected services take.
func generateGridSlots() ([]types.TimeString, error) {
	openTime, err := types.NewTimeStringFromString(domain.OpeningTime)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(domain.ClosingTime)
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slots = append(slots, current)
		current, err = current.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			return nil, err
		}
	}

	return slots, nil
}

// flagSlots marks each grid slot with its availability.
// A slot is unavailable with reason "booked" when the interval
// [slot, slot+totalDuration) overlaps any active appointment, and
// unavailable with reason "past" when the requested date is today and
// the slot start is not strictly after the current time.
func flagSlots(
	gridSlots []types.TimeString,
	totalDuration int,
	appointments []*domain.Appointment,
	requestDate time.Time,
	now time.Time,
) []domain.Slot {
	result := make([]domain.Slot, len(gridSlots))
	today := isSameDay(requestDate, now)
	currentTime := types.NewTimeString(now)

	for i, slotStart := range gridSlots {
		slot := domain.Slot{
			StartTime: slotStart,
			Available: true,
		}

		switch {
		case hasOverlappingAppointment(slotStart, totalDuration, appointments):
			slot.Available = false
			slot.Reason = domain.SlotReasonBooked
		case today && !slotStart.IsAfter(currentTime):
			slot.Available = false
			slot.Reason = domain.SlotReasonPast
		}

		result[i] = slot
	}

	return result
}

// hasOverlappingAppointment reports whether any active appointment
// overlaps the interval [slotStart, slotStart+totalDuration).
// Touching intervals do not overlap: an appointment ending exactly
// where the slot starts (or starting exactly where it ends) leaves
// the slot free. Both comparisons use strict inequalities.
// Intervals are compared in minutes from the start of the day, so an
// appointment whose end runs past midnight still blocks its slots.
func hasOverlappingAppointment(slotStart types.TimeString, totalDuration int, appointments []*domain.Appointment) bool {
	slotStartMin, err := slotStart.Minutes()
	if err != nil {
		return false
	}
	slotEndMin := slotStartMin + totalDuration

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}

		apptStartMin, err := appt.StartTime.Minutes()
		if err != nil {
			continue
		}
		apptEndMin := apptStartMin + appt.TotalDuration

		if apptStartMin < slotEndMin && apptEndMin > slotStartMin {
			return true
		}
	}

	return false
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
