package domain

import "github.com/kalathiyadhruv74-afk/BookMyCut/pkg/types"

// Reasons a slot is not bookable. Kept distinct so clients can tell
// an occupied slot from one that has already passed today.
const (
	SlotReasonBooked = "booked"
	SlotReasonPast   = "past"
)

// Slot is one candidate start time on the 30-minute grid, flagged
// with its availability for the currently selected service set.
type Slot struct {
	StartTime types.TimeString
	Available bool
	Reason    string // empty when available
}
