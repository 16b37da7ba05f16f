package domain

import "time"

// ShopLocation is the fixed UTC+5:30 offset every date and time of
// day in the system is interpreted in. Appointments store no zone.
var ShopLocation = time.FixedZone("IST", 5*3600+30*60)

// Operating window and slot grid. Every shop runs the same hours.
const (
	OpeningTime         = "09:00"
	ClosingTime         = "20:00"
	SlotStepMinutes     = 30
)

// Payment reconciliation tolerance for half/full amounts.
const AmountEpsilon = 0.01

// Business validation constants.
const (
	MaxShopNameLength       = 100
	MaxServiceNameLength    = 100
	MaxDescriptionLength    = 500
)

// Time format constants.
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Today returns the calendar date of now in the shop zone, truncated
// to midnight.
func Today(now time.Time) time.Time {
	n := now.In(ShopLocation)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, ShopLocation)
}
