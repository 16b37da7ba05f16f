package domain

import "time"

// Notification is an inbox entry for a user, optionally linked to an
// appointment. Delivery is best-effort and at-least-once.
type Notification struct {
	ID            int64
	UserID        int64
	AppointmentID *int64
	Title         string
	Message       string
	IsRead        bool
	CreatedAt     time.Time
}
