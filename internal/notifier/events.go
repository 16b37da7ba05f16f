package notifier

// Routing keys for notification events published to the topic
// exchange. Consumers bind what they care about.
const (
	KindBookingInitiated = "booking.initiated"
	KindBookingConfirmed = "booking.confirmed"
	KindBookingCancelled = "booking.cancelled"
	KindBookingCompleted = "booking.completed"
	KindBookingReminder  = "booking.reminder"
	KindPaymentRecorded  = "payment.recorded"
)

// Event is the JSON payload published for every notification.
type Event struct {
	Kind          string `json:"kind"`
	UserID        int64  `json:"user_id"`
	AppointmentID *int64 `json:"appointment_id,omitempty"`
	Title         string `json:"title"`
	Message       string `json:"message"`
}
