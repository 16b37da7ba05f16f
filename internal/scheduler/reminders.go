package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/notifier"
)

// AppointmentRepository loads the confirmed appointments for a day
type AppointmentRepository interface {
	GetConfirmedByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// Notifier delivers best-effort user notifications
type Notifier interface {
	Notify(kind string, userID int64, title, message string, appointmentID *int64)
}

// Logger is the logging interface used by the scheduler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const reminderRunTimeout = 30 * time.Second

// ReminderScheduler sends day-before reminders for confirmed
// appointments on a cron schedule
type ReminderScheduler struct {
	appointmentRepo AppointmentRepository
	notifier        Notifier
	logger          Logger
	cron            *cron.Cron
}

// NewReminderScheduler creates a scheduler firing on the given cron
// spec, evaluated in the shop timezone
func NewReminderScheduler(
	appointmentRepo AppointmentRepository,
	notify Notifier,
	spec string,
	logger Logger,
) (*ReminderScheduler, error) {
	s := &ReminderScheduler{
		appointmentRepo: appointmentRepo,
		notifier:        notify,
		logger:          logger,
		cron:            cron.New(cron.WithLocation(domain.ShopLocation)),
	}

	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("scheduler: invalid cron spec %q: %w", spec, err)
	}

	return s, nil
}

// Start launches the cron loop
func (s *ReminderScheduler) Start() {
	s.cron.Start()
	s.logger.Info("ReminderScheduler: started")
}

// Stop halts the cron loop and waits for a running job to finish
func (s *ReminderScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("ReminderScheduler: stopped")
}

// run reminds every customer with a confirmed appointment tomorrow
func (s *ReminderScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), reminderRunTimeout)
	defer cancel()

	tomorrow := domain.Today(time.Now()).AddDate(0, 0, 1)

	appointments, err := s.appointmentRepo.GetConfirmedByDate(ctx, tomorrow)
	if err != nil {
		s.logger.Error("ReminderScheduler: failed to load appointments for %s: %v",
			tomorrow.Format(domain.DateFormat), err)
		return
	}

	for _, appt := range appointments {
		s.notifier.Notify(
			notifier.KindBookingReminder,
			appt.CustomerID,
			"Appointment Reminder",
			fmt.Sprintf("Reminder: your appointment tomorrow (%s) at %s.",
				appt.Date.Format(domain.DateFormat), appt.StartTime),
			&appt.ID,
		)
	}

	s.logger.Info("ReminderScheduler: sent %d reminders for %s",
		len(appointments), tomorrow.Format(domain.DateFormat))
}
