package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

// InboxStore writes notification rows to the user's inbox.
type InboxStore interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// EventPublisher pushes notification events to an external broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v interface{}) error
}

// Logger is the logging interface used by the emitter.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

const sinkTimeout = 5 * time.Second

// Emitter delivers notifications asynchronously: Notify enqueues and
// returns immediately, a single worker writes the inbox row and
// publishes the event. Delivery is best-effort: a full queue or a
// failing sink is logged and dropped, never surfaced to the
// transaction that triggered the notification.
type Emitter struct {
	inbox     InboxStore
	publisher EventPublisher // optional
	logger    Logger

	queue chan Event
	wg    sync.WaitGroup
	once  sync.Once
}

// NewEmitter starts the delivery worker. publisher may be nil when no
// broker is configured.
func NewEmitter(inbox InboxStore, publisher EventPublisher, queueSize int, logger Logger) *Emitter {
	e := &Emitter{
		inbox:     inbox,
		publisher: publisher,
		logger:    logger,
		queue:     make(chan Event, queueSize),
	}

	e.wg.Add(1)
	go e.run()

	return e
}

// Notify enqueues one notification for delivery.
func (e *Emitter) Notify(kind string, userID int64, title, message string, appointmentID *int64) {
	ev := Event{
		Kind:          kind,
		UserID:        userID,
		AppointmentID: appointmentID,
		Title:         title,
		Message:       message,
	}

	select {
	case e.queue <- ev:
	default:
		e.logger.Warn("notifier: queue full, dropping %s notification for user=%d", kind, userID)
	}
}

// Close drains the queue and stops the worker.
func (e *Emitter) Close() {
	e.once.Do(func() {
		close(e.queue)
	})
	e.wg.Wait()
}

func (e *Emitter) run() {
	defer e.wg.Done()

	for ev := range e.queue {
		e.deliver(ev)
	}
}

func (e *Emitter) deliver(ev Event) {
	ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
	defer cancel()

	_, err := e.inbox.Create(ctx, &domain.Notification{
		UserID:        ev.UserID,
		AppointmentID: ev.AppointmentID,
		Title:         ev.Title,
		Message:       ev.Message,
	})
	if err != nil {
		e.logger.Error("notifier: failed to write inbox row for user=%d: %v", ev.UserID, err)
	}

	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishJSON(ctx, ev.Kind, ev); err != nil {
		e.logger.Error("notifier: failed to publish %s event for user=%d: %v", ev.Kind, ev.UserID, err)
	}
}
