package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
)

type fakeInbox struct {
	mu      sync.Mutex
	created []*domain.Notification
	err     error
}

func (f *fakeInbox) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeInbox) rows() []*domain.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*domain.Notification(nil), f.created...)
}

type fakePublisher struct {
	mu        sync.Mutex
	published []Event
}

func (f *fakePublisher) PublishJSON(_ context.Context, _ string, v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, v.(Event))
	return nil
}

func (f *fakePublisher) events() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Event(nil), f.published...)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestNotify_WritesInboxAndPublishes(t *testing.T) {
	inbox := &fakeInbox{}
	pub := &fakePublisher{}
	e := NewEmitter(inbox, pub, 16, nopLogger{})

	apptID := int64(9)
	e.Notify(KindBookingInitiated, 42, "Booking Initiated", "awaiting payment", &apptID)
	e.Close()

	rows := inbox.rows()
	require.Len(t, rows, 1)
	assert.Equal(t, int64(42), rows[0].UserID)
	assert.Equal(t, "Booking Initiated", rows[0].Title)
	require.NotNil(t, rows[0].AppointmentID)
	assert.Equal(t, int64(9), *rows[0].AppointmentID)

	events := pub.events()
	require.Len(t, events, 1)
	assert.Equal(t, KindBookingInitiated, events[0].Kind)
}

func TestNotify_NilPublisher(t *testing.T) {
	inbox := &fakeInbox{}
	e := NewEmitter(inbox, nil, 16, nopLogger{})

	e.Notify(KindBookingCompleted, 42, "Service Completed", "done", nil)
	e.Close()

	require.Len(t, inbox.rows(), 1)
}

func TestNotify_InboxFailureDoesNotStopWorker(t *testing.T) {
	inbox := &fakeInbox{err: errors.New("db down")}
	e := NewEmitter(inbox, nil, 16, nopLogger{})

	e.Notify(KindPaymentRecorded, 42, "Payment Successful", "received", nil)
	e.Notify(KindPaymentRecorded, 43, "Payment Successful", "received", nil)
	e.Close()

	assert.Empty(t, inbox.rows())
}

func TestClose_DrainsQueue(t *testing.T) {
	inbox := &fakeInbox{}
	e := NewEmitter(inbox, nil, 64, nopLogger{})

	for i := int64(1); i <= 20; i++ {
		e.Notify(KindBookingReminder, i, "Appointment Reminder", "tomorrow", nil)
	}
	e.Close()

	assert.Len(t, inbox.rows(), 20)
}

func TestClose_Idempotent(t *testing.T) {
	e := NewEmitter(&fakeInbox{}, nil, 4, nopLogger{})
	e.Close()
	e.Close()
}
