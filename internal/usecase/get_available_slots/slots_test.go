package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalathiyadhruv74-afk/BookMyCut/internal/domain"
	"github.com/kalathiyadhruv74-afk/BookMyCut/pkg/types"
)

func activeAppointment(start types.TimeString, duration int) *domain.Appointment {
	return &domain.Appointment{
		StartTime:     start,
		TotalDuration: duration,
		Status:        domain.StatusConfirmed,
	}
}

func TestGenerateGridSlots(t *testing.T) {
	slots, err := generateGridSlots()
	require.NoError(t, err)

	// 09:00 through 19:30 with a 30-minute step
	require.Len(t, slots, 22)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("19:30"), slots[len(slots)-1])
}

func TestFlagSlots_AppointmentRunningPastMidnight(t *testing.T) {
	gridSlots, err := generateGridSlots()
	require.NoError(t, err)

	// 19:30 plus five hours ends well past midnight; the wrap must not
	// hide the appointment from the grid
	appointments := []*domain.Appointment{
		activeAppointment("19:30", 300),
	}

	date := time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)

	slots := flagSlots(gridSlots, 30, appointments, date, now)

	last := slots[len(slots)-1]
	require.Equal(t, types.TimeString("19:30"), last.StartTime)
	assert.False(t, last.Available)
	assert.Equal(t, domain.SlotReasonBooked, last.Reason)

	// Earlier slots stay free
	assert.True(t, slots[len(slots)-2].Available)
}

func TestFlagSlots_BookedOverlap(t *testing.T) {
	gridSlots, err := generateGridSlots()
	require.NoError(t, err)

	// One appointment at 10:00 running 45 minutes
	appointments := []*domain.Appointment{
		activeAppointment("10:00", 45),
	}

	date := time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)

	slots := flagSlots(gridSlots, 30, appointments, date, now)

	byStart := make(map[types.TimeString]domain.Slot)
	for _, s := range slots {
		byStart[s.StartTime] = s
	}

	// 10:00 and 10:30 overlap the 10:00-10:45 appointment
	assert.False(t, byStart["10:00"].Available)
	assert.Equal(t, domain.SlotReasonBooked, byStart["10:00"].Reason)
	assert.False(t, byStart["10:30"].Available)
	assert.Equal(t, domain.SlotReasonBooked, byStart["10:30"].Reason)

	// Adjacent slots stay free
	assert.True(t, byStart["09:30"].Available)
	assert.True(t, byStart["11:00"].Available)
}

func TestFlagSlots_LongRequestBlocksEarlierSlots(t *testing.T) {
	gridSlots, err := generateGridSlots()
	require.NoError(t, err)

	// Appointment at 14:30; a 50-minute request from 14:00 would
	// run into it
	appointments := []*domain.Appointment{
		activeAppointment("14:30", 30),
	}

	date := time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)

	slots := flagSlots(gridSlots, 50, appointments, date, now)

	byStart := make(map[types.TimeString]domain.Slot)
	for _, s := range slots {
		byStart[s.StartTime] = s
	}

	assert.False(t, byStart["14:00"].Available)
	assert.Equal(t, domain.SlotReasonBooked, byStart["14:00"].Reason)
	assert.False(t, byStart["14:30"].Available)
	assert.True(t, byStart["13:30"].Available, "13:30+50m ends 14:20, before the appointment")
}

func TestFlagSlots_CancelledAppointmentFreesInterval(t *testing.T) {
	gridSlots, err := generateGridSlots()
	require.NoError(t, err)

	cancelled := activeAppointment("10:00", 45)
	cancelled.Status = domain.StatusCancelled

	date := time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation)
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, domain.ShopLocation)

	slots := flagSlots(gridSlots, 30, []*domain.Appointment{cancelled}, date, now)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s should be free", s.StartTime)
	}
}

func TestFlagSlots_PastSlotsToday(t *testing.T) {
	gridSlots, err := generateGridSlots()
	require.NoError(t, err)

	// Today at 11:10 shop time: slots up to and including 11:00 are gone
	now := time.Date(2026, 3, 15, 11, 10, 0, 0, domain.ShopLocation)
	date := domain.Today(now)

	slots := flagSlots(gridSlots, 30, nil, date, now)

	byStart := make(map[types.TimeString]domain.Slot)
	for _, s := range slots {
		byStart[s.StartTime] = s
	}

	assert.False(t, byStart["09:00"].Available)
	assert.Equal(t, domain.SlotReasonPast, byStart["09:00"].Reason)
	assert.False(t, byStart["11:00"].Available)
	assert.Equal(t, domain.SlotReasonPast, byStart["11:00"].Reason)
	assert.True(t, byStart["11:30"].Available)
	assert.True(t, byStart["19:30"].Available)
}

func TestFlagSlots_BookedWinsOverPast(t *testing.T) {
	gridSlots, err := generateGridSlots()
	require.NoError(t, err)

	now := time.Date(2026, 3, 15, 11, 10, 0, 0, domain.ShopLocation)
	date := domain.Today(now)

	appointments := []*domain.Appointment{
		activeAppointment("09:00", 30),
	}

	slots := flagSlots(gridSlots, 30, appointments, date, now)

	assert.False(t, slots[0].Available)
	assert.Equal(t, domain.SlotReasonBooked, slots[0].Reason)
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 3, 15, 23, 30, 0, 0, domain.ShopLocation)

	yesterday := time.Date(2026, 3, 14, 0, 0, 0, 0, domain.ShopLocation)
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, domain.ShopLocation)
	tomorrow := time.Date(2026, 3, 16, 0, 0, 0, 0, domain.ShopLocation)

	assert.True(t, isDateInPast(yesterday, now))
	assert.False(t, isDateInPast(today, now))
	assert.False(t, isDateInPast(tomorrow, now))
}
