//go:build unit

package booking_test

import (
	"testing"
	"time"

	"roombook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, hour, minute int) booking.TimeOfDay {
	t.Helper()
	tod, err := booking.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return tod
}

func mustSlot(t *testing.T, date time.Time, startH, startM, endH, endM int) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(date, mustTime(t, startH, startM), mustTime(t, endH, endM))
	require.NoError(t, err)
	return slot
}

func TestTimeOfDay(t *testing.T) {
	t.Run("valid bounds", func(t *testing.T) {
		for _, c := range []struct{ hour, minute int }{
			{0, 0}, {8, 30}, {23, 59},
		} {
			_, err := booking.NewTimeOfDay(c.hour, c.minute)
			assert.NoError(t, err, "%02d:%02d", c.hour, c.minute)
		}
	})

	t.Run("invalid bounds", func(t *testing.T) {
		for _, c := range []struct{ hour, minute int }{
			{-1, 0}, {24, 0}, {10, -1}, {10, 60},
		} {
			_, err := booking.NewTimeOfDay(c.hour, c.minute)
			assert.ErrorIs(t, err, booking.ErrInvalidTimeOfDay, "%02d:%02d", c.hour, c.minute)
		}
	})

	t.Run("parse", func(t *testing.T) {
		parsed, err := booking.ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, parsed.Hour())
		assert.Equal(t, 30, parsed.Minute())

		withSeconds, err := booking.ParseTimeOfDay("14:00:00")
		require.NoError(t, err)
		assert.Equal(t, 14, withSeconds.Hour())

		_, err = booking.ParseTimeOfDay("not a time")
		assert.Error(t, err)
	})

	t.Run("string format", func(t *testing.T) {
		assert.Equal(t, "09:05:00", mustTime(t, 9, 5).String())
	})

	t.Run("ordering", func(t *testing.T) {
		earlier := mustTime(t, 9, 0)
		later := mustTime(t, 9, 30)
		assert.True(t, earlier.Before(later))
		assert.True(t, later.After(earlier))
		assert.False(t, earlier.Before(earlier))
	})
}

func TestNewTimeSlot(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("start must precede end", func(t *testing.T) {
		_, err := booking.NewTimeSlot(date, mustTime(t, 10, 0), mustTime(t, 9, 0))
		assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)
	})

	t.Run("zero length is rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(date, mustTime(t, 10, 0), mustTime(t, 10, 0))
		assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)
	})

	t.Run("date is normalized to midnight UTC", func(t *testing.T) {
		noisy := time.Date(2026, 9, 1, 13, 45, 12, 0, time.UTC)
		slot, err := booking.NewTimeSlot(noisy, mustTime(t, 10, 0), mustTime(t, 11, 0))
		require.NoError(t, err)
		assert.Equal(t, date, slot.Date())
	})

	t.Run("duration", func(t *testing.T) {
		slot := mustSlot(t, date, 9, 0, 12, 30)
		assert.Equal(t, 3*time.Hour+30*time.Minute, slot.Duration())
	})
}

func TestTimeSlotOverlaps(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	otherDate := date.AddDate(0, 0, 1)

	cases := []struct {
		name    string
		a, b    booking.TimeSlot
		overlap bool
	}{
		{
			name:    "identical slots",
			a:       mustSlot(t, date, 9, 0, 10, 0),
			b:       mustSlot(t, date, 9, 0, 10, 0),
			overlap: true,
		},
		{
			name:    "partial overlap",
			a:       mustSlot(t, date, 9, 0, 11, 0),
			b:       mustSlot(t, date, 10, 0, 12, 0),
			overlap: true,
		},
		{
			name:    "containment",
			a:       mustSlot(t, date, 9, 0, 17, 0),
			b:       mustSlot(t, date, 12, 0, 13, 0),
			overlap: true,
		},
		{
			name:    "back to back does not overlap",
			a:       mustSlot(t, date, 9, 0, 10, 0),
			b:       mustSlot(t, date, 10, 0, 11, 0),
			overlap: false,
		},
		{
			name:    "disjoint",
			a:       mustSlot(t, date, 9, 0, 10, 0),
			b:       mustSlot(t, date, 14, 0, 15, 0),
			overlap: false,
		},
		{
			name:    "same times on different dates",
			a:       mustSlot(t, date, 9, 0, 10, 0),
			b:       mustSlot(t, otherDate, 9, 0, 10, 0),
			overlap: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlap, c.a.Overlaps(c.b))
			// Overlap is symmetric
			assert.Equal(t, c.overlap, c.b.Overlaps(c.a))
		})
	}
}

func TestConflicts(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	existing := []booking.TimeSlot{
		mustSlot(t, date, 9, 0, 10, 0),
		mustSlot(t, date, 14, 0, 16, 0),
	}

	t.Run("no conflict in free window", func(t *testing.T) {
		assert.False(t, booking.Conflicts(existing, mustSlot(t, date, 10, 0, 12, 0)))
	})

	t.Run("conflict with any existing slot", func(t *testing.T) {
		assert.True(t, booking.Conflicts(existing, mustSlot(t, date, 15, 0, 17, 0)))
	})

	t.Run("empty existing set never conflicts", func(t *testing.T) {
		assert.False(t, booking.Conflicts(nil, mustSlot(t, date, 9, 0, 10, 0)))
	})
}
