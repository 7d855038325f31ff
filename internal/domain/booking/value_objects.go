package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeRange = errors.New("start time must be before end time")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidDate      = errors.New("invalid date")
)

// TimeOfDay is a wall-clock offset within a day, minute resolution.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay accepts "15:04" and "15:04:05" layouts; seconds are dropped.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
}

func (t TimeOfDay) Hour() int    { return t.minutes / 60 }
func (t TimeOfDay) Minute() int  { return t.minutes % 60 }
func (t TimeOfDay) Minutes() int { return t.minutes }

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute())
}

// On anchors the offset onto a calendar day.
func (t TimeOfDay) On(date time.Time) time.Time {
	d := NormalizeDate(date)
	return d.Add(time.Duration(t.minutes) * time.Minute)
}

// NormalizeDate truncates any time-of-day component, keeping the UTC calendar day.
func NormalizeDate(date time.Time) time.Time {
	y, m, d := date.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TimeSlot is a half-open window [start, end) on a single calendar date.
type TimeSlot struct {
	date  time.Time
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeSlot(date time.Time, start, end TimeOfDay) (TimeSlot, error) {
	if date.IsZero() {
		return TimeSlot{}, ErrInvalidDate
	}
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeRange
	}
	return TimeSlot{
		date:  NormalizeDate(date),
		start: start,
		end:   end,
	}, nil
}

func (s TimeSlot) Date() time.Time  { return s.date }
func (s TimeSlot) Start() TimeOfDay { return s.start }
func (s TimeSlot) End() TimeOfDay   { return s.end }

func (s TimeSlot) Duration() time.Duration {
	return time.Duration(s.end.Minutes()-s.start.Minutes()) * time.Minute
}

func (s TimeSlot) EndsAt() time.Time {
	return s.end.On(s.date)
}

// Overlaps reports whether the two windows share at least one instant.
// Half-open semantics: back-to-back slots (A ends when B starts) do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	if !s.date.Equal(other.date) {
		return false
	}
	return s.start.Before(other.end) && other.start.Before(s.end)
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s", s.date.Format("2006-01-02"), s.start, s.end)
}

// Conflicts reports whether candidate overlaps any of the existing slots.
// Callers pass the Booked slots of one room on candidate's date.
func Conflicts(existing []TimeSlot, candidate TimeSlot) bool {
	for _, slot := range existing {
		if slot.Overlaps(candidate) {
			return true
		}
	}
	return false
}
