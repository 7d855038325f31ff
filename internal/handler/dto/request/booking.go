package request

import (
	"strings"
	"time"

	"roombook/internal/domain/booking"
)

const (
	minPurposeLen = 10
	maxPurposeLen = 500

	maxAdvanceMonths = 6

	minSlotDuration = 30 * time.Minute
	maxSlotDuration = 8 * time.Hour
)

var (
	businessOpen  = mustTimeOfDay(8, 0)
	businessClose = mustTimeOfDay(18, 0)
)

type CreateBookingRequest struct {
	RoomID    int64  `json:"room_id" binding:"required"`
	Date      string `json:"date" binding:"required"`       // 2006-01-02
	StartTime string `json:"start_time" binding:"required"` // 15:04
	EndTime   string `json:"end_time" binding:"required"`
	Purpose   string `json:"purpose" binding:"required"`
}

type RejectBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

func (r RejectBookingRequest) TrimmedReason() *string {
	if r.Reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type CheckAvailabilityRequest struct {
	RoomID    int64  `form:"roomId" binding:"required"`
	Date      string `form:"date" binding:"required"`
	StartTime string `form:"startTime" binding:"required"`
	EndTime   string `form:"endTime" binding:"required"`
}

// BookingSlot is the parsed slot of a validated request.
type BookingSlot struct {
	Date  time.Time
	Start booking.TimeOfDay
	End   booking.TimeOfDay
}

// Validate applies the submission rules and returns per-field messages.
// Overlap with existing bookings is checked later, inside the usecase
// transaction.
func (r CreateBookingRequest) Validate(today time.Time) (BookingSlot, map[string]string) {
	slot, fieldErrs := parseSlot(r.Date, r.StartTime, r.EndTime, today)

	purpose := strings.TrimSpace(r.Purpose)
	if len(purpose) < minPurposeLen || len(purpose) > maxPurposeLen {
		fieldErrs["purpose"] = "purpose must be between 10 and 500 characters"
	}

	if len(fieldErrs) > 0 {
		return BookingSlot{}, fieldErrs
	}
	return slot, nil
}

func (r CreateBookingRequest) TrimmedPurpose() string {
	return strings.TrimSpace(r.Purpose)
}

func (r CheckAvailabilityRequest) Validate(today time.Time) (BookingSlot, map[string]string) {
	slot, fieldErrs := parseSlot(r.Date, r.StartTime, r.EndTime, today)
	if len(fieldErrs) > 0 {
		return BookingSlot{}, fieldErrs
	}
	return slot, nil
}

func parseSlot(dateRaw, startRaw, endRaw string, today time.Time) (BookingSlot, map[string]string) {
	fieldErrs := make(map[string]string)

	var slot BookingSlot
	date, err := time.ParseInLocation("2006-01-02", dateRaw, time.UTC)
	if err != nil {
		fieldErrs["date"] = "date must be in YYYY-MM-DD format"
	} else {
		slot.Date = booking.NormalizeDate(date)
		today = booking.NormalizeDate(today)
		if slot.Date.Before(today) {
			fieldErrs["date"] = "date cannot be in the past"
		} else if slot.Date.After(today.AddDate(0, maxAdvanceMonths, 0)) {
			fieldErrs["date"] = "date cannot be more than 6 months ahead"
		}
	}

	start, err := booking.ParseTimeOfDay(startRaw)
	if err != nil {
		fieldErrs["start_time"] = "start_time must be in HH:MM format"
	} else if msg := checkBusinessHours(start); msg != "" {
		fieldErrs["start_time"] = msg
	}

	end, err := booking.ParseTimeOfDay(endRaw)
	if err != nil {
		fieldErrs["end_time"] = "end_time must be in HH:MM format"
	} else if msg := checkBusinessHours(end); msg != "" {
		fieldErrs["end_time"] = msg
	}

	if _, ok := fieldErrs["start_time"]; !ok {
		if _, ok := fieldErrs["end_time"]; !ok {
			switch duration := time.Duration(end.Minutes()-start.Minutes()) * time.Minute; {
			case !start.Before(end):
				fieldErrs["end_time"] = "end_time must be after start_time"
			case duration < minSlotDuration:
				fieldErrs["end_time"] = "booking must be at least 30 minutes"
			case duration > maxSlotDuration:
				fieldErrs["end_time"] = "booking cannot exceed 8 hours"
			}
		}
	}

	slot.Start = start
	slot.End = end
	return slot, fieldErrs
}

func checkBusinessHours(t booking.TimeOfDay) string {
	if t.Before(businessOpen) || t.After(businessClose) {
		return "time must be within business hours (08:00-18:00)"
	}
	if t.Minute()%30 != 0 {
		return "time must be on a 30-minute boundary"
	}
	return ""
}

func mustTimeOfDay(hour, minute int) booking.TimeOfDay {
	t, err := booking.NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}
