//go:build unit

package request_test

import (
	"testing"
	"time"

	"roombook/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)

func validRequest() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		RoomID:    1,
		Date:      "2026-09-01",
		StartTime: "09:00",
		EndTime:   "10:30",
		Purpose:   "Quarterly planning session",
	}
}

func TestCreateBookingRequestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		slot, fieldErrs := validRequest().Validate(today)
		require.Nil(t, fieldErrs)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), slot.Date)
		assert.Equal(t, 9, slot.Start.Hour())
		assert.Equal(t, 30, slot.End.Minute())
	})

	t.Run("booking for today is allowed", func(t *testing.T) {
		req := validRequest()
		req.Date = "2026-08-31"
		_, fieldErrs := req.Validate(today)
		assert.Nil(t, fieldErrs)
	})

	cases := []struct {
		name   string
		mutate func(*request.CreateBookingRequest)
		field  string
	}{
		{
			name:   "malformed date",
			mutate: func(r *request.CreateBookingRequest) { r.Date = "01-09-2026" },
			field:  "date",
		},
		{
			name:   "date in the past",
			mutate: func(r *request.CreateBookingRequest) { r.Date = "2026-08-30" },
			field:  "date",
		},
		{
			name:   "date beyond six months",
			mutate: func(r *request.CreateBookingRequest) { r.Date = "2027-03-15" },
			field:  "date",
		},
		{
			name:   "start before business hours",
			mutate: func(r *request.CreateBookingRequest) { r.StartTime = "07:30" },
			field:  "start_time",
		},
		{
			name:   "end after business hours",
			mutate: func(r *request.CreateBookingRequest) { r.EndTime = "18:30" },
			field:  "end_time",
		},
		{
			name:   "start off the half-hour grid",
			mutate: func(r *request.CreateBookingRequest) { r.StartTime = "09:15" },
			field:  "start_time",
		},
		{
			name: "end not after start",
			mutate: func(r *request.CreateBookingRequest) {
				r.StartTime = "10:00"
				r.EndTime = "10:00"
			},
			field: "end_time",
		},
		{
			name: "duration exceeds eight hours",
			mutate: func(r *request.CreateBookingRequest) {
				r.StartTime = "08:00"
				r.EndTime = "17:30"
			},
			field: "end_time",
		},
		{
			name:   "purpose too short",
			mutate: func(r *request.CreateBookingRequest) { r.Purpose = "standup" },
			field:  "purpose",
		},
		{
			name: "purpose too long",
			mutate: func(r *request.CreateBookingRequest) {
				long := make([]byte, 501)
				for i := range long {
					long[i] = 'x'
				}
				r.Purpose = string(long)
			},
			field: "purpose",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validRequest()
			c.mutate(&req)

			_, fieldErrs := req.Validate(today)
			require.NotNil(t, fieldErrs)
			assert.Contains(t, fieldErrs, c.field)
		})
	}
}

func TestCheckAvailabilityRequestValidate(t *testing.T) {
	req := request.CheckAvailabilityRequest{
		RoomID:    2,
		Date:      "2026-09-01",
		StartTime: "14:00",
		EndTime:   "15:00",
	}

	slot, fieldErrs := req.Validate(today)
	require.Nil(t, fieldErrs)
	assert.Equal(t, 14, slot.Start.Hour())

	req.EndTime = "13:00"
	_, fieldErrs = req.Validate(today)
	assert.Contains(t, fieldErrs, "end_time")
}

func TestRejectBookingRequestTrimmedReason(t *testing.T) {
	blank := "   "
	assert.Nil(t, request.RejectBookingRequest{Reason: &blank}.TrimmedReason())

	padded := "  room closed  "
	got := request.RejectBookingRequest{Reason: &padded}.TrimmedReason()
	require.NotNil(t, got)
	assert.Equal(t, "room closed", *got)

	assert.Nil(t, request.RejectBookingRequest{}.TrimmedReason())
}
