//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "roombook/internal/handler/dto/response"
	"roombook/tests/common/authtest"
	"roombook/tests/common/builder"
	"roombook/tests/common/dbtest"
	"roombook/tests/common/httptest"
	"roombook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL     = "/api/booking-requests"
	pendingURL      = "/api/booking-requests/pending"
	myRequestsURL   = "/api/booking-requests/my-requests"
	availabilityURL = "/api/booking-requests/check-availability"
	confirmURL      = "/api/booking-requests/%d/confirm"
	rejectURL       = "/api/booking-requests/%d/reject"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) tomorrow() time.Time {
	return time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 1)
}

// =============================================================================
// TestBookingLifecycle - submission through admin approval
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: request is pending until an admin confirms it", func() {
		t := s.T()

		employeeID := dbtest.CreateTestUser(t, s.DB, "amoore", "amoore@example.com", "employee")
		dbtest.CreateTestUser(t, s.DB, "jadmin", "jadmin@example.com", "admin")
		roomID := dbtest.CreateTestRoom(t, s.DB, "Aurora", 8)

		employeeToken := authtest.LoginUser(t, s.Router, "amoore", dbtest.TestPassword)
		adminToken := authtest.LoginUser(t, s.Router, "jadmin", dbtest.TestPassword)

		reqBody := builder.NewBookingBuilder().
			WithRoomID(roomID).
			WithDate(s.tomorrow()).
			WithSlot("09:00", "10:00").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, employeeToken)
		require.Equal(t, http.StatusCreated, w.Code, "Submission should succeed: %s", w.Body.String())

		var created resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		expected := resdto.BookingResponse{
			EmployeeID:   employeeID,
			EmployeeName: "Test User",
			RoomID:       roomID,
			RoomName:     "Aurora",
			Date:         s.tomorrow().Format("2006-01-02"),
			StartTime:    "09:00:00",
			EndTime:      "10:00:00",
			Purpose:      reqBody.Purpose,
			Status:       "pending",
		}
		if diff := cmp.Diff(expected, created,
			cmpopts.IgnoreFields(resdto.BookingResponse{}, "ID", "CreatedAt")); diff != "" {
			t.Errorf("unexpected booking response (-want +got):\n%s", diff)
		}

		// Admin sees it in the pending queue
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var pending []resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &pending))
		require.Len(t, pending, 1)
		require.Equal(t, created.ID, pending[0].ID)

		// Confirm it
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, created.ID), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, "Confirmation should succeed: %s", w.Body.String())
		require.Equal(t, 1, dbtest.CountBookedForRoom(t, s.DB, roomID, s.tomorrow()))

		// Confirming twice is rejected
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, created.ID), nil, adminToken)
		require.Equal(t, http.StatusBadRequest, w.Code, "A booked request cannot be confirmed again")
	})

	s.Run("Normal case: rejection records the reason", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "amoore", "amoore@example.com", "employee")
		dbtest.CreateTestUser(t, s.DB, "jadmin", "jadmin@example.com", "admin")
		roomID := dbtest.CreateTestRoom(t, s.DB, "Aurora", 8)

		employeeToken := authtest.LoginUser(t, s.Router, "amoore", dbtest.TestPassword)
		adminToken := authtest.LoginUser(t, s.Router, "jadmin", dbtest.TestPassword)

		reqBody := builder.NewBookingBuilder().
			WithRoomID(roomID).
			WithDate(s.tomorrow()).
			WithSlot("13:00", "14:00").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, employeeToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var created resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		body := map[string]string{"reason": "Room reserved for maintenance"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(rejectURL, created.ID), body, adminToken)
		require.Equal(t, http.StatusOK, w.Code, "Rejection should succeed: %s", w.Body.String())

		// The employee sees the rejection with its reason
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myRequestsURL, nil, employeeToken)
		require.Equal(t, http.StatusOK, w.Code)

		var mine []resdto.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &mine))
		require.Len(t, mine, 1)
		require.Equal(t, "rejected", mine[0].Status)
		require.NotNil(t, mine[0].RejectReason)
		require.Equal(t, "Room reserved for maintenance", *mine[0].RejectReason)
	})

	s.Run("Error case: employees cannot use admin endpoints", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "amoore", "amoore@example.com", "employee")
		employeeToken := authtest.LoginUser(t, s.Router, "amoore", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, pendingURL, nil, employeeToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestDoubleBooking - overlap rules against Booked requests
// =============================================================================

func (s *BookingSuite) TestDoubleBooking() {
	s.Run("Error case: overlapping a booked slot returns 409", func() {
		t := s.T()

		employeeID := dbtest.CreateTestUser(t, s.DB, "amoore", "amoore@example.com", "employee")
		dbtest.CreateTestUser(t, s.DB, "bchen", "bchen@example.com", "employee")
		roomID := dbtest.CreateTestRoom(t, s.DB, "Aurora", 8)
		dbtest.CreateTestBooking(t, s.DB, employeeID, roomID, s.tomorrow(), "09:00", "10:00", "booked")

		otherToken := authtest.LoginUser(t, s.Router, "bchen", dbtest.TestPassword)

		reqBody := builder.NewBookingBuilder().
			WithRoomID(roomID).
			WithDate(s.tomorrow()).
			WithSlot("09:30", "10:30").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, otherToken)
		require.Equal(t, http.StatusConflict, w.Code, "Overlap with a booked slot must be refused")
	})

	s.Run("Normal case: pending requests do not block submissions", func() {
		t := s.T()

		employeeID := dbtest.CreateTestUser(t, s.DB, "amoore", "amoore@example.com", "employee")
		dbtest.CreateTestUser(t, s.DB, "bchen", "bchen@example.com", "employee")
		roomID := dbtest.CreateTestRoom(t, s.DB, "Aurora", 8)
		dbtest.CreateTestBooking(t, s.DB, employeeID, roomID, s.tomorrow(), "09:00", "10:00", "pending")

		otherToken := authtest.LoginUser(t, s.Router, "bchen", dbtest.TestPassword)

		reqBody := builder.NewBookingBuilder().
			WithRoomID(roomID).
			WithDate(s.tomorrow()).
			WithSlot("09:00", "10:00").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, otherToken)
		require.Equal(t, http.StatusCreated, w.Code, "Pending requests must not reserve the slot: %s", w.Body.String())
	})

	s.Run("Normal case: back-to-back bookings are allowed", func() {
		t := s.T()

		employeeID := dbtest.CreateTestUser(t, s.DB, "amoore", "amoore@example.com", "employee")
		dbtest.CreateTestUser(t, s.DB, "bchen", "bchen@example.com", "employee")
		roomID := dbtest.CreateTestRoom(t, s.DB, "Aurora", 8)
		dbtest.CreateTestBooking(t, s.DB, employeeID, roomID, s.tomorrow(), "09:00", "10:00", "booked")

		otherToken := authtest.LoginUser(t, s.Router, "bchen", dbtest.TestPassword)

		reqBody := builder.NewBookingBuilder().
			WithRoomID(roomID).
			WithDate(s.tomorrow()).
			WithSlot("10:00", "11:00").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, otherToken)
		require.Equal(t, http.StatusCreated, w.Code, "Back-to-back slots must be accepted: %s", w.Body.String())
	})

	s.Run("Error case: confirmation re-checks the slot", func() {
		t := s.T()

		employeeID := dbtest.CreateTestUser(t, s.DB, "amoore", "amoore@example.com", "employee")
		dbtest.CreateTestUser(t, s.DB, "jadmin", "jadmin@example.com", "admin")
		roomID := dbtest.CreateTestRoom(t, s.DB, "Aurora", 8)

		// Two pending requests for the same slot, then one gets booked directly.
		pendingID := dbtest.CreateTestBooking(t, s.DB, employeeID, roomID, s.tomorrow(), "09:00", "10:00", "pending")
		dbtest.CreateTestBooking(t, s.DB, employeeID, roomID, s.tomorrow(), "09:30", "10:30", "booked")

		adminToken := authtest.LoginUser(t, s.Router, "jadmin", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(confirmURL, pendingID), nil, adminToken)
		require.Equal(t, http.StatusConflict, w.Code, "Approval must fail once the slot is taken")
		require.Equal(t, 1, dbtest.CountBookedForRoom(t, s.DB, roomID, s.tomorrow()))
	})
}

// =============================================================================
// TestCheckAvailability - advisory availability endpoint
// =============================================================================

func (s *BookingSuite) TestCheckAvailability() {
	s.Run("Normal case: reflects booked slots", func() {
		t := s.T()

		employeeID := dbtest.CreateTestUser(t, s.DB, "amoore", "amoore@example.com", "employee")
		roomID := dbtest.CreateTestRoom(t, s.DB, "Aurora", 8)
		dbtest.CreateTestBooking(t, s.DB, employeeID, roomID, s.tomorrow(), "09:00", "10:00", "booked")

		token := authtest.LoginUser(t, s.Router, "amoore", dbtest.TestPassword)
		date := s.tomorrow().Format("2006-01-02")

		url := fmt.Sprintf("%s?roomId=%d&date=%s&startTime=09:30&endTime=10:30", availabilityURL, roomID, date)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var taken resdto.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &taken))
		require.False(t, taken.Available)

		url = fmt.Sprintf("%s?roomId=%d&date=%s&startTime=10:00&endTime=11:00", availabilityURL, roomID, date)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var free resdto.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &free))
		require.True(t, free.Available)
	})
}
