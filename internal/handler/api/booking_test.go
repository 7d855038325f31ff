//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/user"
	"roombook/internal/handler/api"
	resdto "roombook/internal/handler/dto/response"
	"roombook/internal/pkg/clock"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"
	"roombook/tests/common/builder"
	"roombook/tests/common/httptest"
	"roombook/tests/common/testutil"
	commandsmock "roombook/tests/mock/commands"
	queriesmock "roombook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	employeeID   uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, clock.NewMockClock(time.Now().UTC()))
	s.employeeID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Mock authenticated user
		c.Set("user_id", s.employeeID)
		c.Set("user_name", "Alex Moore")
		c.Set("user_role", user.RoleEmployee)
		c.Next()
	}

	// Setup routes
	s.router.POST("/booking-requests", authMiddleware, s.handler.Create)
	s.router.GET("/booking-requests", authMiddleware, s.handler.ListAll)
	s.router.GET("/booking-requests/pending", authMiddleware, s.handler.ListPending)
	s.router.GET("/booking-requests/my-requests", authMiddleware, s.handler.ListMine)
	s.router.GET("/booking-requests/check-availability", authMiddleware, s.handler.CheckAvailability)
	s.router.POST("/booking-requests/:id/confirm", authMiddleware, s.handler.Confirm)
	s.router.POST("/booking-requests/:id/reject", authMiddleware, s.handler.Reject)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/booking-requests"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().WithEmployeeID(s.employeeID).BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p commands.CreateBookingParams) (*queries.BookingView, error) {
				s.Equal(s.employeeID, p.EmployeeID)
				s.Equal("Alex Moore", p.EmployeeName)
				s.Equal(reqBody.RoomID, p.RoomID)
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(string(booking.StatusPending), response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing room_id", mutate: testutil.Field("room_id", nil)},
			{name: "malformed date", mutate: testutil.Field("date", "not-a-date")},
			{name: "start off the half-hour grid", mutate: testutil.Field("start_time", "09:10")},
			{name: "purpose too short", mutate: testutil.Field("purpose", "standup")},
			{name: "purpose too long", mutate: testutil.Field("purpose", strings.Repeat("a", 501))},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "slot conflict",
				commandsError:  commands.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListAll
// ================================================================================

func (s *BookingHandlerTestSuite) TestListAll() {
	url := "/booking-requests"

	s.Run("success: returns 200 OK with all requests", func() {
		first := builder.NewBookingBuilder().WithID(1).BuildView()
		second := builder.NewBookingBuilder().WithID(2).AsBooked().BuildView()

		s.mockQueries.EXPECT().ListAll(gomock.Any(), gomock.Nil()).
			Return([]*queries.BookingView{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(int64(1), response[0].ID)
	})

	s.Run("success: passes a valid status filter through", func() {
		pending := "pending"
		s.mockQueries.EXPECT().ListAll(gomock.Any(), gomock.Cond(func(status *string) bool {
			return status != nil && *status == pending
		})).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=pending", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for an unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=archived", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid status filter")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMine() {
	url := "/booking-requests/my-requests"

	s.Run("success: lists only the caller's requests", func() {
		mine := builder.NewBookingBuilder().WithEmployeeID(s.employeeID).BuildView()

		s.mockQueries.EXPECT().ListByEmployee(gomock.Any(), s.employeeID).
			Return([]*queries.BookingView{mine}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(s.employeeID, response[0].EmployeeID)
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirm() {
	url := "/booking-requests/42/confirm"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), int64(42)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking-requests/abc/confirm", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "request not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "not found",
			},
			{
				name:           "slot taken since submission",
				commandsError:  commands.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "request no longer pending",
				commandsError:  booking.ErrInvalidTransition,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Only pending requests",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Confirm(gomock.Any(), int64(42)).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestReject
// ================================================================================

func (s *BookingHandlerTestSuite) TestReject() {
	url := "/booking-requests/42/reject"

	s.Run("success: forwards the trimmed reason", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), int64(42), gomock.Cond(func(reason *string) bool {
			return reason != nil && *reason == "room closed"
		})).Return(nil).Times(1)

		body := map[string]any{"reason": "  room closed  "}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: reason is optional", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), int64(42), (*string)(nil)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for unknown request", func() {
		s.mockCommands.EXPECT().Reject(gomock.Any(), int64(42), (*string)(nil)).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	date := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	url := "/booking-requests/check-availability?roomId=1&date=" + date + "&startTime=09:00&endTime=10:00"

	s.Run("success: returns availability verdict", func() {
		s.mockCommands.EXPECT().CheckAvailability(gomock.Any(), int64(1), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Available)
	})

	s.Run("error: 400 Bad Request when parameters are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/booking-requests/check-availability?roomId=1", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 Bad Request for an out-of-hours slot", func() {
		badURL := "/booking-requests/check-availability?roomId=1&date=" + date + "&startTime=06:00&endTime=07:00"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, badURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}
