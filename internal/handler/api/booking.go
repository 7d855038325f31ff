package api

import (
	"errors"
	"net/http"
	"strconv"

	"roombook/internal/domain/booking"
	reqdto "roombook/internal/handler/dto/request"
	resdto "roombook/internal/handler/dto/response"
	"roombook/internal/handler/httperr"
	"roombook/internal/handler/middleware"
	"roombook/internal/pkg/clock"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
	clock           clock.Clock
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries, clk clock.Clock) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
		clock:           clk,
	}
}

// @Summary Submit a booking request
// @Description Request a room reservation, pending admin approval
// @Tags booking-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /booking-requests [post]
func (h *BookingHandler) Create(c *gin.Context) {
	employeeID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	employeeName, _ := middleware.GetUserName(c)

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	slot, fieldErrs := req.Validate(h.clock.Now())
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Error: "Validation failed", Fields: fieldErrs})
		return
	}

	view, err := h.bookingCommands.Create(c.Request.Context(), commands.CreateBookingParams{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		RoomID:       req.RoomID,
		Date:         slot.Date,
		StartTime:    slot.Start,
		EndTime:      slot.End,
		Purpose:      req.TrimmedPurpose(),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		case errors.Is(err, commands.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Room is already booked for this time slot"})
		case errors.Is(err, commands.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time range"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List all booking requests
// @Description Admin view of all requests, optionally filtered by status
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending/booked/rejected)"
// @Success 200 {array} resdto.BookingResponse
// @Router /booking-requests [get]
func (h *BookingHandler) ListAll(c *gin.Context) {
	var status *string
	if raw := c.Query("status"); raw != "" {
		if !booking.Status(raw).IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		status = &raw
	}

	views, err := h.bookingQueries.ListAll(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List pending booking requests
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /booking-requests/pending [get]
func (h *BookingHandler) ListPending(c *gin.Context) {
	views, err := h.bookingQueries.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List the caller's booking requests
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Router /booking-requests/my-requests [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	employeeID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.bookingQueries.ListByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Confirm a booking request
// @Description Approve a pending request; re-checks availability first
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking request ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /booking-requests/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	requestID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.bookingCommands.Confirm(c.Request.Context(), requestID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking request not found"})
		case errors.Is(err, commands.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "Room is already booked for this time slot"})
		case errors.Is(err, booking.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending requests can be confirmed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking request confirmed"})
}

// @Summary Reject a booking request
// @Tags booking-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking request ID"
// @Param request body reqdto.RejectBookingRequest false "Optional rejection reason"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /booking-requests/{id}/reject [post]
func (h *BookingHandler) Reject(c *gin.Context) {
	requestID, ok := pathID(c)
	if !ok {
		return
	}

	var req reqdto.RejectBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	if err := h.bookingCommands.Reject(c.Request.Context(), requestID, req.TrimmedReason()); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking request not found"})
		case errors.Is(err, booking.ErrInvalidTransition):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending requests can be rejected"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking request rejected"})
}

// @Summary Check room availability
// @Description Advisory check; the decisive scan happens at submission and approval
// @Tags booking-requests
// @Produce json
// @Security BearerAuth
// @Param roomId query int true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param startTime query string true "Start time (HH:MM)"
// @Param endTime query string true "End time (HH:MM)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]any
// @Router /booking-requests/check-availability [get]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	slot, fieldErrs := req.Validate(h.clock.Now())
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, httperr.Response{Error: "Validation failed", Fields: fieldErrs})
		return
	}

	available, err := h.bookingCommands.CheckAvailability(c.Request.Context(), req.RoomID, slot.Date, slot.Start, slot.End)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time range"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{Available: available})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
