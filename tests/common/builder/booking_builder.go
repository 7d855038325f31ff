//go:build unit || e2e

package builder

import (
	"time"

	dombooking "roombook/internal/domain/booking"
	reqdto "roombook/internal/handler/dto/request"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           int64
	EmployeeID   uuid.UUID
	EmployeeName string
	RoomID       int64
	RoomName     string
	Date         time.Time
	StartTime    string
	EndTime      string
	Purpose      string
	Status       string
	RejectReason *string
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           1,
		EmployeeID:   uuid.New(),
		EmployeeName: "Alex Moore",
		RoomID:       1,
		RoomName:     "Aurora",
		Date:         time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 1),
		StartTime:    "09:00",
		EndTime:      "10:00",
		Purpose:      "Sprint retrospective",
		Status:       string(dombooking.StatusPending),
		CreatedAt:    time.Now().UTC(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.BookingRequest, error) {
	start, err := dombooking.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := dombooking.ParseTimeOfDay(b.EndTime)
	if err != nil {
		return nil, err
	}
	slot, err := dombooking.NewTimeSlot(b.Date, start, end)
	if err != nil {
		return nil, err
	}
	return dombooking.ReconstructBookingRequest(
		b.ID, b.EmployeeID, b.EmployeeName, b.RoomID, slot,
		b.Purpose, dombooking.Status(b.Status), b.RejectReason, b.CreatedAt,
	), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:    b.RoomID,
		Date:      b.Date.Format("2006-01-02"),
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Purpose:   b.Purpose,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:           b.ID,
		EmployeeID:   b.EmployeeID,
		EmployeeName: b.EmployeeName,
		RoomID:       b.RoomID,
		RoomName:     b.RoomName,
		Date:         b.Date,
		StartTime:    b.StartTime + ":00",
		EndTime:      b.EndTime + ":00",
		Purpose:      b.Purpose,
		Status:       b.Status,
		RejectReason: b.RejectReason,
		CreatedAt:    b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithEmployeeID(employeeID uuid.UUID) *BookingBuilder {
	b.EmployeeID = employeeID
	return b
}

func (b *BookingBuilder) WithEmployeeName(name string) *BookingBuilder {
	b.EmployeeName = name
	return b
}

func (b *BookingBuilder) WithRoomID(roomID int64) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithRoomName(name string) *BookingBuilder {
	b.RoomName = name
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlot(startTime, endTime string) *BookingBuilder {
	b.StartTime = startTime
	b.EndTime = endTime
	return b
}

func (b *BookingBuilder) WithPurpose(purpose string) *BookingBuilder {
	b.Purpose = purpose
	return b
}

func (b *BookingBuilder) AsBooked() *BookingBuilder {
	b.Status = string(dombooking.StatusBooked)
	return b
}

func (b *BookingBuilder) AsRejected(reason *string) *BookingBuilder {
	b.Status = string(dombooking.StatusRejected)
	b.RejectReason = reason
	return b
}
