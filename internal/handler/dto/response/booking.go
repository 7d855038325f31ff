package response

import (
	"time"

	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID           int64     `json:"id"`
	EmployeeID   uuid.UUID `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	RoomID       int64     `json:"roomId"`
	RoomName     string    `json:"roomName"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Purpose      string    `json:"purpose"`
	Status       string    `json:"status"`
	RejectReason *string   `json:"rejectReason,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	resp.Date = v.Date.Format("2006-01-02")
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	resps := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromBookingView(v))
	}
	return resps
}
