package response

import (
	"time"

	"roombook/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	Description *string   `json:"description,omitempty"`
	Amenities   []string  `json:"amenities"`
	ImageURLs   []string  `json:"imageUrls"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RoomScheduleResponse struct {
	RoomID       int64  `json:"roomId"`
	RoomName     string `json:"roomName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	EmployeeName string `json:"employeeName"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	resps := make([]*RoomResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromRoomView(v))
	}
	return resps
}

func FromRoomScheduleView(v *queries.RoomScheduleView) *RoomScheduleResponse {
	var resp RoomScheduleResponse
	_ = copier.Copy(&resp, v)
	resp.Date = v.Date.Format("2006-01-02")
	return &resp
}

func FromRoomScheduleViews(views []*queries.RoomScheduleView) []*RoomScheduleResponse {
	resps := make([]*RoomScheduleResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromRoomScheduleView(v))
	}
	return resps
}
