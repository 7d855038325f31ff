package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID           int64     `json:"id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	RoomID       int64     `json:"room_id"`
	RoomName     string    `json:"room_name"`
	Date         time.Time `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Purpose      string    `json:"purpose"`
	Status       string    `json:"status"`
	RejectReason *string   `json:"reject_reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type RoomView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	Description *string   `json:"description,omitempty"`
	Amenities   []string  `json:"amenities"`
	ImageURLs   []string  `json:"image_urls"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoomScheduleView is one Booked slot on a room, for the schedule screen.
type RoomScheduleView struct {
	RoomID       int64     `json:"room_id"`
	RoomName     string    `json:"room_name"`
	Date         time.Time `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	EmployeeName string    `json:"employee_name"`
}

type NotificationView struct {
	ID               int64     `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	Type             string    `json:"type"`
	IsRead           bool      `json:"is_read"`
	BookingRequestID *int64    `json:"booking_request_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	MiddleName  *string    `json:"middle_name,omitempty"`
	LastName    string     `json:"last_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}
