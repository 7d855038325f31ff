package response

import (
	"time"

	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID               int64     `json:"id"`
	UserID           uuid.UUID `json:"userId"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	Type             string    `json:"type"`
	IsRead           bool      `json:"isRead"`
	BookingRequestID *int64    `json:"bookingRequestId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

func FromNotificationView(v *queries.NotificationView) *NotificationResponse {
	var resp NotificationResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromNotificationViews(views []*queries.NotificationView) []*NotificationResponse {
	resps := make([]*NotificationResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromNotificationView(v))
	}
	return resps
}
