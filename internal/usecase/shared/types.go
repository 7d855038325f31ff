package shared

import (
	"time"

	"github.com/google/uuid"
)

// NotificationParams is the write-side record for an in-app notification.
type NotificationParams struct {
	UserID           uuid.UUID
	Title            string
	Message          string
	Type             string
	BookingRequestID *int64
}

// NotificationJob is one outbox row claimed by the dispatcher.
type NotificationJob struct {
	ID       int64
	Kind     string
	Topic    string
	Payload  []byte
	RunAt    time.Time
	Attempts int
}
