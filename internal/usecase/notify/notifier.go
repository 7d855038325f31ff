package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/user"
	"roombook/internal/pkg/clock"
	"roombook/internal/usecase/shared"
)

// Notification types mirrored by the frontend badge styles.
const (
	TypeConflict   = "conflict"
	TypeConfirmed  = "confirmed"
	TypeRejected   = "rejected"
	TypeNewRequest = "new_request"
	TypeReminder   = "reminder"
	TypeSystem     = "system"
)

const emailJobKind = "email"

// Notifier emits in-app notification rows and outbox email jobs. It always
// runs after the booking state transaction has committed; every method is
// best-effort and logs failures instead of returning them, so notification
// delivery can never roll back booking state.
type Notifier interface {
	NotifyConflict(ctx context.Context, employee *user.User, roomName string, slot booking.TimeSlot)
	NotifyNewRequest(ctx context.Context, admins []*user.User, employeeName, roomName string, slot booking.TimeSlot, requestID int64)
	NotifyConfirmed(ctx context.Context, employee *user.User, roomName string, slot booking.TimeSlot, requestID int64)
	NotifyRejected(ctx context.Context, employee *user.User, roomName string, slot booking.TimeSlot, requestID int64, reason *string)
}

type notifierImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewNotifier(uow shared.UnitOfWork, clock clock.Clock) Notifier {
	return &notifierImpl{uow: uow, clock: clock}
}

func (n *notifierImpl) NotifyConflict(ctx context.Context, employee *user.User, roomName string, slot booking.TimeSlot) {
	msg := fmt.Sprintf(
		"Room '%s' is unavailable on %s from %s to %s. Please select a different time slot.",
		roomName, formatDate(slot), formatTime(slot.Start()), formatTime(slot.End()),
	)
	n.emit(ctx, employee, "Booking Conflict", msg, TypeConflict, nil)
}

func (n *notifierImpl) NotifyNewRequest(ctx context.Context, admins []*user.User, employeeName, roomName string, slot booking.TimeSlot, requestID int64) {
	msg := fmt.Sprintf(
		"%s requested '%s' on %s from %s to %s",
		employeeName, roomName, formatDate(slot), formatTime(slot.Start()), formatTime(slot.End()),
	)
	for _, admin := range admins {
		n.emit(ctx, admin, "New Booking Request", msg, TypeNewRequest, &requestID)
	}
}

func (n *notifierImpl) NotifyConfirmed(ctx context.Context, employee *user.User, roomName string, slot booking.TimeSlot, requestID int64) {
	msg := fmt.Sprintf(
		"Your booking for '%s' on %s from %s to %s has been approved.",
		roomName, formatDate(slot), formatTime(slot.Start()), formatTime(slot.End()),
	)
	n.emit(ctx, employee, "Booking Confirmed", msg, TypeConfirmed, &requestID)
}

func (n *notifierImpl) NotifyRejected(ctx context.Context, employee *user.User, roomName string, slot booking.TimeSlot, requestID int64, reason *string) {
	msg := fmt.Sprintf(
		"Your booking for '%s' on %s from %s to %s was declined.",
		roomName, formatDate(slot), formatTime(slot.Start()), formatTime(slot.End()),
	)
	if reason != nil && *reason != "" {
		msg += " Reason: " + *reason
	}
	n.emit(ctx, employee, "Booking Rejected", msg, TypeRejected, &requestID)
}

// emit writes the in-app row and the email outbox job in one small
// transaction, separate from any booking state transaction.
func (n *notifierImpl) emit(ctx context.Context, recipient *user.User, title, message, notifType string, requestID *int64) {
	payload, err := json.Marshal(emailPayload{
		To:               recipient.Email(),
		Name:             recipient.FullName(),
		Subject:          title,
		Body:             message,
		BookingRequestID: requestID,
	})
	if err != nil {
		slog.Error("failed to marshal notification payload", "type", notifType, "error", err.Error())
		return
	}

	err = n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Notifications().CreateNotification(ctx, tx.DB(), shared.NotificationParams{
			UserID:           recipient.ID(),
			Title:            title,
			Message:          message,
			Type:             notifType,
			BookingRequestID: requestID,
		}); err != nil {
			return err
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), emailJobKind, notifType, payload, n.clock.Now())
	})
	if err != nil {
		slog.Warn("failed to emit notification",
			"type", notifType,
			"user_id", recipient.ID(),
			"error", err.Error())
	}
}

type emailPayload struct {
	To               string `json:"to"`
	Name             string `json:"name"`
	Subject          string `json:"subject"`
	Body             string `json:"body"`
	BookingRequestID *int64 `json:"booking_request_id,omitempty"`
}

func formatDate(slot booking.TimeSlot) string {
	return slot.Date().Format("2006-01-02")
}

func formatTime(t booking.TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
