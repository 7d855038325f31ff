package queries

import (
	"context"

	"github.com/google/uuid"
)

type NotificationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type NotificationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error) {
	return q.store.ListByUser(ctx, userID)
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return q.store.UnreadCount(ctx, userID)
}
