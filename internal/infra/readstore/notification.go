package readstore

import (
	"context"

	"roombook/internal/infra/db"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
)

type notificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) queries.NotificationReadStore {
	return &notificationReadStore{db: dbtx}
}

func (s *notificationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.NotificationView, error) {
	const query = `
		SELECT id, user_id, title, message, type, is_read, booking_request_id, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, wrapReadErr("failed to list notifications", err)
	}
	defer rows.Close()

	var views []*queries.NotificationView
	for rows.Next() {
		var v queries.NotificationView
		err := rows.Scan(&v.ID, &v.UserID, &v.Title, &v.Message, &v.Type, &v.IsRead, &v.BookingRequestID, &v.CreatedAt)
		if err != nil {
			return nil, wrapReadErr("failed to scan notification", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to read notification rows", err)
	}
	return views, nil
}

func (s *notificationReadStore) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM notifications WHERE user_id = $1 AND NOT is_read`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, wrapReadErr("failed to count unread notifications", err)
	}
	return count, nil
}
