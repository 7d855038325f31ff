package repository

import (
	"context"
	"time"

	"roombook/internal/infra"
	"roombook/internal/infra/db"
	"roombook/internal/usecase/shared"

	"github.com/google/uuid"
)

type notificationRepository struct{}

func NewNotificationRepository() shared.NotificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, dbtx db.DBTX, p shared.NotificationParams) error {
	const query = `
		INSERT INTO notifications (user_id, title, message, type, booking_request_id)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := dbtx.Exec(ctx, query, p.UserID, p.Title, p.Message, p.Type, p.BookingRequestID)
	if err != nil {
		return wrapDBErr("failed to create notification", err)
	}
	return nil
}

func (r *notificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const query = `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`

	_, err := dbtx.Exec(ctx, query, kind, topic, payload, runAt)
	if err != nil {
		return wrapDBErr("failed to enqueue notification job", err)
	}
	return nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, dbtx db.DBTX, id int64, userID uuid.UUID) error {
	const query = `
		UPDATE notifications SET is_read = TRUE
		WHERE id = $1 AND user_id = $2`

	tag, err := dbtx.Exec(ctx, query, id, userID)
	if err != nil {
		return wrapDBErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`, userID)
	if err != nil {
		return wrapDBErr("failed to mark notifications read", err)
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64, userID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM notifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return wrapDBErr("failed to delete notification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

// ClaimPendingJobs locks a batch of due jobs so that concurrent workers never
// deliver the same job twice.
func (r *notificationRepository) ClaimPendingJobs(ctx context.Context, dbtx db.DBTX, now time.Time, limit int) ([]shared.NotificationJob, error) {
	const query = `
		SELECT id, kind, topic, payload, run_at, attempts
		FROM notification_jobs
		WHERE status = 'pending' AND run_at <= $1
		ORDER BY run_at
		LIMIT $2
		FOR UPDATE SKIP LOCKED`

	rows, err := dbtx.Query(ctx, query, now, limit)
	if err != nil {
		return nil, wrapDBErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []shared.NotificationJob
	for rows.Next() {
		var job shared.NotificationJob
		if err := rows.Scan(&job.ID, &job.Kind, &job.Topic, &job.Payload, &job.RunAt, &job.Attempts); err != nil {
			return nil, wrapDBErr("failed to scan notification job", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr("failed to claim notification jobs", err)
	}
	return jobs, nil
}

func (r *notificationRepository) MarkJobSent(ctx context.Context, dbtx db.DBTX, jobID int64) error {
	const query = `
		UPDATE notification_jobs
		SET status = 'sent', attempts = attempts + 1, last_error = NULL, updated_at = now()
		WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, jobID); err != nil {
		return wrapDBErr("failed to mark job sent", err)
	}
	return nil
}

func (r *notificationRepository) MarkJobFailed(ctx context.Context, dbtx db.DBTX, jobID int64, lastError string, terminal bool) error {
	// Non-terminal failures stay pending and back off one minute per attempt.
	const query = `
		UPDATE notification_jobs
		SET status = CASE WHEN $3 THEN 'failed' ELSE 'pending' END,
		    attempts = attempts + 1,
		    last_error = $2,
		    run_at = CASE WHEN $3 THEN run_at ELSE now() + make_interval(mins => attempts + 1) END,
		    updated_at = now()
		WHERE id = $1`

	if _, err := dbtx.Exec(ctx, query, jobID, lastError, terminal); err != nil {
		return wrapDBErr("failed to mark job failed", err)
	}
	return nil
}
