package readstore

import (
	"context"

	"roombook/internal/infra/db"
	"roombook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type bookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) queries.BookingReadStore {
	return &bookingReadStore{db: dbtx}
}

// Requests keep their own employee_name snapshot; only the room name is
// joined live.
const bookingSelect = `
	SELECT b.id, b.employee_id, b.employee_name, b.room_id,
	       COALESCE(r.name, '') AS room_name,
	       b.date, b.start_time::text, b.end_time::text,
	       b.purpose, b.status, b.reject_reason, b.created_at
	FROM booking_requests b
	LEFT JOIN rooms r ON r.id = b.room_id`

func (s *bookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	row := s.db.QueryRow(ctx, bookingSelect+` WHERE b.id = $1`, id)
	return scanBookingView(row)
}

func (s *bookingReadStore) ListPending(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx, bookingSelect+` WHERE b.status = 'pending' ORDER BY b.created_at`)
	if err != nil {
		return nil, wrapReadErr("failed to list pending requests", err)
	}
	return collectBookingViews(rows)
}

func (s *bookingReadStore) ListAll(ctx context.Context, status *string) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx,
		bookingSelect+` WHERE ($1::text IS NULL OR b.status = $1) ORDER BY b.created_at DESC`,
		status,
	)
	if err != nil {
		return nil, wrapReadErr("failed to list booking requests", err)
	}
	return collectBookingViews(rows)
}

func (s *bookingReadStore) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := s.db.Query(ctx,
		bookingSelect+` WHERE b.employee_id = $1 ORDER BY b.created_at DESC`,
		employeeID,
	)
	if err != nil {
		return nil, wrapReadErr("failed to list employee requests", err)
	}
	return collectBookingViews(rows)
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.EmployeeID, &v.EmployeeName, &v.RoomID, &v.RoomName,
		&v.Date, &v.StartTime, &v.EndTime,
		&v.Purpose, &v.Status, &v.RejectReason, &v.CreatedAt,
	)
	if err != nil {
		return nil, wrapReadErr("failed to scan booking request", err)
	}
	return &v, nil
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to read booking rows", err)
	}
	return views, nil
}
