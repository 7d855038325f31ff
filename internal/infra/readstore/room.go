package readstore

import (
	"context"
	"time"

	"roombook/internal/infra/db"
	"roombook/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type roomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) queries.RoomReadStore {
	return &roomReadStore{db: dbtx}
}

const roomSelect = `
	SELECT id, name, location, capacity, description, amenities, image_urls, created_at, updated_at
	FROM rooms`

func (s *roomReadStore) FindByID(ctx context.Context, id int64) (*queries.RoomView, error) {
	row := s.db.QueryRow(ctx, roomSelect+` WHERE id = $1`, id)
	return scanRoomView(row)
}

func (s *roomReadStore) ListAll(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, roomSelect+` ORDER BY name`)
	if err != nil {
		return nil, wrapReadErr("failed to list rooms", err)
	}
	defer rows.Close()

	var views []*queries.RoomView
	for rows.Next() {
		v, err := scanRoomView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to read room rows", err)
	}
	return views, nil
}

func (s *roomReadStore) Schedule(ctx context.Context, from, to time.Time) ([]*queries.RoomScheduleView, error) {
	const query = `
		SELECT b.room_id, r.name, b.date, b.start_time::text, b.end_time::text, b.employee_name
		FROM booking_requests b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.status = 'booked' AND b.date BETWEEN $1 AND $2
		ORDER BY b.date, b.start_time, r.name`

	rows, err := s.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, wrapReadErr("failed to load room schedule", err)
	}
	defer rows.Close()

	var views []*queries.RoomScheduleView
	for rows.Next() {
		var v queries.RoomScheduleView
		if err := rows.Scan(&v.RoomID, &v.RoomName, &v.Date, &v.StartTime, &v.EndTime, &v.EmployeeName); err != nil {
			return nil, wrapReadErr("failed to scan schedule row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapReadErr("failed to read schedule rows", err)
	}
	return views, nil
}

func scanRoomView(row pgx.Row) (*queries.RoomView, error) {
	var v queries.RoomView
	err := row.Scan(
		&v.ID, &v.Name, &v.Location, &v.Capacity,
		&v.Description, &v.Amenities, &v.ImageURLs,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, wrapReadErr("failed to scan room", err)
	}
	return &v, nil
}
