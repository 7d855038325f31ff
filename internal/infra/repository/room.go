package repository

import (
	"context"
	"time"

	"roombook/internal/domain/room"
	"roombook/internal/infra"
	"roombook/internal/infra/db"
	"roombook/internal/usecase/shared"
)

type roomRepository struct{}

func NewRoomRepository() shared.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) Create(ctx context.Context, dbtx db.DBTX, entity *room.Room) (int64, error) {
	const query = `
		INSERT INTO rooms (name, location, capacity, description, amenities, image_urls)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		entity.Name(),
		entity.Location(),
		entity.Capacity(),
		entity.Description(),
		entity.Amenities(),
		entity.ImageURLs(),
	).Scan(&id)
	if err != nil {
		return 0, wrapDBErr("failed to create room", err)
	}
	return id, nil
}

func (r *roomRepository) Update(ctx context.Context, dbtx db.DBTX, entity *room.Room) error {
	const query = `
		UPDATE rooms
		SET name = $2, location = $3, capacity = $4, description = $5,
		    amenities = $6, image_urls = $7, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query,
		entity.ID(),
		entity.Name(),
		entity.Location(),
		entity.Capacity(),
		entity.Description(),
		entity.Amenities(),
		entity.ImageURLs(),
	)
	if err != nil {
		return wrapDBErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *roomRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*room.Room, error) {
	const query = `
		SELECT id, name, location, capacity, description, amenities, image_urls
		FROM rooms
		WHERE id = $1`

	var (
		roomID      int64
		name        string
		location    string
		capacity    int
		description *string
		amenities   []string
		imageURLs   []string
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&roomID, &name, &location, &capacity, &description, &amenities, &imageURLs,
	)
	if err != nil {
		return nil, wrapDBErr("failed to find room", err)
	}
	return room.ReconstructRoom(roomID, name, location, capacity, description, amenities, imageURLs), nil
}

func (r *roomRepository) HasFutureBooked(ctx context.Context, dbtx db.DBTX, roomID int64, now time.Time) (bool, error) {
	// A reservation still matters while its end instant lies in the future.
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM booking_requests
			WHERE room_id = $1 AND status = 'booked'
			  AND (date + end_time) > $2::timestamp
		)`

	var exists bool
	if err := dbtx.QueryRow(ctx, query, roomID, now.UTC()).Scan(&exists); err != nil {
		return false, wrapDBErr("failed to check future bookings", err)
	}
	return exists, nil
}
