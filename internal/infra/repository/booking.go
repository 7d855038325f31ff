package repository

import (
	"context"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/infra"
	"roombook/internal/infra/db"
	"roombook/internal/usecase/shared"

	"github.com/google/uuid"
)

type bookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(ctx context.Context, dbtx db.DBTX, req *booking.BookingRequest) (int64, error) {
	const query = `
		INSERT INTO booking_requests
			(employee_id, employee_name, room_id, date, start_time, end_time, purpose, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		req.EmployeeID(),
		req.EmployeeName(),
		req.RoomID(),
		req.Slot().Date(),
		req.Slot().Start().String(),
		req.Slot().End().String(),
		req.Purpose(),
		req.Status().String(),
		req.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, wrapDBErr("failed to create booking request", err)
	}
	return id, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, req *booking.BookingRequest) error {
	const query = `
		UPDATE booking_requests
		SET status = $2, reject_reason = $3
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, req.ID(), req.Status().String(), req.RejectReason())
	if err != nil {
		return wrapDBErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*booking.BookingRequest, error) {
	const query = `
		SELECT id, employee_id, employee_name, room_id,
		       date, start_time::text, end_time::text,
		       purpose, status, reject_reason, created_at
		FROM booking_requests
		WHERE id = $1`

	var (
		reqID        int64
		employeeID   uuid.UUID
		employeeName string
		roomID       int64
		date         time.Time
		startRaw     string
		endRaw       string
		purpose      string
		statusRaw    string
		rejectReason *string
		createdAt    time.Time
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&reqID, &employeeID, &employeeName, &roomID,
		&date, &startRaw, &endRaw,
		&purpose, &statusRaw, &rejectReason, &createdAt,
	)
	if err != nil {
		return nil, wrapDBErr("failed to find booking request", err)
	}

	slot, err := scanTimeSlot(date, startRaw, endRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt time slot in booking row", err)
	}
	return booking.ReconstructBookingRequest(
		reqID, employeeID, employeeName, roomID,
		slot, purpose, booking.Status(statusRaw), rejectReason, createdAt,
	), nil
}

func (r *bookingRepository) ListBookedSlots(ctx context.Context, dbtx db.DBTX, filter booking.BookedFilter) ([]booking.TimeSlot, error) {
	const query = `
		SELECT date, start_time::text, end_time::text
		FROM booking_requests
		WHERE room_id = $1 AND date = $2 AND status = 'booked'
		  AND ($3::bigint IS NULL OR id <> $3)`

	rows, err := dbtx.Query(ctx, query, filter.RoomID, filter.Date, filter.ExcludeID)
	if err != nil {
		return nil, wrapDBErr("failed to list booked slots", err)
	}
	defer rows.Close()

	var slots []booking.TimeSlot
	for rows.Next() {
		var (
			date     time.Time
			startRaw string
			endRaw   string
		)
		if err := rows.Scan(&date, &startRaw, &endRaw); err != nil {
			return nil, wrapDBErr("failed to scan booked slot", err)
		}
		slot, err := scanTimeSlot(date, startRaw, endRaw)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt time slot in booking row", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr("failed to list booked slots", err)
	}
	return slots, nil
}

func scanTimeSlot(date time.Time, startRaw, endRaw string) (booking.TimeSlot, error) {
	start, err := booking.ParseTimeOfDay(startRaw)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	end, err := booking.ParseTimeOfDay(endRaw)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	return booking.NewTimeSlot(date, start, end)
}
