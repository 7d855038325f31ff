package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/user"
	"roombook/internal/infra"
	"roombook/internal/pkg/clock"
	"roombook/internal/pkg/errs"
	"roombook/internal/usecase/notify"
	"roombook/internal/usecase/queries"
	"roombook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrBookingNotFound         = errs.New("booking request not found")
	ErrInvalidTimeRange        = errs.New("invalid time range")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrInvalidTransition       = errs.New("invalid lifecycle transition")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	EmployeeID   uuid.UUID
	EmployeeName string
	RoomID       int64
	Date         time.Time
	StartTime    booking.TimeOfDay
	EndTime      booking.TimeOfDay
	Purpose      string
}

type BookingCommands interface {
	Create(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error)
	Confirm(ctx context.Context, requestID int64) error
	Reject(ctx context.Context, requestID int64, reason *string) error
	// CheckAvailability is the non-authoritative pre-submission hint; the
	// authoritative scan always re-runs inside Create and Confirm.
	CheckAvailability(ctx context.Context, roomID int64, date time.Time, start, end booking.TimeOfDay) (bool, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	notifier       notify.Notifier
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	notifier notify.Notifier,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		notifier:       notifier,
		clock:          clock,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error) {
	slot, err := booking.NewTimeSlot(p.Date, p.StartTime, p.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeRange)
	}

	var (
		requestID int64
		roomName  string
	)
	txErr := c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		roomEntity, err := tx.Rooms().FindByID(ctx, tx.DB(), p.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		roomName = roomEntity.Name()

		booked, err := tx.Bookings().ListBookedSlots(ctx, tx.DB(), booking.NewBookedFilter(p.RoomID, slot.Date()))
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if booking.Conflicts(booked, slot) {
			return errs.Wrapf(ErrBookingConflict, "room %q has conflicting bookings for %s", roomName, slot)
		}

		entity := booking.NewBookingRequest(p.EmployeeID, p.EmployeeName, p.RoomID, slot, p.Purpose, c.clock.Now())
		requestID, err = tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if txErr != nil {
		// Conflict rejections notify the requester; nothing was persisted.
		if errors.Is(txErr, ErrBookingConflict) {
			if employee := c.lookupUser(ctx, p.EmployeeID); employee != nil {
				c.notifier.NotifyConflict(ctx, employee, roomName, slot)
			}
		}
		return nil, txErr
	}

	c.notifyAdmins(ctx, p.EmployeeName, roomName, slot, requestID)

	view, err := c.bookingQueries.GetByID(ctx, requestID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) Confirm(ctx context.Context, requestID int64) error {
	var (
		confirmed *booking.BookingRequest
		roomName  string
	)
	txErr := c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Bookings().FindByID(ctx, tx.DB(), requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// The Booked set may have changed between submission and approval, so
		// the conflict scan runs again here, inside the same transaction that
		// writes the status.
		if req.IsPending() {
			filter := booking.NewBookedFilter(req.RoomID(), req.Slot().Date()).Excluding(requestID)
			booked, err := tx.Bookings().ListBookedSlots(ctx, tx.DB(), filter)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if booking.Conflicts(booked, req.Slot()) {
				return errs.Wrap(ErrBookingConflict, "room is already booked for this time slot")
			}
		}

		if err := req.Confirm(); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), req); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		confirmed = req
		if roomEntity, err := tx.Rooms().FindByID(ctx, tx.DB(), req.RoomID()); err == nil {
			roomName = roomEntity.Name()
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	// Notification lookup failures never undo the confirmation.
	if employee := c.lookupUser(ctx, confirmed.EmployeeID()); employee != nil && roomName != "" {
		c.notifier.NotifyConfirmed(ctx, employee, roomName, confirmed.Slot(), requestID)
	}
	return nil
}

func (c *bookingCommandsImpl) Reject(ctx context.Context, requestID int64, reason *string) error {
	var (
		rejected *booking.BookingRequest
		roomName string
	)
	txErr := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Bookings().FindByID(ctx, tx.DB(), requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := req.Reject(reason); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), req); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		rejected = req
		if roomEntity, err := tx.Rooms().FindByID(ctx, tx.DB(), req.RoomID()); err == nil {
			roomName = roomEntity.Name()
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	if employee := c.lookupUser(ctx, rejected.EmployeeID()); employee != nil && roomName != "" {
		c.notifier.NotifyRejected(ctx, employee, roomName, rejected.Slot(), requestID, reason)
	}
	return nil
}

func (c *bookingCommandsImpl) CheckAvailability(ctx context.Context, roomID int64, date time.Time, start, end booking.TimeOfDay) (bool, error) {
	slot, err := booking.NewTimeSlot(date, start, end)
	if err != nil {
		return false, errs.Mark(err, ErrInvalidTimeRange)
	}

	available := false
	txErr := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().FindByID(ctx, tx.DB(), roomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Unknown rooms read as unavailable; the authoritative paths
				// report RoomNotFound themselves.
				return nil
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		booked, err := tx.Bookings().ListBookedSlots(ctx, tx.DB(), booking.NewBookedFilter(roomID, slot.Date()))
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		available = !booking.Conflicts(booked, slot)
		return nil
	})
	if txErr != nil {
		return false, txErr
	}
	return available, nil
}

func (c *bookingCommandsImpl) lookupUser(ctx context.Context, id uuid.UUID) *user.User {
	var found *user.User
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		found, err = tx.Users().FindByID(ctx, tx.DB(), id)
		return err
	})
	if err != nil {
		slog.Warn("failed to look up user for notification", "user_id", id.String(), "error", err.Error())
		return nil
	}
	return found
}

func (c *bookingCommandsImpl) notifyAdmins(ctx context.Context, employeeName, roomName string, slot booking.TimeSlot, requestID int64) {
	var admins []*user.User
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		admins, err = tx.Users().ListAdmins(ctx, tx.DB())
		return err
	})
	if err != nil {
		slog.Warn("failed to list admins for new request notification", "error", err.Error())
		return
	}
	c.notifier.NotifyNewRequest(ctx, admins, employeeName, roomName, slot, requestID)
}
