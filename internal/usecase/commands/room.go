package commands

import (
	"context"

	"roombook/internal/domain/room"
	"roombook/internal/infra"
	"roombook/internal/pkg/clock"
	"roombook/internal/pkg/errs"
	"roombook/internal/usecase/queries"
	"roombook/internal/usecase/shared"
)

var (
	ErrRoomNameTaken         = errs.New("room name already taken")
	ErrRoomHasActiveBookings = errs.New("room has upcoming confirmed bookings")
	ErrInvalidRoom           = errs.New("invalid room")
)

type RoomParams struct {
	Name        string
	Location    string
	Capacity    int
	Description *string
	Amenities   []string
	ImageURLs   []string
}

type RoomCommands interface {
	Create(ctx context.Context, p RoomParams) (*queries.RoomView, error)
	Update(ctx context.Context, roomID int64, p RoomParams) (*queries.RoomView, error)
	Delete(ctx context.Context, roomID int64) error
}

type roomCommandsImpl struct {
	uow         shared.UnitOfWork
	roomQueries queries.RoomQueries
	cache       queries.RoomCache
	clock       clock.Clock
}

func NewRoomCommands(
	uow shared.UnitOfWork,
	roomQueries queries.RoomQueries,
	cache queries.RoomCache,
	clock clock.Clock,
) RoomCommands {
	return &roomCommandsImpl{
		uow:         uow,
		roomQueries: roomQueries,
		cache:       cache,
		clock:       clock,
	}
}

func (c *roomCommandsImpl) Create(ctx context.Context, p RoomParams) (*queries.RoomView, error) {
	entity, err := room.NewRoom(p.Name, p.Location, p.Capacity, p.Description, p.Amenities, p.ImageURLs)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoom)
	}

	var roomID int64
	txErr := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Rooms().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Wrapf(ErrRoomNameTaken, "room name %q", p.Name)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		roomID = id
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	c.cache.Invalidate(ctx)

	view, err := c.roomQueries.GetByID(ctx, roomID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *roomCommandsImpl) Update(ctx context.Context, roomID int64, p RoomParams) (*queries.RoomView, error) {
	validated, err := room.NewRoom(p.Name, p.Location, p.Capacity, p.Description, p.Amenities, p.ImageURLs)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoom)
	}
	entity := room.ReconstructRoom(
		roomID,
		validated.Name(), validated.Location(), validated.Capacity(),
		validated.Description(), validated.Amenities(), validated.ImageURLs(),
	)

	txErr := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().FindByID(ctx, tx.DB(), roomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Rooms().Update(ctx, tx.DB(), entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Wrapf(ErrRoomNameTaken, "room name %q", p.Name)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	c.cache.Invalidate(ctx)

	view, err := c.roomQueries.GetByID(ctx, roomID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *roomCommandsImpl) Delete(ctx context.Context, roomID int64) error {
	txErr := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().FindByID(ctx, tx.DB(), roomID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Requests for the room are removed with it; only upcoming Booked
		// reservations block the delete.
		hasBooked, err := tx.Rooms().HasFutureBooked(ctx, tx.DB(), roomID, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if hasBooked {
			return ErrRoomHasActiveBookings
		}

		if err := tx.Rooms().Delete(ctx, tx.DB(), roomID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	c.cache.Invalidate(ctx)
	return nil
}
