package queries

import (
	"context"
	"log/slog"
	"time"
)

type RoomReadStore interface {
	FindByID(ctx context.Context, id int64) (*RoomView, error)
	ListAll(ctx context.Context) ([]*RoomView, error)
	Schedule(ctx context.Context, from, to time.Time) ([]*RoomScheduleView, error)
}

// RoomCache is a read-through cache of the full room list. It is invalidated
// on room mutations only, never on booking mutations.
type RoomCache interface {
	GetRooms(ctx context.Context) ([]*RoomView, bool)
	SetRooms(ctx context.Context, rooms []*RoomView)
	Invalidate(ctx context.Context)
}

type RoomQueries interface {
	GetByID(ctx context.Context, id int64) (*RoomView, error)
	ListAll(ctx context.Context) ([]*RoomView, error)
	Schedule(ctx context.Context, from, to time.Time) ([]*RoomScheduleView, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
	cache RoomCache
}

func NewRoomQueries(store RoomReadStore, cache RoomCache) RoomQueries {
	return &roomQueriesImpl{store: store, cache: cache}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id int64) (*RoomView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *roomQueriesImpl) ListAll(ctx context.Context) ([]*RoomView, error) {
	if rooms, ok := q.cache.GetRooms(ctx); ok {
		return rooms, nil
	}

	rooms, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	q.cache.SetRooms(ctx, rooms)
	return rooms, nil
}

func (q *roomQueriesImpl) Schedule(ctx context.Context, from, to time.Time) ([]*RoomScheduleView, error) {
	if to.Before(from) {
		slog.Warn("schedule range inverted, swapping", "from", from, "to", to)
		from, to = to, from
	}
	return q.store.Schedule(ctx, from, to)
}
