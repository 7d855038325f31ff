package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	// ListPending is ordered by created_at ascending: first come, first served
	// visibility for admin review.
	ListPending(ctx context.Context) ([]*BookingView, error)
	ListAll(ctx context.Context, status *string) ([]*BookingView, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id int64) (*BookingView, error)
	ListPending(ctx context.Context) ([]*BookingView, error)
	ListAll(ctx context.Context, status *string) ([]*BookingView, error)
	ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int64) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListPending(ctx context.Context) ([]*BookingView, error) {
	return q.store.ListPending(ctx)
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, status *string) ([]*BookingView, error) {
	return q.store.ListAll(ctx, status)
}

func (q *bookingQueriesImpl) ListByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*BookingView, error) {
	return q.store.ListByEmployee(ctx, employeeID)
}
