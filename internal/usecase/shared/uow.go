package shared

import (
	"context"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/room"
	"roombook/internal/domain/user"
	"roombook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read-committed transaction for ordinary write operations
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinSerializable: booking state writes; the conflict re-check and the
	// status write must observe a serializable snapshot, retried on
	// serialization failure
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single-query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Rooms() RoomRepository
	Users() UserRepository
	Notifications() NotificationRepository
	DB() db.DBTX
}

type BookingRepository interface {
	Create(ctx context.Context, db db.DBTX, req *booking.BookingRequest) (int64, error)
	// UpdateStatus persists the entity's status and reject reason after a
	// lifecycle transition.
	UpdateStatus(ctx context.Context, db db.DBTX, req *booking.BookingRequest) error
	FindByID(ctx context.Context, db db.DBTX, id int64) (*booking.BookingRequest, error)
	// ListBookedSlots returns the time slots of Booked requests matching the
	// filter; the overlap predicate is applied by the caller.
	ListBookedSlots(ctx context.Context, db db.DBTX, filter booking.BookedFilter) ([]booking.TimeSlot, error)
}

type RoomRepository interface {
	Create(ctx context.Context, db db.DBTX, r *room.Room) (int64, error)
	Update(ctx context.Context, db db.DBTX, r *room.Room) error
	Delete(ctx context.Context, db db.DBTX, id int64) error
	FindByID(ctx context.Context, db db.DBTX, id int64) (*room.Room, error)
	// HasFutureBooked reports whether any Booked request for the room ends
	// after the given instant. Guards room deletion.
	HasFutureBooked(ctx context.Context, db db.DBTX, roomID int64, now time.Time) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, db db.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, db db.DBTX, userID uuid.UUID) error
	UpdatePassword(ctx context.Context, db db.DBTX, userID uuid.UUID, passwordHash string) error
	Deactivate(ctx context.Context, db db.DBTX, userID uuid.UUID) error
	FindByID(ctx context.Context, db db.DBTX, userID uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, db db.DBTX, username string) (*user.User, error)
	ListAdmins(ctx context.Context, db db.DBTX) ([]*user.User, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, db db.DBTX, p NotificationParams) error
	CreateJob(ctx context.Context, db db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	MarkRead(ctx context.Context, db db.DBTX, id int64, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, db db.DBTX, userID uuid.UUID) error
	Delete(ctx context.Context, db db.DBTX, id int64, userID uuid.UUID) error
	ClaimPendingJobs(ctx context.Context, db db.DBTX, now time.Time, limit int) ([]NotificationJob, error)
	MarkJobSent(ctx context.Context, db db.DBTX, jobID int64) error
	MarkJobFailed(ctx context.Context, db db.DBTX, jobID int64, lastError string, terminal bool) error
}
