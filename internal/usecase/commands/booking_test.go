//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"roombook/internal/domain/booking"
	"roombook/internal/domain/room"
	"roombook/internal/domain/user"
	"roombook/internal/infra"
	"roombook/internal/infra/db"
	"roombook/internal/pkg/clock"
	"roombook/internal/pkg/errs"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"
	"roombook/internal/usecase/shared"
	notifymock "roombook/tests/mock/notify"
	queriesmock "roombook/tests/mock/queries"
	sharedmock "roombook/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	fixedNow   = time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	employeeID = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	roomID    = int64(7)
	requestID = int64(42)
)

type bookingFixture struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	bookings *sharedmock.MockBookingRepository
	rooms    *sharedmock.MockRoomRepository
	users    *sharedmock.MockUserRepository
	notifier *notifymock.MockNotifier
	queries  *queriesmock.MockBookingQueries
	sut      commands.BookingCommands
}

func newBookingFixture(t *testing.T) *bookingFixture {
	ctrl := gomock.NewController(t)
	f := &bookingFixture{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		rooms:    sharedmock.NewMockRoomRepository(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
		notifier: notifymock.NewMockNotifier(ctrl),
		queries:  queriesmock.NewMockBookingQueries(ctrl),
	}
	f.tx.EXPECT().Bookings().Return(f.bookings).AnyTimes()
	f.tx.EXPECT().Rooms().Return(f.rooms).AnyTimes()
	f.tx.EXPECT().Users().Return(f.users).AnyTimes()
	f.tx.EXPECT().DB().Return(db.DBTX(nil)).AnyTimes()

	f.sut = commands.NewBookingCommands(f.uow, f.queries, f.notifier, clock.NewMockClock(fixedNow))
	return f
}

// expectSerializable routes the transactional closure through the mock Tx.
func (f *bookingFixture) expectSerializable() {
	f.uow.EXPECT().WithinSerializable(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func (f *bookingFixture) expectWithin() {
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		})
}

func mustSlot(t *testing.T, date time.Time, startH, startM, endH, endM int) booking.TimeSlot {
	t.Helper()
	start, err := booking.NewTimeOfDay(startH, startM)
	require.NoError(t, err)
	end, err := booking.NewTimeOfDay(endH, endM)
	require.NoError(t, err)
	slot, err := booking.NewTimeSlot(date, start, end)
	require.NoError(t, err)
	return slot
}

func testRoom() *room.Room {
	return room.ReconstructRoom(roomID, "Aurora", "3F West", 8, nil, nil, nil)
}

func testEmployee() *user.User {
	return user.ReconstructUser(
		employeeID, "amoore", "amoore@example.com", "hash",
		"Alex", nil, "Moore", user.RoleEmployee, true, fixedNow, nil,
	)
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound)
}

func createParams(t *testing.T) (commands.CreateBookingParams, booking.TimeSlot) {
	t.Helper()
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	slot := mustSlot(t, date, 9, 0, 10, 0)
	return commands.CreateBookingParams{
		EmployeeID:   employeeID,
		EmployeeName: "Alex Moore",
		RoomID:       roomID,
		Date:         date,
		StartTime:    slot.Start(),
		EndTime:      slot.End(),
		Purpose:      "Sprint retrospective",
	}, slot
}

func TestBookingCommandsCreate(t *testing.T) {
	t.Run("creates a pending request and notifies admins", func(t *testing.T) {
		f := newBookingFixture(t)
		p, slot := createParams(t)
		admin := testEmployee()

		f.expectSerializable()
		f.rooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), roomID).Return(testRoom(), nil)
		f.bookings.EXPECT().ListBookedSlots(gomock.Any(), gomock.Any(), booking.NewBookedFilter(roomID, slot.Date())).
			Return(nil, nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, req *booking.BookingRequest) (int64, error) {
				assert.Equal(t, booking.StatusPending, req.Status())
				assert.Equal(t, employeeID, req.EmployeeID())
				return requestID, nil
			})

		f.expectWithin()
		f.users.EXPECT().ListAdmins(gomock.Any(), gomock.Any()).Return([]*user.User{admin}, nil)
		f.notifier.EXPECT().NotifyNewRequest(gomock.Any(), []*user.User{admin}, "Alex Moore", "Aurora", slot, requestID)

		f.queries.EXPECT().GetByID(gomock.Any(), requestID).
			Return(&queries.BookingView{ID: requestID, Status: "pending"}, nil)

		view, err := f.sut.Create(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, requestID, view.ID)
		assert.Equal(t, "pending", view.Status)
	})

	t.Run("rejects an overlapping slot and notifies the requester", func(t *testing.T) {
		f := newBookingFixture(t)
		p, slot := createParams(t)
		employee := testEmployee()
		booked := mustSlot(t, slot.Date(), 9, 30, 11, 0)

		f.expectSerializable()
		f.rooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), roomID).Return(testRoom(), nil)
		f.bookings.EXPECT().ListBookedSlots(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]booking.TimeSlot{booked}, nil)

		f.expectWithin()
		f.users.EXPECT().FindByID(gomock.Any(), gomock.Any(), employeeID).Return(employee, nil)
		f.notifier.EXPECT().NotifyConflict(gomock.Any(), employee, "Aurora", slot)

		view, err := f.sut.Create(context.Background(), p)
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
		assert.Nil(t, view)
	})

	t.Run("back-to-back slot does not conflict", func(t *testing.T) {
		f := newBookingFixture(t)
		p, slot := createParams(t)
		adjacent := mustSlot(t, slot.Date(), 10, 0, 11, 0)

		f.expectSerializable()
		f.rooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), roomID).Return(testRoom(), nil)
		f.bookings.EXPECT().ListBookedSlots(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]booking.TimeSlot{adjacent}, nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(requestID, nil)

		f.expectWithin()
		f.users.EXPECT().ListAdmins(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.notifier.EXPECT().NotifyNewRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		f.queries.EXPECT().GetByID(gomock.Any(), requestID).
			Return(&queries.BookingView{ID: requestID}, nil)

		_, err := f.sut.Create(context.Background(), p)
		assert.NoError(t, err)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newBookingFixture(t)
		p, _ := createParams(t)

		f.expectSerializable()
		f.rooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), roomID).Return(nil, notFoundErr())

		view, err := f.sut.Create(context.Background(), p)
		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
		assert.Nil(t, view)
	})

	t.Run("inverted time range fails before any transaction", func(t *testing.T) {
		f := newBookingFixture(t)
		p, slot := createParams(t)
		p.StartTime = slot.End()
		p.EndTime = slot.Start()

		view, err := f.sut.Create(context.Background(), p)
		assert.ErrorIs(t, err, commands.ErrInvalidTimeRange)
		assert.Nil(t, view)
	})
}

func TestBookingCommandsConfirm(t *testing.T) {
	pendingRequest := func(t *testing.T) *booking.BookingRequest {
		t.Helper()
		slot := mustSlot(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), 9, 0, 10, 0)
		return booking.ReconstructBookingRequest(
			requestID, employeeID, "Alex Moore", roomID, slot,
			"Sprint retrospective", booking.StatusPending, nil, fixedNow,
		)
	}

	t.Run("confirms a pending request", func(t *testing.T) {
		f := newBookingFixture(t)
		req := pendingRequest(t)
		employee := testEmployee()

		f.expectSerializable()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), requestID).Return(req, nil)
		f.bookings.EXPECT().ListBookedSlots(gomock.Any(), gomock.Any(), booking.NewBookedFilter(roomID, req.Slot().Date()).Excluding(requestID)).
			Return(nil, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, updated *booking.BookingRequest) error {
				assert.Equal(t, booking.StatusBooked, updated.Status())
				return nil
			})
		f.rooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), roomID).Return(testRoom(), nil)

		f.expectWithin()
		f.users.EXPECT().FindByID(gomock.Any(), gomock.Any(), employeeID).Return(employee, nil)
		f.notifier.EXPECT().NotifyConfirmed(gomock.Any(), employee, "Aurora", req.Slot(), requestID)

		err := f.sut.Confirm(context.Background(), requestID)
		assert.NoError(t, err)
	})

	t.Run("re-check catches a slot booked since submission", func(t *testing.T) {
		f := newBookingFixture(t)
		req := pendingRequest(t)
		booked := mustSlot(t, req.Slot().Date(), 9, 30, 10, 30)

		f.expectSerializable()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), requestID).Return(req, nil)
		f.bookings.EXPECT().ListBookedSlots(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]booking.TimeSlot{booked}, nil)

		err := f.sut.Confirm(context.Background(), requestID)
		assert.ErrorIs(t, err, commands.ErrBookingConflict)
	})

	t.Run("rejected request cannot be confirmed", func(t *testing.T) {
		f := newBookingFixture(t)
		slot := mustSlot(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), 9, 0, 10, 0)
		req := booking.ReconstructBookingRequest(
			requestID, employeeID, "Alex Moore", roomID, slot,
			"Sprint retrospective", booking.StatusRejected, nil, fixedNow,
		)

		f.expectSerializable()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), requestID).Return(req, nil)

		err := f.sut.Confirm(context.Background(), requestID)
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newBookingFixture(t)

		f.expectSerializable()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), requestID).Return(nil, notFoundErr())

		err := f.sut.Confirm(context.Background(), requestID)
		assert.ErrorIs(t, err, commands.ErrBookingNotFound)
	})
}

func TestBookingCommandsReject(t *testing.T) {
	t.Run("rejects with a reason and notifies the requester", func(t *testing.T) {
		f := newBookingFixture(t)
		slot := mustSlot(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), 9, 0, 10, 0)
		req := booking.ReconstructBookingRequest(
			requestID, employeeID, "Alex Moore", roomID, slot,
			"Sprint retrospective", booking.StatusPending, nil, fixedNow,
		)
		employee := testEmployee()
		reason := "room under maintenance"

		f.expectWithin()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), requestID).Return(req, nil)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, updated *booking.BookingRequest) error {
				assert.Equal(t, booking.StatusRejected, updated.Status())
				require.NotNil(t, updated.RejectReason())
				assert.Equal(t, reason, *updated.RejectReason())
				return nil
			})
		f.rooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), roomID).Return(testRoom(), nil)

		f.expectWithin()
		f.users.EXPECT().FindByID(gomock.Any(), gomock.Any(), employeeID).Return(employee, nil)
		f.notifier.EXPECT().NotifyRejected(gomock.Any(), employee, "Aurora", slot, requestID, &reason)

		err := f.sut.Reject(context.Background(), requestID, &reason)
		assert.NoError(t, err)
	})

	t.Run("booked request cannot be rejected", func(t *testing.T) {
		f := newBookingFixture(t)
		slot := mustSlot(t, time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC), 9, 0, 10, 0)
		req := booking.ReconstructBookingRequest(
			requestID, employeeID, "Alex Moore", roomID, slot,
			"Sprint retrospective", booking.StatusBooked, nil, fixedNow,
		)

		f.expectWithin()
		f.bookings.EXPECT().FindByID(gomock.Any(), gomock.Any(), requestID).Return(req, nil)

		err := f.sut.Reject(context.Background(), requestID, nil)
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})
}

func TestBookingCommandsCheckAvailability(t *testing.T) {
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	start, _ := booking.NewTimeOfDay(14, 0)
	end, _ := booking.NewTimeOfDay(15, 0)

	t.Run("free slot reads available", func(t *testing.T) {
		f := newBookingFixture(t)

		f.expectWithin()
		f.rooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), roomID).Return(testRoom(), nil)
		f.bookings.EXPECT().ListBookedSlots(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		available, err := f.sut.CheckAvailability(context.Background(), roomID, date, start, end)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("overlapping slot reads unavailable", func(t *testing.T) {
		f := newBookingFixture(t)
		booked := mustSlot(t, date, 14, 30, 16, 0)

		f.expectWithin()
		f.rooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), roomID).Return(testRoom(), nil)
		f.bookings.EXPECT().ListBookedSlots(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]booking.TimeSlot{booked}, nil)

		available, err := f.sut.CheckAvailability(context.Background(), roomID, date, start, end)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("unknown room reads unavailable without error", func(t *testing.T) {
		f := newBookingFixture(t)

		f.expectWithin()
		f.rooms.EXPECT().FindByID(gomock.Any(), gomock.Any(), roomID).Return(nil, notFoundErr())

		available, err := f.sut.CheckAvailability(context.Background(), roomID, date, start, end)
		require.NoError(t, err)
		assert.False(t, available)
	})
}
