package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidTransition = errors.New("invalid lifecycle transition")

// TransitionError carries the current status for diagnostics; it matches
// ErrInvalidTransition under errors.Is.
type TransitionError struct {
	Current   Status
	Attempted Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition to %s. Current status: %s", e.Attempted, statusTitle(e.Current))
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func statusTitle(s Status) string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusBooked:
		return "Booked"
	case StatusRejected:
		return "Rejected"
	default:
		return string(s)
	}
}

// BookingRequest is an employee's request to reserve a room for a time slot.
// Status moves Pending -> Booked or Pending -> Rejected, exactly once.
type BookingRequest struct {
	id           int64
	employeeID   uuid.UUID
	employeeName string
	roomID       int64
	slot         TimeSlot
	purpose      string
	status       Status
	rejectReason *string
	createdAt    time.Time
}

func NewBookingRequest(
	employeeID uuid.UUID,
	employeeName string,
	roomID int64,
	slot TimeSlot,
	purpose string,
	now time.Time,
) *BookingRequest {
	return &BookingRequest{
		employeeID:   employeeID,
		employeeName: employeeName,
		roomID:       roomID,
		slot:         slot,
		purpose:      purpose,
		status:       StatusPending,
		createdAt:    now.UTC(),
	}
}

func ReconstructBookingRequest(
	id int64,
	employeeID uuid.UUID,
	employeeName string,
	roomID int64,
	slot TimeSlot,
	purpose string,
	status Status,
	rejectReason *string,
	createdAt time.Time,
) *BookingRequest {
	return &BookingRequest{
		id:           id,
		employeeID:   employeeID,
		employeeName: employeeName,
		roomID:       roomID,
		slot:         slot,
		purpose:      purpose,
		status:       status,
		rejectReason: rejectReason,
		createdAt:    createdAt,
	}
}

// Confirm flips a Pending request to Booked. The availability re-check is the
// caller's responsibility and must happen in the same transaction as the write.
func (b *BookingRequest) Confirm() error {
	if b.status != StatusPending {
		return &TransitionError{Current: b.status, Attempted: StatusBooked}
	}
	b.status = StatusBooked
	return nil
}

func (b *BookingRequest) Reject(reason *string) error {
	if b.status != StatusPending {
		return &TransitionError{Current: b.status, Attempted: StatusRejected}
	}
	b.status = StatusRejected
	b.rejectReason = reason
	return nil
}

func (b *BookingRequest) IsPending() bool {
	return b.status == StatusPending
}

func (b *BookingRequest) ID() int64             { return b.id }
func (b *BookingRequest) EmployeeID() uuid.UUID { return b.employeeID }
func (b *BookingRequest) EmployeeName() string  { return b.employeeName }
func (b *BookingRequest) RoomID() int64         { return b.roomID }
func (b *BookingRequest) Slot() TimeSlot        { return b.slot }
func (b *BookingRequest) Purpose() string       { return b.purpose }
func (b *BookingRequest) Status() Status        { return b.status }
func (b *BookingRequest) RejectReason() *string { return b.rejectReason }
func (b *BookingRequest) CreatedAt() time.Time  { return b.createdAt }
