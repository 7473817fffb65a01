package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativePrice    = errors.New("total price cannot be negative")
	ErrAlreadyConfirmed = errors.New("booking is already confirmed")
	ErrInvalidStatus    = errors.New("invalid booking status")
)

// Booking is a reservation of one room for a stay range. The total price
// is computed at creation time and frozen; later room-type price changes
// do not affect existing bookings.
type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	roomID    uuid.UUID
	stay      StayRange
	total     Money
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(userID, roomID uuid.UUID, stay StayRange, total Money) (*Booking, error) {
	if total.Cents() < 0 {
		return nil, ErrNegativePrice
	}
	return &Booking{
		id:     uuid.New(),
		userID: userID,
		roomID: roomID,
		stay:   stay,
		total:  total,
		status: StatusPendingPayment,
	}, nil
}

func ReconstructBooking(
	id, userID, roomID uuid.UUID,
	stay StayRange,
	total Money,
	status Status,
	createdAt, updatedAt time.Time,
) (*Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:        id,
		userID:    userID,
		roomID:    roomID,
		stay:      stay,
		total:     total,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// Confirm transitions PENDING_PAYMENT -> CONFIRMED. The transition is
// one-way; confirming twice is rejected.
func (b *Booking) Confirm() error {
	if b.status == StatusConfirmed {
		return ErrAlreadyConfirmed
	}
	b.status = StatusConfirmed
	return nil
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) Stay() StayRange      { return b.stay }
func (b *Booking) Total() Money         { return b.total }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
