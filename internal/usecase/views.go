package usecase

import (
	"time"

	"github.com/google/uuid"
)

// Read-side views returned across the usecase boundary. Handlers map
// these onto response DTOs; repositories build them from rows.

type AvailableRoom struct {
	RoomID     uuid.UUID
	RoomNumber string
	RoomType   string
	PriceCents int64
}

type RoomTypeView struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
}

type BookingView struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	RoomID     uuid.UUID
	RoomNumber string
	StartDate  time.Time
	EndDate    time.Time
	Nights     int
	TotalCents int64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type UserView struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time
}

type PaymentView struct {
	ID          uuid.UUID
	BookingID   uuid.UUID
	AmountCents int64
	Status      string
	CreatedAt   time.Time
}

// BookingConfirmedEvent is published to the broker after a successful
// payment confirmation.
type BookingConfirmedEvent struct {
	BookingID   uuid.UUID `json:"booking_id"`
	UserID      uuid.UUID `json:"user_id"`
	RoomNumber  string    `json:"room_number"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	TotalCents  int64     `json:"total_cents"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
