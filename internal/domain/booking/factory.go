package booking

import (
	"hotel-booking-api/internal/domain/room"

	"github.com/google/uuid"
)

type PriceCalculator interface {
	CalculateTotalCents(r *room.Room, stay StayRange) int64
}

type Factory struct {
	PriceCalculator PriceCalculator
}

func NewFactory(priceCalculator PriceCalculator) *Factory {
	return &Factory{
		PriceCalculator: priceCalculator,
	}
}

func (f *Factory) CreateBooking(r *room.Room, userID uuid.UUID, stay StayRange) (*Booking, error) {
	totalCents := f.PriceCalculator.CalculateTotalCents(r, stay)
	if totalCents < 0 {
		return nil, ErrNegativePrice
	}
	return NewBooking(userID, r.ID(), stay, NewMoney(totalCents))
}

// NightlyPriceCalculator prices a stay as nightly rate x nights, the
// rate taken from the room's type.
type NightlyPriceCalculator struct{}

func NewNightlyPriceCalculator() *NightlyPriceCalculator {
	return &NightlyPriceCalculator{}
}

func (pc *NightlyPriceCalculator) CalculateTotalCents(r *room.Room, stay StayRange) int64 {
	return r.RoomType().PriceCents() * int64(stay.Nights())
}
