package request

import (
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidDateFormat = errs.New("invalid date format, expected YYYY-MM-DD")

type CreateBookingRequest struct {
	RoomID    uuid.UUID `json:"room_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
}

// ParseDates validates the wire format only; range validation (end after
// start) belongs to the domain.
func (r CreateBookingRequest) ParseDates() (start, end time.Time, err error) {
	start, err = time.Parse(booking.DateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidDateFormat)
	}
	end, err = time.Parse(booking.DateLayout, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(err, ErrInvalidDateFormat)
	}
	return start, end, nil
}
