package response

import (
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"roomId"`
	RoomNumber string    `json:"roomNumber"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	Nights     int       `json:"nights"`
	TotalCents int64     `json:"totalCents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type PaymentResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingID   uuid.UUID `json:"bookingId"`
	AmountCents int64     `json:"amountCents"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PaidBookingResponse struct {
	BookingResponse
	Payment PaymentResponse `json:"payment"`
}

func FromBookingView(v *usecase.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         v.ID,
		RoomID:     v.RoomID,
		RoomNumber: v.RoomNumber,
		StartDate:  v.StartDate.Format(booking.DateLayout),
		EndDate:    v.EndDate.Format(booking.DateLayout),
		Nights:     v.Nights,
		TotalCents: v.TotalCents,
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FromConfirmPaymentResult(r *usecase.ConfirmPaymentResult) *PaidBookingResponse {
	return &PaidBookingResponse{
		BookingResponse: *FromBookingView(r.Booking),
		Payment: PaymentResponse{
			ID:          r.Payment.ID,
			BookingID:   r.Payment.BookingID,
			AmountCents: r.Payment.AmountCents,
			Status:      r.Payment.Status,
			CreatedAt:   r.Payment.CreatedAt,
		},
	}
}
