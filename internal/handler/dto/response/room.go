package response

import (
	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
)

type AvailableRoomResponse struct {
	RoomID     uuid.UUID `json:"roomId"`
	RoomNumber string    `json:"roomNumber"`
	RoomType   string    `json:"roomType"`
	PriceCents int64     `json:"priceCents"`
}

type RoomTypeResponse struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
}

func FromAvailableRoom(v *usecase.AvailableRoom) *AvailableRoomResponse {
	return &AvailableRoomResponse{
		RoomID:     v.RoomID,
		RoomNumber: v.RoomNumber,
		RoomType:   v.RoomType,
		PriceCents: v.PriceCents,
	}
}

func FromRoomTypeView(v *usecase.RoomTypeView) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:         v.ID,
		Code:       v.Code,
		Name:       v.Name,
		PriceCents: v.PriceCents,
	}
}
