package api

import (
	"errors"
	"net/http"
	"time"

	"hotel-booking-api/internal/domain/booking"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errMissingRoomType = errs.New("room_type query parameter is required")

type RoomHandler struct {
	availability usecase.AvailabilityUseCase
}

func NewRoomHandler(availability usecase.AvailabilityUseCase) *RoomHandler {
	return &RoomHandler{
		availability: availability,
	}
}

// FindAvailable lists free rooms for a category and stay range. The
// result is advisory only; availability is re-validated when a booking
// is committed.
func (h *RoomHandler) FindAvailable(c *gin.Context) {
	roomType := c.Query("room_type")
	if roomType == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingRoomType, "room_type query parameter is required", nil)
		return
	}

	start, end, ok := h.parseDateRange(c)
	if !ok {
		return
	}

	rooms, err := h.availability.FindAvailable(c.Request.Context(), roomType, start, end)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStayRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "End date must be after start date", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	response := make([]*resdto.AvailableRoomResponse, len(rooms))
	for i, r := range rooms {
		response[i] = resdto.FromAvailableRoom(r)
	}

	c.JSON(http.StatusOK, response)
}

func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	roomTypes, err := h.availability.ListRoomTypes(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.RoomTypeResponse, len(roomTypes))
	for i, rt := range roomTypes {
		response[i] = resdto.FromRoomTypeView(rt)
	}

	c.JSON(http.StatusOK, response)
}

func (h *RoomHandler) parseDateRange(c *gin.Context) (start, end time.Time, ok bool) {
	var err error
	start, err = time.Parse(booking.DateLayout, c.Query("start_date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "start_date must be formatted as YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(booking.DateLayout, c.Query("end_date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "end_date must be formatted as YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
