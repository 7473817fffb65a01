//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"hotel-booking-api/internal/handler/api"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAvailabilityUseCase struct {
	rooms    []*usecase.AvailableRoom
	roomsErr error
	types    []*usecase.RoomTypeView
	typesErr error
	gotType  string
	gotStart time.Time
	gotEnd   time.Time
}

func (s *stubAvailabilityUseCase) FindAvailable(_ context.Context, categoryCode string, start, end time.Time) ([]*usecase.AvailableRoom, error) {
	s.gotType = categoryCode
	s.gotStart = start
	s.gotEnd = end
	return s.rooms, s.roomsErr
}

func (s *stubAvailabilityUseCase) ListRoomTypes(_ context.Context) ([]*usecase.RoomTypeView, error) {
	return s.types, s.typesErr
}

func newRoomRouter(uc usecase.AvailabilityUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := api.NewRoomHandler(uc)
	router.GET("/room-types", handler.ListRoomTypes)
	router.GET("/rooms/available", handler.FindAvailable)
	return router
}

func TestRoomHandlerFindAvailable(t *testing.T) {
	t.Run("200 with matching rooms", func(t *testing.T) {
		stub := &stubAvailabilityUseCase{
			rooms: []*usecase.AvailableRoom{
				{RoomID: uuid.New(), RoomNumber: "101", RoomType: "simple", PriceCents: 8000},
				{RoomID: uuid.New(), RoomNumber: "102", RoomType: "simple", PriceCents: 8000},
			},
		}
		router := newRoomRouter(stub)

		url := "/rooms/available?room_type=simple&start_date=2026-03-10&end_date=2026-03-14"
		rec := performJSON(t, router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var response []resdto.AvailableRoomResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Len(t, response, 2)
		assert.Equal(t, "101", response[0].RoomNumber)

		assert.Equal(t, "simple", stub.gotType)
		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), stub.gotStart)
		assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), stub.gotEnd)
	})

	t.Run("200 with empty result", func(t *testing.T) {
		router := newRoomRouter(&stubAvailabilityUseCase{})

		url := "/rooms/available?room_type=suite&start_date=2026-03-10&end_date=2026-03-14"
		rec := performJSON(t, router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("400 when room_type is missing", func(t *testing.T) {
		router := newRoomRouter(&stubAvailabilityUseCase{})

		url := "/rooms/available?start_date=2026-03-10&end_date=2026-03-14"
		rec := performJSON(t, router, http.MethodGet, url, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var response struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "room_type query parameter is required", response.Error.Message)
	})

	t.Run("400 on malformed dates", func(t *testing.T) {
		router := newRoomRouter(&stubAvailabilityUseCase{})

		url := "/rooms/available?room_type=simple&start_date=10-03-2026&end_date=2026-03-14"
		rec := performJSON(t, router, http.MethodGet, url, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("400 on inverted range", func(t *testing.T) {
		router := newRoomRouter(&stubAvailabilityUseCase{roomsErr: usecase.ErrInvalidStayRange})

		url := "/rooms/available?room_type=simple&start_date=2026-03-14&end_date=2026-03-10"
		rec := performJSON(t, router, http.MethodGet, url, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRoomHandlerListRoomTypes(t *testing.T) {
	t.Run("200 with categories", func(t *testing.T) {
		stub := &stubAvailabilityUseCase{
			types: []*usecase.RoomTypeView{
				{ID: uuid.New(), Code: "simple", Name: "Simple", PriceCents: 8000},
				{ID: uuid.New(), Code: "doble", Name: "Double", PriceCents: 12000},
			},
		}
		router := newRoomRouter(stub)

		rec := performJSON(t, router, http.MethodGet, "/room-types", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var response []resdto.RoomTypeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		require.Len(t, response, 2)
		assert.Equal(t, "simple", response[0].Code)
	})

	t.Run("500 on storage failure", func(t *testing.T) {
		router := newRoomRouter(&stubAvailabilityUseCase{typesErr: usecase.ErrDatabaseOperationFailed})

		rec := performJSON(t, router, http.MethodGet, "/room-types", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
