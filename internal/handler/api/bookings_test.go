//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

type stubBookingUseCase struct {
	reserveView   *usecase.BookingView
	reserveErr    error
	confirmResult *usecase.ConfirmPaymentResult
	confirmErr    error
	getView       *usecase.BookingView
	getErr        error
	listViews     []*usecase.BookingView
	listErr       error
}

func (s *stubBookingUseCase) Reserve(_ context.Context, _ usecase.ReserveParams) (*usecase.BookingView, error) {
	return s.reserveView, s.reserveErr
}

func (s *stubBookingUseCase) ConfirmPayment(_ context.Context, _, _ uuid.UUID) (*usecase.ConfirmPaymentResult, error) {
	return s.confirmResult, s.confirmErr
}

func (s *stubBookingUseCase) GetBooking(_ context.Context, _, _ uuid.UUID) (*usecase.BookingView, error) {
	return s.getView, s.getErr
}

func (s *stubBookingUseCase) ListUserBookings(_ context.Context, _ uuid.UUID) ([]*usecase.BookingView, error) {
	return s.listViews, s.listErr
}

func sampleBookingView() *usecase.BookingView {
	now := time.Now()
	return &usecase.BookingView{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		RoomID:     uuid.New(),
		RoomNumber: "101",
		StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Nights:     4,
		TotalCents: 32000,
		Status:     "PENDING_PAYMENT",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// newBookingRouter wires the handler behind a stand-in for the auth
// middleware that injects a fixed user id.
func newBookingRouter(uc usecase.BookingUseCase, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := api.NewBookingHandler(uc)

	authed := router.Group("", func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	authed.POST("/bookings", handler.Create)
	authed.GET("/bookings", handler.List)
	authed.GET("/bookings/:id", handler.Get)
	authed.POST("/bookings/:id/pay", handler.Pay)
	return router
}

func performJSON(t *testing.T, router *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestBookingHandlerCreate(t *testing.T) {
	validBody := map[string]any{
		"room_id":    uuid.New().String(),
		"start_date": "2026-03-10",
		"end_date":   "2026-03-14",
	}

	t.Run("201 on success", func(t *testing.T) {
		view := sampleBookingView()
		router := newBookingRouter(&stubBookingUseCase{reserveView: view}, view.UserID)

		rec := performJSON(t, router, http.MethodPost, "/bookings", validBody)
		require.Equal(t, http.StatusCreated, rec.Code)

		var response resdto.BookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, view.ID, response.ID)
		assert.Equal(t, "2026-03-10", response.StartDate)
		assert.Equal(t, "2026-03-14", response.EndDate)
		assert.Equal(t, int64(32000), response.TotalCents)
		assert.Equal(t, "PENDING_PAYMENT", response.Status)
	})

	t.Run("400 on malformed date", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{}, uuid.New())

		body := map[string]any{
			"room_id":    uuid.New().String(),
			"start_date": "10/03/2026",
			"end_date":   "2026-03-14",
		}
		rec := performJSON(t, router, http.MethodPost, "/bookings", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("400 on missing fields", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{}, uuid.New())

		rec := performJSON(t, router, http.MethodPost, "/bookings", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("400 on inverted range", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{reserveErr: usecase.ErrInvalidStayRange}, uuid.New())

		rec := performJSON(t, router, http.MethodPost, "/bookings", validBody)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("404 on unknown room", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{reserveErr: usecase.ErrRoomNotFound}, uuid.New())

		rec := performJSON(t, router, http.MethodPost, "/bookings", validBody)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("409 on overlap", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{reserveErr: usecase.ErrBookingConflict}, uuid.New())

		rec := performJSON(t, router, http.MethodPost, "/bookings", validBody)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("500 on storage failure", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{reserveErr: usecase.ErrDatabaseOperationFailed}, uuid.New())

		rec := performJSON(t, router, http.MethodPost, "/bookings", validBody)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestBookingHandlerPay(t *testing.T) {
	t.Run("200 with payment record on success", func(t *testing.T) {
		view := sampleBookingView()
		view.Status = "CONFIRMED"
		result := &usecase.ConfirmPaymentResult{
			Booking: view,
			Payment: &usecase.PaymentView{
				ID:          uuid.New(),
				BookingID:   view.ID,
				AmountCents: 0,
				Status:      "APPROVED",
				CreatedAt:   time.Now(),
			},
		}
		router := newBookingRouter(&stubBookingUseCase{confirmResult: result}, view.UserID)

		rec := performJSON(t, router, http.MethodPost, "/bookings/"+view.ID.String()+"/pay", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var response resdto.PaidBookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "CONFIRMED", response.Status)
		assert.Equal(t, view.ID, response.Payment.BookingID)
		assert.Equal(t, int64(0), response.Payment.AmountCents)
		assert.Equal(t, "APPROVED", response.Payment.Status)
	})

	t.Run("404 on unknown booking", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{confirmErr: usecase.ErrBookingNotFound}, uuid.New())

		rec := performJSON(t, router, http.MethodPost, "/bookings/"+uuid.New().String()+"/pay", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("409 when already confirmed", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{confirmErr: usecase.ErrAlreadyConfirmed}, uuid.New())

		rec := performJSON(t, router, http.MethodPost, "/bookings/"+uuid.New().String()+"/pay", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("400 on malformed booking id", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{}, uuid.New())

		rec := performJSON(t, router, http.MethodPost, "/bookings/not-a-uuid/pay", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingHandlerGet(t *testing.T) {
	t.Run("200 on success", func(t *testing.T) {
		view := sampleBookingView()
		router := newBookingRouter(&stubBookingUseCase{getView: view}, view.UserID)

		rec := performJSON(t, router, http.MethodGet, "/bookings/"+view.ID.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("404 on unknown booking", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{getErr: usecase.ErrBookingNotFound}, uuid.New())

		rec := performJSON(t, router, http.MethodGet, "/bookings/"+uuid.New().String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBookingHandlerList(t *testing.T) {
	t.Run("200 with bookings", func(t *testing.T) {
		view := sampleBookingView()
		router := newBookingRouter(&stubBookingUseCase{listViews: []*usecase.BookingView{view}}, view.UserID)

		rec := performJSON(t, router, http.MethodGet, "/bookings", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var response []resdto.BookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Len(t, response, 1)
	})

	t.Run("200 with empty list", func(t *testing.T) {
		router := newBookingRouter(&stubBookingUseCase{}, uuid.New())

		rec := performJSON(t, router, http.MethodGet, "/bookings", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}
