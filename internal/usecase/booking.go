package usecase

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound            = errs.New("room not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidStayRange        = errs.New("invalid stay range")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrAlreadyConfirmed        = errs.New("booking already confirmed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// The payment step is a deterministic stub: it always approves and
// charges nothing. amount stays 0 until a real gateway exists.
const stubPaymentAmountCents = 0

type ReserveParams struct {
	RoomID    uuid.UUID
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// ConfirmPaymentResult carries the confirmed booking together with the
// payment record appended by the stub gateway.
type ConfirmPaymentResult struct {
	Booking *BookingView
	Payment *PaymentView
}

type BookingUseCase interface {
	Reserve(ctx context.Context, params ReserveParams) (*BookingView, error)
	ConfirmPayment(ctx context.Context, bookingID, userID uuid.UUID) (*ConfirmPaymentResult, error)
	GetBooking(ctx context.Context, bookingID, userID uuid.UUID) (*BookingView, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	FindAvailable(ctx context.Context, categoryCode string, stay booking.StayRange) ([]*AvailableRoom, error)
}

// BookingRepository's Reserve must perform the overlap re-check and the
// insert as one atomic unit per room; concurrent overlapping reserves on
// the same room must yield at most one success (the rest surface as
// KindConflict).
type BookingRepository interface {
	Reserve(ctx context.Context, b *booking.Booking) (*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	Confirm(ctx context.Context, bookingID uuid.UUID, amountCents int64) (*BookingView, *PaymentView, error)
}

type EventPublisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error
}

type bookingUseCaseImpl struct {
	bookingRepo    BookingRepository
	roomRepo       RoomRepository
	bookingFactory *booking.Factory
	publisher      EventPublisher
	clock          clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	bookingFactory *booking.Factory,
	publisher EventPublisher,
	clk clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		bookingFactory: bookingFactory,
		publisher:      publisher,
		clock:          clk,
	}
}

func (u *bookingUseCaseImpl) Reserve(ctx context.Context, params ReserveParams) (*BookingView, error) {
	roomEntity, err := u.roomRepo.FindByID(ctx, params.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	stay, err := booking.NewStayRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	bookingEntity, err := u.bookingFactory.CreateBooking(roomEntity, params.UserID, stay)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	view, err := u.bookingRepo.Reserve(ctx, bookingEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return view, nil
}

func (u *bookingUseCaseImpl) ConfirmPayment(ctx context.Context, bookingID, userID uuid.UUID) (*ConfirmPaymentResult, error) {
	current, err := u.findOwnedBooking(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	// Advisory pre-check; the repository re-checks atomically under a
	// row lock, so a concurrent confirmation still loses cleanly.
	if current.Status == booking.StatusConfirmed.String() {
		return nil, ErrAlreadyConfirmed
	}

	confirmed, payment, err := u.bookingRepo.Confirm(ctx, bookingID, stubPaymentAmountCents)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrAlreadyConfirmed
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	u.publishConfirmed(ctx, confirmed)

	return &ConfirmPaymentResult{Booking: confirmed, Payment: payment}, nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, bookingID, userID uuid.UUID) (*BookingView, error) {
	return u.findOwnedBooking(ctx, bookingID, userID)
}

func (u *bookingUseCaseImpl) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	views, err := u.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (u *bookingUseCaseImpl) findOwnedBooking(ctx context.Context, bookingID, userID uuid.UUID) (*BookingView, error) {
	view, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Bookings are only visible to their owner.
	if view.UserID != userID {
		return nil, ErrBookingNotFound
	}

	return view, nil
}

func (u *bookingUseCaseImpl) publishConfirmed(ctx context.Context, view *BookingView) {
	event := BookingConfirmedEvent{
		BookingID:   view.ID,
		UserID:      view.UserID,
		RoomNumber:  view.RoomNumber,
		StartDate:   view.StartDate.Format(booking.DateLayout),
		EndDate:     view.EndDate.Format(booking.DateLayout),
		TotalCents:  view.TotalCents,
		ConfirmedAt: u.clock.Now(),
	}

	// Best effort: broker trouble must not fail a confirmed payment.
	if err := u.publisher.PublishBookingConfirmed(ctx, event); err != nil {
		slog.Warn("failed to publish booking confirmed event",
			"booking_id", view.ID, "error", err.Error())
	}
}
