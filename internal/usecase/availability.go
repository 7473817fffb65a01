package usecase

import (
	"context"
	"time"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/pkg/errs"
)

// AvailabilityUseCase answers "which rooms of a category are free for a
// stay range". The result is advisory: it reflects committed state at
// query time and holds nothing; the reserve path re-checks at commit.
type AvailabilityUseCase interface {
	FindAvailable(ctx context.Context, categoryCode string, startDate, endDate time.Time) ([]*AvailableRoom, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
}

type RoomTypeRepository interface {
	List(ctx context.Context) ([]*RoomTypeView, error)
}

type availabilityUseCaseImpl struct {
	roomRepo     RoomRepository
	roomTypeRepo RoomTypeRepository
}

func NewAvailabilityUseCase(roomRepo RoomRepository, roomTypeRepo RoomTypeRepository) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		roomRepo:     roomRepo,
		roomTypeRepo: roomTypeRepo,
	}
}

func (u *availabilityUseCaseImpl) FindAvailable(
	ctx context.Context,
	categoryCode string,
	startDate, endDate time.Time,
) ([]*AvailableRoom, error) {
	stay, err := booking.NewStayRange(startDate, endDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStayRange)
	}

	rooms, err := u.roomRepo.FindAvailable(ctx, categoryCode, stay)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return rooms, nil
}

func (u *availabilityUseCaseImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	roomTypes, err := u.roomTypeRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return roomTypes, nil
}
