package repository

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	pool *pgxpool.Pool
}

func NewRoomRepository(pool *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{pool: pool}
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	var (
		roomNumber string
		typeID     uuid.UUID
		code       string
		name       string
		priceCents int64
	)
	err := r.pool.QueryRow(ctx, `
		SELECT r.room_number, rt.id, rt.code, rt.name, rt.price_cents
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE r.id = $1`, id,
	).Scan(&roomNumber, &typeID, &code, &name, &priceCents)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	roomType, err := room.NewRoomType(typeID, code, name, priceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid room type row", err)
	}
	return room.NewRoom(id, roomNumber, roomType)
}

// FindAvailable returns rooms of the category with no booking
// overlapping the half-open stay range, in ascending room-number order.
// The result is advisory: a concurrent reserve may take a listed room
// before the caller commits.
func (r *RoomRepository) FindAvailable(ctx context.Context, categoryCode string, stay booking.StayRange) ([]*usecase.AvailableRoom, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.room_number, rt.code, rt.price_cents
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		WHERE rt.code = $1
		  AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = r.id
			  AND b.start_date < $3
			  AND b.end_date > $2
		  )
		ORDER BY r.room_number`,
		categoryCode, stay.Start(), stay.End(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query available rooms", err)
	}
	defer rows.Close()

	var result []*usecase.AvailableRoom
	for rows.Next() {
		var ar usecase.AvailableRoom
		if err := rows.Scan(&ar.RoomID, &ar.RoomNumber, &ar.RoomType, &ar.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan available room row", err)
		}
		result = append(result, &ar)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate available room rows", err)
	}

	return result, nil
}

type RoomTypeRepository struct {
	pool *pgxpool.Pool
}

func NewRoomTypeRepository(pool *pgxpool.Pool) *RoomTypeRepository {
	return &RoomTypeRepository{pool: pool}
}

func (r *RoomTypeRepository) List(ctx context.Context) ([]*usecase.RoomTypeView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, code, name, price_cents
		FROM room_types
		ORDER BY price_cents`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query room types", err)
	}
	defer rows.Close()

	var result []*usecase.RoomTypeView
	for rows.Next() {
		var rt usecase.RoomTypeView
		if err := rows.Scan(&rt.ID, &rt.Code, &rt.Name, &rt.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		result = append(result, &rt)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room type rows", err)
	}

	return result, nil
}
