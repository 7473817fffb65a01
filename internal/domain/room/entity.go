package room

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyCode       = errors.New("room type code cannot be empty")
	ErrEmptyRoomNumber = errors.New("room number cannot be empty")
	ErrNegativePrice   = errors.New("nightly price cannot be negative")
)

// RoomType is a category of room with a fixed nightly price.
// Reference data, seeded at initialization and treated as immutable.
type RoomType struct {
	id         uuid.UUID
	code       string
	name       string
	priceCents int64
}

func NewRoomType(id uuid.UUID, code, name string, priceCents int64) (RoomType, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return RoomType{}, ErrEmptyCode
	}
	if priceCents < 0 {
		return RoomType{}, ErrNegativePrice
	}
	return RoomType{
		id:         id,
		code:       code,
		name:       name,
		priceCents: priceCents,
	}, nil
}

func (t RoomType) ID() uuid.UUID     { return t.id }
func (t RoomType) Code() string      { return t.code }
func (t RoomType) Name() string      { return t.name }
func (t RoomType) PriceCents() int64 { return t.priceCents }

// Room belongs to exactly one RoomType.
type Room struct {
	id       uuid.UUID
	number   string
	roomType RoomType
}

func NewRoom(id uuid.UUID, number string, roomType RoomType) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	return &Room{
		id:       id,
		number:   number,
		roomType: roomType,
	}, nil
}

func (r *Room) ID() uuid.UUID      { return r.id }
func (r *Room) Number() string     { return r.number }
func (r *Room) RoomType() RoomType { return r.roomType }
