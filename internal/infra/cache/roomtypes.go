package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hotel-booking-api/internal/usecase"

	"github.com/redis/go-redis/v9"
)

const roomTypesKey = "room_types"

// RoomTypeCache is a read-through Redis cache in front of the room-type
// repository. Room types are seeded reference data, so a short TTL is
// plenty; any Redis failure falls back to the source.
type RoomTypeCache struct {
	source usecase.RoomTypeRepository
	rdb    *redis.Client
	ttl    time.Duration
}

func NewRoomTypeCache(source usecase.RoomTypeRepository, rdb *redis.Client, ttl time.Duration) *RoomTypeCache {
	return &RoomTypeCache{
		source: source,
		rdb:    rdb,
		ttl:    ttl,
	}
}

func (c *RoomTypeCache) List(ctx context.Context) ([]*usecase.RoomTypeView, error) {
	cached, err := c.rdb.Get(ctx, roomTypesKey).Bytes()
	if err == nil {
		var views []*usecase.RoomTypeView
		if unmarshalErr := json.Unmarshal(cached, &views); unmarshalErr == nil {
			return views, nil
		}
		// Corrupt entry: drop it and fall through to the source.
		c.rdb.Del(ctx, roomTypesKey)
	} else if err != redis.Nil {
		slog.Warn("room type cache read failed", "error", err.Error())
	}

	views, err := c.source.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, marshalErr := json.Marshal(views); marshalErr == nil {
		if setErr := c.rdb.Set(ctx, roomTypesKey, data, c.ttl).Err(); setErr != nil {
			slog.Warn("room type cache write failed", "error", setErr.Error())
		}
	}

	return views, nil
}
