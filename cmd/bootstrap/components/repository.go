package components

import (
	"hotel-booking-api/internal/infra/cache"
	repo_impl "hotel-booking-api/internal/infra/repository"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		// Room types are a small static reference set, so the read path
		// goes through the Redis cache with Postgres behind it.
		fx.Annotate(
			NewCachedRoomTypeRepository,
			fx.As(new(usecase.RoomTypeRepository)),
		),
	),
)

func NewCachedRoomTypeRepository(pool *pgxpool.Pool, rdb *redis.Client, cfg config.Config) *cache.RoomTypeCache {
	return cache.NewRoomTypeCache(repo_impl.NewRoomTypeRepository(pool), rdb, cfg.Redis.RoomTypeTTL)
}
