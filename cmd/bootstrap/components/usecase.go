package components

import (
	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			booking.NewNightlyPriceCalculator,
			fx.As(new(booking.PriceCalculator)),
		),
		booking.NewFactory,
		usecase.NewAuthUseCase,
		usecase.NewAvailabilityUseCase,
		usecase.NewBookingUseCase,
		usecase.NewTokenValidator,
	),
)
