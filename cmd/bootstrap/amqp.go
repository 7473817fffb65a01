package bootstrap

import (
	"context"

	"hotel-booking-api/internal/infra/events"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase"

	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(usecase.EventPublisher)),
		),
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (*events.BookingEventPublisher, error) {
	publisher, err := events.NewBookingEventPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}
