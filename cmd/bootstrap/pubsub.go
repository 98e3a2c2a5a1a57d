package bootstrap

import (
	"context"
	"log/slog"

	"amhara-checkout/internal/infra/pubsub"
	"amhara-checkout/internal/usecase/checkout"

	"go.uber.org/fx"
)

var PubSubModule = fx.Module("pubsub",
	fx.Provide(
		NewEventBus,
		func(bus *pubsub.EventBus) checkout.EventPublisher { return bus },
		func(bus *pubsub.EventBus) checkout.EventSubscriber { return bus },
	),
)

func NewEventBus(lc fx.Lifecycle, logger *slog.Logger) *pubsub.EventBus {
	bus := pubsub.NewEventBus(logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bus.Close()
		},
	})

	return bus
}
