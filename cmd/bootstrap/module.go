package bootstrap

import (
	"amhara-checkout/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	PubSubModule,
	components.RailModule,
	components.UseCaseModule,
	components.HandlerModule,
)
