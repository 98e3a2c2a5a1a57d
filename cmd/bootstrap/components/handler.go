package components

import (
	"amhara-checkout/internal/handler"
	"amhara-checkout/internal/handler/api"
	"amhara-checkout/internal/pkg/config"
	"amhara-checkout/internal/usecase/checkout"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPaymentSessionHandler,
		func(cfg config.Config, coordinator checkout.SessionCoordinator) *api.WebhookHandler {
			return api.NewWebhookHandler(coordinator, cfg.Payment.ReturnURL)
		},
	),
	fx.Invoke(handler.NewRouter),
)
