package components

import (
	"context"
	"log/slog"

	"amhara-checkout/internal/domain/payment"
	"amhara-checkout/internal/pkg/clock"
	"amhara-checkout/internal/pkg/config"
	"amhara-checkout/internal/usecase/checkout"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCheckoutModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		payment.NewReferenceGenerator,
		fx.As(new(checkout.ReferenceGenerator)),
	),
	func(cfg config.Config) *checkout.Reporter {
		return checkout.NewReporter(cfg.Payment.CloseDelay)
	},
)

var usecaseCheckoutModule = fx.Module("usecase/checkout",
	fx.Provide(
		fx.Annotate(
			NewCoordinator,
			fx.ParamTags(`group:"rails"`),
		),
		func(c *checkout.Coordinator) checkout.SessionCoordinator { return c },
	),
)

func NewCoordinator(
	adapters []checkout.RailAdapter,
	lc fx.Lifecycle,
	cfg config.Config,
	refs checkout.ReferenceGenerator,
	reporter *checkout.Reporter,
	events checkout.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) (*checkout.Coordinator, error) {
	c, err := checkout.NewCoordinator(adapters, refs, reporter, events, clk, checkout.Settings{
		DefaultMode:      payment.Mode(cfg.Payment.Mode),
		ReturnURL:        cfg.Payment.ReturnURL,
		OperationTimeout: cfg.Payment.OperationTimeout,
		TestPhone:        cfg.Payment.TestPhone,
		TestFullName:     cfg.Payment.TestFullName,
	}, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			c.Close()
			return nil
		},
	})
	return c, nil
}
