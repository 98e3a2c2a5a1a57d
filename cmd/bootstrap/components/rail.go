package components

import (
	"log/slog"

	"amhara-checkout/internal/infra/rail"
	"amhara-checkout/internal/infra/rail/card"
	"amhara-checkout/internal/infra/rail/chapa"
	"amhara-checkout/internal/pkg/clock"
	"amhara-checkout/internal/pkg/config"
	"amhara-checkout/internal/usecase/checkout"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var RailModule = fx.Module("rail",
	fx.Provide(
		fx.Annotate(
			NewChapaAdapter,
			fx.ResultTags(`group:"rails"`),
		),
		fx.Annotate(
			NewCardAdapter,
			fx.ResultTags(`group:"rails"`),
		),
	),
)

func NewChapaAdapter(cfg config.Config, clk clock.Clock, logger *slog.Logger) (checkout.RailAdapter, error) {
	rate, err := decimal.NewFromString(cfg.Chapa.ExchangeRate)
	if err != nil {
		return nil, err
	}
	testAmount, err := decimal.NewFromString(cfg.Chapa.TestAmount)
	if err != nil {
		return nil, err
	}

	client := chapa.NewClient(chapa.Config{
		BaseURL:            cfg.Chapa.BaseURL,
		TestSecretKey:      cfg.Chapa.TestSecretKey,
		LiveSecretKey:      cfg.Chapa.LiveSecretKey,
		SettlementCurrency: cfg.Chapa.SettlementCurrency,
		ExchangeRate:       rate,
		TestAmount:         testAmount,
		PayerEmail:         cfg.Chapa.PayerEmail,
		ReturnURL:          cfg.Payment.ReturnURL,
		CallbackURL:        cfg.Payment.CallbackURL,
		HTTPTimeout:        cfg.Chapa.HTTPTimeout,
		ReferenceTTL:       cfg.Chapa.ReferenceTTL,
	}, clk, logger)
	return rail.Instrument(client), nil
}

func NewCardAdapter(cfg config.Config, clk clock.Clock, logger *slog.Logger) checkout.RailAdapter {
	sim := card.NewSimulator(card.Config{
		Latency:       cfg.Card.Latency,
		DeclineNumber: cfg.Card.DeclineNumber,
	}, clk, logger)
	return rail.Instrument(sim)
}
