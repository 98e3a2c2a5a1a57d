package card

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"amhara-checkout/internal/domain/booking"
	"amhara-checkout/internal/domain/payment"
	"amhara-checkout/internal/infra"
	"amhara-checkout/internal/pkg/clock"
	"amhara-checkout/internal/usecase/checkout"
)

type Config struct {
	Latency time.Duration
	// DeclineNumber is a card number that is always declined in test mode.
	DeclineNumber string
}

// Simulator is the direct-capture card rail. Test mode captures the draft
// total after a fixed latency; live capture has no processor behind it.
type Simulator struct {
	cfg    Config
	clock  clock.Clock
	logger *slog.Logger

	mu       sync.Mutex
	captured map[payment.Reference]booking.Money
}

var _ checkout.RailAdapter = (*Simulator)(nil)

func NewSimulator(cfg Config, clk clock.Clock, logger *slog.Logger) *Simulator {
	return &Simulator{
		cfg:      cfg,
		clock:    clk,
		logger:   logger.With("rail", payment.RailCardNetwork),
		captured: make(map[payment.Reference]booking.Money),
	}
}

func (s *Simulator) Rail() payment.Rail {
	return payment.RailCardNetwork
}

func (s *Simulator) Initialize(ctx context.Context, req checkout.InitRequest) (*checkout.InitResult, error) {
	creds, ok := req.Credentials.(payment.CardCredentials)
	if !ok {
		return nil, infra.WrapRailErr(s.logger, infra.KindMalformed, "card credentials are required", nil)
	}
	if fe := creds.Validate(); len(fe) > 0 {
		return nil, infra.WrapRailErr(s.logger, infra.KindMalformed, fe.Error(), nil)
	}
	if req.Mode != payment.ModeTest {
		return nil, infra.WrapRailErr(s.logger, infra.KindRailUnavailable, "live card capture is not configured", nil)
	}

	s.logger.Info("processing card payment", "tx_ref", req.Reference, "card_last4", creds.Last4())
	if err := s.clock.Sleep(ctx, s.cfg.Latency); err != nil {
		return nil, infra.WrapRailErr(s.logger, infra.KindRailUnavailable, "card processing interrupted", err)
	}

	if s.cfg.DeclineNumber != "" && creds.Number == s.cfg.DeclineNumber {
		s.logger.Info("card declined", "tx_ref", req.Reference, "card_last4", creds.Last4())
		result := payment.Rejected("Your card was declined")
		return &checkout.InitResult{Capture: &result}, nil
	}

	total := req.Draft.Total()
	s.mu.Lock()
	s.captured[req.Reference] = total
	s.mu.Unlock()

	result := payment.Succeeded(total)
	return &checkout.InitResult{Capture: &result}, nil
}

// Verify reports captures made by Initialize.
func (s *Simulator) Verify(_ context.Context, ref payment.Reference) (payment.VerificationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	paid, ok := s.captured[ref]
	if !ok {
		return payment.Rejected("no capture for " + ref.String()), nil
	}
	return payment.Succeeded(paid), nil
}
