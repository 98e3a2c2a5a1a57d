//go:build unit

package card_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"amhara-checkout/internal/domain/payment"
	"amhara-checkout/internal/infra"
	"amhara-checkout/internal/infra/rail/card"
	"amhara-checkout/internal/pkg/clock"
	"amhara-checkout/internal/usecase/checkout"
	"amhara-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const declineNumber = "4000000000000002"

func newSimulator() (*card.Simulator, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC))
	sim := card.NewSimulator(card.Config{
		Latency:       2 * time.Second,
		DeclineNumber: declineNumber,
	}, clk, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return sim, clk
}

func cardRequest(mode payment.Mode, creds payment.Credentials) checkout.InitRequest {
	return checkout.InitRequest{
		Reference:   "TX-CARD0001",
		Mode:        mode,
		Draft:       builder.NewDraftBuilder().MustBuildDomain(),
		Credentials: creds,
	}
}

func TestSimulatorInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("captures the draft total after the processing delay", func(t *testing.T) {
		sim, clk := newSimulator()

		res, err := sim.Initialize(ctx, cardRequest(payment.ModeTest, builder.ValidCard()))
		require.NoError(t, err)

		require.NotNil(t, res.Capture)
		assert.Empty(t, res.CheckoutURL)
		assert.Equal(t, payment.VerificationSuccess, res.Capture.Status)
		assert.Equal(t, "$100", res.Capture.Amount.String())
		assert.Equal(t, 2*time.Second, clk.Slept())

		verified, err := sim.Verify(ctx, "TX-CARD0001")
		require.NoError(t, err)
		assert.Equal(t, payment.VerificationSuccess, verified.Status)
	})

	t.Run("decline number is rejected", func(t *testing.T) {
		sim, _ := newSimulator()

		res, err := sim.Initialize(ctx, cardRequest(payment.ModeTest,
			builder.CardWith(func(c *payment.CardCredentials) { c.Number = declineNumber })))
		require.NoError(t, err)

		assert.Equal(t, payment.Rejected("Your card was declined"), *res.Capture)

		verified, err := sim.Verify(ctx, "TX-CARD0001")
		require.NoError(t, err)
		assert.Equal(t, payment.VerificationFailed, verified.Status)
	})

	t.Run("invalid card never reaches processing", func(t *testing.T) {
		sim, clk := newSimulator()

		_, err := sim.Initialize(ctx, cardRequest(payment.ModeTest,
			builder.CardWith(func(c *payment.CardCredentials) { c.Expiry = "13/29" })))

		assert.True(t, infra.IsKind(err, infra.KindMalformed))
		assert.Zero(t, clk.Slept())
	})

	t.Run("wallet credentials are malformed", func(t *testing.T) {
		sim, _ := newSimulator()
		_, err := sim.Initialize(ctx, cardRequest(payment.ModeTest, builder.ValidWallet()))
		assert.True(t, infra.IsKind(err, infra.KindMalformed))
	})

	t.Run("live mode is unavailable", func(t *testing.T) {
		sim, clk := newSimulator()

		_, err := sim.Initialize(ctx, cardRequest(payment.ModeLive, builder.ValidCard()))

		assert.True(t, infra.IsKind(err, infra.KindRailUnavailable))
		assert.Zero(t, clk.Slept())
	})

	t.Run("cancelled context interrupts processing", func(t *testing.T) {
		sim, _ := newSimulator()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := sim.Initialize(cctx, cardRequest(payment.ModeTest, builder.ValidCard()))
		assert.True(t, infra.IsKind(err, infra.KindRailUnavailable))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
