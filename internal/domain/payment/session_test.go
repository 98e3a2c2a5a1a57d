//go:build unit

package payment_test

import (
	"testing"
	"time"

	"amhara-checkout/internal/domain/booking"
	"amhara-checkout/internal/domain/payment"
	"amhara-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

func newSession(t *testing.T, mode payment.Mode) *payment.Session {
	t.Helper()
	s, err := payment.NewSession(builder.NewDraftBuilder().MustBuildDomain(), mode, now)
	require.NoError(t, err)
	return s
}

// readyWallet returns a session that passes the submit gate on the redirect rail.
func readyWallet(t *testing.T) *payment.Session {
	t.Helper()
	s := newSession(t, payment.ModeTest)
	require.NoError(t, s.SelectWallet(payment.WalletTelebirr, now))
	require.NoError(t, s.EnterCredentials(builder.ValidWallet(), now))
	return s
}

func TestNewSession(t *testing.T) {
	s := newSession(t, payment.ModeTest)

	assert.Equal(t, payment.StateFieldsPending, s.State())
	assert.Equal(t, payment.RailRedirectAggregator, s.Rail())
	assert.Equal(t, payment.WalletNone, s.Wallet())
	assert.True(t, s.Reference().IsZero())
	assert.Nil(t, s.Credentials())

	_, err := payment.NewSession(nil, payment.ModeTest, now)
	assert.ErrorIs(t, err, payment.ErrMissingDraft)

	_, err = payment.NewSession(builder.NewDraftBuilder().MustBuildDomain(), "staging", now)
	assert.ErrorIs(t, err, payment.ErrInvalidMode)
}

func TestSessionSelection(t *testing.T) {
	t.Run("changing rail clears wallet and credentials", func(t *testing.T) {
		s := readyWallet(t)
		require.NoError(t, s.SelectRail(payment.RailCardNetwork, now))

		assert.Equal(t, payment.WalletNone, s.Wallet())
		assert.Nil(t, s.Credentials())
	})

	t.Run("reselecting the same rail keeps credentials", func(t *testing.T) {
		s := readyWallet(t)
		require.NoError(t, s.SelectRail(payment.RailRedirectAggregator, now))
		assert.NotNil(t, s.Credentials())
	})

	t.Run("changing wallet clears credentials", func(t *testing.T) {
		s := readyWallet(t)
		require.NoError(t, s.SelectWallet(payment.WalletCBEBirr, now))
		assert.Nil(t, s.Credentials())
	})

	t.Run("wallet needs the redirect rail", func(t *testing.T) {
		s := newSession(t, payment.ModeTest)
		require.NoError(t, s.SelectRail(payment.RailCardNetwork, now))
		assert.ErrorIs(t, s.SelectWallet(payment.WalletTelebirr, now), payment.ErrWalletNotApplicable)
	})

	t.Run("unknown rail and wallet", func(t *testing.T) {
		s := newSession(t, payment.ModeTest)
		assert.ErrorIs(t, s.SelectRail("paypal", now), payment.ErrInvalidRail)
		assert.ErrorIs(t, s.SelectWallet("mpesa", now), payment.ErrInvalidWallet)
	})

	t.Run("credentials must match the rail", func(t *testing.T) {
		s := newSession(t, payment.ModeTest)
		assert.ErrorIs(t, s.EnterCredentials(builder.ValidCard(), now), payment.ErrRailMismatch)
		assert.ErrorIs(t, s.EnterCredentials(nil, now), payment.ErrRailMismatch)
	})

	t.Run("switching mode clears credentials", func(t *testing.T) {
		s := readyWallet(t)
		require.NoError(t, s.SwitchMode(payment.ModeLive, now))
		assert.Equal(t, payment.ModeLive, s.Mode())
		assert.Nil(t, s.Credentials())
	})
}

func TestCheckSubmittable(t *testing.T) {
	t.Run("missing wallet option and credentials", func(t *testing.T) {
		s := newSession(t, payment.ModeTest)
		err := s.CheckSubmittable()

		var fe payment.FieldErrors
		require.ErrorAs(t, err, &fe)
		assert.True(t, fe.Has("paymentOption"))
		assert.True(t, fe.Has("phoneNumber"))
		assert.True(t, fe.Has("fullName"))
	})

	t.Run("card rail without credentials reports every card field", func(t *testing.T) {
		s := newSession(t, payment.ModeTest)
		require.NoError(t, s.SelectRail(payment.RailCardNetwork, now))

		var fe payment.FieldErrors
		require.ErrorAs(t, s.CheckSubmittable(), &fe)
		for _, f := range []string{"cardholderName", "email", "cardNumber", "expiry", "cvv"} {
			assert.True(t, fe.Has(f), f)
		}
		assert.False(t, fe.Has("paymentOption"))
	})

	t.Run("ready session passes", func(t *testing.T) {
		assert.NoError(t, readyWallet(t).CheckSubmittable())
	})
}

func TestSessionLifecycle(t *testing.T) {
	t.Run("redirect success path", func(t *testing.T) {
		s := readyWallet(t)

		require.NoError(t, s.BeginSubmit("TX-ABC", now))
		assert.Equal(t, payment.StateSubmitting, s.State())
		assert.Equal(t, payment.Reference("TX-ABC"), s.Reference())

		require.NoError(t, s.AwaitRedirect("https://checkout.example/pay", now))
		assert.Equal(t, "https://checkout.example/pay", s.CheckoutURL())

		require.NoError(t, s.BeginVerification(now))
		require.NoError(t, s.Complete(booking.MustMoney("100", "ETB"), now.Add(time.Minute)))

		assert.Equal(t, payment.StateCompleted, s.State())
		assert.True(t, s.State().IsTerminal())
		assert.Equal(t, "100.00", s.Paid().Fixed())
		assert.Equal(t, now.Add(time.Minute), s.UpdatedAt())
	})

	t.Run("pending completion", func(t *testing.T) {
		s := readyWallet(t)
		require.NoError(t, s.BeginSubmit("TX-ABC", now))
		require.NoError(t, s.AwaitRedirect("https://checkout.example/pay", now))
		require.NoError(t, s.BeginVerification(now))
		require.NoError(t, s.CompletePending(now))

		assert.Equal(t, payment.StateCompleted, s.State())
		assert.True(t, s.IsPending())
		assert.Nil(t, s.Paid())
	})

	t.Run("reference is assigned once", func(t *testing.T) {
		s := readyWallet(t)
		require.NoError(t, s.BeginSubmit("TX-ABC", now))
		assert.ErrorIs(t, s.BeginSubmit("TX-DEF", now), payment.ErrReferenceAssigned)
		assert.Equal(t, payment.Reference("TX-ABC"), s.Reference())
	})

	t.Run("invalid session cannot begin submit", func(t *testing.T) {
		s := newSession(t, payment.ModeTest)
		var fe payment.FieldErrors
		assert.ErrorAs(t, s.BeginSubmit("TX-ABC", now), &fe)
		assert.Equal(t, payment.StateFieldsPending, s.State())
		assert.True(t, s.Reference().IsZero())
	})

	t.Run("empty reference is rejected", func(t *testing.T) {
		assert.ErrorIs(t, readyWallet(t).BeginSubmit("", now), payment.ErrMissingReference)
	})

	t.Run("verifying cannot be cancelled", func(t *testing.T) {
		s := readyWallet(t)
		require.NoError(t, s.BeginSubmit("TX-ABC", now))
		require.NoError(t, s.AwaitRedirect("https://checkout.example/pay", now))
		require.NoError(t, s.BeginVerification(now))

		assert.ErrorIs(t, s.Cancel(now), payment.ErrInvalidTransition)
		assert.Equal(t, payment.StateVerifying, s.State())
	})

	t.Run("edits are refused outside fields pending", func(t *testing.T) {
		s := readyWallet(t)
		require.NoError(t, s.BeginSubmit("TX-ABC", now))

		assert.ErrorIs(t, s.SelectRail(payment.RailCardNetwork, now), payment.ErrNotEditable)
		assert.ErrorIs(t, s.SelectWallet(payment.WalletCBEBirr, now), payment.ErrNotEditable)
		assert.ErrorIs(t, s.EnterCredentials(builder.ValidWallet(), now), payment.ErrNotEditable)
		assert.ErrorIs(t, s.SwitchMode(payment.ModeLive, now), payment.ErrNotEditable)
		assert.ErrorIs(t, s.CheckSubmittable(), payment.ErrNotEditable)
	})

	t.Run("terminal states accept nothing", func(t *testing.T) {
		s := readyWallet(t)
		require.NoError(t, s.Cancel(now))

		assert.ErrorIs(t, s.Cancel(now), payment.ErrInvalidTransition)
		assert.ErrorIs(t, s.Fail(payment.Failure{Kind: payment.FailureDeclined}, now), payment.ErrInvalidTransition)
	})
}

func TestTransitions(t *testing.T) {
	cases := []struct {
		from, to payment.State
		want     bool
	}{
		{payment.StateIdle, payment.StateFieldsPending, true},
		{payment.StateFieldsPending, payment.StateSubmitting, true},
		{payment.StateFieldsPending, payment.StateVerifying, false},
		{payment.StateSubmitting, payment.StateCompleted, true},
		{payment.StateSubmitting, payment.StateVerifying, false},
		{payment.StateAwaitingRedirectCompletion, payment.StateVerifying, true},
		{payment.StateAwaitingRedirectCompletion, payment.StateCompleted, false},
		{payment.StateVerifying, payment.StateCancelled, false},
		{payment.StateVerifying, payment.StateFailed, true},
		{payment.StateCompleted, payment.StateFieldsPending, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, payment.CanTransition(tc.from, tc.to))
		})
	}

	assert.True(t, payment.CanCancel(payment.StateAwaitingRedirectCompletion))
	assert.False(t, payment.CanCancel(payment.StateVerifying))
}
