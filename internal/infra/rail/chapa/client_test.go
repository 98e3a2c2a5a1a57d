//go:build unit

package chapa_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"amhara-checkout/internal/domain/booking"
	"amhara-checkout/internal/domain/payment"
	"amhara-checkout/internal/infra"
	"amhara-checkout/internal/infra/rail/chapa"
	"amhara-checkout/internal/pkg/clock"
	"amhara-checkout/internal/pkg/errs"
	"amhara-checkout/internal/usecase/checkout"
	"amhara-checkout/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testKey = "CHASECK_TEST-abc123"
	liveKey = "CHASECK-live456"
	ref     = payment.Reference("TX-ABC123")
)

type provider struct {
	server   *httptest.Server
	calls    atomic.Int32
	lastAuth atomic.Value
	lastBody atomic.Value
	respond  func(w http.ResponseWriter, r *http.Request)
}

func newProvider(t *testing.T) *provider {
	t.Helper()
	p := &provider{}
	p.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.calls.Add(1)
		p.lastAuth.Store(r.Header.Get("Authorization"))
		if r.Body != nil {
			var body map[string]any
			if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
				_ = json.Unmarshal(raw, &body)
				p.lastBody.Store(body)
			}
		}
		p.respond(w, r)
	}))
	t.Cleanup(p.server.Close)
	return p
}

func (p *provider) body() map[string]any {
	b, _ := p.lastBody.Load().(map[string]any)
	return b
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func newClient(baseURL string, mutate ...func(*chapa.Config)) *chapa.Client {
	return newClientAt(baseURL, clock.NewMockClock(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)), mutate...)
}

func newClientAt(baseURL string, clk clock.Clock, mutate ...func(*chapa.Config)) *chapa.Client {
	cfg := chapa.Config{
		BaseURL:            baseURL,
		TestSecretKey:      testKey,
		LiveSecretKey:      liveKey,
		SettlementCurrency: "ETB",
		ExchangeRate:       decimal.RequireFromString("57.5"),
		TestAmount:         decimal.RequireFromString("100"),
		PayerEmail:         "payments@visitamhara.et",
		ReturnURL:          "https://checkout.test/payment-complete",
		CallbackURL:        "https://checkout.test/webhooks/chapa",
		HTTPTimeout:        2 * time.Second,
		ReferenceTTL:       time.Hour,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	return chapa.NewClient(cfg, clk, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func initRequest(mode payment.Mode) checkout.InitRequest {
	return checkout.InitRequest{
		Reference:   ref,
		Mode:        mode,
		Draft:       builder.NewDraftBuilder().MustBuildDomain(),
		Wallet:      payment.WalletTelebirr,
		Credentials: builder.ValidWallet(),
	}
}

func successfulInit(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, `{"status":"success","message":"Hosted Link","data":{"checkout_url":"https://checkout.chapa.co/checkout/payment/abc"}}`)
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("test mode charges the fixed amount with the test key", func(t *testing.T) {
		p := newProvider(t)
		p.respond = func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/transaction/initialize", r.URL.Path)
			successfulInit(w, r)
		}

		res, err := newClient(p.server.URL).Initialize(ctx, initRequest(payment.ModeTest))
		require.NoError(t, err)

		assert.Equal(t, "https://checkout.chapa.co/checkout/payment/abc", res.CheckoutURL)
		assert.Nil(t, res.Capture)
		assert.Equal(t, "Bearer "+testKey, p.lastAuth.Load())

		body := p.body()
		assert.Equal(t, "100.00", body["amount"])
		assert.Equal(t, "ETB", body["currency"])
		assert.Equal(t, "test+tx-abc123@gmail.com", body["email"])
		assert.Equal(t, "Abebe", body["first_name"])
		assert.Equal(t, "Kebede", body["last_name"])
		assert.Equal(t, "0912345678", body["phone_number"])
		assert.Equal(t, "TX-ABC123", body["tx_ref"])
		assert.Equal(t, "https://checkout.test/payment-complete?tx_ref=TX-ABC123", body["return_url"])
		assert.Equal(t, map[string]any{
			"title":       "Hotel Booking",
			"description": "Booking for Deluxe",
		}, body["customization"])
	})

	t.Run("live mode converts the draft total with the live key", func(t *testing.T) {
		p := newProvider(t)
		p.respond = successfulInit

		_, err := newClient(p.server.URL).Initialize(ctx, initRequest(payment.ModeLive))
		require.NoError(t, err)

		assert.Equal(t, "Bearer "+liveKey, p.lastAuth.Load())
		assert.Equal(t, "5750.00", p.body()["amount"])
		assert.Equal(t, "payments@visitamhara.et", p.body()["email"])
	})

	t.Run("field errors are flattened into a declined reason", func(t *testing.T) {
		p := newProvider(t)
		p.respond = func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadRequest,
				`{"status":"failed","message":{"phone_number":["The phone number must be 10 digits."],"email":["Invalid email","Already used"]}}`)
		}

		_, err := newClient(p.server.URL).Initialize(ctx, initRequest(payment.ModeTest))

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDeclined))
		assert.Equal(t, "email: Invalid email, Already used; phone_number: The phone number must be 10 digits.", infra.RailMessage(err))
	})

	t.Run("missing checkout URL is malformed", func(t *testing.T) {
		p := newProvider(t)
		p.respond = func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `{"status":"success","data":{}}`)
		}

		_, err := newClient(p.server.URL).Initialize(ctx, initRequest(payment.ModeTest))
		assert.True(t, infra.IsKind(err, infra.KindMalformed))
	})

	t.Run("server errors mean the rail is unavailable", func(t *testing.T) {
		p := newProvider(t)
		p.respond = func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusBadGateway, `<html>bad gateway</html>`)
		}

		_, err := newClient(p.server.URL).Initialize(ctx, initRequest(payment.ModeTest))
		assert.True(t, errs.Is(err, errs.ErrRailUnavailable))
	})

	t.Run("throttling is not a decline", func(t *testing.T) {
		p := newProvider(t)
		p.respond = func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusTooManyRequests, `{"message":"Too many requests"}`)
		}

		client := newClient(p.server.URL)
		_, err := client.Initialize(ctx, initRequest(payment.ModeTest))
		assert.True(t, infra.IsKind(err, infra.KindRailUnavailable))
		assert.False(t, infra.IsKind(err, infra.KindDeclined))
		assert.Zero(t, client.Tracked())
	})

	t.Run("a non-test key is refused in test mode without calling out", func(t *testing.T) {
		p := newProvider(t)
		p.respond = successfulInit

		client := newClient(p.server.URL, func(c *chapa.Config) { c.TestSecretKey = liveKey })
		_, err := client.Initialize(ctx, initRequest(payment.ModeTest))

		assert.True(t, infra.IsKind(err, infra.KindMalformed))
		assert.Contains(t, infra.RailMessage(err), chapa.TestKeyPrefix)
		assert.Zero(t, p.calls.Load())
	})

	t.Run("card credentials are malformed", func(t *testing.T) {
		p := newProvider(t)
		p.respond = successfulInit

		req := initRequest(payment.ModeTest)
		req.Credentials = builder.ValidCard()
		_, err := newClient(p.server.URL).Initialize(ctx, req)

		assert.True(t, infra.IsKind(err, infra.KindMalformed))
		assert.Zero(t, p.calls.Load())
	})

	t.Run("unreachable provider", func(t *testing.T) {
		p := newProvider(t)
		p.server.Close()

		_, err := newClient(p.server.URL).Initialize(ctx, initRequest(payment.ModeTest))
		assert.True(t, infra.IsKind(err, infra.KindRailUnavailable))
	})
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		status int
		body   string
		want   payment.VerificationResult
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"status":"success","data":{"status":"success","amount":100,"currency":"ETB","tx_ref":"TX-ABC123"}}`,
			want:   payment.Succeeded(booking.MustMoney("100", "ETB")),
		},
		{
			name:   "pending",
			status: http.StatusOK,
			body:   `{"status":"success","data":{"status":"pending","tx_ref":"TX-ABC123"}}`,
			want:   payment.StillPending(),
		},
		{
			name:   "failed",
			status: http.StatusOK,
			body:   `{"status":"success","data":{"status":"failed","tx_ref":"TX-ABC123"}}`,
			want:   payment.Rejected("Payment status: failed"),
		},
		{
			name:   "rejected by the provider",
			status: http.StatusNotFound,
			body:   `{"status":"failed","message":"Invalid transaction or Transaction not found"}`,
			want:   payment.Rejected("Invalid transaction or Transaction not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProvider(t)
			p.respond = func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodPost {
					successfulInit(w, r)
					return
				}
				assert.Equal(t, "/v1/transaction/verify/TX-ABC123", r.URL.Path)
				writeJSON(w, tt.status, tt.body)
			}
			client := newClient(p.server.URL)
			_, err := client.Initialize(ctx, initRequest(payment.ModeTest))
			require.NoError(t, err)

			got, err := client.Verify(ctx, ref)
			require.NoError(t, err)

			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.Reason, got.Reason)
			assert.True(t, tt.want.Amount.Equal(got.Amount), "amount %s, got %s", tt.want.Amount, got.Amount)
			assert.Equal(t, "Bearer "+testKey, p.lastAuth.Load())
		})
	}

	unconfirmed := []struct {
		name   string
		status int
		body   string
		reason string
	}{
		{name: "throttled", status: http.StatusTooManyRequests, body: `{"message":"Too many requests"}`, reason: "Too many requests"},
		{name: "key rejected", status: http.StatusUnauthorized, body: `{"message":"Invalid API Key"}`, reason: "Invalid API Key"},
		{name: "forbidden", status: http.StatusForbidden, body: ``, reason: "payment provider returned 403"},
		{name: "request timeout", status: http.StatusRequestTimeout, body: `{}`, reason: "payment provider returned 408"},
	}
	for _, tt := range unconfirmed {
		t.Run(tt.name+" is unavailable, not a decline", func(t *testing.T) {
			p := newProvider(t)
			p.respond = func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodPost {
					successfulInit(w, r)
					return
				}
				writeJSON(w, tt.status, tt.body)
			}
			client := newClient(p.server.URL)
			_, err := client.Initialize(ctx, initRequest(payment.ModeTest))
			require.NoError(t, err)

			got, err := client.Verify(ctx, ref)
			require.Error(t, err)
			assert.True(t, infra.IsKind(err, infra.KindRailUnavailable))
			assert.Equal(t, tt.reason, infra.RailMessage(err))
			assert.Empty(t, got.Status)
		})
	}

	t.Run("reference is forgotten after any verification", func(t *testing.T) {
		p := newProvider(t)
		p.respond = func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				successfulInit(w, r)
				return
			}
			writeJSON(w, http.StatusTooManyRequests, `{"message":"Too many requests"}`)
		}
		client := newClient(p.server.URL)
		_, err := client.Initialize(ctx, initRequest(payment.ModeTest))
		require.NoError(t, err)
		require.Equal(t, 1, client.Tracked())

		_, err = client.Verify(ctx, ref)
		require.Error(t, err)
		assert.Zero(t, client.Tracked())

		_, err = client.Verify(ctx, ref)
		assert.True(t, infra.IsKind(err, infra.KindMalformed))
	})

	t.Run("unverified references expire", func(t *testing.T) {
		p := newProvider(t)
		p.respond = successfulInit
		clk := clock.NewMockClock(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC))
		client := newClientAt(p.server.URL, clk, func(c *chapa.Config) { c.ReferenceTTL = time.Minute })

		_, err := client.Initialize(ctx, initRequest(payment.ModeTest))
		require.NoError(t, err)

		clk.Add(time.Minute)
		next := initRequest(payment.ModeTest)
		next.Reference = "TX-NEXT"
		_, err = client.Initialize(ctx, next)
		require.NoError(t, err)
		assert.Equal(t, 1, client.Tracked(), "expired reference is pruned")

		calls := p.calls.Load()
		_, err = client.Verify(ctx, ref)
		assert.True(t, infra.IsKind(err, infra.KindMalformed))
		assert.Equal(t, calls, p.calls.Load())
	})

	t.Run("unknown reference is malformed", func(t *testing.T) {
		p := newProvider(t)
		p.respond = successfulInit

		_, err := newClient(p.server.URL).Verify(ctx, "TX-NEVERSEEN")
		assert.True(t, infra.IsKind(err, infra.KindMalformed))
		assert.Zero(t, p.calls.Load())
	})

	t.Run("timeout is unavailable", func(t *testing.T) {
		release := make(chan struct{})
		p := newProvider(t)
		p.respond = func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				successfulInit(w, r)
				return
			}
			<-release
		}
		defer close(release)
		client := newClient(p.server.URL, func(c *chapa.Config) { c.HTTPTimeout = 50 * time.Millisecond })
		_, err := client.Initialize(ctx, initRequest(payment.ModeTest))
		require.NoError(t, err)

		_, err = client.Verify(ctx, ref)
		assert.True(t, errs.Is(err, errs.ErrRailUnavailable))
	})
}
