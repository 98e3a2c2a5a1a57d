package chapa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"amhara-checkout/internal/domain/booking"
	"amhara-checkout/internal/domain/payment"
	"amhara-checkout/internal/infra"
	"amhara-checkout/internal/pkg/clock"
	"amhara-checkout/internal/usecase/checkout"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	DefaultBaseURL = "https://api.chapa.co"
	TestKeyPrefix  = "CHASECK_TEST-"

	initializePath = "/v1/transaction/initialize"
	verifyPath     = "/v1/transaction/verify/"

	defaultReferenceTTL = time.Hour
)

// unconfirmedStatuses are 4xx answers that say nothing about the payment
// itself: the provider refused to talk to us.
var unconfirmedStatuses = []int{
	http.StatusUnauthorized,
	http.StatusForbidden,
	http.StatusRequestTimeout,
	http.StatusTooManyRequests,
}

type Config struct {
	BaseURL            string
	TestSecretKey      string
	LiveSecretKey      string
	SettlementCurrency string
	ExchangeRate       decimal.Decimal
	TestAmount         decimal.Decimal
	PayerEmail         string
	ReturnURL          string
	CallbackURL        string
	HTTPTimeout        time.Duration
	// ReferenceTTL bounds how long an initialized reference stays verifiable.
	ReferenceTTL       time.Duration
}

// Client is the redirect aggregator adapter. It initializes a hosted checkout
// for wallet payments and verifies the outcome by transaction reference.
type Client struct {
	cfg    Config
	client *http.Client
	clock  clock.Clock
	logger *slog.Logger

	mu   sync.Mutex
	refs map[payment.Reference]initialized
}

type initialized struct {
	mode    payment.Mode
	expires time.Time
}

var _ checkout.RailAdapter = (*Client)(nil)

func NewClient(cfg Config, clk clock.Clock, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.ReferenceTTL <= 0 {
		cfg.ReferenceTTL = defaultReferenceTTL
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.HTTPTimeout},
		clock:  clk,
		logger: logger.With("rail", payment.RailRedirectAggregator),
		refs:   make(map[payment.Reference]initialized),
	}
}

func (c *Client) Rail() payment.Rail {
	return payment.RailRedirectAggregator
}

type customization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type initializeRequest struct {
	Amount        string        `json:"amount"`
	Currency      string        `json:"currency"`
	Email         string        `json:"email"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	PhoneNumber   string        `json:"phone_number"`
	TxRef         string        `json:"tx_ref"`
	CallbackURL   string        `json:"callback_url,omitempty"`
	ReturnURL     string        `json:"return_url"`
	Customization customization `json:"customization"`
}

type initializeResponse struct {
	Status  string          `json:"status"`
	Message json.RawMessage `json:"message"`
	Data    *struct {
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
}

type verifyResponse struct {
	Status  string          `json:"status"`
	Message json.RawMessage `json:"message"`
	Data    *struct {
		Status   string          `json:"status"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
		TxRef    string          `json:"tx_ref"`
	} `json:"data"`
}

func (c *Client) Initialize(ctx context.Context, req checkout.InitRequest) (*checkout.InitResult, error) {
	key, err := c.secretKey(req.Mode)
	if err != nil {
		return nil, err
	}
	creds, ok := req.Credentials.(payment.WalletCredentials)
	if !ok {
		return nil, infra.WrapRailErr(c.logger, infra.KindMalformed, "wallet credentials are required", nil)
	}
	amount, err := c.chargeAmount(req)
	if err != nil {
		return nil, infra.WrapRailErr(c.logger, infra.KindMalformed, "could not compute charge amount", err)
	}

	first, last := creds.SplitName()
	body := initializeRequest{
		Amount:      amount.Fixed(),
		Currency:    amount.Currency(),
		Email:       c.payerEmail(req),
		FirstName:   first,
		LastName:    last,
		PhoneNumber: creds.Phone,
		TxRef:       req.Reference.String(),
		CallbackURL: c.cfg.CallbackURL,
		ReturnURL:   withRef(c.cfg.ReturnURL, req.Reference),
		Customization: customization{
			Title:       "Hotel Booking",
			Description: "Booking for " + req.Draft.RoomType(),
		},
	}

	c.logger.Info("initializing redirect checkout",
		"tx_ref", req.Reference, "mode", req.Mode, "wallet", req.Wallet,
		"amount", body.Amount, "currency", body.Currency)

	var out initializeResponse
	status, err := c.do(ctx, http.MethodPost, initializePath, key, body, &out)
	if err != nil {
		return nil, err
	}
	if lo.Contains(unconfirmedStatuses, status) {
		return nil, infra.WrapRailErr(c.logger, infra.KindRailUnavailable, providerRefusal(status, out.Message), nil)
	}
	if status >= http.StatusBadRequest || out.Status != "success" {
		return nil, infra.WrapRailErr(c.logger, infra.KindDeclined,
			lo.Ternary(len(out.Message) > 0, flattenMessage(out.Message), "Payment initialization failed"), nil)
	}
	if out.Data == nil || out.Data.CheckoutURL == "" {
		return nil, infra.WrapRailErr(c.logger, infra.KindMalformed, "response carried no checkout URL", nil)
	}

	c.remember(req.Reference, req.Mode)
	return &checkout.InitResult{CheckoutURL: out.Data.CheckoutURL}, nil
}

func (c *Client) Verify(ctx context.Context, ref payment.Reference) (payment.VerificationResult, error) {
	mode, ok := c.take(ref)
	if !ok {
		return payment.VerificationResult{}, infra.WrapRailErr(c.logger, infra.KindMalformed,
			fmt.Sprintf("unknown transaction reference %s", ref), nil)
	}
	key, err := c.secretKey(mode)
	if err != nil {
		return payment.VerificationResult{}, err
	}

	var out verifyResponse
	status, err := c.do(ctx, http.MethodGet, verifyPath+url.PathEscape(ref.String()), key, nil, &out)
	if err != nil {
		return payment.VerificationResult{}, err
	}
	if lo.Contains(unconfirmedStatuses, status) {
		return payment.VerificationResult{}, infra.WrapRailErr(c.logger, infra.KindRailUnavailable, providerRefusal(status, out.Message), nil)
	}
	if status >= http.StatusBadRequest {
		return payment.Rejected(flattenMessage(out.Message)), nil
	}
	if out.Data == nil {
		return payment.VerificationResult{}, infra.WrapRailErr(c.logger, infra.KindMalformed, "verification response carried no data", nil)
	}

	switch strings.ToLower(out.Data.Status) {
	case "success":
		currency := lo.Ternary(out.Data.Currency != "", out.Data.Currency, c.cfg.SettlementCurrency)
		paid, err := booking.NewMoney(out.Data.Amount, currency)
		if err != nil {
			return payment.VerificationResult{}, infra.WrapRailErr(c.logger, infra.KindMalformed, "verified amount is invalid", err)
		}
		c.logger.Info("payment verified", "tx_ref", ref, "amount", paid.Fixed(), "currency", paid.Currency())
		return payment.Succeeded(paid), nil
	case "pending":
		c.logger.Info("payment still pending", "tx_ref", ref)
		return payment.StillPending(), nil
	default:
		return payment.Rejected("Payment status: " + out.Data.Status), nil
	}
}

// remember records the mode a reference was initialized with and drops
// references whose TTL has passed.
func (c *Client) remember(ref payment.Reference, mode payment.Mode) {
	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for r, entry := range c.refs {
		if !now.Before(entry.expires) {
			delete(c.refs, r)
		}
	}
	c.refs[ref] = initialized{mode: mode, expires: now.Add(c.cfg.ReferenceTTL)}
}

// take removes ref; a session verifies its reference at most once.
func (c *Client) take(ref payment.Reference) (payment.Mode, bool) {
	now := c.clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.refs[ref]
	delete(c.refs, ref)
	if !ok || !now.Before(entry.expires) {
		return "", false
	}
	return entry.mode, true
}

// Tracked reports how many initialized references await verification.
func (c *Client) Tracked() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.refs)
}

func providerRefusal(status int, msg json.RawMessage) string {
	if m := flattenMessage(msg); m != "" {
		return m
	}
	return fmt.Sprintf("payment provider returned %d", status)
}

// do sends a JSON request and decodes the body into out. Transport failures
// and 5xx responses are RAIL_UNAVAILABLE; other statuses are returned for the
// caller to interpret.
func (c *Client) do(ctx context.Context, method, path, key string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, infra.WrapRailErr(c.logger, infra.KindMalformed, "could not encode request", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return 0, infra.WrapRailErr(c.logger, infra.KindMalformed, "could not build request", err)
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, infra.WrapRailErr(c.logger, infra.KindRailUnavailable, "payment provider unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, infra.WrapRailErr(c.logger, infra.KindRailUnavailable, "could not read provider response", err)
	}
	c.logger.Debug("provider response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= http.StatusInternalServerError {
		return resp.StatusCode, infra.WrapRailErr(c.logger, infra.KindRailUnavailable,
			fmt.Sprintf("payment provider returned %d", resp.StatusCode), nil)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp.StatusCode, infra.WrapRailErr(c.logger, infra.KindRailUnavailable, "undecodable provider response", err)
		}
	}
	return resp.StatusCode, nil
}

// secretKey picks the key for mode. A test session must never be sent with a
// live key.
func (c *Client) secretKey(mode payment.Mode) (string, error) {
	switch mode {
	case payment.ModeTest:
		if c.cfg.TestSecretKey == "" {
			return "", infra.WrapRailErr(c.logger, infra.KindRailUnavailable, "test secret key is not configured", nil)
		}
		if !strings.HasPrefix(c.cfg.TestSecretKey, TestKeyPrefix) {
			return "", infra.WrapRailErr(c.logger, infra.KindMalformed, "Invalid test key format. Must start with "+TestKeyPrefix, nil)
		}
		return c.cfg.TestSecretKey, nil
	case payment.ModeLive:
		if c.cfg.LiveSecretKey == "" {
			return "", infra.WrapRailErr(c.logger, infra.KindRailUnavailable, "live secret key is not configured", nil)
		}
		return c.cfg.LiveSecretKey, nil
	default:
		return "", infra.WrapRailErr(c.logger, infra.KindMalformed, fmt.Sprintf("unknown payment mode %q", mode), nil)
	}
}

// chargeAmount is a fixed amount in test mode and the converted draft total in live mode.
func (c *Client) chargeAmount(req checkout.InitRequest) (booking.Money, error) {
	if req.Mode == payment.ModeTest {
		return booking.NewMoney(c.cfg.TestAmount, c.cfg.SettlementCurrency)
	}
	return req.Draft.Total().Convert(c.cfg.ExchangeRate, c.cfg.SettlementCurrency)
}

func (c *Client) payerEmail(req checkout.InitRequest) string {
	if req.Mode == payment.ModeTest {
		return "test+" + strings.ToLower(req.Reference.String()) + "@gmail.com"
	}
	return c.cfg.PayerEmail
}

func withRef(returnURL string, ref payment.Reference) string {
	u, err := url.Parse(returnURL)
	if err != nil {
		return returnURL
	}
	q := u.Query()
	q.Set("tx_ref", ref.String())
	u.RawQuery = q.Encode()
	return u.String()
}

// flattenMessage renders a provider message that is either a string or a
// field -> messages object as "field: m1, m2; other: m3".
func flattenMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return string(raw)
	}

	keys := lo.Keys(fields)
	slices.Sort(keys)
	parts := lo.Map(keys, func(k string, _ int) string {
		switch v := fields[k].(type) {
		case []any:
			msgs := lo.Map(v, func(m any, _ int) string { return fmt.Sprint(m) })
			return k + ": " + strings.Join(msgs, ", ")
		default:
			return k + ": " + fmt.Sprint(v)
		}
	})
	return strings.Join(parts, "; ")
}
