//go:generate mockgen -source=ports.go -destination=../../../tests/mock/checkout/ports_mock.go -package=checkoutmock

package checkout

import (
	"context"

	"amhara-checkout/internal/domain/booking"
	"amhara-checkout/internal/domain/payment"
)

// InitRequest is the read-only view of a session an adapter needs to start a
// payment. Mode is passed explicitly; adapters hold no mode of their own.
type InitRequest struct {
	Reference   payment.Reference
	Mode        payment.Mode
	Draft       *booking.Draft
	Wallet      payment.WalletOption
	Credentials payment.Credentials
}

// InitResult carries exactly one of CheckoutURL (redirect rails) or Capture
// (direct-capture rails).
type InitResult struct {
	CheckoutURL string
	Capture     *payment.VerificationResult
}

// RailAdapter errors are infra.RailError values (MALFORMED, RAIL_UNAVAILABLE, DECLINED).
type RailAdapter interface {
	Rail() payment.Rail
	Initialize(ctx context.Context, req InitRequest) (*InitResult, error)
	Verify(ctx context.Context, ref payment.Reference) (payment.VerificationResult, error)
}

type ReferenceGenerator interface {
	Generate() payment.Reference
}

type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}

type EventSubscriber interface {
	// Subscribe streams events until ctx is done; the channel is closed afterwards.
	Subscribe(ctx context.Context) (<-chan Event, error)
}

// SessionCoordinator is the surface the HTTP layer drives.
type SessionCoordinator interface {
	Open(ctx context.Context, draft *booking.Draft) (*SessionView, error)
	Current(ctx context.Context) (*SessionView, error)
	Mode() payment.Mode
	SetMode(ctx context.Context, mode payment.Mode) (payment.Mode, error)
	SelectRail(ctx context.Context, rail payment.Rail, wallet payment.WalletOption) (*SessionView, error)
	EnterCredentials(ctx context.Context, creds payment.Credentials) (*SessionView, error)
	Submit(ctx context.Context) (*SessionView, error)
	Navigate(ctx context.Context, url string) (*SessionView, error)
	NotifyCallback(ctx context.Context, ref payment.Reference) (*SessionView, error)
	Cancel(ctx context.Context) (*SessionView, error)
}
