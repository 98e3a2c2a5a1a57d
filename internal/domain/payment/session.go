package payment

import (
	"errors"
	"fmt"
	"time"

	"amhara-checkout/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrMissingDraft        = errors.New("booking draft is required")
	ErrInvalidMode         = errors.New("invalid payment mode")
	ErrInvalidRail         = errors.New("invalid payment rail")
	ErrInvalidWallet       = errors.New("invalid wallet option")
	ErrWalletNotApplicable = errors.New("wallet options require the redirect aggregator rail")
	ErrNotEditable         = errors.New("session is not accepting changes")
	ErrRailMismatch        = errors.New("credentials do not match the active rail")
	ErrInvalidTransition   = errors.New("invalid session transition")
	ErrReferenceAssigned   = errors.New("transaction reference already assigned")
	ErrMissingReference    = errors.New("transaction reference is required")
)

// Session is the payment flow for one booking draft. Only the checkout
// coordinator mutates it.
type Session struct {
	id          uuid.UUID
	draft       *booking.Draft
	mode        Mode
	rail        Rail
	wallet      WalletOption
	credentials Credentials
	reference   Reference
	checkoutURL string
	state       State
	failure     *Failure
	paid        *booking.Money
	pending     bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewSession opens a session in FieldsPending with the redirect rail selected
// and no wallet option.
func NewSession(draft *booking.Draft, mode Mode, now time.Time) (*Session, error) {
	if draft == nil {
		return nil, ErrMissingDraft
	}
	if !mode.IsValid() {
		return nil, ErrInvalidMode
	}

	s := &Session{
		id:        uuid.New(),
		draft:     draft,
		mode:      mode,
		rail:      RailRedirectAggregator,
		wallet:    WalletNone,
		state:     StateIdle,
		createdAt: now,
		updatedAt: now,
	}
	if err := s.transition(StateFieldsPending, now); err != nil {
		return nil, err
	}
	return s, nil
}

// SelectRail switches rails; a change clears credentials and the wallet option.
func (s *Session) SelectRail(rail Rail, now time.Time) error {
	if !rail.IsValid() {
		return ErrInvalidRail
	}
	if s.state != StateFieldsPending {
		return ErrNotEditable
	}
	if rail == s.rail {
		return nil
	}
	s.rail = rail
	s.wallet = WalletNone
	s.credentials = nil
	s.updatedAt = now
	return nil
}

// SelectWallet picks a sub-option; a change clears credentials.
func (s *Session) SelectWallet(opt WalletOption, now time.Time) error {
	if !opt.IsValid() {
		return ErrInvalidWallet
	}
	if s.state != StateFieldsPending {
		return ErrNotEditable
	}
	if s.rail != RailRedirectAggregator {
		return ErrWalletNotApplicable
	}
	if opt == s.wallet {
		return nil
	}
	s.wallet = opt
	s.credentials = nil
	s.updatedAt = now
	return nil
}

// SwitchMode clears credentials so sentinel values never cross modes.
func (s *Session) SwitchMode(mode Mode, now time.Time) error {
	if !mode.IsValid() {
		return ErrInvalidMode
	}
	if s.state != StateIdle && s.state != StateFieldsPending {
		return ErrNotEditable
	}
	if mode == s.mode {
		return nil
	}
	s.mode = mode
	s.credentials = nil
	s.updatedAt = now
	return nil
}

func (s *Session) EnterCredentials(c Credentials, now time.Time) error {
	if s.state != StateFieldsPending {
		return ErrNotEditable
	}
	if c == nil || c.Rail() != s.rail {
		return ErrRailMismatch
	}
	s.credentials = c
	s.updatedAt = now
	return nil
}

// CheckSubmittable runs the validator gate for the active rail. It returns
// FieldErrors when a required field fails and ErrNotEditable outside FieldsPending.
func (s *Session) CheckSubmittable() error {
	if s.state != StateFieldsPending {
		return ErrNotEditable
	}

	var fe FieldErrors
	if s.rail == RailRedirectAggregator && s.wallet == WalletNone {
		fe.add("paymentOption", "Please select a payment option")
	}

	creds := s.credentials
	if creds == nil {
		switch s.rail {
		case RailCardNetwork:
			creds = CardCredentials{}
		default:
			creds = WalletCredentials{}
		}
	}
	fe = append(fe, creds.Validate()...)

	if len(fe) > 0 {
		return fe
	}
	return nil
}

// BeginSubmit assigns the reference and enters Submitting. The reference can
// only be assigned once per session.
func (s *Session) BeginSubmit(ref Reference, now time.Time) error {
	if ref.IsZero() {
		return ErrMissingReference
	}
	if !s.reference.IsZero() {
		return ErrReferenceAssigned
	}
	if err := s.CheckSubmittable(); err != nil {
		return err
	}
	if err := s.transition(StateSubmitting, now); err != nil {
		return err
	}
	s.reference = ref
	return nil
}

func (s *Session) AwaitRedirect(checkoutURL string, now time.Time) error {
	if err := s.transition(StateAwaitingRedirectCompletion, now); err != nil {
		return err
	}
	s.checkoutURL = checkoutURL
	return nil
}

func (s *Session) BeginVerification(now time.Time) error {
	return s.transition(StateVerifying, now)
}

func (s *Session) Complete(paid booking.Money, now time.Time) error {
	if err := s.transition(StateCompleted, now); err != nil {
		return err
	}
	s.paid = &paid
	return nil
}

// CompletePending closes the session while the rail is still processing.
func (s *Session) CompletePending(now time.Time) error {
	if err := s.transition(StateCompleted, now); err != nil {
		return err
	}
	s.pending = true
	return nil
}

func (s *Session) Fail(f Failure, now time.Time) error {
	if err := s.transition(StateFailed, now); err != nil {
		return err
	}
	s.failure = &f
	return nil
}

func (s *Session) Cancel(now time.Time) error {
	return s.transition(StateCancelled, now)
}

func (s *Session) transition(to State, now time.Time) error {
	if !CanTransition(s.state, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, to)
	}
	s.state = to
	s.updatedAt = now
	return nil
}

func (s *Session) ID() uuid.UUID            { return s.id }
func (s *Session) Draft() *booking.Draft    { return s.draft }
func (s *Session) Mode() Mode               { return s.mode }
func (s *Session) Rail() Rail               { return s.rail }
func (s *Session) Wallet() WalletOption     { return s.wallet }
func (s *Session) Credentials() Credentials { return s.credentials }
func (s *Session) Reference() Reference     { return s.reference }
func (s *Session) CheckoutURL() string      { return s.checkoutURL }
func (s *Session) State() State             { return s.state }
func (s *Session) Failure() *Failure        { return s.failure }
func (s *Session) Paid() *booking.Money     { return s.paid }
func (s *Session) IsPending() bool          { return s.pending }
func (s *Session) CreatedAt() time.Time     { return s.createdAt }
func (s *Session) UpdatedAt() time.Time     { return s.updatedAt }
