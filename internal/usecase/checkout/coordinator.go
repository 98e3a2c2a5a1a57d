package checkout

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"amhara-checkout/internal/domain/booking"
	"amhara-checkout/internal/domain/payment"
	"amhara-checkout/internal/infra"
	"amhara-checkout/internal/pkg/clock"
	"amhara-checkout/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// returnRefParams are the query parameters rails use to echo the reference
// back on the return URL.
var returnRefParams = []string{"tx_ref", "trx_ref", "tx"}

type Settings struct {
	DefaultMode      payment.Mode
	ReturnURL        string
	OperationTimeout time.Duration
	TestPhone        string
	TestFullName     string
}

// Coordinator owns the single active payment session. The Submitting and
// Verifying states act as the lock around adapter calls: the mutex is never
// held while a rail is being contacted.
type Coordinator struct {
	adapters map[payment.Rail]RailAdapter
	refs     ReferenceGenerator
	reporter *Reporter
	events   EventPublisher
	clock    clock.Clock
	settings Settings
	logger   *slog.Logger
	returnTo *url.URL

	mu         sync.Mutex
	mode       payment.Mode
	active     *payment.Session
	outcome    *Outcome
	abort      context.CancelFunc
	closeTimer clock.Timer
	outbox     []Event
}

var _ SessionCoordinator = (*Coordinator)(nil)

func NewCoordinator(
	adapters []RailAdapter,
	refs ReferenceGenerator,
	reporter *Reporter,
	events EventPublisher,
	clock clock.Clock,
	settings Settings,
	logger *slog.Logger,
) (*Coordinator, error) {
	if !settings.DefaultMode.IsValid() {
		return nil, errs.Mark(errs.Newf("default mode %q", settings.DefaultMode), ErrInvalidMode)
	}
	if settings.ReturnURL == "" {
		return nil, errs.New("return URL is required")
	}
	returnURL, err := url.Parse(settings.ReturnURL)
	if err != nil || returnURL.Host == "" {
		return nil, errs.Newf("return URL %q must be absolute", settings.ReturnURL)
	}

	byRail := make(map[payment.Rail]RailAdapter, len(adapters))
	for _, a := range adapters {
		if _, dup := byRail[a.Rail()]; dup {
			return nil, errs.Newf("duplicate adapter for rail %s", a.Rail())
		}
		byRail[a.Rail()] = a
	}

	return &Coordinator{
		adapters: byRail,
		refs:     refs,
		reporter: reporter,
		events:   events,
		clock:    clock,
		settings: settings,
		logger:   logger,
		returnTo: returnURL,
		mode:     settings.DefaultMode,
	}, nil
}

// Open starts a fresh session for draft, replacing any prior one. A session
// that is already verifying cannot be replaced.
func (c *Coordinator) Open(ctx context.Context, draft *booking.Draft) (*SessionView, error) {
	c.mu.Lock()
	defer c.unlockAndFlush(ctx)

	if prev := c.active; prev != nil && !prev.State().IsTerminal() {
		if prev.State() == payment.StateVerifying {
			return nil, ErrVerificationInFlight
		}
		c.logger.Info("replacing open payment session",
			"session_id", prev.ID(), "state", prev.State())
		c.cancelLocked(prev)
	}
	c.discardLocked()

	s, err := payment.NewSession(draft, c.mode, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDraft)
	}
	c.active = s

	c.logger.Info("payment session opened",
		"session_id", s.ID(),
		"draft_id", draft.ID(),
		"mode", s.Mode(),
		"total", draft.Total().String(),
	)
	return c.viewLocked(), nil
}

func (c *Coordinator) Current(_ context.Context) (*SessionView, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == nil {
		return nil, ErrNoActiveSession
	}
	return c.viewLocked(), nil
}

func (c *Coordinator) Mode() payment.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SetMode is allowed with no session or while fields are pending; it clears
// any entered credentials.
func (c *Coordinator) SetMode(ctx context.Context, mode payment.Mode) (payment.Mode, error) {
	if !mode.IsValid() {
		return "", ErrInvalidMode
	}

	c.mu.Lock()
	defer c.unlockAndFlush(ctx)

	if s := c.active; s != nil && !s.State().IsTerminal() {
		if s.State() != payment.StateFieldsPending {
			return c.mode, ErrModeLocked
		}
		if err := s.SwitchMode(mode, c.clock.Now()); err != nil {
			return c.mode, errs.Mark(err, ErrModeLocked)
		}
	}
	if mode != c.mode {
		c.logger.Info("payment mode switched", "from", c.mode, "to", mode)
	}
	c.mode = mode
	return c.mode, nil
}

// SelectRail sets the rail and, for the redirect rail, the wallet option. In
// test mode a freshly selected wallet option is prefilled with sentinel
// credentials.
func (c *Coordinator) SelectRail(ctx context.Context, rail payment.Rail, wallet payment.WalletOption) (*SessionView, error) {
	c.mu.Lock()
	defer c.unlockAndFlush(ctx)

	s, err := c.editableLocked()
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	if err := s.SelectRail(rail, now); err != nil {
		return nil, markDomainErr(err)
	}
	if wallet != payment.WalletNone {
		if err := s.SelectWallet(wallet, now); err != nil {
			return nil, markDomainErr(err)
		}
		if s.Mode() == payment.ModeTest && s.Credentials() == nil {
			prefill := payment.WalletCredentials{Phone: c.settings.TestPhone, FullName: c.settings.TestFullName}
			if err := s.EnterCredentials(prefill, now); err != nil {
				return nil, markDomainErr(err)
			}
		}
	}
	return c.viewLocked(), nil
}

func (c *Coordinator) EnterCredentials(ctx context.Context, creds payment.Credentials) (*SessionView, error) {
	c.mu.Lock()
	defer c.unlockAndFlush(ctx)

	s, err := c.editableLocked()
	if err != nil {
		return nil, err
	}
	if err := s.EnterCredentials(creds, c.clock.Now()); err != nil {
		return nil, markDomainErr(err)
	}
	return c.viewLocked(), nil
}

// Submit validates, generates the reference once, and initializes the rail.
// Card rails resolve to a terminal state here; redirect rails stop at
// AwaitingRedirectCompletion with a checkout URL.
func (c *Coordinator) Submit(ctx context.Context) (*SessionView, error) {
	c.mu.Lock()

	s, err := c.liveLocked()
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	if s.State() != payment.StateFieldsPending {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	if err := s.CheckSubmittable(); err != nil {
		c.mu.Unlock()
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	adapter, ok := c.adapters[s.Rail()]
	if !ok {
		c.mu.Unlock()
		return nil, ErrUnsupportedRail
	}

	ref := c.refs.Generate()
	c.must(s.BeginSubmit(ref, c.clock.Now()))

	opCtx, cancel := c.operationContext(ctx)
	c.abort = cancel
	req := InitRequest{
		Reference:   ref,
		Mode:        s.Mode(),
		Draft:       s.Draft(),
		Wallet:      s.Wallet(),
		Credentials: s.Credentials(),
	}
	id := s.ID()
	c.logger.Info("payment submitted", "session_id", id, "tx_ref", ref, "rail", s.Rail(), "mode", s.Mode())
	c.mu.Unlock()

	res, initErr := adapter.Initialize(opCtx, req)
	cancel()

	c.mu.Lock()
	defer c.unlockAndFlush(ctx)

	if !c.isCurrentLocked(id, ref, payment.StateSubmitting) {
		c.logger.Warn("discarding stale initialize result", "session_id", id, "tx_ref", ref)
		return nil, ErrStaleResult
	}
	c.abort = nil

	now := c.clock.Now()
	switch {
	case initErr != nil:
		c.must(s.Fail(failureFrom(initErr, payment.FailureRailUnavailable), now))
	case res == nil:
		c.must(s.Fail(payment.Failure{Kind: payment.FailureMalformed, Reason: "rail returned no result"}, now))
	case res.Capture != nil:
		c.applyResultLocked(s, *res.Capture)
	case res.CheckoutURL != "":
		c.must(s.AwaitRedirect(res.CheckoutURL, now))
		c.logger.Info("awaiting redirect completion", "session_id", id, "tx_ref", ref)
	default:
		c.must(s.Fail(payment.Failure{Kind: payment.FailureMalformed, Reason: "rail returned no checkout URL"}, now))
	}

	if s.State().IsTerminal() {
		c.finishLocked(s)
	}
	return c.viewLocked(), nil
}

// Navigate receives every navigation of the embedded checkout surface. Only
// the first navigation to the return URL for the live reference triggers
// verification; everything else is a no-op.
func (c *Coordinator) Navigate(ctx context.Context, rawURL string) (*SessionView, error) {
	c.mu.Lock()

	s := c.active
	if s == nil {
		c.mu.Unlock()
		return nil, ErrNoActiveSession
	}
	if s.State() != payment.StateAwaitingRedirectCompletion || !c.isReturnURL(rawURL, s.Reference()) {
		view := c.viewLocked()
		c.mu.Unlock()
		return view, nil
	}
	c.logger.Info("return URL reached", "session_id", s.ID(), "tx_ref", s.Reference())
	return c.verifyAndUnlock(ctx, s)
}

// NotifyCallback is the server-side callback counterpart of Navigate.
func (c *Coordinator) NotifyCallback(ctx context.Context, ref payment.Reference) (*SessionView, error) {
	c.mu.Lock()

	s := c.active
	if s == nil {
		c.mu.Unlock()
		return nil, ErrNoActiveSession
	}
	if s.Reference() != ref || s.State() != payment.StateAwaitingRedirectCompletion {
		view := c.viewLocked()
		c.mu.Unlock()
		return view, nil
	}
	c.logger.Info("rail callback received", "session_id", s.ID(), "tx_ref", ref)
	return c.verifyAndUnlock(ctx, s)
}

// Cancel is refused once verification has started: funds may already be captured.
func (c *Coordinator) Cancel(ctx context.Context) (*SessionView, error) {
	c.mu.Lock()
	defer c.unlockAndFlush(ctx)

	s, err := c.liveLocked()
	if err != nil {
		return nil, err
	}
	if !payment.CanCancel(s.State()) {
		return nil, ErrCancelNotAllowed
	}
	c.cancelLocked(s)
	return newSessionView(s, nil), nil
}

// Close stops the pending auto-close timer.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopCloseTimerLocked()
	if c.abort != nil {
		c.abort()
		c.abort = nil
	}
}

func (c *Coordinator) verifyAndUnlock(ctx context.Context, s *payment.Session) (*SessionView, error) {
	adapter, ok := c.adapters[s.Rail()]
	if !ok {
		c.mu.Unlock()
		return nil, ErrUnsupportedRail
	}
	c.must(s.BeginVerification(c.clock.Now()))

	id, ref := s.ID(), s.Reference()
	opCtx, cancel := c.operationContext(ctx)
	c.abort = cancel
	c.mu.Unlock()

	result, verifyErr := adapter.Verify(opCtx, ref)
	cancel()

	c.mu.Lock()
	defer c.unlockAndFlush(ctx)
	c.abort = nil

	if !c.isCurrentLocked(id, ref, payment.StateVerifying) {
		// Open and Cancel both refuse a verifying session.
		c.must(errs.Newf("session %s left verifying while verification of %s was in flight", id, ref))
	}

	if verifyErr != nil {
		c.must(s.Fail(failureFrom(verifyErr, payment.FailureVerificationUnreachable), c.clock.Now()))
	} else {
		c.applyResultLocked(s, result)
	}
	c.finishLocked(s)
	return c.viewLocked(), nil
}

func (c *Coordinator) applyResultLocked(s *payment.Session, r payment.VerificationResult) {
	now := c.clock.Now()
	switch r.Status {
	case payment.VerificationSuccess:
		c.must(s.Complete(r.Amount, now))
	case payment.VerificationPending:
		c.must(s.CompletePending(now))
	default:
		reason := r.Reason
		if reason == "" {
			reason = "Payment was not completed"
		}
		c.must(s.Fail(payment.Failure{Kind: payment.FailureDeclined, Reason: reason}, now))
	}
}

// cancelLocked aborts any in-flight call and closes the session without a
// notification.
func (c *Coordinator) cancelLocked(s *payment.Session) {
	if c.abort != nil {
		c.abort()
		c.abort = nil
	}
	c.must(s.Cancel(c.clock.Now()))
	c.logger.Info("payment session cancelled", "session_id", s.ID(), "tx_ref", s.Reference())
	c.finishLocked(s)
}

// finishLocked reports a terminal session and schedules its closure.
func (c *Coordinator) finishLocked(s *payment.Session) {
	outcome := c.reporter.Report(s)
	c.outcome = &outcome

	logAttrs := []any{
		"session_id", s.ID(),
		"tx_ref", s.Reference(),
		"rail", s.Rail(),
		"state", s.State(),
		"severity", outcome.Severity,
	}
	if f := s.Failure(); f != nil {
		logAttrs = append(logAttrs, "failure_kind", f.Kind, "failure_reason", f.Reason)
	}
	c.logger.Info("payment session finished", logAttrs...)

	if !outcome.Silent() {
		c.outbox = append(c.outbox, c.eventLocked(s, EventOutcome, &outcome))
	}

	delay := c.reporter.CloseDelay(outcome)
	if delay <= 0 {
		c.closeLocked(s)
		return
	}
	c.stopCloseTimerLocked()
	id := s.ID()
	c.closeTimer = c.clock.AfterFunc(delay, func() { c.closeByTimer(id) })
}

func (c *Coordinator) closeByTimer(id uuid.UUID) {
	c.mu.Lock()
	defer c.unlockAndFlush(context.Background())

	if c.active == nil || c.active.ID() != id {
		return
	}
	c.closeTimer = nil
	c.closeLocked(c.active)
}

// closeLocked emits the close signal; the session is discarded if it is
// still the active one.
func (c *Coordinator) closeLocked(s *payment.Session) {
	c.outbox = append(c.outbox, c.eventLocked(s, EventClosed, nil))
	if c.active == s {
		c.active = nil
		c.outcome = nil
	}
}

// discardLocked drops a terminal session whose close timer has not fired yet.
func (c *Coordinator) discardLocked() {
	if c.active == nil {
		return
	}
	if c.closeTimer != nil {
		c.stopCloseTimerLocked()
		c.closeLocked(c.active)
	}
	c.active = nil
	c.outcome = nil
}

func (c *Coordinator) stopCloseTimerLocked() {
	if c.closeTimer != nil {
		c.closeTimer.Stop()
		c.closeTimer = nil
	}
}

func (c *Coordinator) eventLocked(s *payment.Session, typ EventType, outcome *Outcome) Event {
	return Event{
		Type:       typ,
		SessionID:  s.ID(),
		Reference:  s.Reference().String(),
		Rail:       s.Rail().String(),
		State:      s.State().String(),
		Outcome:    outcome,
		OccurredAt: c.clock.Now(),
	}
}

func (c *Coordinator) unlockAndFlush(ctx context.Context) {
	pending := c.outbox
	c.outbox = nil
	c.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	for _, ev := range pending {
		if err := c.events.Publish(ctx, ev); err != nil {
			c.logger.Warn("failed to publish payment event",
				"type", ev.Type, "session_id", ev.SessionID, "error", err)
		}
	}
}

// liveLocked returns the active, non-terminal session.
func (c *Coordinator) liveLocked() (*payment.Session, error) {
	if c.active == nil {
		return nil, ErrNoActiveSession
	}
	if c.active.State().IsTerminal() {
		return nil, ErrSessionFinished
	}
	return c.active, nil
}

func (c *Coordinator) editableLocked() (*payment.Session, error) {
	s, err := c.liveLocked()
	if err != nil {
		return nil, err
	}
	if s.State() != payment.StateFieldsPending {
		return nil, ErrNotEditable
	}
	return s, nil
}

// isCurrentLocked is the stale-response guard: a resolution only applies to
// the session and reference it was started for.
func (c *Coordinator) isCurrentLocked(id uuid.UUID, ref payment.Reference, state payment.State) bool {
	s := c.active
	return s != nil && s.ID() == id && s.Reference() == ref && s.State() == state
}

func (c *Coordinator) isReturnURL(rawURL string, ref payment.Reference) bool {
	u, err := url.Parse(rawURL)
	if err != nil || !sameEndpoint(u, c.returnTo) {
		return false
	}
	q := u.Query()
	param, found := lo.Find(returnRefParams, func(p string) bool { return q.Get(p) != "" })
	if found && q.Get(param) != ref.String() {
		c.logger.Warn("return URL carries a foreign reference",
			"tx_ref", ref, "returned_ref", q.Get(param))
		return false
	}
	return true
}

// sameEndpoint compares scheme, host and path; a trailing slash is not significant.
func sameEndpoint(a, b *url.URL) bool {
	return strings.EqualFold(a.Scheme, b.Scheme) &&
		strings.EqualFold(a.Host, b.Host) &&
		strings.TrimSuffix(a.Path, "/") == strings.TrimSuffix(b.Path, "/")
}

func (c *Coordinator) operationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	base := context.WithoutCancel(ctx)
	if c.settings.OperationTimeout > 0 {
		return context.WithTimeout(base, c.settings.OperationTimeout)
	}
	return context.WithCancel(base)
}

func (c *Coordinator) viewLocked() *SessionView {
	if c.active == nil {
		return nil
	}
	return newSessionView(c.active, c.outcome)
}

// must guards transitions the state machine makes unreachable.
func (c *Coordinator) must(err error) {
	if err == nil {
		return
	}
	err = errs.Mark(errs.Wrap(err, "payment session state machine"), errs.ErrSessionMisuse)
	c.logger.Error("session misuse", "error", err)
	panic(err)
}

func failureFrom(err error, transportKind payment.FailureKind) payment.Failure {
	reason := infra.RailMessage(err)
	switch {
	case infra.IsKind(err, infra.KindDeclined):
		return payment.Failure{Kind: payment.FailureDeclined, Reason: reason}
	case infra.IsKind(err, infra.KindMalformed):
		return payment.Failure{Kind: payment.FailureMalformed, Reason: reason}
	case errors.Is(err, context.DeadlineExceeded):
		return payment.Failure{Kind: transportKind, Reason: "request timed out"}
	default:
		return payment.Failure{Kind: transportKind, Reason: reason}
	}
}

func markDomainErr(err error) error {
	switch {
	case errors.Is(err, payment.ErrNotEditable):
		return errs.Mark(err, ErrNotEditable)
	case errors.Is(err, payment.ErrInvalidRail),
		errors.Is(err, payment.ErrInvalidWallet),
		errors.Is(err, payment.ErrWalletNotApplicable),
		errors.Is(err, payment.ErrRailMismatch):
		return errs.Mark(err, ErrInvalidSelection)
	default:
		return err
	}
}
