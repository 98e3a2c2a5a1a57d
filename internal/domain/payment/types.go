package payment

type Rail string

const (
	RailRedirectAggregator Rail = "redirect_aggregator"
	RailCardNetwork        Rail = "card_network"
)

func (r Rail) String() string {
	return string(r)
}

func (r Rail) IsValid() bool {
	switch r {
	case RailRedirectAggregator, RailCardNetwork:
		return true
	default:
		return false
	}
}

// WalletOption is a sub-option of the redirect aggregator rail.
type WalletOption string

const (
	WalletNone     WalletOption = ""
	WalletTelebirr WalletOption = "telebirr"
	WalletCBEBirr  WalletOption = "cbe_birr"
)

func (w WalletOption) IsValid() bool {
	switch w {
	case WalletTelebirr, WalletCBEBirr:
		return true
	default:
		return false
	}
}

func (w WalletOption) DisplayName() string {
	switch w {
	case WalletTelebirr:
		return "Telebirr"
	case WalletCBEBirr:
		return "CBE Birr"
	default:
		return ""
	}
}

type Mode string

const (
	ModeTest Mode = "test"
	ModeLive Mode = "live"
)

func (m Mode) IsValid() bool {
	return m == ModeTest || m == ModeLive
}

func (m Mode) String() string {
	return string(m)
}

type State string

const (
	StateIdle                       State = "idle"
	StateFieldsPending              State = "fields_pending"
	StateSubmitting                 State = "submitting"
	StateAwaitingRedirectCompletion State = "awaiting_redirect_completion"
	StateVerifying                  State = "verifying"
	StateCompleted                  State = "completed"
	StateFailed                     State = "failed"
	StateCancelled                  State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsTerminal() bool {
	switch s {
	case StateCompleted, StateFailed, StateCancelled:
		return true
	default:
		return false
	}
}

type FailureKind string

const (
	// The rail rejected input that should have been caught locally.
	FailureMalformed FailureKind = "malformed"
	FailureDeclined  FailureKind = "declined"
	// Transport failure while initializing.
	FailureRailUnavailable FailureKind = "rail_unavailable"
	// Transport failure after the guest reached the return URL.
	FailureVerificationUnreachable FailureKind = "verification_unreachable"
)

type Failure struct {
	Kind   FailureKind
	Reason string
}
