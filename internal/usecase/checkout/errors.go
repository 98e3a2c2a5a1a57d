package checkout

import "amhara-checkout/internal/pkg/errs"

var (
	ErrNoActiveSession      = errs.New("no active payment session")
	ErrSessionFinished      = errs.New("payment session already finished")
	ErrInvalidDraft         = errs.New("invalid booking draft")
	ErrInvalidSelection     = errs.New("invalid rail or option selection")
	ErrNotEditable          = errs.New("payment session is not accepting changes")
	ErrSubmitInFlight       = errs.New("payment already in progress")
	ErrVerificationInFlight = errs.New("payment verification in progress")
	ErrCancelNotAllowed     = errs.New("payment can no longer be cancelled")
	ErrModeLocked           = errs.New("payment mode cannot change mid-flight")
	ErrInvalidMode          = errs.New("invalid payment mode")
	ErrUnsupportedRail      = errs.New("payment rail not configured")
	ErrStaleResult          = errs.New("payment session changed while the request was in flight")
)
