package checkout

import (
	"fmt"
	"time"

	"amhara-checkout/internal/domain/payment"
)

const DefaultCloseDelay = 2 * time.Second

// Reporter turns terminal sessions into user-facing outcomes.
type Reporter struct {
	closeDelay time.Duration
}

func NewReporter(closeDelay time.Duration) *Reporter {
	if closeDelay <= 0 {
		closeDelay = DefaultCloseDelay
	}
	return &Reporter{closeDelay: closeDelay}
}

// Report panics when s is not terminal.
func (r *Reporter) Report(s *payment.Session) Outcome {
	switch s.State() {
	case payment.StateCompleted:
		if s.IsPending() {
			return Outcome{
				Severity: SeverityPending,
				Title:    "Payment Pending",
				Message:  "Your payment is still processing. Please check back later.",
			}
		}
		return r.success(s)
	case payment.StateFailed:
		return r.failure(s)
	case payment.StateCancelled:
		return Outcome{Severity: SeverityNone}
	default:
		panic(fmt.Sprintf("outcome requested for non-terminal session in state %s", s.State()))
	}
}

// CloseDelay is how long a notification stays up before the flow closes.
// Silent outcomes close right away.
func (r *Reporter) CloseDelay(o Outcome) time.Duration {
	if o.Silent() {
		return 0
	}
	return r.closeDelay
}

func (r *Reporter) success(s *payment.Session) Outcome {
	test := s.Mode() == payment.ModeTest
	paid := s.Draft().Total()
	if p := s.Paid(); p != nil && !p.IsZero() {
		paid = *p
	}

	if s.Rail() == payment.RailRedirectAggregator {
		title := "Payment Successful"
		if test {
			title = "Test Payment Successful"
		}
		return Outcome{
			Severity: SeveritySuccess,
			Title:    title,
			Message: fmt.Sprintf("Payment successful via %s! %s %s paid. TxRef: %s",
				s.Wallet().DisplayName(), paid.Currency(), paid.Fixed(), s.Reference()),
		}
	}

	if test {
		return Outcome{
			Severity: SeveritySuccess,
			Title:    "Payment Successful (Test Mode)",
			Message:  fmt.Sprintf("Test payment successful! %s paid", paid),
		}
	}
	return Outcome{
		Severity: SeveritySuccess,
		Title:    "Payment Successful",
		Message:  fmt.Sprintf("Payment successful! %s paid", paid),
	}
}

func (r *Reporter) failure(s *payment.Session) Outcome {
	f := s.Failure()
	if f == nil {
		return Outcome{Severity: SeverityFailure, Title: "Payment Failed", Message: "Payment processing failed"}
	}

	switch f.Kind {
	case payment.FailureVerificationUnreachable:
		return Outcome{
			Severity: SeverityFailure,
			Title:    "Payment Verification Failed",
			Message: withReason("We could not confirm your payment with the provider. "+
				"Do not pay again; check your wallet before retrying.", f.Reason),
		}
	case payment.FailureRailUnavailable:
		return Outcome{
			Severity: SeverityFailure,
			Title:    "Payment Failed",
			Message:  withReason("Could not reach the payment provider. Please try again.", f.Reason),
		}
	case payment.FailureMalformed:
		return Outcome{
			Severity: SeverityFailure,
			Title:    "Payment Failed",
			Message:  withReason("The payment provider rejected the payment details.", f.Reason),
		}
	default:
		msg := f.Reason
		if msg == "" {
			msg = "Payment processing failed"
		}
		return Outcome{Severity: SeverityFailure, Title: "Payment Failed", Message: msg}
	}
}

func withReason(msg, reason string) string {
	if reason == "" {
		return msg
	}
	return msg + " (" + reason + ")"
}
