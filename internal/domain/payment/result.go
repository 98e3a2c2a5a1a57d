package payment

import "amhara-checkout/internal/domain/booking"

type VerificationStatus string

const (
	VerificationSuccess VerificationStatus = "success"
	VerificationPending VerificationStatus = "pending"
	VerificationFailed  VerificationStatus = "failed"
)

// VerificationResult is what a rail reports for a reference.
type VerificationResult struct {
	Status VerificationStatus
	// Set on success.
	Amount booking.Money
	// Set on failure.
	Reason string
}

func Succeeded(amount booking.Money) VerificationResult {
	return VerificationResult{Status: VerificationSuccess, Amount: amount}
}

func StillPending() VerificationResult {
	return VerificationResult{Status: VerificationPending}
}

func Rejected(reason string) VerificationResult {
	return VerificationResult{Status: VerificationFailed, Reason: reason}
}
