package payment

import "strings"

// Credentials is the guest-entered input for one rail.
type Credentials interface {
	Rail() Rail
	// Validate returns nil when every field required by the rail passes.
	Validate() FieldErrors
}

type WalletCredentials struct {
	Phone    string
	FullName string
}

func (WalletCredentials) Rail() Rail { return RailRedirectAggregator }

func (c WalletCredentials) Validate() FieldErrors {
	var fe FieldErrors
	if c.Phone == "" {
		fe.add("phoneNumber", "Phone number is required")
	} else if !ValidPhone(c.Phone) {
		fe.add("phoneNumber", "Please enter a valid Ethiopian phone number (09XXXXXXXX)")
	}
	if strings.TrimSpace(c.FullName) == "" {
		fe.add("fullName", "Full name is required")
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// SplitName returns the first token as first name and the rest as last name.
func (c WalletCredentials) SplitName() (first, last string) {
	parts := strings.Fields(c.FullName)
	if len(parts) == 0 {
		return "", "User"
	}
	if len(parts) == 1 {
		return parts[0], "User"
	}
	return parts[0], strings.Join(parts[1:], " ")
}

type CardCredentials struct {
	HolderName string
	Email      string
	Number     string
	Expiry     string
	CVV        string
}

func (CardCredentials) Rail() Rail { return RailCardNetwork }

func (c CardCredentials) Validate() FieldErrors {
	var fe FieldErrors
	if strings.TrimSpace(c.HolderName) == "" {
		fe.add("cardholderName", "Cardholder name is required")
	}
	if !ValidEmail(c.Email) {
		fe.add("email", "Please enter a valid email address")
	}
	if !ValidCardNumber(c.Number) {
		fe.add("cardNumber", "Please enter a valid 16-digit card number")
	}
	if !ValidExpiry(c.Expiry) {
		fe.add("expiry", "Please enter a valid expiry date (MM/YY)")
	}
	if !ValidCVV(c.CVV) {
		fe.add("cvv", "Please enter a valid CVV (3 or 4 digits)")
	}
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Last4 is the only part of the card number safe to expose.
func (c CardCredentials) Last4() string {
	if len(c.Number) < 4 {
		return ""
	}
	return c.Number[len(c.Number)-4:]
}
