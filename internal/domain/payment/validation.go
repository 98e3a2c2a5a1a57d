package payment

import (
	"regexp"
	"strings"
)

var (
	phonePattern  = regexp.MustCompile(`^09\d{8}$`)
	cardPattern   = regexp.MustCompile(`^\d{16}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidPhone accepts local mobile numbers: 09 followed by eight digits.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidCardNumber accepts exactly 16 digits; separators are not stripped here.
func ValidCardNumber(number string) bool {
	return cardPattern.MatchString(number)
}

// ValidExpiry accepts MM/YY with a month between 01 and 12.
func ValidExpiry(expiry string) bool {
	return expiryPattern.MatchString(expiry)
}

func ValidCVV(cvv string) bool {
	return cvvPattern.MatchString(cvv)
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, e := range fe {
		parts[i] = e.Field + ": " + e.Message
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

func (fe *FieldErrors) add(field, message string) {
	*fe = append(*fe, FieldError{Field: field, Message: message})
}
