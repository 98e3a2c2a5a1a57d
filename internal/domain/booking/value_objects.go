package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidStay       = errors.New("check-out must be after check-in")
	ErrNegativeMoney     = errors.New("money cannot be negative")
	ErrInvalidCurrency   = errors.New("currency must be a 3-letter code")
	ErrCurrencyMismatch  = errors.New("currency mismatch")
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// Stay is a check-in/check-out pair of calendar dates.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in, out := toDate(checkIn), toDate(checkOut)
	if !out.After(in) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

// ParseStay parses YYYY-MM-DD dates.
func ParseStay(checkIn, checkOut string) (Stay, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return Stay{}, err
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return Stay{}, err
	}
	return NewStay(in, out)
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

func (s Stay) String() string {
	return s.checkIn.Format(dateLayout) + "/" + s.checkOut.Format(dateLayout)
}

func toDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Money struct {
	amount   decimal.Decimal
	currency string
}

// DefaultCurrency is the currency drafts are priced in when none is given.
const DefaultCurrency = "USD"

func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeMoney
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return Money{}, ErrInvalidCurrency
	}
	return Money{amount: amount, currency: currency}, nil
}

// MustMoney panics on invalid input; for constants and tests.
func MustMoney(amount, currency string) Money {
	m, err := NewMoney(decimal.RequireFromString(amount), currency)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() string        { return m.currency }
func (m Money) IsZero() bool            { return m.amount.IsZero() }

// Convert applies a fixed rate and rounds to two decimal places.
func (m Money) Convert(rate decimal.Decimal, currency string) (Money, error) {
	if m.currency == strings.ToUpper(currency) {
		return m, nil
	}
	return NewMoney(m.amount.Mul(rate).Round(2), currency)
}

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Fixed renders the amount with two decimals, e.g. "12000.00".
func (m Money) Fixed() string {
	return m.amount.StringFixed(2)
}

// String renders "$100" style for USD and "ETB 100.00" for other currencies.
func (m Money) String() string {
	if m.currency == "USD" {
		if m.amount.IsInteger() {
			return "$" + m.amount.String()
		}
		return "$" + m.amount.StringFixed(2)
	}
	return m.currency + " " + m.amount.StringFixed(2)
}

func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}
