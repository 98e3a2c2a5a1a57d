package request

import (
	"strings"

	"amhara-checkout/internal/domain/booking"
	"amhara-checkout/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OpenSessionRequest is the booking draft handed over by the reservation screen.
type OpenSessionRequest struct {
	DraftID   uuid.UUID       `json:"draft_id"`
	HotelID   string          `json:"hotel_id" binding:"required"`
	HotelName string          `json:"hotel_name"`
	RoomType  string          `json:"room_type" binding:"required"`
	RoomIDs   []string        `json:"room_ids" binding:"required,min=1,dive,required"`
	Guests    int             `json:"guests" binding:"required,min=1"`
	CheckIn   string          `json:"check_in" binding:"required"`
	CheckOut  string          `json:"check_out" binding:"required"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
}

func (r OpenSessionRequest) ToDomain() (*booking.Draft, error) {
	stay, err := booking.ParseStay(r.CheckIn, r.CheckOut)
	if err != nil {
		return nil, err
	}

	currency := r.Currency
	if strings.TrimSpace(currency) == "" {
		currency = booking.DefaultCurrency
	}
	total, err := booking.NewMoney(r.Total, currency)
	if err != nil {
		return nil, err
	}

	return booking.NewDraft(r.DraftID, r.HotelID, r.HotelName, r.RoomType, r.RoomIDs, r.Guests, stay, total)
}

type SelectRailRequest struct {
	Rail         string `json:"rail" binding:"required,oneof=redirect_aggregator card_network"`
	WalletOption string `json:"wallet_option" binding:"omitempty,oneof=telebirr cbe_birr"`
}

func (r SelectRailRequest) ToDomain() (payment.Rail, payment.WalletOption) {
	return payment.Rail(r.Rail), payment.WalletOption(r.WalletOption)
}

// CredentialsRequest carries the fields of either rail; Rail decides which
// ones are read.
type CredentialsRequest struct {
	Rail string `json:"rail" binding:"required,oneof=redirect_aggregator card_network"`

	PhoneNumber string `json:"phone_number"`
	FullName    string `json:"full_name"`

	CardholderName string `json:"cardholder_name"`
	Email          string `json:"email"`
	CardNumber     string `json:"card_number"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
}

func (r CredentialsRequest) ToDomain() payment.Credentials {
	if payment.Rail(r.Rail) == payment.RailCardNetwork {
		return payment.CardCredentials{
			HolderName: strings.TrimSpace(r.CardholderName),
			Email:      strings.TrimSpace(r.Email),
			Number:     stripCardSeparators(r.CardNumber),
			Expiry:     strings.TrimSpace(r.Expiry),
			CVV:        strings.TrimSpace(r.CVV),
		}
	}
	return payment.WalletCredentials{
		Phone:    strings.TrimSpace(r.PhoneNumber),
		FullName: strings.TrimSpace(r.FullName),
	}
}

// card numbers are typed in groups of four
func stripCardSeparators(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(s)
}

type NavigationRequest struct {
	URL string `json:"url" binding:"required"`
}

type ModeRequest struct {
	Mode string `json:"mode" binding:"required,oneof=test live"`
}
