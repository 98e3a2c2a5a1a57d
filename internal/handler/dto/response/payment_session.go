package response

import (
	"time"

	"amhara-checkout/internal/domain/payment"
	"amhara-checkout/internal/usecase/checkout"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OutcomeResponse struct {
	Severity string `json:"severity"`
	Title    string `json:"title,omitempty"`
	Message  string `json:"message,omitempty"`
}

type SessionResponse struct {
	ID             uuid.UUID           `json:"id"`
	DraftID        uuid.UUID           `json:"draftId"`
	HotelName      string              `json:"hotelName,omitempty"`
	RoomType       string              `json:"roomType"`
	RoomIDs        []string            `json:"roomIds"`
	Guests         int                 `json:"guests"`
	CheckIn        string              `json:"checkIn"`
	CheckOut       string              `json:"checkOut"`
	Total          string              `json:"total"`
	Currency       string              `json:"currency"`
	Mode           string              `json:"mode"`
	Rail           string              `json:"rail"`
	WalletOption   string              `json:"walletOption,omitempty"`
	HasCredentials bool                `json:"hasCredentials"`
	FieldErrors    payment.FieldErrors `json:"fieldErrors,omitempty"`
	Reference      string              `json:"reference,omitempty"`
	CheckoutURL    string              `json:"checkoutUrl,omitempty"`
	State          string              `json:"state"`
	Pending        bool                `json:"pending,omitempty"`
	PaidAmount     string              `json:"paidAmount,omitempty"`
	PaidCurrency   string              `json:"paidCurrency,omitempty"`
	FailureKind    string              `json:"failureKind,omitempty"`
	FailureReason  string              `json:"failureReason,omitempty"`
	Outcome        *OutcomeResponse    `json:"outcome,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

type ModeResponse struct {
	Mode string `json:"mode"`
}

func FromSessionView(v *checkout.SessionView) (*SessionResponse, error) {
	var resp SessionResponse
	if err := copier.CopyWithOption(&resp, v, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return &resp, nil
}
