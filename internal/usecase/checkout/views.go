package checkout

import (
	"time"

	"amhara-checkout/internal/domain/payment"

	"github.com/google/uuid"
)

type SessionView struct {
	ID             uuid.UUID
	DraftID        uuid.UUID
	HotelName      string
	RoomType       string
	RoomIDs        []string
	Guests         int
	CheckIn        string
	CheckOut       string
	Total          string
	Currency       string
	Mode           string
	Rail           string
	WalletOption   string
	HasCredentials bool
	FieldErrors    payment.FieldErrors
	Reference      string
	CheckoutURL    string
	State          string
	Pending        bool
	PaidAmount     string
	PaidCurrency   string
	FailureKind    string
	FailureReason  string
	Outcome        *Outcome
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func newSessionView(s *payment.Session, outcome *Outcome) *SessionView {
	d := s.Draft()
	v := &SessionView{
		ID:           s.ID(),
		DraftID:      d.ID(),
		HotelName:    d.HotelName(),
		RoomType:     d.RoomType(),
		RoomIDs:      d.RoomIDs(),
		Guests:       d.Guests(),
		CheckIn:      d.Stay().CheckIn().Format(time.DateOnly),
		CheckOut:     d.Stay().CheckOut().Format(time.DateOnly),
		Total:        d.Total().Fixed(),
		Currency:     d.Total().Currency(),
		Mode:         s.Mode().String(),
		Rail:         s.Rail().String(),
		WalletOption: string(s.Wallet()),
		Reference:    s.Reference().String(),
		CheckoutURL:  s.CheckoutURL(),
		State:        s.State().String(),
		Pending:      s.IsPending(),
		Outcome:      outcome,
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
	if c := s.Credentials(); c != nil {
		v.HasCredentials = true
		if s.State() == payment.StateFieldsPending {
			v.FieldErrors = c.Validate()
		}
	}
	if p := s.Paid(); p != nil {
		v.PaidAmount = p.Fixed()
		v.PaidCurrency = p.Currency()
	}
	if f := s.Failure(); f != nil {
		v.FailureKind = string(f.Kind)
		v.FailureReason = f.Reason
	}
	return v
}
