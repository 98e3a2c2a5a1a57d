//go:build unit || e2e

package builder

import (
	"time"

	"amhara-checkout/internal/domain/booking"
	reqdto "amhara-checkout/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DraftBuilder struct {
	ID        uuid.UUID
	HotelID   string
	HotelName string
	RoomType  string
	RoomIDs   []string
	Guests    int
	CheckIn   time.Time
	CheckOut  time.Time
	Total     string
	Currency  string
}

func NewDraftBuilder() *DraftBuilder {
	checkIn := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	return &DraftBuilder{
		ID:        uuid.New(),
		HotelID:   "hotel-gondar-01",
		HotelName: "Goha Hotel",
		RoomType:  "Deluxe",
		RoomIDs:   []string{"room-101"},
		Guests:    2,
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDate(0, 0, 2),
		Total:     "100",
		Currency:  "USD",
	}
}

func (b *DraftBuilder) With(mutate func(*DraftBuilder)) *DraftBuilder {
	mutate(b)
	return b
}

func (b *DraftBuilder) WithTotal(amount string) *DraftBuilder {
	b.Total = amount
	return b
}

func (b *DraftBuilder) WithRoomType(roomType string) *DraftBuilder {
	b.RoomType = roomType
	return b
}

// Build methods
func (b *DraftBuilder) BuildDomain() (*booking.Draft, error) {
	stay, err := booking.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	total, err := booking.NewMoney(decimal.RequireFromString(b.Total), b.Currency)
	if err != nil {
		return nil, err
	}
	return booking.NewDraft(b.ID, b.HotelID, b.HotelName, b.RoomType, b.RoomIDs, b.Guests, stay, total)
}

// MustBuildDomain panics on invalid builder state.
func (b *DraftBuilder) MustBuildDomain() *booking.Draft {
	d, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return d
}

func (b *DraftBuilder) BuildOpenRequestDTO() reqdto.OpenSessionRequest {
	return reqdto.OpenSessionRequest{
		DraftID:   b.ID,
		HotelID:   b.HotelID,
		HotelName: b.HotelName,
		RoomType:  b.RoomType,
		RoomIDs:   b.RoomIDs,
		Guests:    b.Guests,
		CheckIn:   b.CheckIn.Format(time.DateOnly),
		CheckOut:  b.CheckOut.Format(time.DateOnly),
		Total:     decimal.RequireFromString(b.Total),
		Currency:  b.Currency,
	}
}
