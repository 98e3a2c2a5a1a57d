package booking

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrMissingHotel      = errors.New("hotel is required")
	ErrMissingRoomType   = errors.New("room type is required")
	ErrNoRooms           = errors.New("at least one room is required")
	ErrInvalidGuestCount = errors.New("guest count must be positive")
)

// Draft is the confirmed room selection handed over by the booking screens.
// It is read-only once constructed.
type Draft struct {
	id        uuid.UUID
	hotelID   string
	hotelName string
	roomType  string
	roomIDs   []string
	guests    int
	stay      Stay
	total     Money
}

func NewDraft(
	id uuid.UUID,
	hotelID, hotelName, roomType string,
	roomIDs []string,
	guests int,
	stay Stay,
	total Money,
) (*Draft, error) {
	hotelID = strings.TrimSpace(hotelID)
	if hotelID == "" {
		return nil, ErrMissingHotel
	}
	roomType = strings.TrimSpace(roomType)
	if roomType == "" {
		return nil, ErrMissingRoomType
	}
	rooms := make([]string, 0, len(roomIDs))
	for _, r := range roomIDs {
		if r = strings.TrimSpace(r); r != "" {
			rooms = append(rooms, r)
		}
	}
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}
	if guests <= 0 {
		return nil, ErrInvalidGuestCount
	}
	if !total.Amount().IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Draft{
		id:        id,
		hotelID:   hotelID,
		hotelName: strings.TrimSpace(hotelName),
		roomType:  roomType,
		roomIDs:   rooms,
		guests:    guests,
		stay:      stay,
		total:     total,
	}, nil
}

func (d *Draft) ID() uuid.UUID     { return d.id }
func (d *Draft) HotelID() string   { return d.hotelID }
func (d *Draft) HotelName() string { return d.hotelName }
func (d *Draft) RoomType() string  { return d.roomType }
func (d *Draft) Guests() int       { return d.guests }
func (d *Draft) Stay() Stay        { return d.stay }
func (d *Draft) Total() Money      { return d.total }

// RoomIDs returns a copy so callers cannot mutate the draft.
func (d *Draft) RoomIDs() []string {
	out := make([]string, len(d.roomIDs))
	copy(out, d.roomIDs)
	return out
}
