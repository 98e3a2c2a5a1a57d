//go:build unit

package booking_test

import (
	"testing"
	"time"

	"amhara-checkout/internal/domain/booking"
	"amhara-checkout/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.DraftBuilder)
	errIs  error
}

func TestDraft(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewDraftBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, b.ID, actual.ID())
		assert.Equal(t, "Deluxe", actual.RoomType())
		assert.Equal(t, []string{"room-101"}, actual.RoomIDs())
		assert.Equal(t, 2, actual.Stay().Nights())
		assert.True(t, actual.Total().Equal(booking.MustMoney("100", "USD")))
	})

	t.Run("nil id is generated", func(t *testing.T) {
		actual, err := builder.NewDraftBuilder().With(func(b *builder.DraftBuilder) { b.ID = uuid.Nil }).BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, actual.ID())
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing hotel",
				mutate: func(b *builder.DraftBuilder) { b.HotelID = "  " },
				errIs:  booking.ErrMissingHotel,
			},
			{
				name:   "missing room type",
				mutate: func(b *builder.DraftBuilder) { b.RoomType = "" },
				errIs:  booking.ErrMissingRoomType,
			},
			{
				name:   "no rooms",
				mutate: func(b *builder.DraftBuilder) { b.RoomIDs = nil },
				errIs:  booking.ErrNoRooms,
			},
			{
				name:   "blank room ids only",
				mutate: func(b *builder.DraftBuilder) { b.RoomIDs = []string{" ", ""} },
				errIs:  booking.ErrNoRooms,
			},
			{
				name:   "zero guests",
				mutate: func(b *builder.DraftBuilder) { b.Guests = 0 },
				errIs:  booking.ErrInvalidGuestCount,
			},
			{
				name:   "zero total",
				mutate: func(b *builder.DraftBuilder) { b.Total = "0" },
				errIs:  booking.ErrNonPositiveAmount,
			},
			{
				name:   "negative total",
				mutate: func(b *builder.DraftBuilder) { b.Total = "-5" },
				errIs:  booking.ErrNegativeMoney,
			},
			{
				name:   "bad currency",
				mutate: func(b *builder.DraftBuilder) { b.Currency = "DOLLARS" },
				errIs:  booking.ErrInvalidCurrency,
			},
			{
				name:   "check-out before check-in",
				mutate: func(b *builder.DraftBuilder) { b.CheckOut = b.CheckIn.AddDate(0, 0, -1) },
				errIs:  booking.ErrInvalidStay,
			},
			{
				name:   "same-day stay",
				mutate: func(b *builder.DraftBuilder) { b.CheckOut = b.CheckIn.Add(6 * time.Hour) },
				errIs:  booking.ErrInvalidStay,
			},
		})
	})

	t.Run("room ids are copied", func(t *testing.T) {
		actual, err := builder.NewDraftBuilder().BuildDomain()
		require.NoError(t, err)

		rooms := actual.RoomIDs()
		rooms[0] = "tampered"
		assert.Equal(t, "room-101", actual.RoomIDs()[0])
	})
}

func TestMoney(t *testing.T) {
	t.Run("string rendering", func(t *testing.T) {
		assert.Equal(t, "$100", booking.MustMoney("100", "USD").String())
		assert.Equal(t, "$100.50", booking.MustMoney("100.5", "USD").String())
		assert.Equal(t, "ETB 100.00", booking.MustMoney("100", "ETB").String())
	})

	t.Run("convert at fixed rate", func(t *testing.T) {
		converted, err := booking.MustMoney("100", "USD").Convert(decimal.NewFromInt(120), "ETB")
		require.NoError(t, err)
		assert.Equal(t, "ETB", converted.Currency())
		assert.Equal(t, "12000.00", converted.Fixed())
	})

	t.Run("convert to same currency is a no-op", func(t *testing.T) {
		m := booking.MustMoney("42.10", "ETB")
		converted, err := m.Convert(decimal.NewFromInt(120), "etb")
		require.NoError(t, err)
		assert.True(t, m.Equal(converted))
	})

	t.Run("add requires same currency", func(t *testing.T) {
		_, err := booking.MustMoney("1", "USD").Add(booking.MustMoney("1", "ETB"))
		assert.ErrorIs(t, err, booking.ErrCurrencyMismatch)

		sum, err := booking.MustMoney("1.25", "USD").Add(booking.MustMoney("2", "USD"))
		require.NoError(t, err)
		assert.Equal(t, "3.25", sum.Fixed())
	})
}

func TestParseStay(t *testing.T) {
	stay, err := booking.ParseStay("2026-11-02", "2026-11-05")
	require.NoError(t, err)
	assert.Equal(t, 3, stay.Nights())

	_, err = booking.ParseStay("02/11/2026", "2026-11-05")
	assert.Error(t, err)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewDraftBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()

			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, actual)
			}
		})
	}
}
