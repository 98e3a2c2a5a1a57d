//go:build unit

package payment_test

import (
	"testing"

	"amhara-checkout/internal/domain/payment"
	"amhara-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestValidators(t *testing.T) {
	cases := []struct {
		name  string
		check func(string) bool
		input string
		want  bool
	}{
		{"phone: local mobile", payment.ValidPhone, "0912345678", true},
		{"phone: nine digits", payment.ValidPhone, "091234567", false},
		{"phone: international prefix", payment.ValidPhone, "+251912345678", false},
		{"phone: wrong leading digits", payment.ValidPhone, "0812345678", false},
		{"phone: empty", payment.ValidPhone, "", false},

		{"card: 16 digits", payment.ValidCardNumber, "4242424242424242", true},
		{"card: with spaces", payment.ValidCardNumber, "4242 4242 4242 4242", false},
		{"card: 15 digits", payment.ValidCardNumber, "424242424242424", false},
		{"card: letters", payment.ValidCardNumber, "42424242424242ab", false},

		{"expiry: MM/YY", payment.ValidExpiry, "12/29", true},
		{"expiry: january", payment.ValidExpiry, "01/30", true},
		{"expiry: month 13", payment.ValidExpiry, "13/25", false},
		{"expiry: month 00", payment.ValidExpiry, "00/25", false},
		{"expiry: no slash", payment.ValidExpiry, "1229", false},
		{"expiry: four-digit year", payment.ValidExpiry, "12/2029", false},

		{"cvv: three digits", payment.ValidCVV, "123", true},
		{"cvv: four digits", payment.ValidCVV, "1234", true},
		{"cvv: two digits", payment.ValidCVV, "12", false},
		{"cvv: five digits", payment.ValidCVV, "12345", false},

		{"email: simple", payment.ValidEmail, "a@b.co", true},
		{"email: no domain dot", payment.ValidEmail, "a@b", false},
		{"email: whitespace", payment.ValidEmail, "a b@c.de", false},
		{"email: empty", payment.ValidEmail, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.check(tc.input))
		})
	}
}

func TestWalletCredentials(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, builder.ValidWallet().Validate())
	})

	t.Run("missing fields are reported per field", func(t *testing.T) {
		fe := payment.WalletCredentials{}.Validate()
		assert.True(t, fe.Has("phoneNumber"))
		assert.True(t, fe.Has("fullName"))
	})

	t.Run("malformed phone", func(t *testing.T) {
		fe := payment.WalletCredentials{Phone: "12345", FullName: "Abebe"}.Validate()
		assert.Len(t, fe, 1)
		assert.Equal(t, "phoneNumber", fe[0].Field)
	})

	t.Run("name split", func(t *testing.T) {
		first, last := payment.WalletCredentials{FullName: "Abebe Kebede Tadesse"}.SplitName()
		assert.Equal(t, "Abebe", first)
		assert.Equal(t, "Kebede Tadesse", last)

		first, last = payment.WalletCredentials{FullName: "Abebe"}.SplitName()
		assert.Equal(t, "Abebe", first)
		assert.Equal(t, "User", last)
	})
}

func TestCardCredentials(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.Empty(t, builder.ValidCard().Validate())
	})

	t.Run("each invalid field is reported", func(t *testing.T) {
		cases := []struct {
			field  string
			mutate func(*payment.CardCredentials)
		}{
			{"cardholderName", func(c *payment.CardCredentials) { c.HolderName = " " }},
			{"email", func(c *payment.CardCredentials) { c.Email = "nope" }},
			{"cardNumber", func(c *payment.CardCredentials) { c.Number = "4242" }},
			{"expiry", func(c *payment.CardCredentials) { c.Expiry = "13/25" }},
			{"cvv", func(c *payment.CardCredentials) { c.CVV = "12" }},
		}
		for _, tc := range cases {
			t.Run(tc.field, func(t *testing.T) {
				fe := builder.CardWith(tc.mutate).Validate()
				assert.Len(t, fe, 1)
				assert.True(t, fe.Has(tc.field))
			})
		}
	})

	t.Run("last four digits", func(t *testing.T) {
		assert.Equal(t, "4242", builder.ValidCard().Last4())
		assert.Equal(t, "", payment.CardCredentials{Number: "42"}.Last4())
	})
}
