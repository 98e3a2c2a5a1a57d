//go:build unit || e2e

package builder

import (
	"amhara-checkout/internal/domain/payment"
)

func ValidWallet() payment.WalletCredentials {
	return payment.WalletCredentials{Phone: "0912345678", FullName: "Abebe Kebede"}
}

func ValidCard() payment.CardCredentials {
	return payment.CardCredentials{
		HolderName: "Abebe Kebede",
		Email:      "abebe@example.com",
		Number:     "4242424242424242",
		Expiry:     "12/29",
		CVV:        "123",
	}
}

func CardWith(mutate func(*payment.CardCredentials)) payment.CardCredentials {
	c := ValidCard()
	mutate(&c)
	return c
}
