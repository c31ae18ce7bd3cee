package payment

import (
	"fmt"
	"strings"

	"github.com/metinatakli/jobmatch/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	PremiumMonthlyUSD int64 = 1900
	JobBoostUSD       int64 = 2900

	// ngnPerUSD is the fixed rate applied to Paystack charges.
	ngnPerUSD int64 = 1600
)

type Price struct {
	Amount      int64
	Currency    string
	Description string
}

// PriceFor returns what a payment of the given kind costs through provider,
// in minor units of the provider's settlement currency.
func PriceFor(kind domain.PaymentKind, provider domain.Provider) (Price, error) {
	var price Price

	switch kind {
	case domain.PaymentKindSubscription:
		price = Price{Amount: PremiumMonthlyUSD, Currency: "USD", Description: "Premium Monthly Subscription"}
	case domain.PaymentKindJobBoost:
		price = Price{Amount: JobBoostUSD, Currency: "USD", Description: "Job Boost"}
	default:
		return Price{}, fmt.Errorf("unknown payment kind %q", kind)
	}

	switch provider {
	case domain.ProviderStripe:
	case domain.ProviderPaystack:
		price.Amount *= ngnPerUSD
		price.Currency = "NGN"
	default:
		return Price{}, domain.ErrUnsupportedProvider
	}

	return price, nil
}

// Number of minor units per major unit is 10^exponent. Currencies missing
// from the table use two decimals.
var currencyExponents = map[string]int32{
	"BIF": 0,
	"CLP": 0,
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"XAF": 0,
	"XOF": 0,
	"BHD": 3,
	"KWD": 3,
	"OMR": 3,
	"TND": 3,
}

func currencyExponent(currency string) int32 {
	if exp, ok := currencyExponents[strings.ToUpper(currency)]; ok {
		return exp
	}

	return 2
}

// FormatAmount renders minor units as a major unit amount, e.g. 1900 USD as
// "19.00" and 500 JPY as "500".
func FormatAmount(amount int64, currency string) string {
	exp := currencyExponent(currency)
	return decimal.New(amount, -exp).StringFixed(exp)
}
