package departure

// Currency is the settlement currency for the land leg of a departure.
// DZD is the default for newly seeded groups.
type Currency string

const (
	CurrencyDZD Currency = "DZD"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencySAR Currency = "SAR"
)

// IsValid reports whether c is a known currency.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyDZD, CurrencyEUR, CurrencyUSD, CurrencySAR:
		return true
	}
	return false
}

// String returns the currency code as a string.
func (c Currency) String() string {
	return string(c)
}
