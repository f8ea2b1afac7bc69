package models

// Frequently used currency codes
const (
	USD = "USD"
	EUR = "EUR"
)

// Pivot is the feed's native base currency. Every rate in a RateTable is
// expressed relative to it.
const Pivot = USD

// CurrencyTable maps a currency code to its display name.
type CurrencyTable map[string]string

// Has reports whether code is a known currency.
func (t CurrencyTable) Has(code string) bool {
	_, ok := t[code]
	return ok
}

// Clone returns an independent copy of the table.
func (t CurrencyTable) Clone() CurrencyTable {
	out := make(CurrencyTable, len(t))
	for code, name := range t {
		out[code] = name
	}
	return out
}

// DefaultCurrencies returns the built-in table used when neither the provider
// nor the store can supply one.
func DefaultCurrencies() CurrencyTable {
	return CurrencyTable{
		"USD": "US Dollar",
		"EUR": "Euro",
		"GBP": "British Pound Sterling",
		"JPY": "Japanese Yen",
		"AUD": "Australian Dollar",
		"CAD": "Canadian Dollar",
		"CHF": "Swiss Franc",
		"CNY": "Chinese Yuan",
		"SEK": "Swedish Krona",
		"NZD": "New Zealand Dollar",
		"MXN": "Mexican Peso",
		"SGD": "Singapore Dollar",
		"HKD": "Hong Kong Dollar",
		"NOK": "Norwegian Krone",
		"KRW": "South Korean Won",
		"TRY": "Turkish Lira",
		"RUB": "Russian Ruble",
		"INR": "Indian Rupee",
		"BRL": "Brazilian Real",
		"ZAR": "South African Rand",
	}
}
