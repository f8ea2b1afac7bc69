package models

// AmountRequest represents the JSON body of an amount field edit
// swagger:model AmountRequest
type AmountRequest struct {
	// Amount text as typed, comma or dot decimal separator
	// required: true
	// example: 100,50
	Amount string `json:"amount"`
}

// CurrencyRequest represents the JSON body of a currency selection
// swagger:model CurrencyRequest
type CurrencyRequest struct {
	// Currency code
	// required: true
	// example: EUR
	Code string `json:"code"`
}

// StateResponse represents the calculator state returned by every endpoint
// swagger:model StateResponse
type StateResponse struct {
	// Conversion state
	State ConversionState `json:"state"`

	// Field currently driving the conversion
	Focus Focus `json:"focus"`
}

// CurrencyOption is a selectable currency in the picker
// swagger:model CurrencyOption
type CurrencyOption struct {
	// Currency code
	// example: EUR
	Code string `json:"code"`

	// Display name
	// example: Euro
	Name string `json:"name"`
}

// CurrenciesResponse represents the filtered picker contents
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	// Currencies in code order
	Currencies []CurrencyOption `json:"currencies"`
}

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: target currency limit reached
	Error string `json:"error"`
}
