package models

import "time"

// DateLayout is the as-of date format of a RatesSnapshot.
const DateLayout = "2006-01-02"

// RateTable maps a currency code to its multiplier relative to Pivot.
type RateTable map[string]float64

// Rate returns the multiplier for code. The pivot always resolves to 1.0,
// whether or not the table carries it.
func (t RateTable) Rate(code string) (float64, bool) {
	if code == Pivot {
		return 1.0, true
	}
	r, ok := t[code]
	return r, ok
}

// WithPivot returns a copy of the table with the pivot identity rate set.
func (t RateTable) WithPivot() RateTable {
	out := make(RateTable, len(t)+1)
	for code, r := range t {
		out[code] = r
	}
	out[Pivot] = 1.0
	return out
}

// RatesSnapshot is one complete rate table plus its as-of date.
type RatesSnapshot struct {
	Rates RateTable `json:"rates"`
	Date  string    `json:"date"`
}

// FormatRatesDate renders a feed timestamp as an as-of date in UTC.
func FormatRatesDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// SnapshotEvent is the message announced when a new snapshot is adopted.
type SnapshotEvent struct {
	Date      string    `json:"date"`
	Base      string    `json:"base"`
	Rates     RateTable `json:"rates"`
	FetchedAt time.Time `json:"fetched_at"`
}
