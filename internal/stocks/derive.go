package stocks

import (
	"strconv"

	"financebot/internal/alphavantage"
)

// Derive merges a validated quote and overview payload into a Snapshot.
// The quote fields are required and fail the lookup when missing or
// unparseable; every overview field is optional and falls back instead.
func Derive(symbol string, quote, overview alphavantage.Payload) (*Snapshot, error) {
	q, ok := quote.Object(alphavantage.KeyGlobalQuote)
	if !ok {
		return nil, &alphavantage.MalformedError{Field: alphavantage.KeyGlobalQuote, Reason: "missing or not an object"}
	}

	price, err := requiredFloat(q, "05. price")
	if err != nil {
		return nil, err
	}
	open, err := requiredFloat(q, "02. open")
	if err != nil {
		return nil, err
	}
	prevClose, err := requiredFloat(q, "08. previous close")
	if err != nil {
		return nil, err
	}
	change, err := requiredFloat(q, "09. change")
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Symbol:        symbol,
		Price:         price,
		Open:          open,
		PreviousClose: prevClose,
		Change:        change,
		// Carried as provided, not recomputed.
		ChangePercent: q["10. change percent"],
		Name:          optionalString(overview, "Name", symbol),
		Sector:        optionalString(overview, "Sector", "N/A"),
		MarketCap:     optionalFloat(overview, "MarketCapitalization"),
		PERatio:       optionalString(overview, "PERatio", "N/A"),
		High52Week:    optionalFloat(overview, "52WeekHigh"),
		Low52Week:     optionalFloat(overview, "52WeekLow"),
	}
	return snap, nil
}

func requiredFloat(fields map[string]string, key string) (float64, error) {
	raw, ok := fields[key]
	if !ok {
		return 0, &alphavantage.MalformedError{Field: key, Reason: "missing"}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &alphavantage.MalformedError{Field: key, Reason: err.Error()}
	}
	return v, nil
}

func optionalString(p alphavantage.Payload, key, fallback string) string {
	if v, ok := p.String(key); ok && v != "" {
		return v
	}
	return fallback
}

func optionalFloat(p alphavantage.Payload, key string) float64 {
	raw, ok := p.String(key)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
