package stocks_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"financebot/internal/alphavantage"
	"financebot/internal/stocks"
)

func payloadFrom(t *testing.T, raw string) alphavantage.Payload {
	t.Helper()
	var p alphavantage.Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

const fullQuote = `{"Global Quote": {
	"01. symbol": "TSLA",
	"02. open": "245.00",
	"05. price": "247.50",
	"08. previous close": "242.50",
	"09. change": "5.00",
	"10. change percent": "2.0619%"
}}`

const fullOverview = `{
	"Name": "Tesla Inc",
	"Sector": "Consumer Cyclical",
	"MarketCapitalization": "780000000000",
	"PERatio": "65.4",
	"52WeekHigh": "299.29",
	"52WeekLow": "138.80"
}`

func TestDeriveFullPayloads(t *testing.T) {
	t.Parallel()

	snap, err := stocks.Derive("TSLA", payloadFrom(t, fullQuote), payloadFrom(t, fullOverview))
	require.NoError(t, err)

	require.Equal(t, "TSLA", snap.Symbol)
	require.InEpsilon(t, 247.50, snap.Price, 1e-9)
	require.InEpsilon(t, 245.00, snap.Open, 1e-9)
	require.InEpsilon(t, 242.50, snap.PreviousClose, 1e-9)
	require.InEpsilon(t, 5.00, snap.Change, 1e-9)
	require.Equal(t, "2.0619%", snap.ChangePercent)
	require.Equal(t, "Tesla Inc", snap.Name)
	require.Equal(t, "Consumer Cyclical", snap.Sector)
	require.InEpsilon(t, 7.8e11, snap.MarketCap, 1e-9)
	require.Equal(t, "65.4", snap.PERatio)
	require.InEpsilon(t, 299.29, snap.High52Week, 1e-9)
	require.InEpsilon(t, 138.80, snap.Low52Week, 1e-9)
}

func TestDeriveMissingRequiredField(t *testing.T) {
	t.Parallel()

	quote := payloadFrom(t, `{"Global Quote": {
		"02. open": "245.00",
		"08. previous close": "242.50",
		"09. change": "5.00"
	}}`)

	_, err := stocks.Derive("TSLA", quote, payloadFrom(t, fullOverview))

	var malformed *alphavantage.MalformedError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, "05. price", malformed.Field)
}

func TestDeriveUnparseableRequiredField(t *testing.T) {
	t.Parallel()

	quote := payloadFrom(t, `{"Global Quote": {
		"02. open": "245.00",
		"05. price": "not a number",
		"08. previous close": "242.50",
		"09. change": "5.00"
	}}`)

	_, err := stocks.Derive("TSLA", quote, payloadFrom(t, fullOverview))

	var malformed *alphavantage.MalformedError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, "05. price", malformed.Field)
}

func TestDeriveOptionalFallbacks(t *testing.T) {
	t.Parallel()

	// A near-empty overview never aborts the request.
	overview := payloadFrom(t, `{"MarketCapitalization": "None"}`)

	snap, err := stocks.Derive("TSLA", payloadFrom(t, fullQuote), overview)
	require.NoError(t, err)

	require.Equal(t, "TSLA", snap.Name)
	require.Equal(t, "N/A", snap.Sector)
	require.Equal(t, "N/A", snap.PERatio)
	require.Zero(t, snap.MarketCap)
	require.Zero(t, snap.High52Week)
	require.Zero(t, snap.Low52Week)
}

func TestDeriveMissingQuoteBlock(t *testing.T) {
	t.Parallel()

	_, err := stocks.Derive("TSLA", payloadFrom(t, `{}`), payloadFrom(t, fullOverview))

	var malformed *alphavantage.MalformedError
	require.ErrorAs(t, err, &malformed)
}
