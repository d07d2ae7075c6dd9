package crypto_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"financebot/internal/alphavantage"
	"financebot/internal/crypto"
)

// makeSeries builds n daily points newest first, starting at a fixed date.
// mutate, when non-nil, adjusts individual points by index.
func makeSeries(n int, mutate func(i int, p *crypto.SeriesPoint)) []crypto.SeriesPoint {
	start := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	points := make([]crypto.SeriesPoint, n)
	for i := range points {
		points[i] = crypto.SeriesPoint{
			Date:   start.AddDate(0, 0, -i).Format("2006-01-02"),
			Open:   100,
			High:   110,
			Low:    90,
			Close:  105,
			Volume: 1000,
		}
		if mutate != nil {
			mutate(i, &points[i])
		}
	}
	return points
}

func seriesPayload(t *testing.T, points []crypto.SeriesPoint) alphavantage.Payload {
	t.Helper()
	var sb strings.Builder
	sb.WriteString("{")
	for i, p := range points {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, `%q:{"1. open":"%g","2. high":"%g","3. low":"%g","4. close":"%g","5. volume":"%g"}`,
			p.Date, p.Open, p.High, p.Low, p.Close, p.Volume)
	}
	sb.WriteString("}")
	return alphavantage.Payload{alphavantage.KeyDailySeries: json.RawMessage(sb.String())}
}

func TestDeriveWindows(t *testing.T) {
	t.Parallel()

	// A 200 day series: today closed at 50000 after opening at 49000,
	// closed at 40000 thirty days back and 20000 half a year back.
	points := makeSeries(200, func(i int, p *crypto.SeriesPoint) {
		switch i {
		case 0:
			p.Open = 49000
			p.Close = 50000
		case 30:
			p.Close = 40000
		case 180:
			p.Close = 20000
		}
	})

	cmp, err := crypto.Derive("BTC", "USD", seriesPayload(t, points))
	require.NoError(t, err)

	require.Equal(t, "BTC", cmp.Symbol)
	require.Equal(t, "USD", cmp.Market)
	require.Equal(t, "2026-08-31", cmp.Today.Date)

	require.InEpsilon(t, 1000.0, cmp.Day.Value, 1e-9)
	require.InDelta(t, 2.0408, cmp.Day.Percent, 1e-4)

	require.InEpsilon(t, 10000.0, cmp.Month.Value, 1e-9)
	require.InDelta(t, 25.0, cmp.Month.Percent, 1e-9)

	require.InEpsilon(t, 30000.0, cmp.HalfYear.Value, 1e-9)
	require.InDelta(t, 150.0, cmp.HalfYear.Percent, 1e-9)
}

func TestDeriveHistoryBoundary(t *testing.T) {
	t.Parallel()

	// 181 points is exactly enough for all three windows.
	_, err := crypto.Derive("BTC", "USD", seriesPayload(t, makeSeries(181, nil)))
	require.NoError(t, err)

	// 180 is one short.
	_, err = crypto.Derive("BTC", "USD", seriesPayload(t, makeSeries(180, nil)))
	var insufficient *crypto.InsufficientHistoryError
	require.ErrorAs(t, err, &insufficient)
	require.Equal(t, 180, insufficient.Have)
	require.Equal(t, 181, insufficient.Need)
}

func TestDerivePreservesProviderOrder(t *testing.T) {
	t.Parallel()

	// The provider's document order is the timeline anchor even when the
	// dates themselves would sort differently.
	points := makeSeries(181, nil)
	points[0].Date = "1999-01-01"
	points[0].Close = 123

	cmp, err := crypto.Derive("BTC", "USD", seriesPayload(t, points))
	require.NoError(t, err)
	require.Equal(t, "1999-01-01", cmp.Today.Date)
	require.InEpsilon(t, 123.0, cmp.Today.Close, 1e-9)
}

func TestDeriveZeroBaseline(t *testing.T) {
	t.Parallel()

	points := makeSeries(181, func(i int, p *crypto.SeriesPoint) {
		if i == 0 {
			p.Open = 0
		}
	})

	_, err := crypto.Derive("BTC", "USD", seriesPayload(t, points))
	require.ErrorIs(t, err, crypto.ErrZeroBaseline)
}

func TestDeriveMalformedPoint(t *testing.T) {
	t.Parallel()

	payload := alphavantage.Payload{
		alphavantage.KeyDailySeries: json.RawMessage(`{"2026-08-31":{"1. open":"x","2. high":"1","3. low":"1","4. close":"1","5. volume":"1"}}`),
	}

	_, err := crypto.Derive("BTC", "USD", payload)
	var malformed *alphavantage.MalformedError
	require.ErrorAs(t, err, &malformed)
}
