package crypto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"financebot/internal/alphavantage"
)

// Derive computes the window comparisons from a validated daily-series
// payload. The provider emits the series newest first and that order is
// the timeline anchor; it is never re-sorted.
func Derive(symbol, market string, series alphavantage.Payload) (*Comparison, error) {
	points, err := parseSeries(series[alphavantage.KeyDailySeries])
	if err != nil {
		return nil, err
	}
	if len(points) < minHistory {
		return nil, &InsufficientHistoryError{Have: len(points), Need: minHistory}
	}

	today := points[0]

	day, err := change(today.Close-today.Open, today.Open, "24h")
	if err != nil {
		return nil, err
	}
	month, err := change(today.Close-points[monthOffset].Close, points[monthOffset].Close, "30d")
	if err != nil {
		return nil, err
	}
	halfYear, err := change(today.Close-points[halfYearOffset].Close, points[halfYearOffset].Close, "6m")
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Symbol:   symbol,
		Market:   market,
		Today:    today,
		Day:      day,
		Month:    month,
		HalfYear: halfYear,
	}, nil
}

func change(value, baseline float64, window string) (Change, error) {
	if baseline == 0 {
		return Change{}, fmt.Errorf("%s change: %w", window, ErrZeroBaseline)
	}
	return Change{Value: value, Percent: value / baseline * 100}, nil
}

// parseSeries walks the series object token by token. Decoding into a map
// would drop the provider's key order, so the points are collected in
// document order instead.
func parseSeries(raw json.RawMessage) ([]SeriesPoint, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, &alphavantage.MalformedError{Field: alphavantage.KeyDailySeries, Reason: "missing or truncated"}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &alphavantage.MalformedError{Field: alphavantage.KeyDailySeries, Reason: "not a JSON object"}
	}

	var points []SeriesPoint
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &alphavantage.MalformedError{Field: alphavantage.KeyDailySeries, Reason: err.Error()}
		}
		date, _ := keyTok.(string)

		var fields map[string]string
		if err := dec.Decode(&fields); err != nil {
			return nil, &alphavantage.MalformedError{Field: date, Reason: "entry is not a flat object"}
		}

		point, err := parsePoint(date, fields)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

func parsePoint(date string, fields map[string]string) (SeriesPoint, error) {
	point := SeriesPoint{Date: date}
	for key, dst := range map[string]*float64{
		"1. open":   &point.Open,
		"2. high":   &point.High,
		"3. low":    &point.Low,
		"4. close":  &point.Close,
		"5. volume": &point.Volume,
	} {
		raw, ok := fields[key]
		if !ok {
			return SeriesPoint{}, &alphavantage.MalformedError{Field: date + " " + key, Reason: "missing"}
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return SeriesPoint{}, &alphavantage.MalformedError{Field: date + " " + key, Reason: err.Error()}
		}
		*dst = v
	}
	return point, nil
}
