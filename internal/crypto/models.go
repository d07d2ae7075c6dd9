package crypto

import (
	"errors"
	"fmt"
)

// SeriesPoint is one daily OHLCV record, in provider order (newest first).
type SeriesPoint struct {
	Date   string
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Change is one window-over-window comparison.
type Change struct {
	Value   float64
	Percent float64
}

// Comparison is the derived crypto record: today's point and the change
// over the 24h, 30-day and 180-day windows.
type Comparison struct {
	Symbol   string
	Market   string
	Today    SeriesPoint
	Day      Change
	Month    Change
	HalfYear Change
}

// Offsets into the provider-ordered series for the comparison windows. All
// three must exist, so the series needs at least minHistory points.
const (
	monthOffset    = 30
	halfYearOffset = 180
	minHistory     = halfYearOffset + 1
)

// ErrZeroBaseline reports a percent change whose baseline is zero; failing
// beats returning an infinite or NaN percentage.
var ErrZeroBaseline = errors.New("zero baseline for percent change")

// InsufficientHistoryError means the series is too short for the longest
// comparison window.
type InsufficientHistoryError struct {
	Have int
	Need int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("insufficient history: have %d points, need %d", e.Have, e.Need)
}
