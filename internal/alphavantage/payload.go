package alphavantage

import "encoding/json"

// Provider keys wrapping the data section of each payload kind. OVERVIEW
// responses are flat and have no wrapper key.
const (
	KeyGlobalQuote = "Global Quote"
	KeyDailySeries = "Time Series (Digital Currency Daily)"
)

// Payload is one raw provider response, decoded only one level deep. It is
// owned by the call that fetched it and never retained past the request.
type Payload map[string]json.RawMessage

// String returns the payload field as a string, reporting whether the key
// exists and holds a JSON string.
func (p Payload) String(key string) (string, bool) {
	raw, ok := p[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Object returns the payload field as a flat string-to-string object,
// reporting whether the key exists and holds such an object.
func (p Payload) Object(key string) (map[string]string, bool) {
	raw, ok := p[key]
	if !ok {
		return nil, false
	}
	var obj map[string]string
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}
