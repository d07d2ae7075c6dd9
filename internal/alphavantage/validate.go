package alphavantage

import "encoding/json"

// Validate classifies a raw payload without transforming it. dataKey names
// the top-level key wrapping the data section; pass "" for flat payloads
// such as OVERVIEW. A nil return means the payload may flow to derivation
// unchanged.
func Validate(p Payload, dataKey string) error {
	if msg, ok := p.String("Error Message"); ok {
		return &ProviderError{Message: msg}
	}
	// Rate-limit advisories ("Note", newer responses use "Information")
	// surface verbatim rather than being silently retried.
	if msg, ok := p.String("Note"); ok {
		return &ProviderError{Message: msg, Advisory: true}
	}
	if msg, ok := p.String("Information"); ok {
		return &ProviderError{Message: msg, Advisory: true}
	}

	if dataKey == "" {
		if len(p) == 0 {
			return &EmptyError{}
		}
		return nil
	}

	raw, ok := p[dataKey]
	if !ok {
		return &EmptyError{Key: dataKey}
	}
	var section map[string]json.RawMessage
	if err := json.Unmarshal(raw, &section); err != nil {
		return &MalformedError{Field: dataKey, Reason: "not a JSON object"}
	}
	if len(section) == 0 {
		return &EmptyError{Key: dataKey}
	}
	return nil
}
