package alphavantage

import "fmt"

// TransportError is a network or HTTP level failure: the request never
// produced a usable 2xx body. A 200 response carrying a provider error
// message is a ProviderError instead.
type TransportError struct {
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("HTTP %d", e.Status)
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProviderError is an error the provider declared inside a 200 response:
// either a hard "Error Message" or, with Advisory set, a rate-limit or
// informational note. Both surface to the user and neither is retried.
type ProviderError struct {
	Message  string
	Advisory bool
}

func (e *ProviderError) Error() string {
	if e.Advisory {
		return "provider note: " + e.Message
	}
	return "provider error: " + e.Message
}

// EmptyError means the expected data section of a payload is missing or
// holds no entries.
type EmptyError struct {
	Key string
}

func (e *EmptyError) Error() string {
	if e.Key == "" {
		return "empty payload"
	}
	return fmt.Sprintf("empty data section %q", e.Key)
}

// MalformedError means a field did not have the expected shape or failed
// to parse as a number.
type MalformedError struct {
	Field  string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed field %q: %s", e.Field, e.Reason)
}
