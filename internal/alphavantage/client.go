package alphavantage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://www.alphavantage.co"

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=alphavantage_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Alpha Vantage query API. Each call issues a
// single GET request; there are no retries and no caching.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
}

// Option is a configuration option for the client.
type Option func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Alpha Vantage client.
func NewClient(apiKey string, options ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// GlobalQuote fetches the GLOBAL_QUOTE payload for a ticker symbol.
func (c *Client) GlobalQuote(ctx context.Context, symbol string) (Payload, error) {
	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)
	return c.query(ctx, params)
}

// Overview fetches the company OVERVIEW payload for a ticker symbol.
func (c *Client) Overview(ctx context.Context, symbol string) (Payload, error) {
	params := url.Values{}
	params.Set("function", "OVERVIEW")
	params.Set("symbol", symbol)
	return c.query(ctx, params)
}

// DigitalCurrencyDaily fetches the daily OHLCV series for a crypto symbol
// quoted in the given market currency.
func (c *Client) DigitalCurrencyDaily(ctx context.Context, symbol, market string) (Payload, error) {
	params := url.Values{}
	params.Set("function", "DIGITAL_CURRENCY_DAILY")
	params.Set("symbol", symbol)
	params.Set("market", market)
	return c.query(ctx, params)
}

func (c *Client) query(ctx context.Context, params url.Values) (Payload, error) {
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/query?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{Status: resp.StatusCode}
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &MalformedError{Field: "body", Reason: err.Error()}
	}
	return payload, nil
}
