// Package agify provides a client for the agify.io age-prediction API.
package agify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// DefaultEndpoint is the public agify.io API.
const DefaultEndpoint = "https://api.agify.io"

// ErrPredictionFailed wraps every failure of a prediction request:
// transport errors, non-2xx responses and malformed bodies alike.
var ErrPredictionFailed = errors.New("prediction request failed")

// Prediction is the API's answer for one name.
type Prediction struct {
	Name  string `json:"name"`
	Age   *int   `json:"age"`
	Count int    `json:"count"`
}

// Client is an agify.io API client.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the given endpoint.
// An empty endpoint selects DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the configured API endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Predict asks the API for the age of name. It issues exactly one request.
func (c *Client) Predict(ctx context.Context, name string) (Prediction, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: parsing endpoint: %v", ErrPredictionFailed, err)
	}
	q := u.Query()
	q.Set("name", name)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: creating request: %v", ErrPredictionFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("%w: making request: %v", ErrPredictionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Prediction{}, fmt.Errorf("%w: GET %s: %d %s", ErrPredictionFailed, u.Path, resp.StatusCode, string(body))
	}

	var p *Prediction
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return Prediction{}, fmt.Errorf("%w: decoding response: %v", ErrPredictionFailed, err)
	}
	if p == nil {
		return Prediction{}, fmt.Errorf("%w: response body is null", ErrPredictionFailed)
	}
	return *p, nil
}
