// Package textcrest is the Go client for the TextCrest Bulk SMS HTTP API.
// It covers message sending, message history, wallet balance, and wallet
// transactions. All validation of message content and phone numbers happens
// server-side; the client is a typed request/response mapping layer.
package textcrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/textcrest/textcrest-go/pkg/httpclient"
)

// DefaultBaseURL is the TextCrest production API endpoint.
const DefaultBaseURL = "https://api.textcrest.com/v1"

const defaultTimeout = 15 * time.Second

// Client talks to the TextCrest API on behalf of one API key. The key and
// base URL are fixed at construction; a Client is safe for concurrent use.
type Client struct {
	apiKey  string
	baseURL string
	http    httpclient.Client
}

type options struct {
	baseURL string
	timeout time.Duration
	http    httpclient.Client
}

// Option configures a Client during construction.
type Option func(*options)

// WithBaseURL overrides the production endpoint. A trailing slash is stripped.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the transport timeout for the default HTTP client.
// Zero disables the timeout. Ignored when WithHTTPClient is also supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithHTTPClient injects a custom transport, e.g. a mock in tests.
func WithHTTPClient(client httpclient.Client) Option {
	return func(o *options) {
		o.http = client
	}
}

// New builds a Client for the given API key. It fails with ErrMissingAPIKey
// when the key is empty.
func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	o := options{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.http == nil {
		o.http = httpclient.NewRestyClient(o.timeout)
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(o.baseURL, "/"),
		http:    o.http,
	}, nil
}

// BaseURL returns the endpoint the client was configured with.
func (c *Client) BaseURL() string { return c.baseURL }

// headers returns the authentication and content headers attached to every call.
func (c *Client) headers() map[string]string {
	return map[string]string{
		"Authorization": "ApiKey " + c.apiKey,
		"Content-Type":  "application/json",
	}
}

// get issues an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	resp, err := c.http.Get(ctx, target, c.headers())
	if err != nil {
		return err
	}
	return decode(resp, out)
}

// post issues an authenticated POST with a JSON body and decodes the response into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.http.Post(ctx, c.baseURL+path, body, c.headers())
	if err != nil {
		return err
	}
	return decode(resp, out)
}

// decode maps non-2xx responses to *APIError and unmarshals success bodies.
// Malformed success payloads surface as decode errors, untranslated.
func decode(resp httpclient.Response, out any) error {
	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return newAPIError(status, resp.Body())
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
