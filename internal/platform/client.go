// Package platform is the client for the SD Taxation platform REST API.
// It owns bearer-token attachment, the 401 → token-expired classification,
// and the typed endpoint wrappers the console commands call.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sdtaxation/adminctl/internal/errors"
	"github.com/sdtaxation/adminctl/internal/log"
)

// maxErrorBody bounds how much of an error response body is read.
const maxErrorBody = 1 << 20

// CredentialSource supplies the bearer token and the local expiry verdict
// for authenticated calls. The credential store satisfies it.
type CredentialSource interface {
	Token() string
	IsExpired() bool
}

// ExpiryPublisher receives the "token expired somewhere" signal. The
// session layer owns the subscriber list; the client only publishes.
type ExpiryPublisher interface {
	Publish()
}

// Client is the platform API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialSource
	expired    ExpiryPublisher
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithExpiryPublisher wires the hub that is signalled whenever a call
// fails with a token-expiration error.
func WithExpiryPublisher(p ExpiryPublisher) Option {
	return func(c *Client) { c.expired = p }
}

// WithLogger sets the client logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a platform API client. creds may be nil for a client
// that only performs skip-auth calls.
func NewClient(baseURL string, creds CredentialSource, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		creds:  creds,
		logger: log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// requestOptions tweak a single call.
type requestOptions struct {
	// skipAuth calls never attach a bearer token and are never blocked
	// by the local expiry pre-check. Login uses this so a stale token in
	// storage can never lock the user out of re-authenticating.
	skipAuth bool
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out, requestOptions{})
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out, requestOptions{})
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.doRequest(ctx, http.MethodPut, path, body, out, requestOptions{})
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodDelete, path, nil, out, requestOptions{})
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, out any, opts requestOptions) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out, opts)
}

// send finishes a prepared request: auth, dispatch, classification, decode.
func (c *Client) send(req *http.Request, out any, opts requestOptions) error {
	var token string
	if !opts.skipAuth && c.creds != nil {
		token = c.creds.Token()
		// Fail fast on a token we already know is dead; no network call.
		if token != "" && c.creds.IsExpired() {
			c.publishExpired()
			return &TokenExpiredError{Message: "token expired"}
		}
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewAPIUnavailableError(err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	// 401 always means the token is no longer acceptable, whatever the
	// payload says. Skip-auth calls carry no session, so they surface the
	// error without raising the expiry signal.
	if resp.StatusCode == http.StatusUnauthorized {
		msg := serverMessage(resp.Body)
		if msg == "" {
			msg = "unauthorized - token expired"
		}
		if !opts.skipAuth {
			c.publishExpired()
		}
		return &TokenExpiredError{Message: msg}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := serverMessage(resp.Body)
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) publishExpired() {
	if c.expired != nil {
		c.expired.Publish()
	}
}

// serverMessage pulls the message out of an error envelope, tolerating
// both {"message": ...} and {"error": ...} shapes.
func serverMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return ""
	}
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(data, &envelope) != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}
	return envelope.Error
}
