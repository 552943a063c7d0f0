// Package pincode looks up Indian postal PIN codes against the public
// postalpincode.in API. Results feed company address forms, so lookups
// are validated, cached, and never authenticated.
package pincode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/sdtaxation/adminctl/internal/errors"
	"github.com/sdtaxation/adminctl/internal/log"
)

// DefaultBaseURL is the public lookup endpoint.
const DefaultBaseURL = "https://api.postalpincode.in"

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// PostOffice is one post office record for a PIN code.
type PostOffice struct {
	Name       string `json:"Name"`
	BranchType string `json:"BranchType"`
	District   string `json:"District"`
	Division   string `json:"Division"`
	Region     string `json:"Region"`
	State      string `json:"State"`
	Country    string `json:"Country"`
}

// Result is the outcome of one lookup.
type Result struct {
	Message     string       `json:"Message"`
	Status      string       `json:"Status"`
	PostOffices []PostOffice `json:"PostOffice"`
}

// Address is the form-ready subset extracted from a post office.
type Address struct {
	City     string `json:"city"`
	State    string `json:"state"`
	District string `json:"district"`
	Country  string `json:"country"`
	Region   string `json:"region"`
	Division string `json:"division"`
}

// ExtractAddress maps a post office record onto address form fields.
// The district doubles as the city, matching how company addresses are
// entered.
func ExtractAddress(po PostOffice) Address {
	city := po.District
	if city == "" {
		city = po.Name
	}
	country := po.Country
	if country == "" {
		country = "India"
	}
	return Address{
		City:     city,
		State:    po.State,
		District: po.District,
		Country:  country,
		Region:   po.Region,
		Division: po.Division,
	}
}

type cacheEntry struct {
	result  *Result
	expires time.Time
}

// Client looks up PIN codes with a small TTL cache in front of the
// upstream API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
	ttl        time.Duration
	now        func() time.Time

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCacheTTL overrides how long lookup results are reused.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

// WithLogger sets the client logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a PIN code lookup client.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log.DefaultLogger(),
		ttl:        15 * time.Minute,
		now:        time.Now,
		cache:      make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup resolves a 6-digit PIN code to its post offices. Repeated
// lookups inside the cache window never hit the network.
func (c *Client) Lookup(ctx context.Context, pin string) (*Result, error) {
	if !pincodePattern.MatchString(pin) {
		return nil, errors.NewPincodeInvalidError(pin)
	}

	c.mu.Lock()
	if entry, ok := c.cache[pin]; ok && c.now().Before(entry.expires) {
		c.mu.Unlock()
		return entry.result, nil
	}
	c.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/pincode/"+pin, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePincodeLookup, "pincode lookup failed", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodePincodeLookup,
			fmt.Sprintf("pincode lookup failed with status %d", resp.StatusCode))
	}

	// The upstream wraps every response in a one-element array.
	var payload []Result
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(errors.ErrCodePincodeLookup, "decode pincode response", err)
	}
	if len(payload) == 0 {
		return nil, errors.New(errors.ErrCodePincodeLookup, "empty pincode response")
	}
	result := &payload[0]

	c.mu.Lock()
	c.cache[pin] = cacheEntry{result: result, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()

	c.logger.Debug("pincode resolved", "pincode", pin, "offices", len(result.PostOffices))
	return result, nil
}
