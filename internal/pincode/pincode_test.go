package pincode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdtaxation/adminctl/internal/errors"
)

const puneResponse = `[
	{
		"Message": "Number of pincode(s) found:1",
		"Status": "Success",
		"PostOffice": [
			{
				"Name": "Pune City H.O",
				"BranchType": "Head Post Office",
				"District": "Pune",
				"Division": "Pune City",
				"Region": "Pune",
				"State": "Maharashtra",
				"Country": "India"
			}
		]
	}
]`

func TestLookupResolvesPincode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pincode/411001", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(puneResponse))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.Lookup(context.Background(), "411001")

	require.NoError(t, err)
	assert.Equal(t, "Success", res.Status)
	require.Len(t, res.PostOffices, 1)
	assert.Equal(t, "Maharashtra", res.PostOffices[0].State)
}

func TestLookupRejectsMalformedPincode(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
	defer srv.Close()

	c := NewClient(srv.URL)
	for _, pin := range []string{"", "12345", "1234567", "41100a", "411 01"} {
		_, err := c.Lookup(context.Background(), pin)
		require.Error(t, err, "pin %q", pin)
		assert.True(t, errors.IsCode(err, errors.ErrCodePincodeInvalid))
	}
	assert.Equal(t, 0, hits, "invalid pins never reach the network")
}

func TestLookupCachesWithinTTL(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(puneResponse))
	}))
	defer srv.Close()

	now := time.Now()
	c := NewClient(srv.URL, WithCacheTTL(time.Minute))
	c.now = func() time.Time { return now }

	_, err := c.Lookup(context.Background(), "411001")
	require.NoError(t, err)
	_, err = c.Lookup(context.Background(), "411001")
	require.NoError(t, err)
	assert.Equal(t, 1, hits, "second lookup is served from cache")

	// Past the TTL the upstream is consulted again.
	now = now.Add(2 * time.Minute)
	_, err = c.Lookup(context.Background(), "411001")
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestLookupUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Lookup(context.Background(), "411001")

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodePincodeLookup))
}

func TestExtractAddress(t *testing.T) {
	addr := ExtractAddress(PostOffice{
		Name:     "Pune City H.O",
		District: "Pune",
		Division: "Pune City",
		Region:   "Pune",
		State:    "Maharashtra",
		Country:  "India",
	})
	assert.Equal(t, "Pune", addr.City)
	assert.Equal(t, "Maharashtra", addr.State)

	// District and country fall back when absent.
	addr = ExtractAddress(PostOffice{Name: "Lone Office"})
	assert.Equal(t, "Lone Office", addr.City)
	assert.Equal(t, "India", addr.Country)
}
