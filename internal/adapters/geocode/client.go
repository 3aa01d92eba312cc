package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"wedding_site/internal/adapters/observability"
	"wedding_site/internal/domain"
)

const (
	// regionSuffix disambiguates bare street addresses for the remote
	// service; skipped when the address already names the city.
	regionHint   = "florianópolis"
	regionSuffix = ", Florianópolis, SC, Brazil"
)

var ErrNoCredential = errors.New("geocode: no API key configured")

// Client calls the Google Geocoding API. An empty key is a valid,
// handled state: Configured reports false and Geocode fails fast
// without network access. The limiter bounds outbound request rate on
// top of the pipeline's own serialization.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) *Client {
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *Client) Configured() bool { return c.key != "" }

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// qualifyRegion appends the regional suffix unless the address already
// appears to include the region.
func qualifyRegion(address string) string {
	if strings.Contains(strings.ToLower(address), regionHint) {
		return address
	}
	return address + regionSuffix
}

// Geocode resolves one free-text address. (nil, nil) means the service
// had no result (non-"OK" status); errors are network or parse
// failures. No automatic retry: retry policy belongs to the caller.
func (c *Client) Geocode(ctx context.Context, address string) (*domain.Location, error) {
	if !c.Configured() {
		return nil, ErrNoCredential
	}
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("address", qualifyRegion(address))
	q.Set("key", c.key)
	q.Set("region", "br")
	q.Set("language", "pt-BR")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "wedding-site/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("geocode", "geocode", 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("geocode", "geocode", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("geocode: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("geocode: decode: %w", err)
	}
	if out.Status != "OK" || len(out.Results) == 0 {
		// Non-"OK" status is "no result", not an error.
		return nil, nil
	}

	first := out.Results[0]
	return &domain.Location{
		Lat:              first.Geometry.Location.Lat,
		Lng:              first.Geometry.Location.Lng,
		FormattedAddress: first.FormattedAddress,
		ResolvedAt:       time.Now(),
	}, nil
}
