// Package countries wraps the public country lookup API used by the
// profile flow. The upstream returns name/flag pairs; any failure is
// mapped to a single domain error and the underlying cause is logged.
package countries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/iliyamo/cabin-reservation/internal/model"
)

// ErrUnavailable is the one error this boundary exposes.
var ErrUnavailable = errors.New("could not fetch countries")

// Client fetches country metadata over HTTP.
type Client struct {
	url  string
	http *http.Client
}

// NewClient builds a client for the given lookup URL.
func NewClient(url string) *Client {
	return &Client{url: url, http: &http.Client{Timeout: 10 * time.Second}}
}

// List returns all countries as name/flag pairs.
func (c *Client) List(ctx context.Context) ([]model.Country, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		log.Printf("countries: build request failed: %v", err)
		return nil, ErrUnavailable
	}
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("countries: request failed: %v", err)
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("countries: unexpected status: %s", resp.Status)
		return nil, ErrUnavailable
	}
	var out []model.Country
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("countries: decode failed: %v", err)
		return nil, ErrUnavailable
	}
	return out, nil
}

// FlagFor returns the flag reference for a country name, or an error
// when the name is unknown. The comparison is exact; the selector in
// the profile form only offers names that came from List.
func (c *Client) FlagFor(ctx context.Context, name string) (string, error) {
	all, err := c.List(ctx)
	if err != nil {
		return "", err
	}
	for _, country := range all {
		if country.Name == name {
			return country.Flag, nil
		}
	}
	return "", fmt.Errorf("unknown country: %s", name)
}
