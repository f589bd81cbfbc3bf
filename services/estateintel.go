package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Loki-59/Rlestate/models"
)

const estateIntelBaseURL = "https://api.estateintel.com/api"

// UpstreamError reports a failed EstateIntel call, carrying the upstream
// message when one was returned.
type UpstreamError struct {
	Op      string
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Client wraps the EstateIntel market-data API. One outbound call per
// method, no retries; callers decide how to degrade on failure.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: estateIntelBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SupportedLocations fetches the full location catalog.
func (c *Client) SupportedLocations(ctx context.Context) ([]models.SupportedLocation, error) {
	var locations []models.SupportedLocation
	if err := c.get(ctx, "/supported-locations", nil, &locations); err != nil {
		return nil, &UpstreamError{Op: "Failed to fetch locations", Message: err.Error()}
	}
	return locations, nil
}

// ResidentialPrices fetches the market price point for a location slug such
// as "lagos-ikeja".
func (c *Client) ResidentialPrices(ctx context.Context, location, dealType string, beds int, country string) (*models.ResidentialPrices, error) {
	params := url.Values{}
	params.Set("location", location)
	params.Set("country", country)
	params.Set("type", dealType)
	params.Set("beds", strconv.Itoa(beds))

	var prices models.ResidentialPrices
	if err := c.get(ctx, "/residential-prices", params, &prices); err != nil {
		return nil, &UpstreamError{Op: "Failed to fetch prices", Message: err.Error()}
	}
	return &prices, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr == nil && body.Message != "" {
			return fmt.Errorf("%s", body.Message)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
