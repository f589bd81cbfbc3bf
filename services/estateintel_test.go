package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key")
	c.baseURL = srv.URL
	return c
}

func TestSupportedLocations(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/supported-locations" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("API-KEY") != "test-key" {
			t.Errorf("missing API-KEY header")
		}
		json.NewEncoder(w).Encode([]map[string]string{
			{"city": "Lagos", "neighborhood": "Ikeja", "country": "NG"},
			{"city": "Abuja", "neighborhood": "Maitama", "country": "NG"},
		})
	})

	locations, err := c.SupportedLocations(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locations))
	}
	if locations[0].City != "Lagos" || locations[0].Neighborhood != "Ikeja" {
		t.Errorf("unexpected first location: %+v", locations[0])
	}
}

func TestSupportedLocationsUpstreamFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"message": "maintenance window"})
	})

	_, err := c.SupportedLocations(context.Background())
	if err == nil {
		t.Fatal("expected error on 503")
	}
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UpstreamError, got %T", err)
	}
	if !strings.Contains(upErr.Message, "maintenance window") {
		t.Errorf("expected upstream message carried, got %q", upErr.Message)
	}
}

func TestResidentialPrices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/residential-prices" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("location") != "lagos-ikeja" || q.Get("type") != "sale" || q.Get("beds") != "3" || q.Get("country") != "NG" {
			t.Errorf("unexpected query params: %v", q)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"average_price": 42500000.0})
	})

	prices, err := c.ResidentialPrices(context.Background(), "lagos-ikeja", "sale", 3, "NG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prices.AveragePrice != 42500000.0 {
		t.Errorf("average price = %v", prices.AveragePrice)
	}
}

func TestResidentialPricesNon2xxWithoutBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.ResidentialPrices(context.Background(), "kano-central", "rent", 2, "NG")
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if !strings.Contains(upErr.Message, "502") {
		t.Errorf("expected status in message, got %q", upErr.Message)
	}
}

func TestResidentialPricesTransportFailure(t *testing.T) {
	c := NewClient("test-key")
	c.baseURL = "http://127.0.0.1:1"

	_, err := c.ResidentialPrices(context.Background(), "lagos-ikeja", "sale", 3, "NG")
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
}
