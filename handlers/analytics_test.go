package handlers

import (
	"testing"

	"github.com/Loki-59/Rlestate/models"
)

func TestLocationSlug(t *testing.T) {
	tests := []struct {
		city string
		want string
	}{
		{"Lagos", "lagos-ikeja"},
		{"lagos", "lagos-ikeja"},
		{"Abuja", "abuja-central"},
		{"Port Harcourt", "port harcourt-central"},
	}
	for _, tt := range tests {
		if got := locationSlug(tt.city); got != tt.want {
			t.Errorf("locationSlug(%q) = %q, want %q", tt.city, got, tt.want)
		}
	}
}

func avg(v float64) *float64 { return &v }

func TestApplyMarketDataExistingCity(t *testing.T) {
	data := []models.CityAverage{
		{City: "Lagos", LocalAvgPrice: avg(50000000), Count: 10},
		{City: "Abuja", LocalAvgPrice: avg(30000000), Count: 4},
	}
	market := &models.ResidentialPrices{AveragePrice: 70000000}

	result := applyMarketData(data, "lagos", market)
	if len(result) != 2 {
		t.Fatalf("expected no synthetic entry, got %d groups", len(result))
	}

	lagos := result[0]
	if lagos.MarketAvgPrice == nil || *lagos.MarketAvgPrice != 70000000 {
		t.Fatalf("market average not attached: %+v", lagos)
	}
	if lagos.EnhancedAvgPrice == nil || *lagos.EnhancedAvgPrice != 60000000 {
		t.Errorf("enhanced average = %v, want mean of local and market", lagos.EnhancedAvgPrice)
	}
	if result[1].MarketAvgPrice != nil {
		t.Error("non-target city must stay unenhanced")
	}
}

func TestApplyMarketDataMissingCity(t *testing.T) {
	data := []models.CityAverage{
		{City: "Abuja", LocalAvgPrice: avg(30000000), Count: 4},
	}
	market := &models.ResidentialPrices{AveragePrice: 25000000}

	result := applyMarketData(data, "Kano", market)
	if len(result) != 2 {
		t.Fatalf("expected synthetic entry appended, got %d groups", len(result))
	}

	synthetic := result[1]
	if synthetic.City != "Kano" {
		t.Errorf("synthetic city = %s", synthetic.City)
	}
	if synthetic.Count != 0 || synthetic.LocalAvgPrice != nil {
		t.Errorf("synthetic entry must carry no local figures: %+v", synthetic)
	}
	if synthetic.MarketAvgPrice == nil || *synthetic.MarketAvgPrice != 25000000 {
		t.Errorf("market average missing on synthetic entry: %+v", synthetic)
	}
	if synthetic.EnhancedAvgPrice == nil || *synthetic.EnhancedAvgPrice != 25000000 {
		t.Errorf("enhanced average should equal market average when no local data: %+v", synthetic)
	}
}

func TestApplyMarketDataCaseInsensitiveMatch(t *testing.T) {
	data := []models.CityAverage{
		{City: "LAGOS", LocalAvgPrice: avg(10), Count: 1},
	}
	result := applyMarketData(data, "lagos", &models.ResidentialPrices{AveragePrice: 20})
	if len(result) != 1 {
		t.Fatalf("case-insensitive match should not append, got %d groups", len(result))
	}
	if result[0].EnhancedAvgPrice == nil || *result[0].EnhancedAvgPrice != 15 {
		t.Errorf("enhanced average = %v", result[0].EnhancedAvgPrice)
	}
}
