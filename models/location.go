package models

// SupportedLocation is one entry of the EstateIntel location catalog.
type SupportedLocation struct {
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Country      string `json:"country"`
}

// ResidentialPrices is the EstateIntel market price point for a location slug.
type ResidentialPrices struct {
	AveragePrice    float64                `json:"average_price"`
	LocationDetails map[string]interface{} `json:"location_details,omitempty"`
}
