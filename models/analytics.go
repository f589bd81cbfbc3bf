package models

// CityAverage is one group of the avg-price-by-city aggregation. The _id key
// carries the city name, matching the raw pipeline output. LocalAvgPrice is
// nil for synthetic entries appended from market data when the city has no
// local listings.
type CityAverage struct {
	City             string   `bson:"_id" json:"_id"`
	LocalAvgPrice    *float64 `bson:"localAvgPrice" json:"localAvgPrice"`
	Count            int64    `bson:"count" json:"count"`
	MarketAvgPrice   *float64 `bson:"-" json:"marketAvgPrice,omitempty"`
	EnhancedAvgPrice *float64 `bson:"-" json:"enhancedAvgPrice,omitempty"`
}

type CityCount struct {
	City  string `bson:"_id" json:"_id"`
	Count int64  `bson:"count" json:"count"`
}

type YearMonth struct {
	Year  int `bson:"year" json:"year"`
	Month int `bson:"month" json:"month"`
}

type PriceTrend struct {
	Period   YearMonth `bson:"_id" json:"_id"`
	AvgPrice float64   `bson:"avgPrice" json:"avgPrice"`
	Count    int64     `bson:"count" json:"count"`
}

type AnalyticsSummary struct {
	TotalListings int64       `json:"totalListings"`
	AvgPrice      float64     `json:"avgPrice"`
	TopCities     []CityCount `json:"topCities"`
}

type AdminStats struct {
	TotalUsers      int64       `json:"totalUsers"`
	TotalProperties int64       `json:"totalProperties"`
	AvgPrice        float64     `json:"avgPrice"`
	TopCities       []CityCount `json:"topCities"`
}
