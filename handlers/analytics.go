package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Loki-59/Rlestate/config"
	"github.com/Loki-59/Rlestate/models"
	"github.com/Loki-59/Rlestate/services"
	"github.com/Loki-59/Rlestate/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const analyticsCacheTTL = 2 * time.Minute

type AnalyticsController struct {
	collection *mongo.Collection
	intel      *services.Client
}

func NewAnalyticsController(intel *services.Client) *AnalyticsController {
	return &AnalyticsController{
		collection: config.GetCollection(config.CollectionName("MONGODB_COLLECTION_PROPERTIES", "properties")),
		intel:      intel,
	}
}

// AvgPriceByCity groups listings by city with mean price and count, sorted by
// local average descending. With enhanced=true and a city, the matching group
// is merged with EstateIntel market data; an upstream failure only degrades
// the response to the unenhanced groups.
func (ac *AnalyticsController) AvgPriceByCity(c echo.Context) error {
	ctx := c.Request().Context()

	data, err := ac.cityAverages(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to aggregate city averages"})
	}

	if c.QueryParam("enhanced") == "true" {
		city := c.QueryParam("city")
		if city != "" {
			dealType := c.QueryParam("type")
			if dealType == "" {
				dealType = "sale"
			}
			beds := 3
			if b := c.QueryParam("beds"); b != "" {
				if v, err := strconv.Atoi(b); err == nil {
					beds = v
				}
			}

			market, err := ac.intel.ResidentialPrices(ctx, locationSlug(city), dealType, beds, "NG")
			if err != nil {
				log.Printf("Market data unavailable for %s: %v", city, err)
			} else {
				data = applyMarketData(data, city, market)
			}
		}
	}

	return c.JSON(http.StatusOK, data)
}

func (ac *AnalyticsController) cityAverages(ctx context.Context) ([]models.CityAverage, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$location.city"},
			{Key: "localAvgPrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "localAvgPrice", Value: -1}}}},
	}

	cursor, err := ac.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	data := []models.CityAverage{}
	if err := cursor.All(ctx, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// locationSlug maps a city name to an EstateIntel location slug. Lagos has a
// dedicated mapping; every other city uses the generic central pattern.
func locationSlug(city string) string {
	lower := strings.ToLower(city)
	if lower == "lagos" {
		return "lagos-ikeja"
	}
	return lower + "-central"
}

// applyMarketData attaches the market average and the mean of local and
// market averages to the group matching city (case-insensitive). When the
// city has no local listings a synthetic group carrying only the market
// figures is appended.
func applyMarketData(data []models.CityAverage, city string, market *models.ResidentialPrices) []models.CityAverage {
	marketAvg := market.AveragePrice
	for i := range data {
		if strings.EqualFold(data[i].City, city) {
			data[i].MarketAvgPrice = &marketAvg
			if data[i].LocalAvgPrice != nil {
				enhanced := (*data[i].LocalAvgPrice + marketAvg) / 2
				data[i].EnhancedAvgPrice = &enhanced
			} else {
				data[i].EnhancedAvgPrice = &marketAvg
			}
			return data
		}
	}
	enhanced := marketAvg
	return append(data, models.CityAverage{
		City:             city,
		Count:            0,
		MarketAvgPrice:   &marketAvg,
		EnhancedAvgPrice: &enhanced,
	})
}

func (ac *AnalyticsController) ListingsPerCity(c echo.Context) error {
	ctx := c.Request().Context()

	cacheKey := utils.GenerateQueryCacheKey("analytics", map[string]string{"op": "listings-per-city"})
	var cached []models.CityCount
	if found, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && found {
		return c.JSON(http.StatusOK, cached)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$location.city"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := ac.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to aggregate listings per city"})
	}
	defer cursor.Close(ctx)

	data := []models.CityCount{}
	if err := cursor.All(ctx, &data); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode aggregation"})
	}

	_ = utils.SetCached(ctx, cacheKey, data, analyticsCacheTTL)
	return c.JSON(http.StatusOK, data)
}

func (ac *AnalyticsController) PriceTrends(c echo.Context) error {
	ctx := c.Request().Context()

	cacheKey := utils.GenerateQueryCacheKey("analytics", map[string]string{"op": "price-trends"})
	var cached []models.PriceTrend
	if found, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && found {
		return c.JSON(http.StatusOK, cached)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "year", Value: bson.D{{Key: "$year", Value: "$dateListed"}}},
				{Key: "month", Value: bson.D{{Key: "$month", Value: "$dateListed"}}},
			}},
			{Key: "avgPrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
		}}},
	}

	cursor, err := ac.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to aggregate price trends"})
	}
	defer cursor.Close(ctx)

	data := []models.PriceTrend{}
	if err := cursor.All(ctx, &data); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode aggregation"})
	}

	_ = utils.SetCached(ctx, cacheKey, data, analyticsCacheTTL)
	return c.JSON(http.StatusOK, data)
}

func (ac *AnalyticsController) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	cacheKey := utils.GenerateQueryCacheKey("analytics", map[string]string{"op": "summary"})
	var cached models.AnalyticsSummary
	if found, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && found {
		return c.JSON(http.StatusOK, cached)
	}

	total, err := ac.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count listings"})
	}

	avgPrice, err := overallAvgPrice(ctx, ac.collection)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to aggregate average price"})
	}

	topCities, err := topCitiesByCount(ctx, ac.collection, 5)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to aggregate top cities"})
	}

	summary := models.AnalyticsSummary{
		TotalListings: total,
		AvgPrice:      avgPrice,
		TopCities:     topCities,
	}
	_ = utils.SetCached(ctx, cacheKey, summary, analyticsCacheTTL)
	return c.JSON(http.StatusOK, summary)
}

// MarketPrices passes an EstateIntel price lookup through; the location slug
// is required.
func (ac *AnalyticsController) MarketPrices(c echo.Context) error {
	location := c.QueryParam("location")
	if location == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Location slug is required (e.g., lagos-ikeja)"})
	}

	dealType := c.QueryParam("type")
	if dealType == "" {
		dealType = "sale"
	}
	beds := 3
	if b := c.QueryParam("beds"); b != "" {
		if v, err := strconv.Atoi(b); err == nil {
			beds = v
		}
	}
	country := c.QueryParam("country")
	if country == "" {
		country = "NG"
	}

	prices, err := ac.intel.ResidentialPrices(c.Request().Context(), location, dealType, beds, country)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, prices)
}

// overallAvgPrice returns 0 when no properties exist.
func overallAvgPrice(ctx context.Context, collection *mongo.Collection) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avgPrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
		}}},
	}
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		AvgPrice float64 `bson:"avgPrice"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].AvgPrice, nil
}

func topCitiesByCount(ctx context.Context, collection *mongo.Collection, limit int) ([]models.CityCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$location.city"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	cities := []models.CityCount{}
	if err := cursor.All(ctx, &cities); err != nil {
		return nil, err
	}
	return cities, nil
}
