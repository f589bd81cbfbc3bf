package utils

import (
	"fmt"
	"strings"

	"github.com/Loki-59/Rlestate/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ValidationError marks a caller-supplied filter as invalid; handlers map it
// to a 400 while every other error stays a 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PropertySearchParams are the optional search criteria for property
// listing. Empty strings and nil numbers mean the criterion is absent.
type PropertySearchParams struct {
	City         string
	State        string
	Neighborhood string
	PropertyType string
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
}

// NeedsLocationValidation reports whether the supported-location catalog
// must be consulted before this search can run.
func (p PropertySearchParams) NeedsLocationValidation() bool {
	return p.City != "" || p.Neighborhood != ""
}

// BuildPropertyQuery validates the location criteria against the catalog and
// constructs the mongo filter document. The catalog is only consulted when
// city or neighborhood is supplied; pass nil otherwise.
func BuildPropertyQuery(p PropertySearchParams, catalog []models.SupportedLocation) (bson.M, error) {
	if p.NeedsLocationValidation() {
		if err := validateLocation(p.City, p.Neighborhood, catalog); err != nil {
			return nil, err
		}
	}

	query := bson.M{}
	if p.City != "" {
		query["location.city"] = p.City
	}
	if p.State != "" {
		query["location.state"] = p.State
	}
	if p.Neighborhood != "" {
		query["location.neighborhood"] = p.Neighborhood
	}
	if p.MinPrice != nil || p.MaxPrice != nil {
		price := bson.M{}
		if p.MinPrice != nil {
			price["$gte"] = *p.MinPrice
		}
		if p.MaxPrice != nil {
			price["$lte"] = *p.MaxPrice
		}
		query["price"] = price
	}
	if p.Bedrooms != nil {
		query["bedrooms"] = *p.Bedrooms
	}
	if p.PropertyType != "" {
		query["propertyType"] = p.PropertyType
	}
	return query, nil
}

func validateLocation(city, neighborhood string, catalog []models.SupportedLocation) error {
	seen := make(map[string]bool)
	var cities []string
	for _, loc := range catalog {
		lower := strings.ToLower(loc.City)
		if !seen[lower] {
			seen[lower] = true
			cities = append(cities, lower)
		}
	}

	if city != "" && !seen[strings.ToLower(city)] {
		return &ValidationError{
			Message: fmt.Sprintf("Invalid city: %s. Supported cities include: %s", city, strings.Join(suggestions(cities), ", ")),
		}
	}

	if neighborhood != "" {
		var neighborhoods []string
		for _, loc := range catalog {
			if strings.EqualFold(loc.City, city) {
				neighborhoods = append(neighborhoods, strings.ToLower(loc.Neighborhood))
			}
		}
		if !containsFold(neighborhoods, neighborhood) {
			return &ValidationError{
				Message: fmt.Sprintf("Invalid neighborhood: %s for city %s. Supported: %s", neighborhood, city, strings.Join(suggestions(neighborhoods), ", ")),
			}
		}
	}
	return nil
}

func suggestions(values []string) []string {
	if len(values) > 3 {
		return values[:3]
	}
	return values
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
