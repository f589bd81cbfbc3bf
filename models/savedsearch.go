package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SearchFilters struct {
	City         string  `bson:"city,omitempty" json:"city,omitempty"`
	State        string  `bson:"state,omitempty" json:"state,omitempty"`
	MinPrice     float64 `bson:"minPrice,omitempty" json:"minPrice,omitempty"`
	MaxPrice     float64 `bson:"maxPrice,omitempty" json:"maxPrice,omitempty"`
	Bedrooms     int     `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	PropertyType string  `bson:"propertyType,omitempty" json:"propertyType,omitempty"`
}

type SavedSearch struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Filters   SearchFilters      `bson:"filters" json:"filters"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type UpdateSavedSearchRequest struct {
	Name    *string        `json:"name"`
	Filters *SearchFilters `json:"filters"`
}
