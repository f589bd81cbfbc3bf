package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var PropertyTypes = []string{"Apartment", "Duplex", "Villa", "House", "Condo"}

type Coordinates struct {
	Lat float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng float64 `bson:"lng,omitempty" json:"lng,omitempty"`
}

type Location struct {
	City         string       `bson:"city" json:"city"`
	State        string       `bson:"state" json:"state"`
	Neighborhood string       `bson:"neighborhood,omitempty" json:"neighborhood,omitempty"`
	Coordinates  *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

type Property struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title        string              `bson:"title" json:"title"`
	Description  string              `bson:"description" json:"description"`
	Location     Location            `bson:"location" json:"location"`
	Price        float64             `bson:"price" json:"price"`
	Bedrooms     int                 `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    int                 `bson:"bathrooms" json:"bathrooms"`
	ImageURL     string              `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	DateListed   time.Time           `bson:"dateListed" json:"dateListed"`
	PropertyType string              `bson:"propertyType" json:"propertyType"`
	ForSale      bool                `bson:"forSale" json:"forSale"`
	ForRent      bool                `bson:"forRent" json:"forRent"`
	CreatedBy    *primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}

type CreatePropertyRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     Location `json:"location"`
	Price        float64  `json:"price"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	ImageURL     string   `json:"imageUrl"`
	PropertyType string   `json:"propertyType"`
	ForSale      *bool    `json:"forSale"`
	ForRent      *bool    `json:"forRent"`
}

// UpdatePropertyRequest carries only the fields present in the request body.
// A nil field means "keep the stored value"; an explicit false or zero is an
// overwrite.
type UpdatePropertyRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Location     *Location `json:"location"`
	Price        *float64  `json:"price"`
	Bedrooms     *int      `json:"bedrooms"`
	Bathrooms    *int      `json:"bathrooms"`
	ImageURL     *string   `json:"imageUrl"`
	PropertyType *string   `json:"propertyType"`
	ForSale      *bool     `json:"forSale"`
	ForRent      *bool     `json:"forRent"`
}
