package handlers

import (
	"errors"
	"testing"

	"github.com/Loki-59/Rlestate/models"
	"github.com/Loki-59/Rlestate/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }
func iPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool      { return &v }

func TestBuildPropertyUpdateOnlySuppliedFields(t *testing.T) {
	doc, err := buildPropertyUpdate(models.UpdatePropertyRequest{
		Title: strPtr("Renovated duplex"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc) != 1 {
		t.Fatalf("expected only title in $set, got %v", doc)
	}
	if doc["title"] != "Renovated duplex" {
		t.Errorf("title = %v", doc["title"])
	}
}

func TestBuildPropertyUpdateExplicitFalse(t *testing.T) {
	// An explicit false must land in the $set document; an omitted bool
	// must not.
	doc, err := buildPropertyUpdate(models.UpdatePropertyRequest{
		ForSale: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, present := doc["forSale"]
	if !present || v != false {
		t.Errorf("explicit false not applied: %v", doc)
	}
	if _, present := doc["forRent"]; present {
		t.Error("omitted forRent must not appear in $set")
	}
}

func TestBuildPropertyUpdateRejectsNegativePrice(t *testing.T) {
	_, err := buildPropertyUpdate(models.UpdatePropertyRequest{Price: f64Ptr(-10)})
	var vErr *utils.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestBuildPropertyUpdateRejectsBadType(t *testing.T) {
	_, err := buildPropertyUpdate(models.UpdatePropertyRequest{PropertyType: strPtr("Castle")})
	var vErr *utils.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
}

func TestBuildPropertyUpdateZeroBedroomsIsOverwrite(t *testing.T) {
	doc, err := buildPropertyUpdate(models.UpdatePropertyRequest{Bedrooms: iPtr(0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc["bedrooms"] != 0 {
		t.Errorf("explicit zero should overwrite, got %v", doc)
	}
}

func validCreateRequest() models.CreatePropertyRequest {
	return models.CreatePropertyRequest{
		Title:       "3 bedroom flat",
		Description: "Spacious flat close to the market",
		Location:    models.Location{City: "Lagos", State: "Lagos State"},
		Price:       25000000,
		Bedrooms:    3,
		Bathrooms:   2,
	}
}

func TestNewPropertyFromRequestDefaults(t *testing.T) {
	userID := primitive.NewObjectID()
	property, err := newPropertyFromRequest(validCreateRequest(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if property.PropertyType != "House" {
		t.Errorf("default property type = %s, want House", property.PropertyType)
	}
	if !property.ForSale {
		t.Error("forSale should default to true")
	}
	if property.ForRent {
		t.Error("forRent should default to false")
	}
	if property.DateListed.IsZero() {
		t.Error("dateListed should default to creation time")
	}
	if property.CreatedBy == nil || *property.CreatedBy != userID {
		t.Error("createdBy not set")
	}
}

func TestNewPropertyFromRequestExplicitBooleans(t *testing.T) {
	req := validCreateRequest()
	req.ForSale = boolPtr(false)
	req.ForRent = boolPtr(true)

	property, err := newPropertyFromRequest(req, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if property.ForSale {
		t.Error("explicit false forSale ignored")
	}
	if !property.ForRent {
		t.Error("explicit true forRent ignored")
	}
}

func TestNewPropertyFromRequestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreatePropertyRequest)
	}{
		{"missing title", func(r *models.CreatePropertyRequest) { r.Title = "" }},
		{"missing description", func(r *models.CreatePropertyRequest) { r.Description = "" }},
		{"missing city", func(r *models.CreatePropertyRequest) { r.Location.City = "" }},
		{"missing state", func(r *models.CreatePropertyRequest) { r.Location.State = "" }},
		{"negative price", func(r *models.CreatePropertyRequest) { r.Price = -1 }},
		{"negative bedrooms", func(r *models.CreatePropertyRequest) { r.Bedrooms = -1 }},
		{"negative bathrooms", func(r *models.CreatePropertyRequest) { r.Bathrooms = -1 }},
		{"bad property type", func(r *models.CreatePropertyRequest) { r.PropertyType = "Castle" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			_, err := newPropertyFromRequest(req, primitive.NewObjectID())
			var vErr *utils.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
		})
	}
}
