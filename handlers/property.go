package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Loki-59/Rlestate/config"
	"github.com/Loki-59/Rlestate/models"
	"github.com/Loki-59/Rlestate/services"
	"github.com/Loki-59/Rlestate/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const propertyCacheTTL = 5 * time.Minute

type PropertyController struct {
	collection *mongo.Collection
	intel      *services.Client
}

func NewPropertyController(intel *services.Client) *PropertyController {
	return &PropertyController{
		collection: config.GetCollection(config.CollectionName("MONGODB_COLLECTION_PROPERTIES", "properties")),
		intel:      intel,
	}
}

func searchParamsFromQuery(c echo.Context) utils.PropertySearchParams {
	params := utils.PropertySearchParams{
		City:         c.QueryParam("city"),
		State:        c.QueryParam("state"),
		Neighborhood: c.QueryParam("neighborhood"),
		PropertyType: c.QueryParam("propertyType"),
	}
	if minPrice := c.QueryParam("minPrice"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			params.MinPrice = &v
		}
	}
	if maxPrice := c.QueryParam("maxPrice"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			params.MaxPrice = &v
		}
	}
	if bedrooms := c.QueryParam("bedrooms"); bedrooms != "" {
		if v, err := strconv.Atoi(bedrooms); err == nil {
			params.Bedrooms = &v
		}
	}
	return params
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	ctx := c.Request().Context()
	params := searchParamsFromQuery(c)

	var catalog []models.SupportedLocation
	if params.NeedsLocationValidation() {
		var err error
		catalog, err = pc.intel.SupportedLocations(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}

	query, err := utils.BuildPropertyQuery(params, catalog)
	if err != nil {
		var vErr *utils.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": vErr.Message})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to build search query"})
	}

	cacheKey := utils.GenerateQueryCacheKey("properties", map[string]string{
		"city":         params.City,
		"state":        params.State,
		"neighborhood": params.Neighborhood,
		"propertyType": params.PropertyType,
		"minPrice":     c.QueryParam("minPrice"),
		"maxPrice":     c.QueryParam("maxPrice"),
		"bedrooms":     c.QueryParam("bedrooms"),
	})
	var cached []models.Property
	if found, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && found {
		return c.JSON(http.StatusOK, cached)
	}

	opts := options.Find().SetSort(bson.D{{Key: "dateListed", Value: -1}})
	cursor, err := pc.collection.Find(ctx, query, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode properties"})
	}

	_ = utils.SetCached(ctx, cacheKey, properties, propertyCacheTTL)
	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}
	var property models.Property
	err = pc.collection.FindOne(c.Request().Context(), bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}
	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	var req models.CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	property, err := pc.buildProperty(ctx, req, userID)
	if err != nil {
		var vErr *utils.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": vErr.Message})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	res, err := pc.collection.InsertOne(ctx, property)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}
	property.ID = res.InsertedID.(primitive.ObjectID)

	pc.invalidateCaches(ctx)
	return c.JSON(http.StatusCreated, property)
}

func (pc *PropertyController) buildProperty(ctx context.Context, req models.CreatePropertyRequest, userID primitive.ObjectID) (*models.Property, error) {
	property, err := newPropertyFromRequest(req, userID)
	if err != nil {
		return nil, err
	}
	if err := pc.validateLocation(ctx, property.Location); err != nil {
		return nil, err
	}
	return property, nil
}

// newPropertyFromRequest applies defaults and domain checks; location
// validation against the external catalog happens separately.
func newPropertyFromRequest(req models.CreatePropertyRequest, userID primitive.ObjectID) (*models.Property, error) {
	if req.Title == "" || req.Description == "" {
		return nil, &utils.ValidationError{Message: "Title and description are required"}
	}
	if req.Location.City == "" || req.Location.State == "" {
		return nil, &utils.ValidationError{Message: "Location city and state are required"}
	}
	if req.Price < 0 || req.Bedrooms < 0 || req.Bathrooms < 0 {
		return nil, &utils.ValidationError{Message: "Price, bedrooms and bathrooms must be non-negative"}
	}
	if req.PropertyType == "" {
		req.PropertyType = "House"
	}
	if !utils.IsValidPropertyType(req.PropertyType) {
		return nil, &utils.ValidationError{Message: "Invalid property type: " + req.PropertyType}
	}

	forSale := true
	if req.ForSale != nil {
		forSale = *req.ForSale
	}
	forRent := false
	if req.ForRent != nil {
		forRent = *req.ForRent
	}

	return &models.Property{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Price:        req.Price,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		ImageURL:     req.ImageURL,
		DateListed:   time.Now(),
		PropertyType: req.PropertyType,
		ForSale:      forSale,
		ForRent:      forRent,
		CreatedBy:    &userID,
	}, nil
}

func (pc *PropertyController) validateLocation(ctx context.Context, loc models.Location) error {
	if loc.City == "" && loc.Neighborhood == "" {
		return nil
	}
	catalog, err := pc.intel.SupportedLocations(ctx)
	if err != nil {
		return err
	}
	_, err = utils.BuildPropertyQuery(utils.PropertySearchParams{
		City:         loc.City,
		Neighborhood: loc.Neighborhood,
	}, catalog)
	return err
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	var property models.Property
	err = pc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	var req models.UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if req.Location != nil {
		if err := pc.validateLocation(ctx, *req.Location); err != nil {
			var vErr *utils.ValidationError
			if errors.As(err, &vErr) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": vErr.Message})
			}
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}

	updateDoc, err := buildPropertyUpdate(req)
	if err != nil {
		var vErr *utils.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": vErr.Message})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to build update"})
	}

	if len(updateDoc) > 0 {
		_, err = pc.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateDoc})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
		}
	}

	err = pc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated property"})
	}

	pc.invalidateCaches(ctx)
	return c.JSON(http.StatusOK, property)
}

// buildPropertyUpdate maps only the supplied fields into a $set document so
// omitted fields keep their stored values. Explicit false booleans and zero
// numbers are overwrites.
func buildPropertyUpdate(req models.UpdatePropertyRequest) (bson.M, error) {
	updateDoc := bson.M{}
	if req.Title != nil {
		updateDoc["title"] = *req.Title
	}
	if req.Description != nil {
		updateDoc["description"] = *req.Description
	}
	if req.Location != nil {
		updateDoc["location"] = *req.Location
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, &utils.ValidationError{Message: "Price must be non-negative"}
		}
		updateDoc["price"] = *req.Price
	}
	if req.Bedrooms != nil {
		if *req.Bedrooms < 0 {
			return nil, &utils.ValidationError{Message: "Bedrooms must be non-negative"}
		}
		updateDoc["bedrooms"] = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		if *req.Bathrooms < 0 {
			return nil, &utils.ValidationError{Message: "Bathrooms must be non-negative"}
		}
		updateDoc["bathrooms"] = *req.Bathrooms
	}
	if req.ImageURL != nil {
		updateDoc["imageUrl"] = *req.ImageURL
	}
	if req.PropertyType != nil {
		if !utils.IsValidPropertyType(*req.PropertyType) {
			return nil, &utils.ValidationError{Message: "Invalid property type: " + *req.PropertyType}
		}
		updateDoc["propertyType"] = *req.PropertyType
	}
	if req.ForSale != nil {
		updateDoc["forSale"] = *req.ForSale
	}
	if req.ForRent != nil {
		updateDoc["forRent"] = *req.ForRent
	}
	return updateDoc, nil
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	res, err := pc.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete property"})
	}
	if res.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	pc.invalidateCaches(ctx)
	return c.JSON(http.StatusOK, map[string]string{"message": "Property removed"})
}

func (pc *PropertyController) invalidateCaches(ctx context.Context) {
	_ = utils.InvalidateCache(ctx, "properties")
	_ = utils.InvalidateCache(ctx, "analytics")
}
