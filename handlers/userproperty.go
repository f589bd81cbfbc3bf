package handlers

import (
	"errors"
	"net/http"

	"github.com/Loki-59/Rlestate/config"
	"github.com/Loki-59/Rlestate/models"
	"github.com/Loki-59/Rlestate/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserPropertyController serves the caller's own listings. Every read,
// update and delete filters by the requesting identity as well as the record
// id, so a record owned by someone else looks absent rather than forbidden.
type UserPropertyController struct {
	collection *mongo.Collection
}

func NewUserPropertyController() *UserPropertyController {
	return &UserPropertyController{
		collection: config.GetCollection(config.CollectionName("MONGODB_COLLECTION_PROPERTIES", "properties")),
	}
}

func (upc *UserPropertyController) ListMyProperties(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	cursor, err := upc.collection.Find(ctx, bson.M{"createdBy": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch properties"})
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode properties"})
	}
	return c.JSON(http.StatusOK, properties)
}

func (upc *UserPropertyController) CreateMyProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	var req models.CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	// User listings skip the external catalog lookup; only domain checks
	// and defaults apply here.
	property, err := newPropertyFromRequest(req, userID)
	if err != nil {
		var vErr *utils.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": vErr.Message})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}

	res, err := upc.collection.InsertOne(ctx, property)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create property"})
	}
	property.ID = res.InsertedID.(primitive.ObjectID)

	_ = utils.InvalidateCache(ctx, "properties")
	_ = utils.InvalidateCache(ctx, "analytics")
	return c.JSON(http.StatusCreated, property)
}

func (upc *UserPropertyController) UpdateMyProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	owned := bson.M{"_id": id, "createdBy": userID}
	var property models.Property
	err = upc.collection.FindOne(ctx, owned).Decode(&property)
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

	updateDoc, err := buildPropertyUpdate(req)
	if err != nil {
		var vErr *utils.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": vErr.Message})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to build update"})
	}

	if len(updateDoc) > 0 {
		_, err = upc.collection.UpdateOne(ctx, owned, bson.M{"$set": updateDoc})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update property"})
		}
	}

	err = upc.collection.FindOne(ctx, owned).Decode(&property)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated property"})
	}

	_ = utils.InvalidateCache(ctx, "properties")
	_ = utils.InvalidateCache(ctx, "analytics")
	return c.JSON(http.StatusOK, property)
}

func (upc *UserPropertyController) DeleteMyProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	res, err := upc.collection.DeleteOne(ctx, bson.M{"_id": id, "createdBy": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete property"})
	}
	if res.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
	}

	_ = utils.InvalidateCache(ctx, "properties")
	_ = utils.InvalidateCache(ctx, "analytics")
	return c.JSON(http.StatusOK, map[string]string{"message": "Property removed"})
}
