package handlers

import (
	"net/http"
	"time"

	"github.com/Loki-59/Rlestate/config"
	"github.com/Loki-59/Rlestate/models"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FavoriteController struct {
	collection *mongo.Collection
}

func NewFavoriteController() *FavoriteController {
	return &FavoriteController{
		collection: config.GetCollection(config.CollectionName("MONGODB_COLLECTION_FAVORITES", "favorites")),
	}
}

func (fc *FavoriteController) CreateFavorite(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	var req struct {
		PropertyID string `json:"propertyId"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	propertyID, err := primitive.ObjectIDFromHex(req.PropertyID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid property ID"})
	}

	count, err := fc.collection.CountDocuments(ctx, bson.M{"userId": userID, "propertyId": propertyID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to check favorite"})
	}
	if count > 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Property already in favorites"})
	}

	favorite := models.Favorite{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now(),
	}
	_, err = fc.collection.InsertOne(ctx, favorite)
	if err != nil {
		// The unique (userId, propertyId) index catches the race the
		// pre-check above cannot.
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Property already in favorites"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to favorite property"})
	}
	return c.JSON(http.StatusCreated, favorite)
}

func (fc *FavoriteController) GetFavorites(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	propertiesCollection := config.CollectionName("MONGODB_COLLECTION_PROPERTIES", "properties")
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "userId", Value: userID}}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: propertiesCollection},
			{Key: "localField", Value: "propertyId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "property"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$property"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cursor, err := fc.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch favorites"})
	}
	defer cursor.Close(ctx)

	favorites := []models.FavoriteWithProperty{}
	if err := cursor.All(ctx, &favorites); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode favorites"})
	}
	return c.JSON(http.StatusOK, favorites)
}

func (fc *FavoriteController) DeleteFavorite(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid favorite ID"})
	}

	res, err := fc.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to remove favorite"})
	}
	if res.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Favorite not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Favorite removed"})
}
