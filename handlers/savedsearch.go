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

type SavedSearchController struct {
	collection *mongo.Collection
}

func NewSavedSearchController() *SavedSearchController {
	return &SavedSearchController{
		collection: config.GetCollection(config.CollectionName("MONGODB_COLLECTION_SAVED_SEARCHES", "savedsearches")),
	}
}

func (sc *SavedSearchController) GetSavedSearches(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	cursor, err := sc.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch saved searches"})
	}
	defer cursor.Close(ctx)

	searches := []models.SavedSearch{}
	if err := cursor.All(ctx, &searches); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode saved searches"})
	}
	return c.JSON(http.StatusOK, searches)
}

func (sc *SavedSearchController) CreateSavedSearch(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	var req struct {
		Name    string               `json:"name"`
		Filters models.SearchFilters `json:"filters"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name is required"})
	}

	search := models.SavedSearch{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Name:      req.Name,
		Filters:   req.Filters,
		CreatedAt: time.Now(),
	}
	if _, err := sc.collection.InsertOne(ctx, search); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create saved search"})
	}
	return c.JSON(http.StatusCreated, search)
}

func (sc *SavedSearchController) UpdateSavedSearch(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid saved search ID"})
	}

	owned := bson.M{"_id": id, "userId": userID}
	var search models.SavedSearch
	err = sc.collection.FindOne(ctx, owned).Decode(&search)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Saved search not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch saved search"})
	}

	var req models.UpdateSavedSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updateDoc := bson.M{}
	if req.Name != nil {
		updateDoc["name"] = *req.Name
	}
	if req.Filters != nil {
		updateDoc["filters"] = *req.Filters
	}
	if len(updateDoc) > 0 {
		if _, err := sc.collection.UpdateOne(ctx, owned, bson.M{"$set": updateDoc}); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update saved search"})
		}
	}

	err = sc.collection.FindOne(ctx, owned).Decode(&search)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated saved search"})
	}
	return c.JSON(http.StatusOK, search)
}

func (sc *SavedSearchController) DeleteSavedSearch(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid saved search ID"})
	}

	res, err := sc.collection.DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete saved search"})
	}
	if res.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Saved search not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Saved search removed"})
}
