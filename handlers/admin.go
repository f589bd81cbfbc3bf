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

// AdminController serves user management and the dashboard stats. Role
// gating happens at the route group; handlers here assume an admin caller.
type AdminController struct {
	userCollection     *mongo.Collection
	propertyCollection *mongo.Collection
}

func NewAdminController() *AdminController {
	return &AdminController{
		userCollection:     config.GetCollection(config.CollectionName("MONGODB_COLLECTION_USERS", "users")),
		propertyCollection: config.GetCollection(config.CollectionName("MONGODB_COLLECTION_PROPERTIES", "properties")),
	}
}

func (ac *AdminController) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()

	cursor, err := ac.userCollection.Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch users"})
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			continue
		}
		user.Password = ""
		users = append(users, user)
	}
	return c.JSON(http.StatusOK, users)
}

func (ac *AdminController) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user ID"})
	}

	var user models.User
	err = ac.userCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch user"})
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updateDoc := bson.M{"updated_at": time.Now()}
	if req.Name != nil {
		updateDoc["name"] = *req.Name
	}
	if req.Email != nil {
		updateDoc["email"] = *req.Email
	}
	if req.Role != nil {
		updateDoc["role"] = *req.Role
	}

	_, err = ac.userCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update user"})
	}

	err = ac.userCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated user"})
	}
	user.Password = ""
	return c.JSON(http.StatusOK, user)
}

func (ac *AdminController) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user ID"})
	}

	res, err := ac.userCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete user"})
	}
	if res.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User removed"})
}

// GetAllProperties is the unfiltered admin listing; search filters and the
// public sort order don't apply here.
func (ac *AdminController) GetAllProperties(c echo.Context) error {
	ctx := c.Request().Context()

	cursor, err := ac.propertyCollection.Find(ctx, bson.M{})
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

func (ac *AdminController) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	totalUsers, err := ac.userCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count users"})
	}

	totalProperties, err := ac.propertyCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count properties"})
	}

	avgPrice, err := overallAvgPrice(ctx, ac.propertyCollection)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to aggregate average price"})
	}

	topCities, err := topCitiesByCount(ctx, ac.propertyCollection, 5)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to aggregate top cities"})
	}

	return c.JSON(http.StatusOK, models.AdminStats{
		TotalUsers:      totalUsers,
		TotalProperties: totalProperties,
		AvgPrice:        avgPrice,
		TopCities:       topCities,
	})
}
