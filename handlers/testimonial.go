package handlers

import (
	"net/http"
	"time"

	"github.com/Loki-59/Rlestate/config"
	"github.com/Loki-59/Rlestate/models"
	"github.com/Loki-59/Rlestate/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TestimonialController struct {
	collection *mongo.Collection
}

func NewTestimonialController() *TestimonialController {
	return &TestimonialController{
		collection: config.GetCollection(config.CollectionName("MONGODB_COLLECTION_TESTIMONIALS", "testimonials")),
	}
}

func (tc *TestimonialController) CreateTestimonial(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	ctx := c.Request().Context()

	var req models.CreateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name, email and message are required"})
	}
	if !utils.IsValidRating(req.Rating) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Rating must be between 1 and 5"})
	}

	now := time.Now()
	testimonial := models.Testimonial{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
		Rating:     req.Rating,
		IsApproved: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := tc.collection.InsertOne(ctx, testimonial); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create testimonial"})
	}
	return c.JSON(http.StatusCreated, testimonial)
}

func (tc *TestimonialController) GetTestimonials(c echo.Context) error {
	ctx := c.Request().Context()

	cursor, err := tc.collection.Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch testimonials"})
	}
	defer cursor.Close(ctx)

	testimonials := []models.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode testimonials"})
	}
	return c.JSON(http.StatusOK, testimonials)
}

func (tc *TestimonialController) UpdateTestimonial(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid testimonial ID"})
	}

	var testimonial models.Testimonial
	err = tc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&testimonial)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Testimonial not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch testimonial"})
	}

	var req models.UpdateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updateDoc := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		updateDoc["name"] = *req.Name
	}
	if req.Email != nil {
		updateDoc["email"] = *req.Email
	}
	if req.Message != nil {
		updateDoc["message"] = *req.Message
	}
	if req.Rating != nil {
		if !utils.IsValidRating(*req.Rating) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Rating must be between 1 and 5"})
		}
		updateDoc["rating"] = *req.Rating
	}
	if req.IsApproved != nil {
		updateDoc["isApproved"] = *req.IsApproved
	}

	_, err = tc.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update testimonial"})
	}

	err = tc.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&testimonial)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch updated testimonial"})
	}
	return c.JSON(http.StatusOK, testimonial)
}

func (tc *TestimonialController) DeleteTestimonial(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid testimonial ID"})
	}

	res, err := tc.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete testimonial"})
	}
	if res.DeletedCount == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Testimonial not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Testimonial removed"})
}
