package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Testimonial struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Message    string             `bson:"message" json:"message"`
	Rating     int                `bson:"rating" json:"rating"`
	IsApproved bool               `bson:"isApproved" json:"isApproved"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CreateTestimonialRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}

type UpdateTestimonialRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Message    *string `json:"message"`
	Rating     *int    `json:"rating"`
	IsApproved *bool   `json:"isApproved"`
}
