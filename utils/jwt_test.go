package utils

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := primitive.NewObjectID()
	token, err := GenerateJWT(userID, "user@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id = %s, want %s", claims.UserID.Hex(), userID.Hex())
	}
	if claims.Email != "user@example.com" {
		t.Errorf("email = %s", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("role = %s", claims.Role)
	}
}

func TestValidateJWTRejectsTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(primitive.NewObjectID(), "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	if _, err := ValidateJWT(token + "x"); err == nil {
		t.Error("expected tampered token to fail validation")
	}
}

func TestGenerateJWTMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateJWT(primitive.NewObjectID(), "user@example.com", "user"); err == nil {
		t.Error("expected error when JWT_SECRET unset")
	}
}
