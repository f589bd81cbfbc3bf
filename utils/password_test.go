package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hashed == "s3cret-pass" {
		t.Fatal("password stored in plain text")
	}
	if err := CheckPassword(hashed, "s3cret-pass"); err != nil {
		t.Errorf("expected matching password to verify: %v", err)
	}
	if err := CheckPassword(hashed, "wrong-pass"); err == nil {
		t.Error("expected mismatch to fail")
	}
}
