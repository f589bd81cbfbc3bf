package utils

import "testing"

func TestIsValidPropertyType(t *testing.T) {
	for _, valid := range []string{"Apartment", "Duplex", "Villa", "House", "Condo"} {
		if !IsValidPropertyType(valid) {
			t.Errorf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []string{"", "house", "Castle", "APARTMENT"} {
		if IsValidPropertyType(invalid) {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}

func TestIsValidRating(t *testing.T) {
	tests := []struct {
		rating int
		want   bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{5, true},
		{6, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := IsValidRating(tt.rating); got != tt.want {
			t.Errorf("IsValidRating(%d) = %v, want %v", tt.rating, got, tt.want)
		}
	}
}
