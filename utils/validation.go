package utils

import "github.com/Loki-59/Rlestate/models"

func IsValidPropertyType(t string) bool {
	for _, pt := range models.PropertyTypes {
		if t == pt {
			return true
		}
	}
	return false
}

// IsValidRating checks the 1-5 testimonial rating bounds.
func IsValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
