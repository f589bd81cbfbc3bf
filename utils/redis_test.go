package utils

import "testing"

func TestGenerateQueryCacheKeyStable(t *testing.T) {
	a := GenerateQueryCacheKey("properties", map[string]string{"city": "Lagos", "minPrice": "100"})
	b := GenerateQueryCacheKey("properties", map[string]string{"minPrice": "100", "city": "Lagos"})
	if a != b {
		t.Errorf("same params should produce the same key: %s vs %s", a, b)
	}
}

func TestGenerateQueryCacheKeyDistinct(t *testing.T) {
	a := GenerateQueryCacheKey("properties", map[string]string{"city": "Lagos"})
	b := GenerateQueryCacheKey("properties", map[string]string{"city": "Abuja"})
	if a == b {
		t.Error("different params should produce different keys")
	}

	c := GenerateQueryCacheKey("analytics", map[string]string{"city": "Lagos"})
	if a == c {
		t.Error("different prefixes should produce different keys")
	}
}
