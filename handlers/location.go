package handlers

import (
	"net/http"
	"time"

	"github.com/Loki-59/Rlestate/models"
	"github.com/Loki-59/Rlestate/services"
	"github.com/Loki-59/Rlestate/utils"

	"github.com/labstack/echo/v4"
)

const locationCacheTTL = 10 * time.Minute

type LocationController struct {
	intel *services.Client
}

func NewLocationController(intel *services.Client) *LocationController {
	return &LocationController{intel: intel}
}

// GetLocations returns the EstateIntel supported-location catalog. The
// catalog changes rarely, so responses are cached to spare the upstream.
func (lc *LocationController) GetLocations(c echo.Context) error {
	ctx := c.Request().Context()

	cacheKey := utils.GenerateQueryCacheKey("locations", map[string]string{"op": "catalog"})
	var cached []models.SupportedLocation
	if found, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && found {
		return c.JSON(http.StatusOK, cached)
	}

	locations, err := lc.intel.SupportedLocations(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	_ = utils.SetCached(ctx, cacheKey, locations, locationCacheTTL)
	return c.JSON(http.StatusOK, locations)
}
