package handlers

import (
	"net/http"

	"NexusRealty/config"

	"github.com/labstack/echo/v4"
)

// SiteOptions serves the fixed site vocabulary. The CMS form builds its
// selects and checkbox groups from this, and the public filter sidebar uses
// the type and city lists.
func SiteOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"propertyTypes":      config.PropertyTypes,
		"cities":             config.Cities,
		"paymentPlans":       config.PaymentPlans,
		"titleStatusOptions": config.TitleStatusOptions,
		"amenities":          config.AmenitiesList,
		"estateFeatures":     config.EstateFeaturesList,
		"placeholderImage":   config.PlaceholderImage,
	})
}
