package handlers

import (
	"context"
	"net/http"
	"os"

	"NexusRealty/catalog"
	"NexusRealty/config"
	"NexusRealty/listing"
	"NexusRealty/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminController struct {
	store *catalog.Store
}

func NewAdminController() *AdminController {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	return &AdminController{
		store: catalog.NewStore(config.GetCollection(collectionName)),
	}
}

// ListProperties returns the raw records newest-first for the CMS table.
// Unlike the public catalog, store errors are surfaced to the operator.
func (ac *AdminController) ListProperties(c echo.Context) error {
	properties, err := ac.store.ListAll(context.Background())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, catalog.ApplySort(properties, catalog.SortNewest))
}

// CreateProperty validates and normalizes the form input, writes it to the
// store and returns the record with its assigned id.
func (ac *AdminController) CreateProperty(c echo.Context) error {
	var input listing.PropertyInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if verr := input.Validate(); verr != nil {
		return c.JSON(http.StatusBadRequest, verr)
	}

	property, err := ac.store.Create(context.Background(), input.Normalize())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	ac.invalidateCache(c)
	return c.JSON(http.StatusCreated, property)
}

// UpdateProperty re-validates the full form and upserts the record. The id,
// createdAt and view counter survive; pricePerPlot is recomputed from the
// submitted price and plots.
func (ac *AdminController) UpdateProperty(c echo.Context) error {
	id := c.Param("id")

	var input listing.PropertyInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if verr := input.Validate(); verr != nil {
		return c.JSON(http.StatusBadRequest, verr)
	}

	property, err := ac.store.Upsert(context.Background(), id, input.Normalize())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	ac.invalidateCache(c)
	return c.JSON(http.StatusOK, property)
}

// DeleteProperty hard-deletes a listing. Deleting the same id again returns
// 404; the UI-level confirmation is the only safeguard.
func (ac *AdminController) DeleteProperty(c echo.Context) error {
	id := c.Param("id")

	if err := ac.store.Delete(context.Background(), id); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	ac.invalidateCache(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

func (ac *AdminController) invalidateCache(c echo.Context) {
	if err := utils.InvalidateCached(context.Background(), propertyCachePrefix); err != nil {
		c.Logger().Warnf("failed to invalidate property cache: %v", err)
	}
}
