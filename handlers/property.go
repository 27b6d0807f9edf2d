package handlers

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"NexusRealty/catalog"
	"NexusRealty/config"
	"NexusRealty/listing"
	"NexusRealty/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
)

const propertyCachePrefix = "properties"

type PropertyController struct {
	store *catalog.Store
}

func NewPropertyController() *PropertyController {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	return &PropertyController{
		store: catalog.NewStore(config.GetCollection(collectionName)),
	}
}

func cacheTTL() time.Duration {
	seconds, err := strconv.Atoi(os.Getenv("CACHE_TTL_SECONDS"))
	if err != nil || seconds <= 0 {
		seconds = 60
	}
	return time.Duration(seconds) * time.Second
}

// ListProperties serves the public catalog: fetch-all, then the in-memory
// filter/sort pipeline, rendered as summary cards. A store failure degrades
// to an empty list rather than blocking the catalog view.
func (pc *PropertyController) ListProperties(c echo.Context) error {
	params := map[string]string{
		"type":      c.QueryParam("type"),
		"city":      c.QueryParam("city"),
		"min_price": c.QueryParam("min_price"),
		"max_price": c.QueryParam("max_price"),
		"bedrooms":  c.QueryParam("bedrooms"),
		"sort":      c.QueryParam("sort"),
	}
	cacheKey := utils.GenerateQueryCacheKey(propertyCachePrefix, params)

	var cached []listing.Summary
	if found, err := utils.GetCached(context.Background(), cacheKey, &cached); err == nil && found {
		return c.JSON(http.StatusOK, cached)
	}

	filter := catalog.Filter{
		Type: params["type"],
		City: params["city"],
	}
	if raw := params["min_price"]; raw != "" {
		if min, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.MinPrice = &min
		}
	}
	if raw := params["max_price"]; raw != "" {
		if max, err := strconv.ParseInt(raw, 10, 64); err == nil {
			filter.MaxPrice = &max
		}
	}
	if raw := params["bedrooms"]; raw != "" && raw != "all" {
		if n, err := strconv.Atoi(raw); err == nil {
			filter.Bedrooms = n
		}
	}

	sortKey := params["sort"]
	if sortKey == "" {
		sortKey = catalog.SortNewest
	}

	properties := pc.store.FetchAll(context.Background())
	properties = catalog.ApplyFilters(properties, filter)
	properties = catalog.ApplySort(properties, sortKey)

	summaries := make([]listing.Summary, 0, len(properties))
	for _, p := range properties {
		summaries = append(summaries, listing.Summarize(p))
	}

	if err := utils.SetCached(context.Background(), cacheKey, summaries, cacheTTL()); err != nil {
		c.Logger().Warnf("failed to cache property list: %v", err)
	}

	return c.JSON(http.StatusOK, summaries)
}

// FeaturedProperties serves the homepage highlight set: featured listings
// only, capped, in store order.
func (pc *PropertyController) FeaturedProperties(c echo.Context) error {
	cacheKey := propertyCachePrefix + ":featured"

	var cached []listing.Summary
	if found, err := utils.GetCached(context.Background(), cacheKey, &cached); err == nil && found {
		return c.JSON(http.StatusOK, cached)
	}

	properties := pc.store.FetchAll(context.Background())
	featured := catalog.SelectFeatured(properties, catalog.FeaturedCap)

	summaries := make([]listing.Summary, 0, len(featured))
	for _, p := range featured {
		summaries = append(summaries, listing.Summarize(p))
	}

	if err := utils.SetCached(context.Background(), cacheKey, summaries, cacheTTL()); err != nil {
		c.Logger().Warnf("failed to cache featured properties: %v", err)
	}

	return c.JSON(http.StatusOK, summaries)
}

// GetProperty serves the detail view and bumps the view counter. The
// increment is best-effort: a failure is logged and never surfaced to the
// viewer, and list reads never touch the counter.
func (pc *PropertyController) GetProperty(c echo.Context) error {
	id := c.Param("id")

	property, err := pc.store.GetByID(context.Background(), id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch property"})
	}

	if err := pc.store.IncrementViews(context.Background(), id); err != nil {
		c.Logger().Warnf("view count update failed for %s: %v", id, err)
	} else {
		property.Views++
	}

	return c.JSON(http.StatusOK, listing.Detail(*property))
}
