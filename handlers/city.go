package handlers

import (
	"context"
	"net/http"
	"os"

	"NexusRealty/config"
	"NexusRealty/models"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CityController struct {
	collection *mongo.Collection
}

func NewCityController() *CityController {
	collectionName := os.Getenv("MONGODB_COLLECTION_CITIES")
	if collectionName == "" {
		collectionName = "cities"
	}
	return &CityController{
		collection: config.GetCollection(collectionName),
	}
}

func (cc *CityController) ListCities(c echo.Context) error {
	cursor, err := cc.collection.Find(context.Background(), bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch cities"})
	}
	defer cursor.Close(context.Background())

	cities := make([]models.City, 0)
	for cursor.Next(context.Background()) {
		var city models.City
		if err := cursor.Decode(&city); err != nil {
			continue
		}
		cities = append(cities, city)
	}
	return c.JSON(http.StatusOK, cities)
}
