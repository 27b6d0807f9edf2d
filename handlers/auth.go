package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"NexusRealty/config"
	"NexusRealty/models"
	"NexusRealty/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AuthController struct {
	collection *mongo.Collection
}

func NewAuthController() *AuthController {
	collectionName := os.Getenv("MONGODB_COLLECTION_CMS_USERS")
	if collectionName == "" {
		collectionName = "cms_users"
	}
	return &AuthController{
		collection: config.GetCollection(collectionName),
	}
}

// Login issues a JWT for a CMS operator. This replaces the old client-side
// auth flag: the admin routes only accept tokens minted here.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Username and password are required",
		})
	}

	var user models.CMSUser
	err := ac.collection.FindOne(context.Background(), bson.M{"username": req.Username}).Decode(&user)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid username or password",
		})
	}

	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid username or password",
		})
	}

	token, err := utils.GenerateJWT(user.ID, user.Username, user.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to generate token",
		})
	}

	now := time.Now()
	_, err = ac.collection.UpdateOne(
		context.Background(),
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"last_login": now}},
	)
	if err != nil {
		c.Logger().Warnf("failed to record last login for %s: %v", user.Username, err)
	}

	return c.JSON(http.StatusOK, models.LoginResponse{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	})
}
