package routes

import (
	"NexusRealty/handlers"
	"NexusRealty/middleware"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handlers.HealthCheck)

	propertyController := handlers.NewPropertyController()
	cityController := handlers.NewCityController()
	inquiryController := handlers.NewInquiryController()
	authController := handlers.NewAuthController()
	adminController := handlers.NewAdminController()

	api := e.Group("/api")

	// Public catalog.
	api.GET("/properties", propertyController.ListProperties)
	api.GET("/properties/featured", propertyController.FeaturedProperties)
	api.GET("/properties/:id", propertyController.GetProperty)
	api.GET("/cities", cityController.ListCities)
	api.GET("/config", handlers.SiteOptions)
	api.POST("/inquiries", inquiryController.SubmitInquiry)

	// CMS.
	api.POST("/admin/login", authController.Login)

	admin := api.Group("/admin", middleware.JWTMiddleware())
	admin.GET("/properties", adminController.ListProperties)
	admin.POST("/properties", adminController.CreateProperty)
	admin.PUT("/properties/:id", adminController.UpdateProperty)
	admin.DELETE("/properties/:id", adminController.DeleteProperty)
}
