package routes

import (
	"github.com/Loki-59/Rlestate/handlers"
	"github.com/Loki-59/Rlestate/middleware"
	"github.com/Loki-59/Rlestate/services"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, intel *services.Client) {
	e.GET("/health", handlers.HealthCheck)

	userController := handlers.NewUserController()
	propertyController := handlers.NewPropertyController(intel)
	userPropertyController := handlers.NewUserPropertyController()
	analyticsController := handlers.NewAnalyticsController(intel)
	locationController := handlers.NewLocationController(intel)
	adminController := handlers.NewAdminController()
	favoriteController := handlers.NewFavoriteController()
	savedSearchController := handlers.NewSavedSearchController()
	testimonialController := handlers.NewTestimonialController()
	uploadController := handlers.NewUploadController()

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", userController.Register)
	auth.POST("/login", userController.Login)
	profile := auth.Group("/profile", middleware.JWTMiddleware())
	profile.GET("", userController.GetProfile)
	profile.PUT("", userController.UpdateProfile)
	profile.DELETE("", userController.DeleteAccount)

	properties := api.Group("/properties")
	properties.GET("", propertyController.ListProperties)
	properties.GET("/:id", propertyController.GetProperty)
	properties.POST("", propertyController.CreateProperty, middleware.JWTMiddleware(), middleware.AdminMiddleware())
	properties.PUT("/:id", propertyController.UpdateProperty, middleware.JWTMiddleware(), middleware.AdminMiddleware())
	properties.DELETE("/:id", propertyController.DeleteProperty, middleware.JWTMiddleware(), middleware.AdminMiddleware())

	analytics := api.Group("/analytics")
	analytics.GET("/avg-price-by-city", analyticsController.AvgPriceByCity)
	analytics.GET("/listings-per-city", analyticsController.ListingsPerCity)
	analytics.GET("/price-trends", analyticsController.PriceTrends)
	analytics.GET("/summary", analyticsController.Summary)
	analytics.GET("/market-prices", analyticsController.MarketPrices)

	api.GET("/locations", locationController.GetLocations)

	admin := api.Group("/admin", middleware.JWTMiddleware(), middleware.AdminMiddleware())
	admin.GET("/users", adminController.GetUsers)
	admin.PUT("/users/:id", adminController.UpdateUser)
	admin.DELETE("/users/:id", adminController.DeleteUser)
	admin.GET("/properties", adminController.GetAllProperties)
	admin.POST("/properties", propertyController.CreateProperty)
	admin.PUT("/properties/:id", propertyController.UpdateProperty)
	admin.DELETE("/properties/:id", propertyController.DeleteProperty)
	admin.GET("/stats", adminController.GetStats)

	favorites := api.Group("/favorites", middleware.JWTMiddleware())
	favorites.GET("", favoriteController.GetFavorites)
	favorites.POST("", favoriteController.CreateFavorite)
	favorites.DELETE("/:id", favoriteController.DeleteFavorite)

	savedSearches := api.Group("/saved-searches", middleware.JWTMiddleware())
	savedSearches.GET("", savedSearchController.GetSavedSearches)
	savedSearches.POST("", savedSearchController.CreateSavedSearch)
	savedSearches.PUT("/:id", savedSearchController.UpdateSavedSearch)
	savedSearches.DELETE("/:id", savedSearchController.DeleteSavedSearch)

	uploads := api.Group("/uploads", middleware.JWTMiddleware(), middleware.AdminMiddleware())
	uploads.POST("", uploadController.UploadImage)

	testimonials := api.Group("/testimonials")
	testimonials.POST("", testimonialController.CreateTestimonial, middleware.JWTMiddleware())
	testimonials.GET("", testimonialController.GetTestimonials)
	testimonials.PUT("/:id", testimonialController.UpdateTestimonial, middleware.JWTMiddleware(), middleware.AdminMiddleware())
	testimonials.DELETE("/:id", testimonialController.DeleteTestimonial, middleware.JWTMiddleware(), middleware.AdminMiddleware())

	user := api.Group("/user", middleware.JWTMiddleware())
	user.GET("/properties", userPropertyController.ListMyProperties)
	user.POST("/properties", userPropertyController.CreateMyProperty)
	user.PUT("/properties/:id", userPropertyController.UpdateMyProperty)
	user.DELETE("/properties/:id", userPropertyController.DeleteMyProperty)
}
