package main

import (
	"log"
	"os"

	"github.com/Loki-59/Rlestate/config"
	"github.com/Loki-59/Rlestate/routes"
	"github.com/Loki-59/Rlestate/services"
	"github.com/Loki-59/Rlestate/utils"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	apiKey := os.Getenv("ESTATEINTEL_API_KEY")
	if apiKey == "" {
		log.Fatal("ESTATEINTEL_API_KEY is required")
	}
	intel := services.NewClient(apiKey)

	config.ConnectDB()
	config.EnsureIndexes()

	utils.InitRedis()

	e := echo.New()

	corsOrigin := os.Getenv("CORS_ORIGIN")
	if corsOrigin == "" {
		corsOrigin = "http://localhost:5173"
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{corsOrigin},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(e, intel)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
