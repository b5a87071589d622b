package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"requisition-actions-server/handlers"
	"requisition-actions-server/middleware"
	"requisition-actions-server/services"

	_ "requisition-actions-server/docs"
)

// DBPort is fixed; the requisition store is only reachable on the standard port
const DBPort = 5432

// @title Requisition Actions API
// @version 1.0
// @description Agent action endpoints for purchase requisition line items
// @host localhost:8080
// @BasePath /
func main() {
	// Required config — refuse to start without the database coordinates
	dbHost := mustEnv("DB_HOST")
	dbName := mustEnv("DB_NAME")
	dbUser := mustEnv("DB_USER")
	dbPassword := mustEnv("DB_PASSWORD")

	// Optional config
	serverPort := getEnv("SERVER_PORT", "8080")
	archiveType := getEnv("ARCHIVE_TYPE", "local")
	archivePath := getEnv("ARCHIVE_PATH", "/data/events")
	redisHost := os.Getenv("REDIS_HOST")
	redisPort, _ := strconv.Atoi(getEnv("REDIS_PORT", "6379"))

	// Initialize services
	dbService, err := services.NewDBService(dbHost, DBPort, dbUser, dbPassword, dbName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.InitSchema(context.Background()); err != nil {
		log.Fatalf("Failed to initialize database schema: %v", err)
	}
	log.Println("Database schema initialized")

	archiveService, err := services.NewArchiveService(archiveType, archivePath)
	if err != nil {
		log.Fatalf("Failed to initialize archive service: %v", err)
	}
	log.Printf("Archive service initialized: %s (%s)", archiveType, archivePath)

	// Notifier is optional; the action works without downstream consumers
	var notifier services.Notifier
	healthDeps := []handlers.Pinger{dbService}
	if redisHost != "" {
		notifierService := services.NewNotifierService(redisHost, redisPort)
		notifier = notifierService
		healthDeps = append(healthDeps, notifierService)
		log.Printf("Notifier enabled: %s:%d", redisHost, redisPort)
	}

	lineItemService := services.NewLineItemService(dbService, archiveService, notifier)

	// Initialize handlers
	actionHandler := handlers.NewActionHandler(lineItemService)
	requisitionHandler := handlers.NewRequisitionHandler(dbService)
	healthHandler := handlers.NewHealthHandler(healthDeps...)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName: "RequisitionActions",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	if getEnv("XRAY_ENABLED", "false") == "true" {
		app.Use(middleware.XRayMiddleware())
	}

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health endpoints
	app.Get("/health", healthHandler.Health)

	// Agent action routes
	agent := app.Group("/agent")
	agent.Post("/actions/add-line-item", actionHandler.AddLineItem)

	// API routes
	api := app.Group("/api")
	api.Get("/requisitions/:id/line-items", requisitionHandler.ListLineItems)

	log.Printf("Requisition Actions Server starting on port %s", serverPort)
	log.Printf("Database: %s:%d/%s", dbHost, DBPort, dbName)
	log.Fatal(app.Listen(":" + serverPort))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return value
}
