package main

import (
	"log"
	"time"

	"edulytics/config"
	"edulytics/database"
	reportRoutes "edulytics/routers/reportRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to open database handle: %v", err)
	}

	// Probe connectivity on startup. The server still comes up when the
	// database is down; endpoints surface the failure per request.
	if err := database.Ping(db, 5*time.Second); err != nil {
		log.Printf("Database connection failed: %v", err)
	} else {
		log.Printf("Connected to database %s on %s", cfg.DBName, cfg.DBHost)
	}

	app := fiber.New()

	app.Use(recover.New())

	// CORS stays open for the BI dashboard tool
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	reportRoutes.SetupReportRoutes(app, db)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
