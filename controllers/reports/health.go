package controllers

import (
	"database/sql"
	"time"

	"edulytics/reports"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck verifies database connectivity with a probe query. This is the
// only endpoint that checks the database proactively; every other endpoint
// discovers failure on its actual query attempt.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := reports.Execute(c.Context(), db, reports.HealthProbeQuery); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now().Format(time.RFC3339),
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"database":  "connected",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
