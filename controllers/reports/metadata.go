package controllers

import (
	"edulytics/reports"

	"github.com/gofiber/fiber/v2"
)

// ListEndpoints returns the static route map the BI tool uses for discovery.
// It never touches the database.
func ListEndpoints() fiber.Handler {
	endpoints := fiber.Map{
		"health":             "/api/health",
		"filter_enrollments": "/api/enrollments/filter",
		"endpoints_list":     "/api/metadata/endpoints",
	}
	for _, report := range reports.Registry {
		endpoints[report.Name] = report.Path
	}

	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(endpoints)
	}
}
