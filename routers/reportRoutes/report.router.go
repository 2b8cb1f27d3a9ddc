package reportRoutes

import (
	"database/sql"
	"strings"

	controllers "edulytics/controllers/reports"
	"edulytics/reports"
	validators "edulytics/validators/reports"

	"github.com/gofiber/fiber/v2"
)

// SetupReportRoutes registers every reporting endpoint. The fixed reports
// come straight from the registry; health, filtered enrollments and the
// endpoints list carry behavior of their own.
func SetupReportRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api")

	api.Get("/health", controllers.HealthCheck(db))
	api.Get("/enrollments/filter", validators.FilterEnrollments(), controllers.FilterEnrollments(db))
	api.Get("/metadata/endpoints", controllers.ListEndpoints())

	for _, report := range reports.Registry {
		path := strings.TrimPrefix(report.Path, "/api")
		api.Get(path, controllers.ReportHandler(db, report))
	}
}
