package controllers

import (
	"database/sql"
	"fmt"

	"edulytics/reports"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler builds the handler for one registry entry: bind the numeric
// path parameters in declared order, execute the template, normalize, and
// serialize the records as a JSON array.
func ReportHandler(db *sql.DB, report reports.Report) fiber.Handler {
	return func(c *fiber.Ctx) error {
		args := make([]any, 0, len(report.PathParams))
		for _, name := range report.PathParams {
			id, err := c.ParamsInt(name)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("%s must be an integer", name),
				})
			}
			args = append(args, id)
		}

		return respondReport(c, db, report.Query, args...)
	}
}

// respondReport runs execute-normalize-serialize for one query. Both error
// kinds surface the same way: a JSON error body with status 500.
func respondReport(c *fiber.Ctx, db *sql.DB, query string, args ...any) error {
	rs, err := reports.Execute(c.Context(), db, query, args...)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	records, err := reports.Normalize(rs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(records)
}

// FilterEnrollments serves the enrollment listing narrowed by the validated
// optional filters stashed by the validator middleware.
func FilterEnrollments(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, _ := c.Locals("enrollmentFilter").(reports.EnrollmentFilter)
		query, args := reports.BuildEnrollmentFilterQuery(filter)
		return respondReport(c, db, query, args...)
	}
}
