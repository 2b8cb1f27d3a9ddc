package reportValidators

import (
	"time"

	"edulytics/reports"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

var validStatuses = map[string]bool{
	"active":    true,
	"completed": true,
	"dropped":   true,
}

// FilterEnrollments validates the optional query parameters of the filtered
// enrollment listing and stashes the parsed filter for the controller.
func FilterEnrollments() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Category string `query:"category"`
			Status   string `query:"status"`
			DateFrom string `query:"date_from"`
			DateTo   string `query:"date_to"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid query parameters!",
			})
		}

		errors := make(map[string]string)

		// Validate Status
		if reqData.Status != "" && !validStatuses[reqData.Status] {
			errors["status"] = "Status must be one of active, completed or dropped!"
		}

		// Validate date range bounds
		if reqData.DateFrom != "" {
			if _, err := time.Parse(dateLayout, reqData.DateFrom); err != nil {
				errors["date_from"] = "date_from must be formatted as YYYY-MM-DD!"
			}
		}
		if reqData.DateTo != "" {
			if _, err := time.Parse(dateLayout, reqData.DateTo); err != nil {
				errors["date_to"] = "date_to must be formatted as YYYY-MM-DD!"
			}
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed!",
				"fields": errors,
			})
		}

		c.Locals("enrollmentFilter", reports.EnrollmentFilter{
			Category: reqData.Category,
			Status:   reqData.Status,
			DateFrom: reqData.DateFrom,
			DateTo:   reqData.DateTo,
		})
		return c.Next()
	}
}
