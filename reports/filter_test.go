package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildEnrollmentFilterQueryNoFilters(t *testing.T) {
	query, args := BuildEnrollmentFilterQuery(EnrollmentFilter{})

	assert.Empty(t, args)
	assert.Equal(t, enrollmentFilterBase+enrollmentFilterOrder, query)
	assert.NotContains(t, query, "@p")
}

func TestBuildEnrollmentFilterQuerySingleFilter(t *testing.T) {
	query, args := BuildEnrollmentFilterQuery(EnrollmentFilter{Category: "Math"})

	assert.Equal(t, []any{"Math"}, args)
	assert.Contains(t, query, "AND c.category = @p1")
	assert.NotContains(t, query, "Math", "filter values must never appear in the SQL text")
	assert.NotContains(t, query, "@p2")
}

func TestBuildEnrollmentFilterQueryAllFilters(t *testing.T) {
	query, args := BuildEnrollmentFilterQuery(EnrollmentFilter{
		Category: "Science",
		Status:   "completed",
		DateFrom: "2024-01-01",
		DateTo:   "2024-06-30",
	})

	assert.Equal(t, []any{"Science", "completed", "2024-01-01", "2024-06-30"}, args)
	assert.Contains(t, query, "AND c.category = @p1")
	assert.Contains(t, query, "AND e.status = @p2")
	assert.Contains(t, query, "AND e.enrollment_date >= @p3")
	assert.Contains(t, query, "AND e.enrollment_date <= @p4")
}

func TestBuildEnrollmentFilterQueryRenumbersSkippedFilters(t *testing.T) {
	query, args := BuildEnrollmentFilterQuery(EnrollmentFilter{
		Status: "active",
		DateTo: "2024-12-31",
	})

	// Placeholders stay dense regardless of which filters are present.
	assert.Equal(t, []any{"active", "2024-12-31"}, args)
	assert.Contains(t, query, "AND e.status = @p1")
	assert.Contains(t, query, "AND e.enrollment_date <= @p2")
	assert.NotContains(t, query, "@p3")
}

func TestBuildEnrollmentFilterQueryKeepsListingOrder(t *testing.T) {
	unfiltered, _ := BuildEnrollmentFilterQuery(EnrollmentFilter{})
	filtered, _ := BuildEnrollmentFilterQuery(EnrollmentFilter{Category: "Math"})

	assert.Contains(t, unfiltered, "ORDER BY e.enrollment_date DESC")
	assert.Contains(t, filtered, "ORDER BY e.enrollment_date DESC")
}
