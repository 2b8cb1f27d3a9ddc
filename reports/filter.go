package reports

import (
	"fmt"
	"strings"
)

// EnrollmentFilter holds the optional narrowing parameters accepted by the
// filtered enrollment listing. Empty fields are skipped. Dates are
// YYYY-MM-DD strings, validated at the endpoint boundary.
type EnrollmentFilter struct {
	Category string
	Status   string
	DateFrom string
	DateTo   string
}

// Fixed clause fragments. The only thing substituted into the SQL text is
// the @pN placeholder index; filter values are always bound positionally.
const (
	categoryClause = " AND c.category = @p%d"
	statusClause   = " AND e.status = @p%d"
	dateFromClause = " AND e.enrollment_date >= @p%d"
	dateToClause   = " AND e.enrollment_date <= @p%d"
)

// BuildEnrollmentFilterQuery composes the filtered-enrollments statement
// from the base listing plus one fixed AND clause per present filter, and
// returns it with the values to bind. With no filters set it degenerates to
// the plain listing.
func BuildEnrollmentFilterQuery(f EnrollmentFilter) (string, []any) {
	var b strings.Builder
	b.WriteString(enrollmentFilterBase)
	args := make([]any, 0, 4)

	appendClause := func(clause string, value any) {
		args = append(args, value)
		fmt.Fprintf(&b, clause, len(args))
	}

	if f.Category != "" {
		appendClause(categoryClause, f.Category)
	}
	if f.Status != "" {
		appendClause(statusClause, f.Status)
	}
	if f.DateFrom != "" {
		appendClause(dateFromClause, f.DateFrom)
	}
	if f.DateTo != "" {
		appendClause(dateToClause, f.DateTo)
	}

	b.WriteString(enrollmentFilterOrder)
	return b.String(), args
}
