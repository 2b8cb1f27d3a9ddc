package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteCollectsRows(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"course_id", "course_name", "created_at"}).
		AddRow(int64(1), "Algebra I", time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)).
		AddRow(int64(2), "Biology", nil)
	mock.ExpectQuery(CoursesQuery).WillReturnRows(rows)

	rs, err := Execute(context.Background(), db, CoursesQuery)
	require.NoError(t, err)

	require.Len(t, rs.Columns, 3)
	assert.Equal(t, "course_id", rs.Columns[0].Name)
	assert.Equal(t, "course_name", rs.Columns[1].Name)
	assert.Equal(t, "created_at", rs.Columns[2].Name)

	require.Len(t, rs.Rows, 2)
	assert.Equal(t, int64(1), rs.Rows[0][0])
	assert.Equal(t, "Algebra I", rs.Rows[0][1])
	assert.Nil(t, rs.Rows[1][2])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteBindsPositionalArgs(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"course_id"}).AddRow(int64(7))
	mock.ExpectQuery(CourseDetailQuery).WithArgs(7).WillReturnRows(rows)

	rs, err := Execute(context.Background(), db, CourseDetailQuery, 7)
	require.NoError(t, err)
	require.Len(t, rs.Rows, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteEmptyResult(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(StudentsQuery).WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	rs, err := Execute(context.Background(), db, StudentsQuery)
	require.NoError(t, err)
	assert.NotNil(t, rs.Rows)
	assert.Empty(t, rs.Rows)
}

func TestExecuteQueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	driverErr := errors.New("network error: host unreachable")
	mock.ExpectQuery(EnrollmentsQuery).WillReturnError(driverErr)

	rs, err := Execute(context.Background(), db, EnrollmentsQuery)
	assert.Nil(t, rs)

	var execErr *QueryExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.ErrorIs(t, err, driverErr)
	assert.Contains(t, err.Error(), "host unreachable")
}

func TestExecuteRowFailureReturnsNoPartialResult(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id"}).
		AddRow(int64(1)).
		RowError(0, errors.New("connection reset"))
	mock.ExpectQuery(StudentsQuery).WillReturnRows(rows)

	rs, err := Execute(context.Background(), db, StudentsQuery)
	assert.Nil(t, rs)

	var execErr *QueryExecutionError
	require.ErrorAs(t, err, &execErr)
}
