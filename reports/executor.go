package reports

import (
	"context"
	"database/sql"
)

// Column describes one projected column of a result set.
type Column struct {
	Name string
	Type string
}

// ResultSet is the raw output of one query execution: column metadata plus
// rows of driver values in projection order.
type ResultSet struct {
	Columns []Column
	Rows    [][]any
}

// Execute runs a fixed query template with its filter values bound as
// @p1..@pN. A dedicated connection is checked out for the call and released
// before returning, success or failure. On any failure the whole result is
// discarded and a *QueryExecutionError is returned.
func Execute(ctx context.Context, db *sql.DB, query string, args ...any) (*ResultSet, error) {
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, &QueryExecutionError{Err: err}
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &QueryExecutionError{Err: err}
	}
	defer rows.Close()

	return collect(rows)
}

func collect(rows *sql.Rows) (*ResultSet, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, &QueryExecutionError{Err: err}
	}

	cols := make([]Column, len(types))
	for i, ct := range types {
		cols[i] = Column{Name: ct.Name(), Type: ct.DatabaseTypeName()}
	}

	rs := &ResultSet{Columns: cols, Rows: make([][]any, 0)}
	for rows.Next() {
		values := make([]any, len(cols))
		scanArgs := make([]any, len(cols))
		for i := range values {
			scanArgs[i] = &values[i]
		}

		if err := rows.Scan(scanArgs...); err != nil {
			return nil, &QueryExecutionError{Err: err}
		}
		rs.Rows = append(rs.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryExecutionError{Err: err}
	}

	return rs, nil
}
