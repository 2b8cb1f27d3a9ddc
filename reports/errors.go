package reports

import "fmt"

// QueryExecutionError reports a failed connection acquisition or statement
// execution. The driver message is kept for the error response body.
type QueryExecutionError struct {
	Err error
}

func (e *QueryExecutionError) Error() string {
	return fmt.Sprintf("query execution failed: %v", e.Err)
}

func (e *QueryExecutionError) Unwrap() error { return e.Err }

// NormalizationError reports a column value of a type the normalizer does
// not recognize.
type NormalizationError struct {
	Column string
	Value  any
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("cannot normalize column %q: unsupported value of type %T", e.Column, e.Value)
}
