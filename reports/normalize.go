package reports

import (
	"bytes"
	"encoding/json"
	"math"
	"time"
)

// TimestampLayout is the wire format for every non-null temporal value.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one output row: column names in projection order mapped to
// JSON-safe scalar values. Every record produced from the same result set
// shares the same column slice.
type Record struct {
	columns []string
	values  []any
}

// Columns returns the record's column names in projection order.
func (r Record) Columns() []string { return r.columns }

// Get returns the value for a column and whether the column exists.
func (r Record) Get(name string) (any, bool) {
	for i, c := range r.columns {
		if c == name {
			return r.values[i], true
		}
	}
	return nil, false
}

// MarshalJSON writes the record as a JSON object with keys in projection
// order. encoding/json maps would re-sort them.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Normalize converts a raw result set into JSON-safe records. Every
// null-equivalent the driver can produce (NULL, NaN, Inf) collapses to the
// canonical JSON null; timestamps become fixed-format strings; other scalars
// pass through unchanged. Row order is preserved.
func Normalize(rs *ResultSet) ([]Record, error) {
	names := make([]string, len(rs.Columns))
	for i, c := range rs.Columns {
		names[i] = c.Name
	}

	records := make([]Record, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		values := make([]any, len(row))
		for i, v := range row {
			nv, err := normalizeValue(names[i], v)
			if err != nil {
				return nil, err
			}
			values[i] = nv
		}
		records = append(records, Record{columns: names, values: values})
	}

	return records, nil
}

// normalizeValue accepts exactly the driver.Value scalar set. Anything else
// means the driver handed back something we never vetted for JSON output.
func normalizeValue(column string, v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return t.Format(TimestampLayout), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, nil
		}
		return t, nil
	case []byte:
		// NVARCHAR and DECIMAL columns arrive as raw bytes.
		return string(t), nil
	case int64, bool, string:
		return t, nil
	default:
		return nil, &NormalizationError{Column: column, Value: v}
	}
}
